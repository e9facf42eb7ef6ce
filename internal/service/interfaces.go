package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	ListTeams() ([]TeamSummary, error)
	GetByID(id uuid.UUID) (*TeamResponse, error)
	GetDetail(id uuid.UUID) (*TeamDetailResponse, error)
	Create(req *CreateTeamRequest) (*TeamResponse, error)
	Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	Deactivate(id uuid.UUID) error
}

// MemberServiceInterface defines the interface for team membership service
type MemberServiceInterface interface {
	AddMember(teamID uuid.UUID, req *AddMemberRequest) (*TeamResponse, error)
	RemoveMember(teamID uuid.UUID, userID string) (*TeamResponse, error)
	UpdateMemberRole(teamID uuid.UUID, userID string, role string) (*TeamResponse, error)
}

// DocumentServiceInterface defines the interface for document service
type DocumentServiceInterface interface {
	Create(req *CreateDocumentRequest) (*DocumentResponse, error)
	GetByID(id uuid.UUID) (*DocumentResponse, error)
	List(q *ListDocumentsQuery) (*DocumentListResponse, error)
	Search(q *SearchQuery) (*SearchResponse, error)
	Update(id uuid.UUID, req *UpdateDocumentRequest) (*DocumentResponse, error)
	Archive(id uuid.UUID) error
	AddRelation(id uuid.UUID, req *AddRelationRequest) (*DocumentResponse, error)
	ListVersions(id uuid.UUID, limit, skip int) (*VersionChainResponse, error)
}

// VersionServiceInterface defines the interface for the version ledger service
type VersionServiceInterface interface {
	ListByDocument(documentID uuid.UUID, limit, skip int) (*VersionHistoryResponse, error)
	AddApprover(versionID uuid.UUID, req *AddApproverRequest) (*VersionResponse, error)
	Approve(versionID uuid.UUID, req *ApprovalDecisionRequest) (*VersionResponse, error)
	Reject(versionID uuid.UUID, req *ApprovalDecisionRequest) (*VersionResponse, error)
}
