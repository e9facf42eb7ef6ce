package service

import (
	"errors"
	"fmt"
	"time"

	"team-docs-backend/internal/database/models"
	apperrors "team-docs-backend/internal/errors"
	"team-docs-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VersionService handles business logic for the version ledger and its
// approval workflow. Ledger entries are append-only; the embedded approval
// sub-object is the only thing this service ever mutates.
type VersionService struct {
	versionRepo repository.DocumentVersionRepositoryInterface
	docRepo     repository.DocumentRepositoryInterface
	validator   *validator.Validate
}

// NewVersionService creates a new version service
func NewVersionService(versionRepo repository.DocumentVersionRepositoryInterface, docRepo repository.DocumentRepositoryInterface, validator *validator.Validate) *VersionService {
	return &VersionService{
		versionRepo: versionRepo,
		docRepo:     docRepo,
		validator:   validator,
	}
}

// AddApproverRequest represents the request to add an approver to a version
type AddApproverRequest struct {
	UserID   string `json:"user_id" validate:"required,max=100"`
	UserName string `json:"user_name" validate:"required,max=200"`
}

// ApprovalDecisionRequest represents an approve or reject decision
type ApprovalDecisionRequest struct {
	UserID  string `json:"user_id" validate:"required,max=100"`
	Comment string `json:"comment,omitempty" validate:"max=500"`
}

// VersionResponse represents one ledger entry
type VersionResponse struct {
	ID              uuid.UUID         `json:"id"`
	DocumentID      uuid.UUID         `json:"document_id"`
	Version         int               `json:"version"`
	Title           string            `json:"title"`
	Content         string            `json:"content"`
	AuthorID        string            `json:"author_id"`
	AuthorName      string            `json:"author_name"`
	ChangeType      models.ChangeType `json:"change_type"`
	ChangeSummary   string            `json:"change_summary"`
	ChangeDetails   string            `json:"change_details,omitempty"`
	Tags            []string          `json:"tags"`
	ParentVersionID *uuid.UUID        `json:"parent_version_id,omitempty"`
	Approval        models.Approval   `json:"approval"`
	CreatedAt       time.Time         `json:"created_at"`
}

// VersionHistoryResponse is the paginated ledger listing for one document
type VersionHistoryResponse struct {
	Versions   []VersionResponse `json:"versions"`
	Pagination Pagination        `json:"pagination"`
}

// ListByDocument retrieves a document's ledger entries, newest version first
func (s *VersionService) ListByDocument(documentID uuid.UUID, limit, skip int) (*VersionHistoryResponse, error) {
	if _, err := s.docRepo.GetByID(documentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	limit, skip = clampPage(limit, skip, defaultVersionLimit)

	entries, total, err := s.versionRepo.ListByDocument(documentID, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list versions: %w", err)
	}

	versions := make([]VersionResponse, len(entries))
	for i := range entries {
		versions[i] = toVersionResponse(&entries[i])
	}

	return &VersionHistoryResponse{
		Versions:   versions,
		Pagination: NewPagination(total, limit, skip, len(entries)),
	}, nil
}

// AddApprover registers a pending approver on a ledger entry. A userID may
// appear at most once per entry.
func (s *VersionService) AddApprover(versionID uuid.UUID, req *AddApproverRequest) (*VersionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	entry, err := s.getEntry(versionID)
	if err != nil {
		return nil, err
	}

	if !entry.Approval.AddApprover(req.UserID, req.UserName) {
		return nil, apperrors.ErrApproverExists
	}

	if err := s.saveApproval(entry); err != nil {
		return nil, err
	}

	resp := toVersionResponse(entry)
	return &resp, nil
}

// Approve records one approver's approval. The round's final status becomes
// approved only once every registered approver has approved; an already
// rejected round never reopens.
func (s *VersionService) Approve(versionID uuid.UUID, req *ApprovalDecisionRequest) (*VersionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	entry, err := s.getEntry(versionID)
	if err != nil {
		return nil, err
	}

	if !entry.Approval.Approve(req.UserID, req.Comment) {
		return nil, apperrors.ErrApproverNotFound
	}

	if err := s.saveApproval(entry); err != nil {
		return nil, err
	}

	resp := toVersionResponse(entry)
	return &resp, nil
}

// Reject records one approver's rejection, which settles the round as
// rejected immediately and permanently.
func (s *VersionService) Reject(versionID uuid.UUID, req *ApprovalDecisionRequest) (*VersionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	entry, err := s.getEntry(versionID)
	if err != nil {
		return nil, err
	}

	if !entry.Approval.Reject(req.UserID, req.Comment) {
		return nil, apperrors.ErrApproverNotFound
	}

	if err := s.saveApproval(entry); err != nil {
		return nil, err
	}

	resp := toVersionResponse(entry)
	return &resp, nil
}

func (s *VersionService) getEntry(id uuid.UUID) (*models.DocumentVersion, error) {
	entry, err := s.versionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVersionNotFound
		}
		return nil, fmt.Errorf("failed to get version: %w", err)
	}
	return entry, nil
}

func (s *VersionService) saveApproval(entry *models.DocumentVersion) error {
	if err := s.versionRepo.UpdateApproval(entry.ID, entry.Approval); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrVersionNotFound
		}
		return fmt.Errorf("failed to update approval: %w", err)
	}
	return nil
}

func toVersionResponse(entry *models.DocumentVersion) VersionResponse {
	return VersionResponse{
		ID:              entry.ID,
		DocumentID:      entry.DocumentID,
		Version:         entry.Version,
		Title:           entry.Title,
		Content:         entry.Content,
		AuthorID:        entry.AuthorID,
		AuthorName:      entry.AuthorName,
		ChangeType:      entry.ChangeType,
		ChangeSummary:   entry.ChangeSummary,
		ChangeDetails:   entry.ChangeDetails,
		Tags:            entry.Tags,
		ParentVersionID: entry.ParentVersionID,
		Approval:        entry.Approval,
		CreatedAt:       entry.CreatedAt,
	}
}
