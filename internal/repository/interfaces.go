package repository

import (
	"team-docs-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetBySlug(slug string) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetActive() ([]models.Team, error)
	GetWithMembers(id uuid.UUID) (*models.Team, error)
	Update(team *models.Team) error
	SetActive(id uuid.UUID, active bool) error
}

// TeamMemberRepositoryInterface defines the interface for team member repository operations
type TeamMemberRepositoryInterface interface {
	Create(member *models.TeamMember) error
	GetByTeamAndUser(teamID uuid.UUID, userID string) (*models.TeamMember, error)
	ListByTeam(teamID uuid.UUID) ([]models.TeamMember, error)
	CountByTeam(teamID uuid.UUID) (int64, error)
	Delete(teamID uuid.UUID, userID string) error
	UpdateRole(teamID uuid.UUID, userID string, role models.MemberRole) error
}

// DocumentRepositoryInterface defines the interface for document repository operations
type DocumentRepositoryInterface interface {
	CreateWithVersion(doc *models.Document, entry *models.DocumentVersion) error
	ReplaceHead(prev *models.Document, next *models.Document, entry *models.DocumentVersion) error
	GetByID(id uuid.UUID) (*models.Document, error)
	GetWithTeam(id uuid.UUID) (*models.Document, error)
	SlugExists(teamID uuid.UUID, slug string) (bool, error)
	List(filter DocumentFilter) ([]models.Document, int64, error)
	Search(filter SearchFilter) ([]models.Document, error)
	ListVersionChain(rootID uuid.UUID, limit, offset int) ([]models.Document, int64, error)
	Save(doc *models.Document) error
	IncrementViews(id uuid.UUID) error
	CountByTeam(teamID uuid.UUID) (int64, error)
	StatusCounts(teamID uuid.UUID) (map[string]int64, error)
	CategoryCounts(teamID uuid.UUID) (map[string]int64, error)
	RecentByTeam(teamID uuid.UUID, limit int) ([]models.Document, error)
}

// DocumentVersionRepositoryInterface defines the interface for version ledger operations
type DocumentVersionRepositoryInterface interface {
	Create(entry *models.DocumentVersion) error
	GetByID(id uuid.UUID) (*models.DocumentVersion, error)
	ListByDocument(documentID uuid.UUID, limit, offset int) ([]models.DocumentVersion, int64, error)
	UpdateApproval(id uuid.UUID, approval models.Approval) error
}
