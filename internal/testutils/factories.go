package testutils

import (
	"time"

	"team-docs-backend/internal/database/models"

	"github.com/google/uuid"
)

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	suffix := id.String()[:8]
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Team " + suffix,
		Slug:        "test-team-" + suffix,
		Description: "A team for testing",
		Color:       "#6366f1",
		Icon:        "📋",
		IsActive:    true,
		Settings: models.TeamSettings{
			AllowPublicView: false,
			RequireApproval: true,
		},
	}
}

// WithName sets a custom name and matching slug
func (f *TeamFactory) WithName(name, slug string) *models.Team {
	team := f.Create()
	team.Name = name
	team.Slug = slug
	return team
}

// WithoutApproval creates a team whose documents skip review
func (f *TeamFactory) WithoutApproval() *models.Team {
	team := f.Create()
	team.Settings.RequireApproval = false
	return team
}

// TeamMemberFactory provides methods to create test TeamMember data
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates a test TeamMember with default values
func (f *TeamMemberFactory) Create(teamID uuid.UUID) *models.TeamMember {
	id := uuid.New()
	return &models.TeamMember{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:   teamID,
		UserID:   "user-" + id.String()[:8],
		UserName: "Test User",
		Role:     models.MemberRoleMember,
		JoinedAt: time.Now(),
	}
}

// WithRole sets a custom role
func (f *TeamMemberFactory) WithRole(teamID uuid.UUID, userID string, role models.MemberRole) *models.TeamMember {
	member := f.Create(teamID)
	member.UserID = userID
	member.Role = role
	return member
}

// DocumentFactory provides methods to create test Document data
type DocumentFactory struct{}

// NewDocumentFactory creates a new DocumentFactory
func NewDocumentFactory() *DocumentFactory {
	return &DocumentFactory{}
}

// Create creates a test Document with default values as version 1 head
func (f *DocumentFactory) Create(teamID uuid.UUID) *models.Document {
	id := uuid.New()
	suffix := id.String()[:8]
	return &models.Document{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:           "Test Document " + suffix,
		Slug:            "test-document-" + suffix,
		Content:         "Some test content",
		ContentType:     models.ContentTypeMarkdown,
		TeamID:          teamID,
		AuthorID:        "author-1",
		AuthorName:      "Author One",
		Status:          models.DocumentStatusDraft,
		Category:        models.CategoryOther,
		Tags:            models.StringList{"test"},
		Version:         1,
		IsLatestVersion: true,
	}
}

// WithStatus sets a custom status
func (f *DocumentFactory) WithStatus(teamID uuid.UUID, status models.DocumentStatus) *models.Document {
	doc := f.Create(teamID)
	doc.Status = status
	return doc
}

// AsVersion creates a historical or head record in an existing lineage
func (f *DocumentFactory) AsVersion(teamID, parentID uuid.UUID, version int, latest bool) *models.Document {
	doc := f.Create(teamID)
	doc.ParentDocumentID = &parentID
	doc.Version = version
	doc.IsLatestVersion = latest
	return doc
}

// DocumentVersionFactory provides methods to create test ledger entries
type DocumentVersionFactory struct{}

// NewDocumentVersionFactory creates a new DocumentVersionFactory
func NewDocumentVersionFactory() *DocumentVersionFactory {
	return &DocumentVersionFactory{}
}

// Create creates a test ledger entry with default values
func (f *DocumentVersionFactory) Create(documentID uuid.UUID) *models.DocumentVersion {
	return &models.DocumentVersion{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		DocumentID:    documentID,
		Version:       1,
		Title:         "Test Document",
		Content:       "Some test content",
		AuthorID:      "author-1",
		AuthorName:    "Author One",
		ChangeType:    models.ChangeTypeCreated,
		ChangeSummary: "Initial document creation",
		Tags:          models.StringList{"test"},
		Approval: models.Approval{
			IsRequired:  true,
			Approvers:   []models.Approver{},
			FinalStatus: models.ApprovalPending,
		},
	}
}

// WithApprovers seeds the entry with pending approvers
func (f *DocumentVersionFactory) WithApprovers(documentID uuid.UUID, userIDs ...string) *models.DocumentVersion {
	entry := f.Create(documentID)
	for _, id := range userIDs {
		entry.Approval.AddApprover(id, "User "+id)
	}
	return entry
}

// FactorySet provides access to all factories
type FactorySet struct {
	Team            *TeamFactory
	TeamMember      *TeamMemberFactory
	Document        *DocumentFactory
	DocumentVersion *DocumentVersionFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:            NewTeamFactory(),
		TeamMember:      NewTeamMemberFactory(),
		Document:        NewDocumentFactory(),
		DocumentVersion: NewDocumentVersionFactory(),
	}
}
