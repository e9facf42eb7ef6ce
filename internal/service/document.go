package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"team-docs-backend/internal/database/models"
	apperrors "team-docs-backend/internal/errors"
	"team-docs-backend/internal/events"
	"team-docs-backend/internal/logger"
	"team-docs-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultListLimit    = 20
	defaultSearchLimit  = 10
	defaultVersionLimit = 10
	minSearchQueryLen   = 2
)

// DocumentService handles business logic for documents and their version
// chains. Every mutation that lands emits an event through the publisher.
type DocumentService struct {
	docRepo     repository.DocumentRepositoryInterface
	versionRepo repository.DocumentVersionRepositoryInterface
	teamRepo    repository.TeamRepositoryInterface
	validator   *validator.Validate
	publisher   events.Publisher
	log         *logger.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(docRepo repository.DocumentRepositoryInterface, versionRepo repository.DocumentVersionRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate, publisher events.Publisher) *DocumentService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &DocumentService{
		docRepo:     docRepo,
		versionRepo: versionRepo,
		teamRepo:    teamRepo,
		validator:   validator,
		publisher:   publisher,
		log:         logger.ForComponent("document-service"),
	}
}

// CreateDocumentRequest represents the request to create a document
type CreateDocumentRequest struct {
	Title       string          `json:"title" validate:"required,min=1,max=300"`
	Slug        string          `json:"slug,omitempty" validate:"omitempty,max=300"`
	Content     string          `json:"content" validate:"required"`
	ContentType string          `json:"content_type,omitempty"`
	TeamID      uuid.UUID       `json:"team_id" validate:"required"`
	AuthorID    string          `json:"author_id" validate:"required,max=100"`
	AuthorName  string          `json:"author_name" validate:"required,max=200"`
	Category    string          `json:"category,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
}

// UpdateDocumentRequest represents the request to publish a new version of a
// document; nil fields carry forward from the current head.
type UpdateDocumentRequest struct {
	Title         *string         `json:"title,omitempty" validate:"omitempty,min=1,max=300"`
	Content       *string         `json:"content,omitempty" validate:"omitempty,min=1"`
	ContentType   *string         `json:"content_type,omitempty"`
	Category      *string         `json:"category,omitempty"`
	Tags          []string        `json:"tags,omitempty"`
	Metadata      json.RawMessage `json:"metadata,omitempty"`
	AuthorID      string          `json:"author_id" validate:"required,max=100"`
	AuthorName    string          `json:"author_name" validate:"required,max=200"`
	ChangeSummary string          `json:"change_summary" validate:"required,max=500"`
	ChangeDetails string          `json:"change_details,omitempty"`
}

// AddRelationRequest represents the request to link a document to another
type AddRelationRequest struct {
	DocumentID   uuid.UUID `json:"document_id" validate:"required"`
	RelationType string    `json:"relation_type" validate:"required"`
	Strength     *float64  `json:"strength,omitempty"`
}

// ListDocumentsQuery carries the listing filters from the API surface
type ListDocumentsQuery struct {
	TeamID    *uuid.UUID
	Status    string
	Category  string
	Tags      []string
	AuthorID  string
	Limit     int
	Skip      int
	SortBy    string
	SortOrder string
}

// SearchQuery carries the free-text search parameters
type SearchQuery struct {
	Query    string
	TeamID   *uuid.UUID
	Tags     []string
	Category string
	Status   string
	Limit    int
}

// TeamRef is the owning team projection embedded in document responses
type TeamRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Slug  string    `json:"slug"`
	Color string    `json:"color"`
	Icon  string    `json:"icon"`
}

// DocumentResponse represents the full document view
type DocumentResponse struct {
	ID               uuid.UUID                 `json:"id"`
	Title            string                    `json:"title"`
	Slug             string                    `json:"slug"`
	Content          string                    `json:"content"`
	ContentType      models.ContentType        `json:"content_type"`
	TeamID           uuid.UUID                 `json:"team_id"`
	Team             *TeamRef                  `json:"team,omitempty"`
	AuthorID         string                    `json:"author_id"`
	AuthorName       string                    `json:"author_name"`
	Status           models.DocumentStatus     `json:"status"`
	Category         models.DocumentCategory   `json:"category"`
	Tags             []string                  `json:"tags"`
	Version          int                       `json:"version"`
	ParentDocumentID *uuid.UUID                `json:"parent_document_id,omitempty"`
	IsLatestVersion  bool                      `json:"is_latest_version"`
	RelatedDocuments []models.DocumentRelation `json:"related_documents"`
	Permissions      models.Permissions        `json:"permissions"`
	Metadata         json.RawMessage           `json:"metadata,omitempty"`
	Statistics       models.DocumentStatistics `json:"statistics"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
}

// DocumentSummary is the listing projection without content
type DocumentSummary struct {
	ID         uuid.UUID               `json:"id"`
	Title      string                  `json:"title"`
	Slug       string                  `json:"slug"`
	TeamID     uuid.UUID               `json:"team_id"`
	Team       *TeamRef                `json:"team,omitempty"`
	AuthorID   string                  `json:"author_id"`
	AuthorName string                  `json:"author_name"`
	Status     models.DocumentStatus   `json:"status"`
	Category   models.DocumentCategory `json:"category"`
	Tags       []string                `json:"tags"`
	Version    int                     `json:"version"`
	Views      int                     `json:"views"`
	CreatedAt  time.Time               `json:"created_at"`
	UpdatedAt  time.Time               `json:"updated_at"`
}

// DocumentListResponse is the paginated listing envelope
type DocumentListResponse struct {
	Documents  []DocumentSummary `json:"documents"`
	Pagination Pagination        `json:"pagination"`
}

// SearchResponse is the search result envelope
type SearchResponse struct {
	Query   string            `json:"query"`
	Results []DocumentSummary `json:"results"`
	Count   int               `json:"count"`
}

// VersionChainResponse lists every record of one lineage, newest first
type VersionChainResponse struct {
	Versions   []DocumentSummary `json:"versions"`
	Pagination Pagination        `json:"pagination"`
}

// Create creates a new document as version 1 of a fresh lineage, together
// with its initial ledger entry. The slug derives from the title when none
// is given and must be unique within the team.
func (s *DocumentService) Create(req *CreateDocumentRequest) (*DocumentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	contentType := models.ContentTypeMarkdown
	if req.ContentType != "" {
		contentType = models.ContentType(req.ContentType)
		if !contentType.IsValid() {
			return nil, apperrors.NewValidationError("content_type", "invalid content type")
		}
	}
	category := models.CategoryOther
	if req.Category != "" {
		category = models.DocumentCategory(req.Category)
		if !category.IsValid() {
			return nil, apperrors.NewValidationError("category", "invalid category")
		}
	}

	team, err := s.teamRepo.GetByID(req.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Title)
	}
	if slug == "" {
		return nil, apperrors.NewValidationError("slug", "title yields an empty slug")
	}

	exists, err := s.docRepo.SlugExists(team.ID, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check document slug: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDocumentSlugExists
	}

	doc := &models.Document{
		Title:           req.Title,
		Slug:            slug,
		Content:         req.Content,
		ContentType:     contentType,
		TeamID:          team.ID,
		AuthorID:        req.AuthorID,
		AuthorName:      req.AuthorName,
		Status:          models.DocumentStatusDraft,
		Category:        category,
		Tags:            models.StringList(req.Tags),
		Version:         1,
		IsLatestVersion: true,
		Metadata:        req.Metadata,
	}

	entry := &models.DocumentVersion{
		Version:       1,
		Title:         doc.Title,
		Content:       doc.Content,
		AuthorID:      doc.AuthorID,
		AuthorName:    doc.AuthorName,
		ChangeType:    models.ChangeTypeCreated,
		ChangeSummary: "Initial document creation",
		Tags:          doc.Tags,
		Approval:      newApproval(team.Settings.RequireApproval),
	}

	if err := s.docRepo.CreateWithVersion(doc, entry); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	s.log.WithDocument(doc.ID.String(), doc.Version).WithTeam(team.ID.String()).Info("document created")
	s.publish(events.DocumentCreated, doc)

	doc.Team = team
	return toDocumentResponse(doc), nil
}

// GetByID retrieves a document and counts the view
func (s *DocumentService) GetByID(id uuid.UUID) (*DocumentResponse, error) {
	doc, err := s.docRepo.GetWithTeam(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	if err := s.docRepo.IncrementViews(id); err != nil {
		return nil, fmt.Errorf("failed to record view: %w", err)
	}
	now := time.Now()
	doc.Statistics.Views++
	doc.Statistics.LastViewedAt = &now

	return toDocumentResponse(doc), nil
}

// List retrieves the latest versions matching the query, with pagination
func (s *DocumentService) List(q *ListDocumentsQuery) (*DocumentListResponse, error) {
	if q.Status != "" && !models.DocumentStatus(q.Status).IsValid() {
		return nil, apperrors.NewValidationError("status", "invalid status")
	}
	if q.Category != "" && !models.DocumentCategory(q.Category).IsValid() {
		return nil, apperrors.NewValidationError("category", "invalid category")
	}

	limit, skip := clampPage(q.Limit, q.Skip, defaultListLimit)

	docs, total, err := s.docRepo.List(repository.DocumentFilter{
		TeamID:     q.TeamID,
		Status:     q.Status,
		Category:   q.Category,
		Tags:       q.Tags,
		AuthorID:   q.AuthorID,
		LatestOnly: true,
		Limit:      limit,
		Offset:     skip,
		SortBy:     q.SortBy,
		SortOrder:  q.SortOrder,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	summaries := make([]DocumentSummary, len(docs))
	for i := range docs {
		summaries[i] = toDocumentSummary(&docs[i])
	}

	return &DocumentListResponse{
		Documents:  summaries,
		Pagination: NewPagination(total, limit, skip, len(docs)),
	}, nil
}

// Search retrieves latest versions whose title, content, or tags contain the
// query as a case-insensitive substring.
func (s *DocumentService) Search(q *SearchQuery) (*SearchResponse, error) {
	query := strings.TrimSpace(q.Query)
	if len(query) < minSearchQueryLen {
		return nil, apperrors.ErrSearchQueryTooShort
	}
	if q.Status != "" && !models.DocumentStatus(q.Status).IsValid() {
		return nil, apperrors.NewValidationError("status", "invalid status")
	}
	if q.Category != "" && !models.DocumentCategory(q.Category).IsValid() {
		return nil, apperrors.NewValidationError("category", "invalid category")
	}

	limit := q.Limit
	if limit < 1 || limit > 100 {
		limit = defaultSearchLimit
	}

	docs, err := s.docRepo.Search(repository.SearchFilter{
		Query:    query,
		TeamID:   q.TeamID,
		Tags:     q.Tags,
		Category: q.Category,
		Status:   q.Status,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search documents: %w", err)
	}

	results := make([]DocumentSummary, len(docs))
	for i := range docs {
		results[i] = toDocumentSummary(&docs[i])
	}

	return &SearchResponse{
		Query:   query,
		Results: results,
		Count:   len(results),
	}, nil
}

// Update publishes a new version of a document. The current head is demoted
// and a successor record inserted, both in one transaction; a concurrent
// writer loses with ErrVersionConflict. Only the head of a lineage may be
// updated.
func (s *DocumentService) Update(id uuid.UUID, req *UpdateDocumentRequest) (*DocumentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	prev, err := s.docRepo.GetWithTeam(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	if !prev.IsLatestVersion {
		return nil, apperrors.ErrNotLatestVersion
	}

	next := &models.Document{
		Title:            prev.Title,
		Slug:             prev.Slug,
		Content:          prev.Content,
		ContentType:      prev.ContentType,
		TeamID:           prev.TeamID,
		AuthorID:         req.AuthorID,
		AuthorName:       req.AuthorName,
		Category:         prev.Category,
		Tags:             prev.Tags,
		Version:          prev.Version + 1,
		ParentDocumentID: &prev.ID,
		IsLatestVersion:  true,
		RelatedDocuments: prev.RelatedDocuments,
		Permissions:      prev.Permissions,
		Metadata:         prev.Metadata,
		Statistics: models.DocumentStatistics{
			Views:     0,
			EditCount: prev.Statistics.EditCount + 1,
		},
	}

	if req.Title != nil {
		next.Title = *req.Title
	}
	if req.Content != nil {
		next.Content = *req.Content
	}
	if req.ContentType != nil {
		ct := models.ContentType(*req.ContentType)
		if !ct.IsValid() {
			return nil, apperrors.NewValidationError("content_type", "invalid content type")
		}
		next.ContentType = ct
	}
	if req.Category != nil {
		cat := models.DocumentCategory(*req.Category)
		if !cat.IsValid() {
			return nil, apperrors.NewValidationError("category", "invalid category")
		}
		next.Category = cat
	}
	if req.Tags != nil {
		next.Tags = models.StringList(req.Tags)
	}
	if req.Metadata != nil {
		next.Metadata = req.Metadata
	}

	requireApproval := true
	if prev.Team != nil {
		requireApproval = prev.Team.Settings.RequireApproval
	}
	if requireApproval {
		next.Status = models.DocumentStatusReview
	} else {
		next.Status = models.DocumentStatusApproved
	}

	entry := &models.DocumentVersion{
		Version:         next.Version,
		Title:           next.Title,
		Content:         next.Content,
		AuthorID:        next.AuthorID,
		AuthorName:      next.AuthorName,
		ChangeType:      models.ChangeTypeUpdated,
		ChangeSummary:   req.ChangeSummary,
		ChangeDetails:   req.ChangeDetails,
		Tags:            next.Tags,
		ParentVersionID: &prev.ID,
		Approval:        newApproval(requireApproval),
	}

	if err := s.docRepo.ReplaceHead(prev, next, entry); err != nil {
		if errors.Is(err, apperrors.ErrVersionConflict) {
			return nil, apperrors.ErrVersionConflict
		}
		return nil, fmt.Errorf("failed to publish new version: %w", err)
	}

	s.log.WithDocument(next.ID.String(), next.Version).Info("document updated")
	s.publish(events.DocumentUpdated, next)

	next.Team = prev.Team
	return toDocumentResponse(next), nil
}

// Archive moves a document to archived status and records the transition in
// the ledger. Archived records stay readable and listable by status filter.
func (s *DocumentService) Archive(id uuid.UUID) error {
	doc, err := s.docRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDocumentNotFound
		}
		return fmt.Errorf("failed to get document: %w", err)
	}

	doc.Status = models.DocumentStatusArchived
	if err := s.docRepo.Save(doc); err != nil {
		return fmt.Errorf("failed to archive document: %w", err)
	}

	entry := &models.DocumentVersion{
		DocumentID:    doc.ID,
		Version:       doc.Version,
		Title:         doc.Title,
		Content:       doc.Content,
		AuthorID:      doc.AuthorID,
		AuthorName:    doc.AuthorName,
		ChangeType:    models.ChangeTypeArchived,
		ChangeSummary: "Document archived",
		Tags:          doc.Tags,
		Approval:      newApproval(false),
	}
	if err := s.versionRepo.Create(entry); err != nil {
		return fmt.Errorf("failed to record archive: %w", err)
	}

	s.log.WithDocument(doc.ID.String(), doc.Version).Info("document archived")
	s.publish(events.DocumentArchived, doc)

	return nil
}

// AddRelation links a document to another with a typed, weighted edge. A
// second relation to the same target overwrites the existing edge.
func (s *DocumentService) AddRelation(id uuid.UUID, req *AddRelationRequest) (*DocumentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	relationType := models.RelationType(req.RelationType)
	if !relationType.IsValid() {
		return nil, apperrors.ErrInvalidRelationType
	}

	strength := 0.5
	if req.Strength != nil {
		strength = *req.Strength
		if strength < 0 || strength > 1 {
			return nil, apperrors.ErrInvalidStrength
		}
	}

	doc, err := s.docRepo.GetWithTeam(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	if _, err := s.docRepo.GetByID(req.DocumentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRelatedDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get related document: %w", err)
	}

	doc.AddRelation(req.DocumentID, relationType, strength)
	if err := s.docRepo.Save(doc); err != nil {
		return nil, fmt.Errorf("failed to save relation: %w", err)
	}

	s.publish(events.DocumentRelationAdded, doc)

	return toDocumentResponse(doc), nil
}

// ListVersions retrieves the full record chain of a lineage, newest version
// first. The chain may be entered through any of its records.
func (s *DocumentService) ListVersions(id uuid.UUID, limit, skip int) (*VersionChainResponse, error) {
	doc, err := s.docRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	limit, skip = clampPage(limit, skip, defaultVersionLimit)

	docs, total, err := s.docRepo.ListVersionChain(doc.RootID(), limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list version chain: %w", err)
	}

	versions := make([]DocumentSummary, len(docs))
	for i := range docs {
		versions[i] = toDocumentSummary(&docs[i])
	}

	return &VersionChainResponse{
		Versions:   versions,
		Pagination: NewPagination(total, limit, skip, len(docs)),
	}, nil
}

func (s *DocumentService) publish(event string, doc *models.Document) {
	s.publisher.PublishDocumentEvent(events.Event{
		Event:      event,
		DocumentID: doc.ID.String(),
		TeamID:     doc.TeamID.String(),
		Version:    doc.Version,
		OccurredAt: time.Now(),
	})
}

// newApproval builds the initial approval state of a ledger entry. When no
// approval is required the round starts already approved.
func newApproval(required bool) models.Approval {
	final := models.ApprovalApproved
	if required {
		final = models.ApprovalPending
	}
	return models.Approval{
		IsRequired:  required,
		Approvers:   []models.Approver{},
		FinalStatus: final,
	}
}

func toDocumentResponse(doc *models.Document) *DocumentResponse {
	return &DocumentResponse{
		ID:               doc.ID,
		Title:            doc.Title,
		Slug:             doc.Slug,
		Content:          doc.Content,
		ContentType:      doc.ContentType,
		TeamID:           doc.TeamID,
		Team:             toTeamRef(doc.Team),
		AuthorID:         doc.AuthorID,
		AuthorName:       doc.AuthorName,
		Status:           doc.Status,
		Category:         doc.Category,
		Tags:             doc.Tags,
		Version:          doc.Version,
		ParentDocumentID: doc.ParentDocumentID,
		IsLatestVersion:  doc.IsLatestVersion,
		RelatedDocuments: doc.RelatedDocuments,
		Permissions:      doc.Permissions,
		Metadata:         doc.Metadata,
		Statistics:       doc.Statistics,
		CreatedAt:        doc.CreatedAt,
		UpdatedAt:        doc.UpdatedAt,
	}
}

func toDocumentSummary(doc *models.Document) DocumentSummary {
	return DocumentSummary{
		ID:         doc.ID,
		Title:      doc.Title,
		Slug:       doc.Slug,
		TeamID:     doc.TeamID,
		Team:       toTeamRef(doc.Team),
		AuthorID:   doc.AuthorID,
		AuthorName: doc.AuthorName,
		Status:     doc.Status,
		Category:   doc.Category,
		Tags:       doc.Tags,
		Version:    doc.Version,
		Views:      doc.Statistics.Views,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}

func toTeamRef(team *models.Team) *TeamRef {
	if team == nil {
		return nil
	}
	return &TeamRef{
		ID:    team.ID,
		Name:  team.Name,
		Slug:  team.Slug,
		Color: team.Color,
		Icon:  team.Icon,
	}
}
