package service

import (
	"errors"
	"fmt"
	"time"

	"team-docs-backend/internal/config"
	"team-docs-backend/internal/database/models"
	apperrors "team-docs-backend/internal/errors"
	"team-docs-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams
type TeamService struct {
	repo       repository.TeamRepositoryInterface
	memberRepo repository.TeamMemberRepositoryInterface
	docRepo    repository.DocumentRepositoryInterface
	cfg        *config.Config
	validator  *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, docRepo repository.DocumentRepositoryInterface, cfg *config.Config, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:       repo,
		memberRepo: memberRepo,
		docRepo:    docRepo,
		cfg:        cfg,
		validator:  validator,
	}
}

// TeamSettingsRequest mirrors the settings sub-object on create/update
type TeamSettingsRequest struct {
	AllowPublicView bool `json:"allow_public_view"`
	RequireApproval bool `json:"require_approval"`
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name        string               `json:"name" validate:"required,min=1,max=100"`
	Slug        string               `json:"slug" validate:"required,min=1,max=100"`
	Description string               `json:"description" validate:"max=500"`
	Color       string               `json:"color" validate:"max=20"`
	Icon        string               `json:"icon" validate:"max=20"`
	Settings    *TeamSettingsRequest `json:"settings,omitempty"`
}

// UpdateTeamRequest represents the request to update a team; nil fields keep
// their current values.
type UpdateTeamRequest struct {
	Name        *string              `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Slug        *string              `json:"slug,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string              `json:"description,omitempty" validate:"omitempty,max=500"`
	Color       *string              `json:"color,omitempty" validate:"omitempty,max=20"`
	Icon        *string              `json:"icon,omitempty" validate:"omitempty,max=20"`
	Settings    *TeamSettingsRequest `json:"settings,omitempty"`
}

// MemberResponse is one entry of a team's member list
type MemberResponse struct {
	UserID   string            `json:"user_id"`
	UserName string            `json:"user_name"`
	Role     models.MemberRole `json:"role"`
	JoinedAt time.Time         `json:"joined_at"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Slug        string              `json:"slug"`
	Description string              `json:"description"`
	Color       string              `json:"color"`
	Icon        string              `json:"icon"`
	IsActive    bool                `json:"is_active"`
	Settings    models.TeamSettings `json:"settings"`
	Members     []MemberResponse    `json:"members,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// TeamSummary is the listing projection with member/document counts
type TeamSummary struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Slug          string    `json:"slug"`
	Color         string    `json:"color"`
	Icon          string    `json:"icon"`
	MemberCount   int64     `json:"member_count"`
	DocumentCount int64     `json:"document_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// TeamStatistics aggregates a team's document corpus for the detail view
type TeamStatistics struct {
	DocumentCount  int64            `json:"document_count"`
	StatusCounts   map[string]int64 `json:"status_counts"`
	CategoryCounts map[string]int64 `json:"category_counts"`
	MemberCount    int64            `json:"member_count"`
}

// TeamDetailResponse is the comprehensive view of one team
type TeamDetailResponse struct {
	TeamResponse
	Statistics      TeamStatistics    `json:"statistics"`
	RecentDocuments []DocumentSummary `json:"recent_documents"`
}

// ListTeams returns every active team with member and document counts,
// newest first.
func (s *TeamService) ListTeams() ([]TeamSummary, error) {
	teams, err := s.repo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	summaries := make([]TeamSummary, len(teams))
	for i, team := range teams {
		memberCount, err := s.memberRepo.CountByTeam(team.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count members: %w", err)
		}
		documentCount, err := s.docRepo.CountByTeam(team.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count documents: %w", err)
		}
		summaries[i] = TeamSummary{
			ID:            team.ID,
			Name:          team.Name,
			Description:   team.Description,
			Slug:          team.Slug,
			Color:         team.Color,
			Icon:          team.Icon,
			MemberCount:   memberCount,
			DocumentCount: documentCount,
			CreatedAt:     team.CreatedAt,
		}
	}

	return summaries, nil
}

// GetByID retrieves a team by ID with its member list
func (s *TeamService) GetByID(id uuid.UUID) (*TeamResponse, error) {
	team, err := s.repo.GetWithMembers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return s.toResponse(team), nil
}

// GetDetail retrieves a team together with document status/category
// breakdowns and its most recently updated documents.
func (s *TeamService) GetDetail(id uuid.UUID) (*TeamDetailResponse, error) {
	team, err := s.repo.GetWithMembers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	documentCount, err := s.docRepo.CountByTeam(id)
	if err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}
	statusCounts, err := s.docRepo.StatusCounts(id)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate status counts: %w", err)
	}
	categoryCounts, err := s.docRepo.CategoryCounts(id)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate category counts: %w", err)
	}
	recent, err := s.docRepo.RecentByTeam(id, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent documents: %w", err)
	}

	recentSummaries := make([]DocumentSummary, len(recent))
	for i := range recent {
		recentSummaries[i] = toDocumentSummary(&recent[i])
	}

	return &TeamDetailResponse{
		TeamResponse: *s.toResponse(team),
		Statistics: TeamStatistics{
			DocumentCount:  documentCount,
			StatusCounts:   statusCounts,
			CategoryCounts: categoryCounts,
			MemberCount:    int64(len(team.Members)),
		},
		RecentDocuments: recentSummaries,
	}, nil
}

// Create creates a new team. Name and slug must both be unique.
func (s *TeamService) Create(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if existing, err := s.repo.GetBySlug(req.Slug); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing team by slug: %w", err)
	} else if existing != nil {
		return nil, apperrors.ErrTeamSlugExists
	}

	if existing, err := s.repo.GetByName(req.Name); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing team by name: %w", err)
	} else if existing != nil {
		return nil, apperrors.ErrTeamNameExists
	}

	team := &models.Team{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Color:       req.Color,
		Icon:        req.Icon,
		IsActive:    true,
		Settings: models.TeamSettings{
			AllowPublicView: false,
			RequireApproval: true,
		},
	}
	if team.Color == "" {
		team.Color = "#6366f1"
	}
	if team.Icon == "" {
		team.Icon = "📋"
	}
	if req.Settings != nil {
		team.Settings = models.TeamSettings{
			AllowPublicView: req.Settings.AllowPublicView,
			RequireApproval: req.Settings.RequireApproval,
		}
	}

	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return s.toResponse(team), nil
}

// Update applies partial changes to a team; changed slugs and names are
// re-checked for uniqueness.
func (s *TeamService) Update(id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if req.Slug != nil && *req.Slug != team.Slug {
		if existing, err := s.repo.GetBySlug(*req.Slug); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing team by slug: %w", err)
		} else if existing != nil && existing.ID != id {
			return nil, apperrors.ErrTeamSlugExists
		}
		team.Slug = *req.Slug
	}
	if req.Name != nil && *req.Name != team.Name {
		if existing, err := s.repo.GetByName(*req.Name); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing team by name: %w", err)
		} else if existing != nil && existing.ID != id {
			return nil, apperrors.ErrTeamNameExists
		}
		team.Name = *req.Name
	}
	if req.Description != nil {
		team.Description = *req.Description
	}
	if req.Color != nil {
		team.Color = *req.Color
	}
	if req.Icon != nil {
		team.Icon = *req.Icon
	}
	if req.Settings != nil {
		team.Settings = models.TeamSettings{
			AllowPublicView: req.Settings.AllowPublicView,
			RequireApproval: req.Settings.RequireApproval,
		}
	}

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return s.toResponse(team), nil
}

// Deactivate soft-deletes a team. Gated by the ALLOW_DELETE_TEAM deployment
// flag; data is never erased.
func (s *TeamService) Deactivate(id uuid.UUID) error {
	if !s.cfg.AllowDeleteTeam {
		return apperrors.ErrTeamDeleteDisabled
	}

	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.repo.SetActive(id, false); err != nil {
		return fmt.Errorf("failed to deactivate team: %w", err)
	}

	return nil
}

func (s *TeamService) toResponse(team *models.Team) *TeamResponse {
	return toTeamResponse(team)
}

func toTeamResponse(team *models.Team) *TeamResponse {
	members := make([]MemberResponse, len(team.Members))
	for i, m := range team.Members {
		members[i] = MemberResponse{
			UserID:   m.UserID,
			UserName: m.UserName,
			Role:     m.Role,
			JoinedAt: m.JoinedAt,
		}
	}

	return &TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Slug:        team.Slug,
		Description: team.Description,
		Color:       team.Color,
		Icon:        team.Icon,
		IsActive:    team.IsActive,
		Settings:    team.Settings,
		Members:     members,
		CreatedAt:   team.CreatedAt,
		UpdatedAt:   team.UpdatedAt,
	}
}
