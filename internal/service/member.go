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

// MemberService handles business logic for team membership. No role-based
// authorization happens here; access control is an external concern.
type MemberService struct {
	teamRepo   repository.TeamRepositoryInterface
	memberRepo repository.TeamMemberRepositoryInterface
	validator  *validator.Validate
}

// NewMemberService creates a new member service
func NewMemberService(teamRepo repository.TeamRepositoryInterface, memberRepo repository.TeamMemberRepositoryInterface, validator *validator.Validate) *MemberService {
	return &MemberService{
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		validator:  validator,
	}
}

// AddMemberRequest represents the request to add a member to a team
type AddMemberRequest struct {
	UserID   string `json:"user_id" validate:"required,max=100"`
	UserName string `json:"user_name" validate:"required,max=200"`
	Role     string `json:"role,omitempty"`
}

// UpdateMemberRoleRequest represents the request to change a member's role
type UpdateMemberRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// AddMember appends a member to the team's list. A userID may appear at most
// once per team.
func (s *MemberService) AddMember(teamID uuid.UUID, req *AddMemberRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role := models.MemberRole(req.Role)
	if req.Role == "" {
		role = models.MemberRoleMember
	} else if !role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	existing, err := s.memberRepo.GetByTeamAndUser(teamID, req.UserID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing member: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrMemberExists
	}

	member := &models.TeamMember{
		TeamID:   teamID,
		UserID:   req.UserID,
		UserName: req.UserName,
		Role:     role,
		JoinedAt: time.Now(),
	}

	if err := s.memberRepo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return s.teamWithMembers(teamID)
}

// RemoveMember removes a member from the team's list
func (s *MemberService) RemoveMember(teamID uuid.UUID, userID string) (*TeamResponse, error) {
	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.memberRepo.Delete(teamID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to remove member: %w", err)
	}

	return s.teamWithMembers(teamID)
}

// UpdateMemberRole changes a member's role within the team
func (s *MemberService) UpdateMemberRole(teamID uuid.UUID, userID string, role string) (*TeamResponse, error) {
	memberRole := models.MemberRole(role)
	if !memberRole.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}

	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.memberRepo.UpdateRole(teamID, userID, memberRole); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to update member role: %w", err)
	}

	return s.teamWithMembers(teamID)
}

func (s *MemberService) teamWithMembers(teamID uuid.UUID) (*TeamResponse, error) {
	team, err := s.teamRepo.GetWithMembers(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload team: %w", err)
	}
	return toTeamResponse(team), nil
}
