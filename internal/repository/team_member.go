package repository

import (
	"team-docs-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMemberRepository handles database operations for team membership
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// Create appends a member to a team
func (r *TeamMemberRepository) Create(member *models.TeamMember) error {
	return r.db.Create(member).Error
}

// GetByTeamAndUser retrieves one membership entry
func (r *TeamMemberRepository) GetByTeamAndUser(teamID uuid.UUID, userID string) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "team_id = ? AND user_id = ?", teamID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ListByTeam retrieves a team's members in join order
func (r *TeamMemberRepository) ListByTeam(teamID uuid.UUID) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Where("team_id = ?", teamID).Order("joined_at ASC").Find(&members).Error
	return members, err
}

// CountByTeam returns the number of members in a team
func (r *TeamMemberRepository) CountByTeam(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

// Delete removes a membership entry. Returns gorm.ErrRecordNotFound when the
// user is not a member.
func (r *TeamMemberRepository) Delete(teamID uuid.UUID, userID string) error {
	res := r.db.Where("team_id = ? AND user_id = ?", teamID, userID).Delete(&models.TeamMember{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateRole changes a member's role. Returns gorm.ErrRecordNotFound when
// the user is not a member.
func (r *TeamMemberRepository) UpdateRole(teamID uuid.UUID, userID string, role models.MemberRole) error {
	res := r.db.Model(&models.TeamMember{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
