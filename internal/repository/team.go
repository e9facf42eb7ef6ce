package repository

import (
	"team-docs-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetBySlug retrieves a team by its slug
func (r *TeamRepository) GetBySlug(slug string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by its unique name
func (r *TeamRepository) GetByName(name string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetActive retrieves all active teams, newest first
func (r *TeamRepository) GetActive() ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Where("is_active = ?", true).Order("created_at DESC").Find(&teams).Error
	return teams, err
}

// GetWithMembers retrieves a team with its member list
func (r *TeamRepository) GetWithMembers(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Members", func(db *gorm.DB) *gorm.DB {
		return db.Order("joined_at ASC")
	}).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// Update persists team field changes
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// SetActive flips the soft-delete flag; rows are never hard-deleted
func (r *TeamRepository) SetActive(id uuid.UUID, active bool) error {
	return r.db.Model(&models.Team{}).Where("id = ?", id).Update("is_active", active).Error
}
