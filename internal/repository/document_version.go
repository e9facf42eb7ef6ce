package repository

import (
	"team-docs-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentVersionRepository handles database operations for the append-only
// version ledger. Entries are inserted and listed; the only permitted
// mutation is the embedded approval sub-object.
type DocumentVersionRepository struct {
	db *gorm.DB
}

// NewDocumentVersionRepository creates a new document version repository
func NewDocumentVersionRepository(db *gorm.DB) *DocumentVersionRepository {
	return &DocumentVersionRepository{db: db}
}

// Create appends a ledger entry
func (r *DocumentVersionRepository) Create(entry *models.DocumentVersion) error {
	return r.db.Create(entry).Error
}

// GetByID retrieves a ledger entry by ID
func (r *DocumentVersionRepository) GetByID(id uuid.UUID) (*models.DocumentVersion, error) {
	var entry models.DocumentVersion
	err := r.db.First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListByDocument retrieves ledger entries for a document, newest version
// first, with the total entry count.
func (r *DocumentVersionRepository) ListByDocument(documentID uuid.UUID, limit, offset int) ([]models.DocumentVersion, int64, error) {
	var entries []models.DocumentVersion
	var total int64

	q := r.db.Model(&models.DocumentVersion{}).Where("document_id = ?", documentID)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("version DESC").Limit(limit).Offset(offset).Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// UpdateApproval overwrites the embedded approval sub-object of one entry
func (r *DocumentVersionRepository) UpdateApproval(id uuid.UUID, approval models.Approval) error {
	res := r.db.Model(&models.DocumentVersion{}).Where("id = ?", id).Update("approval", approval)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
