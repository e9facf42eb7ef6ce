package repository

import (
	"encoding/json"
	"time"

	"team-docs-backend/internal/database/models"
	apperrors "team-docs-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentFilter describes a filtered/paginated listing query. LatestOnly is
// set by every caller except version-history listings.
type DocumentFilter struct {
	TeamID     *uuid.UUID
	Status     string
	Category   string
	Tags       []string
	AuthorID   string
	LatestOnly bool
	Limit      int
	Offset     int
	SortBy     string
	SortOrder  string
}

// SearchFilter describes a free-text search. The query matches
// case-insensitively as a substring of title, content, or any tag.
type SearchFilter struct {
	Query    string
	TeamID   *uuid.UUID
	Tags     []string
	Category string
	Status   string
	Limit    int
}

// sortColumns whitelists API sort keys against real columns
var sortColumns = map[string]string{
	"updatedAt": "updated_at",
	"createdAt": "created_at",
	"title":     "title",
	"version":   "version",
	"views":     "stat_views",
}

// DocumentRepository handles database operations for documents
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// CreateWithVersion inserts a new document together with its initial ledger
// entry in a single transaction.
func (r *DocumentRepository) CreateWithVersion(doc *models.Document, entry *models.DocumentVersion) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(doc).Error; err != nil {
			return err
		}
		entry.DocumentID = doc.ID
		return tx.Create(entry).Error
	})
}

// ReplaceHead demotes the current head of a lineage and inserts its
// successor plus the matching ledger entry, all in one transaction. The
// demotion is an optimistic compare-and-swap on (is_latest_version,
// version): if another writer got there first, zero rows match and the
// transaction aborts with ErrVersionConflict, leaving the chain intact.
func (r *DocumentRepository) ReplaceHead(prev *models.Document, next *models.Document, entry *models.DocumentVersion) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Document{}).
			Where("id = ? AND is_latest_version = ? AND version = ?", prev.ID, true, prev.Version).
			Update("is_latest_version", false)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrVersionConflict
		}
		if err := tx.Create(next).Error; err != nil {
			return err
		}
		entry.DocumentID = next.ID
		return tx.Create(entry).Error
	})
}

// GetByID retrieves a document by ID
func (r *DocumentRepository) GetByID(id uuid.UUID) (*models.Document, error) {
	var doc models.Document
	err := r.db.First(&doc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetWithTeam retrieves a document with its owning team preloaded
func (r *DocumentRepository) GetWithTeam(id uuid.UUID) (*models.Document, error) {
	var doc models.Document
	err := r.db.Preload("Team").First(&doc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// SlugExists reports whether any document record (any version) in the team
// carries the slug.
func (r *DocumentRepository) SlugExists(teamID uuid.UUID, slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Document{}).
		Where("team_id = ? AND slug = ?", teamID, slug).
		Count(&count).Error
	return count > 0, err
}

// List retrieves documents matching the filter plus the total match count
func (r *DocumentRepository) List(filter DocumentFilter) ([]models.Document, int64, error) {
	var docs []models.Document
	var total int64

	q := r.applyFilter(r.db.Model(&models.Document{}), filter)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "updated_at"
	}
	direction := "DESC"
	if filter.SortOrder == "asc" {
		direction = "ASC"
	}

	err := q.Order(column + " " + direction).
		Limit(filter.Limit).
		Offset(filter.Offset).
		Preload("Team").
		Find(&docs).Error
	if err != nil {
		return nil, 0, err
	}

	return docs, total, nil
}

// Search retrieves latest-version documents whose title, content, or any tag
// contains the query, newest first.
func (r *DocumentRepository) Search(filter SearchFilter) ([]models.Document, error) {
	var docs []models.Document

	pattern := "%" + filter.Query + "%"
	q := r.db.Model(&models.Document{}).
		Where("is_latest_version = ?", true).
		Where(
			r.db.Where("title ILIKE ?", pattern).
				Or("content ILIKE ?", pattern).
				Or("EXISTS (SELECT 1 FROM jsonb_array_elements_text(documents.tags) AS tag WHERE tag ILIKE ?)", pattern),
		)

	if filter.TeamID != nil {
		q = q.Where("team_id = ?", *filter.TeamID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if len(filter.Tags) > 0 {
		q = q.Where(r.tagsCondition(filter.Tags))
	}

	err := q.Order("updated_at DESC").
		Limit(filter.Limit).
		Preload("Team").
		Find(&docs).Error
	return docs, err
}

// ListVersionChain retrieves every record of the lineage rooted at rootID
// (the root itself plus all records pointing at it), version descending.
func (r *DocumentRepository) ListVersionChain(rootID uuid.UUID, limit, offset int) ([]models.Document, int64, error) {
	var docs []models.Document
	var total int64

	q := r.db.Model(&models.Document{}).
		Where("id = ? OR parent_document_id = ?", rootID, rootID)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("version DESC").Limit(limit).Offset(offset).Find(&docs).Error
	if err != nil {
		return nil, 0, err
	}

	return docs, total, nil
}

// Save persists document field changes
func (r *DocumentRepository) Save(doc *models.Document) error {
	return r.db.Save(doc).Error
}

// IncrementViews bumps the view counter and stamps the view time without
// touching updated_at.
func (r *DocumentRepository) IncrementViews(id uuid.UUID) error {
	return r.db.Model(&models.Document{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"stat_views":          gorm.Expr("stat_views + 1"),
			"stat_last_viewed_at": time.Now(),
		}).Error
}

// CountByTeam returns the number of document records owned by a team
func (r *DocumentRepository) CountByTeam(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Document{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

type groupCount struct {
	Key   string
	Count int64
}

// StatusCounts returns a per-status breakdown of a team's documents
func (r *DocumentRepository) StatusCounts(teamID uuid.UUID) (map[string]int64, error) {
	return r.groupCounts(teamID, "status")
}

// CategoryCounts returns a per-category breakdown of a team's documents
func (r *DocumentRepository) CategoryCounts(teamID uuid.UUID) (map[string]int64, error) {
	return r.groupCounts(teamID, "category")
}

func (r *DocumentRepository) groupCounts(teamID uuid.UUID, column string) (map[string]int64, error) {
	var rows []groupCount
	err := r.db.Model(&models.Document{}).
		Select(column+" AS key, COUNT(*) AS count").
		Where("team_id = ?", teamID).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Key] = row.Count
	}
	return counts, nil
}

// RecentByTeam retrieves a team's most recently updated documents
func (r *DocumentRepository) RecentByTeam(teamID uuid.UUID, limit int) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.Where("team_id = ?", teamID).
		Order("updated_at DESC").
		Limit(limit).
		Find(&docs).Error
	return docs, err
}

func (r *DocumentRepository) applyFilter(q *gorm.DB, filter DocumentFilter) *gorm.DB {
	if filter.LatestOnly {
		q = q.Where("is_latest_version = ?", true)
	}
	if filter.TeamID != nil {
		q = q.Where("team_id = ?", *filter.TeamID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.AuthorID != "" {
		q = q.Where("author_id = ?", filter.AuthorID)
	}
	if len(filter.Tags) > 0 {
		q = q.Where(r.tagsCondition(filter.Tags))
	}
	return q
}

// tagsCondition matches documents carrying any of the given tags. Tags live
// in a jsonb array, so membership is a containment check per tag.
func (r *DocumentRepository) tagsCondition(tags []string) *gorm.DB {
	cond := r.db.Where("tags @> ?", tagJSON(tags[0]))
	for _, t := range tags[1:] {
		cond = cond.Or("tags @> ?", tagJSON(t))
	}
	return cond
}

func tagJSON(tag string) string {
	b, _ := json.Marshal([]string{tag})
	return string(b)
}
