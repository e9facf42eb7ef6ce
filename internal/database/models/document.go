package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DocumentRelation is a directed, typed, weighted edge to another document.
// Edges are embedded in the source document and are not mirrored on the
// target; reverse lookups scan related_documents instead.
type DocumentRelation struct {
	DocumentID   uuid.UUID    `json:"document_id"`
	RelationType RelationType `json:"relation_type"`
	Strength     float64      `json:"strength"`
}

// RelationList is the document's outgoing edge list, stored as jsonb
type RelationList []DocumentRelation

// Value implements driver.Valuer
func (l RelationList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]DocumentRelation{})
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner
func (l *RelationList) Scan(value interface{}) error {
	return jsonbScan(value, l)
}

// Permissions is declared on every document but not evaluated anywhere;
// access enforcement is an external concern. Stored as jsonb.
type Permissions struct {
	Public       bool        `json:"public"`
	AllowedTeams []uuid.UUID `json:"allowed_teams"`
	AllowedUsers []string    `json:"allowed_users"`
}

// Value implements driver.Valuer
func (p Permissions) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner
func (p *Permissions) Scan(value interface{}) error {
	return jsonbScan(value, p)
}

// DocumentStatistics tracks view and edit counters per document record.
// Views reset to zero on every new version; edit count carries forward.
type DocumentStatistics struct {
	Views        int        `json:"views" gorm:"default:0"`
	LastViewedAt *time.Time `json:"last_viewed_at,omitempty"`
	EditCount    int        `json:"edit_count" gorm:"default:0"`
}

// Document is one record of a version lineage. Historical versions keep
// their full row with is_latest_version=false; exactly one record per
// lineage is the head. (team_id, slug) uniqueness is enforced at create
// time only, since every version of a lineage shares the pair.
type Document struct {
	BaseModel
	Title       string           `json:"title" gorm:"size:300;not null" validate:"required,min=1,max=300"`
	Slug        string           `json:"slug" gorm:"size:300;not null;index"`
	Content     string           `json:"content" gorm:"type:text;not null" validate:"required"`
	ContentType ContentType      `json:"content_type" gorm:"type:varchar(20);not null;default:'markdown'"`
	TeamID      uuid.UUID        `json:"team_id" gorm:"type:uuid;not null;index:idx_documents_team_status" validate:"required"`
	AuthorID    string           `json:"author_id" gorm:"size:100;not null;index" validate:"required,max=100"`
	AuthorName  string           `json:"author_name" gorm:"size:200;not null" validate:"required,max=200"`
	Status      DocumentStatus   `json:"status" gorm:"type:varchar(20);not null;default:'draft';index:idx_documents_team_status"`
	Category    DocumentCategory `json:"category" gorm:"type:varchar(30);not null;default:'other';index"`
	Tags        StringList       `json:"tags" gorm:"type:jsonb"`

	// Versioning fields
	Version          int        `json:"version" gorm:"not null;default:1"`
	ParentDocumentID *uuid.UUID `json:"parent_document_id,omitempty" gorm:"type:uuid;index"`
	IsLatestVersion  bool       `json:"is_latest_version" gorm:"not null;default:true;index"`

	RelatedDocuments RelationList       `json:"related_documents" gorm:"type:jsonb"`
	Permissions      Permissions        `json:"permissions" gorm:"type:jsonb"`
	Metadata         json.RawMessage    `json:"metadata,omitempty" gorm:"type:jsonb"`
	Statistics       DocumentStatistics `json:"statistics" gorm:"embedded;embeddedPrefix:stat_"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Document
func (Document) TableName() string {
	return "documents"
}

// AddRelation inserts or overwrites the outgoing edge to target. At most one
// edge per target exists; a duplicate overwrites type and strength in place.
func (d *Document) AddRelation(target uuid.UUID, relationType RelationType, strength float64) {
	for i := range d.RelatedDocuments {
		if d.RelatedDocuments[i].DocumentID == target {
			d.RelatedDocuments[i].RelationType = relationType
			d.RelatedDocuments[i].Strength = strength
			return
		}
	}
	d.RelatedDocuments = append(d.RelatedDocuments, DocumentRelation{
		DocumentID:   target,
		RelationType: relationType,
		Strength:     strength,
	})
}

// RootID resolves the lineage root: the parent pointer if set, else the
// document itself.
func (d *Document) RootID() uuid.UUID {
	if d.ParentDocumentID != nil {
		return *d.ParentDocumentID
	}
	return d.ID
}
