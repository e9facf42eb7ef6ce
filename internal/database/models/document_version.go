package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Approver is one reviewer's state within an approval round
type Approver struct {
	UserID     string         `json:"user_id"`
	UserName   string         `json:"user_name"`
	Status     ApprovalStatus `json:"status"`
	Comment    string         `json:"comment,omitempty"`
	ApprovedAt *time.Time     `json:"approved_at,omitempty"`
}

// Approval is the embedded workflow sub-state of a ledger entry. It is the
// only part of a DocumentVersion that is ever mutated after insert.
type Approval struct {
	IsRequired  bool           `json:"is_required"`
	Approvers   []Approver     `json:"approvers"`
	FinalStatus ApprovalStatus `json:"final_status"`
}

// Value implements driver.Valuer
func (a Approval) Value() (driver.Value, error) {
	return json.Marshal(a)
}

// Scan implements sql.Scanner
func (a *Approval) Scan(value interface{}) error {
	return jsonbScan(value, a)
}

// AddApprover appends a pending approver once; a duplicate userID is a no-op.
// Returns true if the approver was added.
func (a *Approval) AddApprover(userID, userName string) bool {
	for i := range a.Approvers {
		if a.Approvers[i].UserID == userID {
			return false
		}
	}
	a.Approvers = append(a.Approvers, Approver{
		UserID:   userID,
		UserName: userName,
		Status:   ApprovalPending,
	})
	return true
}

// Approve marks the given approver as approved. FinalStatus becomes approved
// only once every approver has approved. A round that is already rejected
// stays rejected. Returns false if userID is not an approver.
func (a *Approval) Approve(userID, comment string) bool {
	approver := a.findApprover(userID)
	if approver == nil {
		return false
	}
	now := time.Now()
	approver.Status = ApprovalApproved
	approver.Comment = comment
	approver.ApprovedAt = &now

	if a.FinalStatus == ApprovalRejected {
		return true
	}
	for i := range a.Approvers {
		if a.Approvers[i].Status != ApprovalApproved {
			return true
		}
	}
	a.FinalStatus = ApprovalApproved
	return true
}

// Reject marks the given approver as rejected and the whole round with it.
// Rejection is terminal for the round. Returns false if userID is not an
// approver.
func (a *Approval) Reject(userID, comment string) bool {
	approver := a.findApprover(userID)
	if approver == nil {
		return false
	}
	now := time.Now()
	approver.Status = ApprovalRejected
	approver.Comment = comment
	approver.ApprovedAt = &now
	a.FinalStatus = ApprovalRejected
	return true
}

func (a *Approval) findApprover(userID string) *Approver {
	for i := range a.Approvers {
		if a.Approvers[i].UserID == userID {
			return &a.Approvers[i]
		}
	}
	return nil
}

// DocumentVersion is one entry of the append-only version ledger. One entry
// is written alongside every document create/update/archive; entries are
// never deleted and form the permanent audit trail of a lineage. Author
// identity is snapshotted as plain strings on purpose: the trail reflects
// the name at the time of authorship.
type DocumentVersion struct {
	BaseModel
	DocumentID      uuid.UUID  `json:"document_id" gorm:"type:uuid;not null;index:idx_document_versions_doc_version" validate:"required"`
	Version         int        `json:"version" gorm:"not null;index:idx_document_versions_doc_version,sort:desc" validate:"required,min=1"`
	Title           string     `json:"title" gorm:"size:300;not null" validate:"required"`
	Content         string     `json:"content" gorm:"type:text;not null" validate:"required"`
	AuthorID        string     `json:"author_id" gorm:"size:100;not null;index" validate:"required"`
	AuthorName      string     `json:"author_name" gorm:"size:200;not null" validate:"required"`
	ChangeType      ChangeType `json:"change_type" gorm:"type:varchar(20);not null;index" validate:"required"`
	ChangeSummary   string     `json:"change_summary" gorm:"size:500;not null" validate:"required"`
	ChangeDetails   string     `json:"change_details,omitempty" gorm:"type:text"`
	Tags            StringList `json:"tags" gorm:"type:jsonb"`
	ParentVersionID *uuid.UUID `json:"parent_version_id,omitempty" gorm:"type:uuid"`
	Approval        Approval   `json:"approval" gorm:"type:jsonb"`
}

// TableName returns the table name for DocumentVersion
func (DocumentVersion) TableName() string {
	return "document_versions"
}

// IsApproved reports whether the approval round has fully passed
func (v *DocumentVersion) IsApproved() bool {
	return v.Approval.FinalStatus == ApprovalApproved
}

// ApprovalProgress returns the fraction of approvers that have approved
func (v *DocumentVersion) ApprovalProgress() float64 {
	if len(v.Approval.Approvers) == 0 {
		return 0
	}
	approved := 0
	for _, a := range v.Approval.Approvers {
		if a.Status == ApprovalApproved {
			approved++
		}
	}
	return float64(approved) / float64(len(v.Approval.Approvers))
}
