package models

// DocumentStatus represents the lifecycle state of a document
type DocumentStatus string

const (
	DocumentStatusDraft    DocumentStatus = "draft"
	DocumentStatusReview   DocumentStatus = "review"
	DocumentStatusApproved DocumentStatus = "approved"
	DocumentStatusArchived DocumentStatus = "archived"
)

// ContentType represents the format of a document body
type ContentType string

const (
	ContentTypeMarkdown ContentType = "markdown"
	ContentTypeHTML     ContentType = "html"
	ContentTypeText     ContentType = "text"
	ContentTypePDF      ContentType = "pdf"
	ContentTypeImage    ContentType = "image"
)

// DocumentCategory classifies a document
type DocumentCategory string

const (
	CategoryMeetingMinutes DocumentCategory = "meeting-minutes"
	CategoryResearch       DocumentCategory = "research"
	CategoryProposal       DocumentCategory = "proposal"
	CategorySpecification  DocumentCategory = "specification"
	CategoryReference      DocumentCategory = "reference"
	CategoryReport         DocumentCategory = "report"
	CategoryOther          DocumentCategory = "other"
)

// RelationType is the kind of a directed edge between two documents
type RelationType string

const (
	RelationReference  RelationType = "reference"
	RelationDependency RelationType = "dependency"
	RelationSimilar    RelationType = "similar"
	RelationFollows    RelationType = "follows"
	RelationSupersedes RelationType = "supersedes"
)

// MemberRole represents a member's role within a team
type MemberRole string

const (
	MemberRoleLeader MemberRole = "leader"
	MemberRoleMember MemberRole = "member"
	MemberRoleViewer MemberRole = "viewer"
)

// ChangeType records what kind of transition a ledger entry captures
type ChangeType string

const (
	ChangeTypeCreated  ChangeType = "created"
	ChangeTypeUpdated  ChangeType = "updated"
	ChangeTypeApproved ChangeType = "approved"
	ChangeTypeArchived ChangeType = "archived"
	ChangeTypeRestored ChangeType = "restored"
)

// ApprovalStatus is the state of a single approver or of a whole round
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// IsValid checks if the DocumentStatus is valid
func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentStatusDraft, DocumentStatusReview, DocumentStatusApproved, DocumentStatusArchived:
		return true
	}
	return false
}

// IsValid checks if the ContentType is valid
func (c ContentType) IsValid() bool {
	switch c {
	case ContentTypeMarkdown, ContentTypeHTML, ContentTypeText, ContentTypePDF, ContentTypeImage:
		return true
	}
	return false
}

// IsValid checks if the DocumentCategory is valid
func (c DocumentCategory) IsValid() bool {
	switch c {
	case CategoryMeetingMinutes, CategoryResearch, CategoryProposal,
		CategorySpecification, CategoryReference, CategoryReport, CategoryOther:
		return true
	}
	return false
}

// IsValid checks if the RelationType is valid
func (r RelationType) IsValid() bool {
	switch r {
	case RelationReference, RelationDependency, RelationSimilar, RelationFollows, RelationSupersedes:
		return true
	}
	return false
}

// IsValid checks if the MemberRole is valid
func (r MemberRole) IsValid() bool {
	switch r {
	case MemberRoleLeader, MemberRoleMember, MemberRoleViewer:
		return true
	}
	return false
}

// IsValid checks if the ChangeType is valid
func (c ChangeType) IsValid() bool {
	switch c {
	case ChangeTypeCreated, ChangeTypeUpdated, ChangeTypeApproved, ChangeTypeArchived, ChangeTypeRestored:
		return true
	}
	return false
}

// IsValid checks if the ApprovalStatus is valid
func (a ApprovalStatus) IsValid() bool {
	switch a {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}
