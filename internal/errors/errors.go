package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in this team"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Entity Not Found Errors
var (
	ErrTeamNotFound            = &NotFoundError{Entity: "team"}
	ErrDocumentNotFound        = &NotFoundError{Entity: "document"}
	ErrRelatedDocumentNotFound = &NotFoundError{Entity: "related document"}
	ErrMemberNotFound          = &NotFoundError{Entity: "member"}
	ErrVersionNotFound         = &NotFoundError{Entity: "document version"}
	ErrApproverNotFound        = &NotFoundError{Entity: "approver"}
)

// Already Exists Errors
var (
	ErrTeamSlugExists     = &AlreadyExistsError{Entity: "team", Context: "with this slug"}
	ErrTeamNameExists     = &AlreadyExistsError{Entity: "team", Context: "with this name"}
	ErrDocumentSlugExists = &AlreadyExistsError{Entity: "document", Context: "with this slug in the team"}
	ErrMemberExists       = &AlreadyExistsError{Entity: "member", Context: "in this team"}
	ErrApproverExists     = &AlreadyExistsError{Entity: "approver", Context: "on this version"}
)

// Business Logic Errors
var (
	ErrNotLatestVersion        = errors.New("cannot update non-latest version of document")
	ErrVersionConflict         = errors.New("document was modified concurrently")
	ErrTeamDeleteDisabled      = errors.New("team deletion is disabled; set ALLOW_DELETE_TEAM=true to enable this feature")
	ErrInvalidRole             = errors.New("valid role is required (leader, member, viewer)")
	ErrInvalidRelationType     = errors.New("valid relation type is required")
	ErrInvalidStrength         = errors.New("relation strength must be between 0 and 1")
	ErrSearchQueryTooShort     = errors.New("search query must be at least 2 characters")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrApprovalClosed          = errors.New("approval round is already rejected")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
