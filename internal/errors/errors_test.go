package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{Entity: "team"}
	assert.Equal(t, "team not found", err.Error())
	assert.True(t, errors.Is(err, ErrTeamNotFound))
	assert.False(t, errors.Is(err, ErrDocumentNotFound))
}

func TestAlreadyExistsError(t *testing.T) {
	assert.Equal(t, "team already exists with this slug", ErrTeamSlugExists.Error())
	assert.Equal(t, "member already exists in this team", ErrMemberExists.Error())

	plain := &AlreadyExistsError{Entity: "thing"}
	assert.Equal(t, "thing already exists", plain.Error())
}

func TestValidationError(t *testing.T) {
	withField := &ValidationError{Field: "slug", Message: "must not be empty"}
	assert.Equal(t, "validation error: slug - must not be empty", withField.Error())

	noField := &ValidationError{Message: "bad input"}
	assert.Equal(t, "validation error: bad input", noField.Error())
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrDocumentNotFound))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrTeamNotFound)))
	assert.False(t, IsNotFound(ErrTeamSlugExists))
	assert.False(t, IsNotFound(errors.New("random")))
}

func TestIsAlreadyExists(t *testing.T) {
	assert.True(t, IsAlreadyExists(ErrDocumentSlugExists))
	assert.True(t, IsAlreadyExists(fmt.Errorf("wrapped: %w", ErrApproverExists)))
	assert.False(t, IsAlreadyExists(ErrVersionNotFound))
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(NewValidationError("strength", "out of range")))
	assert.False(t, IsValidation(ErrInvalidStrength))
}

func TestConstructors(t *testing.T) {
	nf := NewNotFoundError("widget")
	assert.True(t, IsNotFound(nf))
	assert.Equal(t, "widget not found", nf.Error())

	ae := NewAlreadyExistsError("widget", "in this box")
	assert.True(t, IsAlreadyExists(ae))
	assert.Equal(t, "widget already exists in this box", ae.Error())
}
