package handlers

import (
	"errors"
	"net/http"

	apperrors "team-docs-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// badRequestErrors are business rule violations surfaced as 400 responses
var badRequestErrors = []error{
	apperrors.ErrNotLatestVersion,
	apperrors.ErrVersionConflict,
	apperrors.ErrTeamDeleteDisabled,
	apperrors.ErrInvalidRole,
	apperrors.ErrInvalidRelationType,
	apperrors.ErrInvalidStrength,
	apperrors.ErrSearchQueryTooShort,
	apperrors.ErrInvalidPaginationParams,
	apperrors.ErrApprovalClosed,
}

// respondError maps service errors to HTTP responses. Missing entities are
// 404, every rule violation (including uniqueness conflicts) is 400, and
// anything unrecognized is a 500 carrying the given message.
func respondError(c *gin.Context, err error, message string) {
	if apperrors.IsNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if apperrors.IsAlreadyExists(err) || apperrors.IsValidation(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusInternalServerError, gin.H{"message": message, "error": err.Error()})
}

// parseUUIDParam reads a path parameter as a UUID, responding 400 on failure.
// The boolean reports whether parsing succeeded.
func parseUUIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + label})
		return uuid.Nil, false
	}
	return id, true
}
