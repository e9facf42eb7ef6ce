package handlers

import (
	"net/http"

	"team-docs-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// VersionHandler handles HTTP requests for the version ledger and its
// approval workflow
type VersionHandler struct {
	versionService service.VersionServiceInterface
}

// NewVersionHandler creates a new version handler
func NewVersionHandler(versionService service.VersionServiceInterface) *VersionHandler {
	return &VersionHandler{
		versionService: versionService,
	}
}

// GetHistory handles GET /documents/:id/history
// @Summary Get a document's change history
// @Description Get the append-only ledger entries recorded for a document, newest first
// @Tags versions
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param limit query int false "Page size" default(10)
// @Param skip query int false "Items to skip" default(0)
// @Success 200 {object} service.VersionHistoryResponse "Ledger entries"
// @Failure 400 {object} map[string]interface{} "Invalid document ID"
// @Failure 404 {object} map[string]interface{} "Document not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /documents/{id}/history [get]
func (h *VersionHandler) GetHistory(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "document ID")
	if !ok {
		return
	}

	result, err := h.versionService.ListByDocument(id, intQuery(c, "limit", 0), intQuery(c, "skip", 0))
	if err != nil {
		respondError(c, err, "failed to get history")
		return
	}

	c.JSON(http.StatusOK, result)
}

// AddApprover handles POST /versions/:id/approvers
// @Summary Add an approver
// @Description Register a pending approver on a ledger entry; each user at most once
// @Tags versions
// @Accept json
// @Produce json
// @Param id path string true "Version ID (UUID)"
// @Param approver body service.AddApproverRequest true "Approver data"
// @Success 200 {object} service.VersionResponse "Version with updated approval state"
// @Failure 400 {object} map[string]interface{} "Invalid request or duplicate approver"
// @Failure 404 {object} map[string]interface{} "Version not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /versions/{id}/approvers [post]
func (h *VersionHandler) AddApprover(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "version ID")
	if !ok {
		return
	}

	var req service.AddApproverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	version, err := h.versionService.AddApprover(id, &req)
	if err != nil {
		respondError(c, err, "failed to add approver")
		return
	}

	c.JSON(http.StatusOK, version)
}

// Approve handles POST /versions/:id/approve
// @Summary Approve a version
// @Description Record an approver's approval; the round passes once every approver has approved
// @Tags versions
// @Accept json
// @Produce json
// @Param id path string true "Version ID (UUID)"
// @Param decision body service.ApprovalDecisionRequest true "Approval decision"
// @Success 200 {object} service.VersionResponse "Version with updated approval state"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Version or approver not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /versions/{id}/approve [post]
func (h *VersionHandler) Approve(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "version ID")
	if !ok {
		return
	}

	var req service.ApprovalDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	version, err := h.versionService.Approve(id, &req)
	if err != nil {
		respondError(c, err, "failed to approve version")
		return
	}

	c.JSON(http.StatusOK, version)
}

// Reject handles POST /versions/:id/reject
// @Summary Reject a version
// @Description Record an approver's rejection; rejection settles the round permanently
// @Tags versions
// @Accept json
// @Produce json
// @Param id path string true "Version ID (UUID)"
// @Param decision body service.ApprovalDecisionRequest true "Rejection decision"
// @Success 200 {object} service.VersionResponse "Version with updated approval state"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Version or approver not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /versions/{id}/reject [post]
func (h *VersionHandler) Reject(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "version ID")
	if !ok {
		return
	}

	var req service.ApprovalDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	version, err := h.versionService.Reject(id, &req)
	if err != nil {
		respondError(c, err, "failed to reject version")
		return
	}

	c.JSON(http.StatusOK, version)
}
