package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"team-docs-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DocumentHandler handles HTTP requests for document operations
type DocumentHandler struct {
	documentService service.DocumentServiceInterface
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService service.DocumentServiceInterface) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
	}
}

// ListDocuments handles GET /documents
// @Summary List documents
// @Description Get latest document versions with filtering, sorting, and pagination
// @Tags documents
// @Accept json
// @Produce json
// @Param team_id query string false "Team ID (UUID) to filter by"
// @Param status query string false "Status filter (draft, review, approved, archived)"
// @Param category query string false "Category filter"
// @Param tags query string false "Comma-separated tags; documents matching any tag are returned"
// @Param author_id query string false "Author ID filter"
// @Param limit query int false "Page size" default(20)
// @Param skip query int false "Items to skip" default(0)
// @Param sortBy query string false "Sort key (updatedAt, createdAt, title, version, views)" default(updatedAt)
// @Param sortOrder query string false "Sort direction (asc, desc)" default(desc)
// @Success 200 {object} service.DocumentListResponse "Successfully retrieved documents"
// @Failure 400 {object} map[string]interface{} "Invalid filter parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	query, ok := h.listQuery(c)
	if !ok {
		return
	}

	result, err := h.documentService.List(query)
	if err != nil {
		respondError(c, err, "failed to list documents")
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListTeamDocuments handles GET /teams/:id/documents
// @Summary List a team's documents
// @Description Get a team's latest document versions with filtering and pagination
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param status query string false "Status filter"
// @Param category query string false "Category filter"
// @Param limit query int false "Page size" default(20)
// @Param skip query int false "Items to skip" default(0)
// @Success 200 {object} service.DocumentListResponse "Successfully retrieved documents"
// @Failure 400 {object} map[string]interface{} "Invalid team ID or filter parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /teams/{id}/documents [get]
func (h *DocumentHandler) ListTeamDocuments(c *gin.Context) {
	teamID, ok := parseUUIDParam(c, "id", "team ID")
	if !ok {
		return
	}

	query, ok := h.listQuery(c)
	if !ok {
		return
	}
	query.TeamID = &teamID

	result, err := h.documentService.List(query)
	if err != nil {
		respondError(c, err, "failed to list documents")
		return
	}

	c.JSON(http.StatusOK, result)
}

// SearchDocuments handles GET /documents/search
// @Summary Search documents
// @Description Case-insensitive substring search across title, content, and tags of latest versions
// @Tags documents
// @Accept json
// @Produce json
// @Param q query string true "Search query (minimum 2 characters)"
// @Param team_id query string false "Team ID (UUID) to scope the search"
// @Param tags query string false "Comma-separated tags"
// @Param category query string false "Category filter"
// @Param status query string false "Status filter"
// @Param limit query int false "Maximum results" default(10)
// @Success 200 {object} service.SearchResponse "Search results"
// @Failure 400 {object} map[string]interface{} "Query too short or invalid parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /documents/search [get]
func (h *DocumentHandler) SearchDocuments(c *gin.Context) {
	query := &service.SearchQuery{
		Query:    c.Query("q"),
		Tags:     splitTags(c.Query("tags")),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Limit:    intQuery(c, "limit", 0),
	}

	if teamIDStr := c.Query("team_id"); teamIDStr != "" {
		teamID, err := uuid.Parse(teamIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
			return
		}
		query.TeamID = &teamID
	}

	result, err := h.documentService.Search(query)
	if err != nil {
		respondError(c, err, "failed to search documents")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetDocument handles GET /documents/:id
// @Summary Get document by ID
// @Description Get a specific document by its UUID; counts the view
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} service.DocumentResponse "Successfully retrieved document"
// @Failure 400 {object} map[string]interface{} "Invalid document ID"
// @Failure 404 {object} map[string]interface{} "Document not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "document ID")
	if !ok {
		return
	}

	doc, err := h.documentService.GetByID(id)
	if err != nil {
		respondError(c, err, "failed to get document")
		return
	}

	c.JSON(http.StatusOK, doc)
}

// CreateDocument handles POST /documents
// @Summary Create a new document
// @Description Create version 1 of a new document lineage with its initial ledger entry
// @Tags documents
// @Accept json
// @Produce json
// @Param document body service.CreateDocumentRequest true "Document data"
// @Success 201 {object} service.DocumentResponse "Successfully created document"
// @Failure 400 {object} map[string]interface{} "Invalid request body or duplicate slug"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /documents [post]
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	var req service.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.documentService.Create(&req)
	if err != nil {
		respondError(c, err, "failed to create document")
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// UpdateDocument handles PUT /documents/:id
// @Summary Publish a new document version
// @Description Demote the current head and insert its successor; only the latest version may be updated
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param document body service.UpdateDocumentRequest true "Fields to change; omitted fields carry forward"
// @Success 200 {object} service.DocumentResponse "New head version"
// @Failure 400 {object} map[string]interface{} "Invalid request, stale version, or concurrent update"
// @Failure 404 {object} map[string]interface{} "Document not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /documents/{id} [put]
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "document ID")
	if !ok {
		return
	}

	var req service.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.documentService.Update(id, &req)
	if err != nil {
		respondError(c, err, "failed to update document")
		return
	}

	c.JSON(http.StatusOK, doc)
}

// ArchiveDocument handles DELETE /documents/:id
// @Summary Archive a document
// @Description Move a document to archived status; data is never erased
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully archived document"
// @Failure 400 {object} map[string]interface{} "Invalid document ID"
// @Failure 404 {object} map[string]interface{} "Document not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /documents/{id} [delete]
func (h *DocumentHandler) ArchiveDocument(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "document ID")
	if !ok {
		return
	}

	if err := h.documentService.Archive(id); err != nil {
		respondError(c, err, "failed to archive document")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "document archived"})
}

// AddRelation handles POST /documents/:id/relations
// @Summary Link documents
// @Description Add a typed, weighted relation to another document; relinking the same target overwrites the edge
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param relation body service.AddRelationRequest true "Relation data"
// @Success 200 {object} service.DocumentResponse "Document with updated relations"
// @Failure 400 {object} map[string]interface{} "Invalid relation type or strength"
// @Failure 404 {object} map[string]interface{} "Document or related document not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /documents/{id}/relations [post]
func (h *DocumentHandler) AddRelation(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "document ID")
	if !ok {
		return
	}

	var req service.AddRelationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.documentService.AddRelation(id, &req)
	if err != nil {
		respondError(c, err, "failed to add relation")
		return
	}

	c.JSON(http.StatusOK, doc)
}

// ListVersions handles GET /documents/:id/versions
// @Summary List a document's version chain
// @Description Get every record of the document's lineage, newest version first
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param limit query int false "Page size" default(10)
// @Param skip query int false "Items to skip" default(0)
// @Success 200 {object} service.VersionChainResponse "Version chain"
// @Failure 400 {object} map[string]interface{} "Invalid document ID"
// @Failure 404 {object} map[string]interface{} "Document not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /documents/{id}/versions [get]
func (h *DocumentHandler) ListVersions(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "document ID")
	if !ok {
		return
	}

	result, err := h.documentService.ListVersions(id, intQuery(c, "limit", 0), intQuery(c, "skip", 0))
	if err != nil {
		respondError(c, err, "failed to list versions")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *DocumentHandler) listQuery(c *gin.Context) (*service.ListDocumentsQuery, bool) {
	query := &service.ListDocumentsQuery{
		Status:    c.Query("status"),
		Category:  c.Query("category"),
		Tags:      splitTags(c.Query("tags")),
		AuthorID:  c.Query("author_id"),
		Limit:     intQuery(c, "limit", 0),
		Skip:      intQuery(c, "skip", 0),
		SortBy:    c.DefaultQuery("sortBy", "updatedAt"),
		SortOrder: c.DefaultQuery("sortOrder", "desc"),
	}

	if teamIDStr := c.Query("team_id"); teamIDStr != "" {
		teamID, err := uuid.Parse(teamIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
			return nil, false
		}
		query.TeamID = &teamID
	}

	return query, true
}

// splitTags parses a comma-separated tag list, dropping empty entries
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
