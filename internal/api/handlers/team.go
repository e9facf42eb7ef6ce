package handlers

import (
	"net/http"

	"team-docs-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// ListTeams handles GET /teams
// @Summary List teams
// @Description Get all active teams with member and document counts
// @Tags teams
// @Accept json
// @Produce json
// @Success 200 {array} service.TeamSummary "Successfully retrieved teams"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamService.ListTeams()
	if err != nil {
		respondError(c, err, "failed to list teams")
		return
	}

	c.JSON(http.StatusOK, teams)
}

// GetTeam handles GET /teams/:id
// @Summary Get team by ID
// @Description Get a specific team by its UUID including its member list
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamResponse "Successfully retrieved team"
// @Failure 400 {object} map[string]interface{} "Invalid team ID"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "team ID")
	if !ok {
		return
	}

	team, err := h.teamService.GetByID(id)
	if err != nil {
		respondError(c, err, "failed to get team")
		return
	}

	c.JSON(http.StatusOK, team)
}

// GetTeamDetail handles GET /teams/:id/detail
// @Summary Get team details
// @Description Get a team with document statistics and recent documents
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamDetailResponse "Successfully retrieved team details"
// @Failure 400 {object} map[string]interface{} "Invalid team ID"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /teams/{id}/detail [get]
func (h *TeamHandler) GetTeamDetail(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "team ID")
	if !ok {
		return
	}

	detail, err := h.teamService.GetDetail(id)
	if err != nil {
		respondError(c, err, "failed to get team details")
		return
	}

	c.JSON(http.StatusOK, detail)
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Description Create a new team with a unique name and slug
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} map[string]interface{} "Invalid request body or duplicate name/slug"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.Create(&req)
	if err != nil {
		respondError(c, err, "failed to create team")
		return
	}

	c.JSON(http.StatusCreated, team)
}

// UpdateTeam handles PUT /teams/:id
// @Summary Update a team
// @Description Apply partial changes to a team; omitted fields keep their values
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param team body service.UpdateTeamRequest true "Fields to update"
// @Success 200 {object} service.TeamResponse "Successfully updated team"
// @Failure 400 {object} map[string]interface{} "Invalid request or duplicate name/slug"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "team ID")
	if !ok {
		return
	}

	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.Update(id, &req)
	if err != nil {
		respondError(c, err, "failed to update team")
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Deactivate a team
// @Description Soft-delete a team; requires the ALLOW_DELETE_TEAM deployment flag
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deactivated team"
// @Failure 400 {object} map[string]interface{} "Deletion disabled or invalid team ID"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id", "team ID")
	if !ok {
		return
	}

	if err := h.teamService.Deactivate(id); err != nil {
		respondError(c, err, "failed to deactivate team")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "team deactivated"})
}
