package handlers

import (
	"net/http"

	"team-docs-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MemberHandler handles HTTP requests for team membership operations
type MemberHandler struct {
	memberService service.MemberServiceInterface
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService service.MemberServiceInterface) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// AddMember handles POST /teams/:id/members
// @Summary Add a team member
// @Description Add a member to a team; each user may appear at most once per team
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param member body service.AddMemberRequest true "Member data"
// @Success 200 {object} service.TeamResponse "Team with updated member list"
// @Failure 400 {object} map[string]interface{} "Invalid request, role, or duplicate member"
// @Failure 404 {object} map[string]interface{} "Team not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /teams/{id}/members [post]
func (h *MemberHandler) AddMember(c *gin.Context) {
	teamID, ok := parseUUIDParam(c, "id", "team ID")
	if !ok {
		return
	}

	var req service.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.memberService.AddMember(teamID, &req)
	if err != nil {
		respondError(c, err, "failed to add member")
		return
	}

	c.JSON(http.StatusOK, team)
}

// RemoveMember handles DELETE /teams/:id/members/:userId
// @Summary Remove a team member
// @Description Remove a member from a team by user ID
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param userId path string true "User ID"
// @Success 200 {object} service.TeamResponse "Team with updated member list"
// @Failure 400 {object} map[string]interface{} "Invalid team ID"
// @Failure 404 {object} map[string]interface{} "Team or member not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /teams/{id}/members/{userId} [delete]
func (h *MemberHandler) RemoveMember(c *gin.Context) {
	teamID, ok := parseUUIDParam(c, "id", "team ID")
	if !ok {
		return
	}

	team, err := h.memberService.RemoveMember(teamID, c.Param("userId"))
	if err != nil {
		respondError(c, err, "failed to remove member")
		return
	}

	c.JSON(http.StatusOK, team)
}

// UpdateMemberRole handles PUT /teams/:id/members/:userId/role
// @Summary Change a member's role
// @Description Update the role of a team member (leader, member, viewer)
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param userId path string true "User ID"
// @Param role body service.UpdateMemberRoleRequest true "New role"
// @Success 200 {object} service.TeamResponse "Team with updated member list"
// @Failure 400 {object} map[string]interface{} "Invalid team ID or role"
// @Failure 404 {object} map[string]interface{} "Team or member not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /teams/{id}/members/{userId}/role [put]
func (h *MemberHandler) UpdateMemberRole(c *gin.Context) {
	teamID, ok := parseUUIDParam(c, "id", "team ID")
	if !ok {
		return
	}

	var req service.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.memberService.UpdateMemberRole(teamID, c.Param("userId"), req.Role)
	if err != nil {
		respondError(c, err, "failed to update member role")
		return
	}

	c.JSON(http.StatusOK, team)
}
