package api

import (
	"net/http"

	"fitbuddy/server/internal/service"

	"github.com/gin-gonic/gin"
)

// CommunityHandler holds the community service dependency.
type CommunityHandler struct {
	communityService service.CommunityService
}

// NewCommunityHandler creates a new CommunityHandler.
func NewCommunityHandler(communityService service.CommunityService) *CommunityHandler {
	return &CommunityHandler{communityService: communityService}
}

// GetCommunity returns the buddy listing for a plan: every user following
// it, enriched with completion and consistency stats.
func (h *CommunityHandler) GetCommunity(c *gin.Context) {
	community, err := h.communityService.GetCommunity(c.Request.Context(), c.Param("planId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, community)
}
