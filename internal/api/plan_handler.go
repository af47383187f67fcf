package api

import (
	"net/http"

	"fitbuddy/server/internal/service"

	"github.com/gin-gonic/gin"
)

// PlanHandler holds the catalog service dependency.
type PlanHandler struct {
	catalogService service.CatalogService
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(catalogService service.CatalogService) *PlanHandler {
	return &PlanHandler{catalogService: catalogService}
}

// ListPlans returns every plan template in the catalog.
func (h *PlanHandler) ListPlans(c *gin.Context) {
	plans, err := h.catalogService.ListPlans(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// GetPlan returns a single plan template by id.
func (h *PlanHandler) GetPlan(c *gin.Context) {
	plan, err := h.catalogService.GetPlan(c.Request.Context(), c.Param("planId"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}
