package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scholaris/scholaris-backend/internal/middleware"
	"github.com/scholaris/scholaris-backend/internal/response"
	"github.com/scholaris/scholaris-backend/internal/service"
)

// DashboardHandler serves the per-role dashboard summary.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats godoc
// GET /api/v1/dashboard
// Returns the summary for the caller's role.
func (h *DashboardHandler) Stats(c *gin.Context) {
	claims := middleware.GetClaims(c)
	stats, err := h.dashboardService.Stats(c.Request.Context(), claims.Role, claims.ProfileID)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}
