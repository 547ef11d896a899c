package handlers

import (
	"net/http"

	portssvc "github.com/freelanceledger/freelance_ledger_app/internal/core/ports/services"
	"github.com/freelanceledger/freelance_ledger_app/internal/dto"
	"github.com/freelanceledger/freelance_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardHandler serves the derived dashboard totals.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvc
}

func newDashboardHandler(ds portssvc.DashboardSvc) *dashboardHandler {
	return &dashboardHandler{dashboardService: ds}
}

// registerDashboardRoutes registers the dashboard routes.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvc) {
	h := newDashboardHandler(dashboardService)
	rg.GET("/dashboard/stats", h.getStats)
}

// getStats godoc
// @Summary Get dashboard stats
// @Description Derives the headline totals from the logged-in user's projects, expenses and accounts
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed computing stats"
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *dashboardHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stats, err := h.dashboardService.GetStats(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "computing stats")
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsResponse(*stats))
}
