package handlers

import (
	"fmt"
	"net/http"
	"time"

	portssvc "github.com/freelanceledger/freelance_ledger_app/internal/core/ports/services"
	"github.com/freelanceledger/freelance_ledger_app/internal/dto"
	"github.com/freelanceledger/freelance_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exportHandler serves the downloadable data snapshot.
type exportHandler struct {
	exportService portssvc.ExportSvc
}

func newExportHandler(es portssvc.ExportSvc) *exportHandler {
	return &exportHandler{exportService: es}
}

// registerExportRoutes registers the export route.
func registerExportRoutes(rg *gin.RouterGroup, exportService portssvc.ExportSvc) {
	h := newExportHandler(exportService)
	rg.GET("/export", h.exportData)
}

// exportData godoc
// @Summary Export all data
// @Description Serializes the logged-in user's projects, expenses and accounts into a downloadable JSON snapshot
// @Tags export
// @Produce  json
// @Success 200 {object} dto.ExportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed exporting data"
// @Security BearerAuth
// @Router /export [get]
func (h *exportHandler) exportData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	snapshot, err := h.exportService.Snapshot(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "exporting data")
		return
	}

	exportedAt := time.Now().UTC()
	filename := fmt.Sprintf("freelance-ledger-export-%s.json", exportedAt.Format(time.DateOnly))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.JSON(http.StatusOK, dto.ToExportResponse(*snapshot, exportedAt))
}
