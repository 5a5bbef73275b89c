package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/annolab/tenselab-backend/internal/http/response"
	"github.com/annolab/tenselab-backend/internal/platform/logger"
	"github.com/annolab/tenselab-backend/internal/services"
)

type AdminHandler struct {
	log           *logger.Logger
	reportService services.ReportService
}

func NewAdminHandler(baseLog *logger.Logger, reportService services.ReportService) *AdminHandler {
	handlerLog := baseLog.With("handler", "AdminHandler")
	return &AdminHandler{log: handlerLog, reportService: reportService}
}

func (h *AdminHandler) GetOverview(c *gin.Context) {
	overview, err := h.reportService.GetOverview(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusBadGateway, "store_failed", err)
		return
	}
	response.RespondOK(c, overview)
}

func (h *AdminHandler) GetRecent(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.RespondError(c, http.StatusBadRequest, "invalid_limit", fmt.Errorf("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	recent, err := h.reportService.GetRecent(c.Request.Context(), limit)
	if err != nil {
		response.RespondError(c, http.StatusBadGateway, "store_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"annotations": recent})
}

// Export streams the full annotation table as a CSV download.
func (h *AdminHandler) Export(c *gin.Context) {
	filename := fmt.Sprintf("annotations_export_%s.csv", time.Now().Format("20060102_1504"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename="+filename)

	rows, err := h.reportService.ExportCSV(c.Request.Context(), c.Writer)
	if err != nil {
		// Headers may already be out; log rather than switching to a JSON body.
		h.log.Error("Annotation export failed", "error", err)
		c.Status(http.StatusBadGateway)
		return
	}
	h.log.Info("Annotation export served", "rows", rows)
}
