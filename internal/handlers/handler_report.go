package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/idanlevi/cost_manager_app/internal/apperrors"
	portssvc "github.com/idanlevi/cost_manager_app/internal/core/ports/services"
	"github.com/idanlevi/cost_manager_app/internal/dto"
	"github.com/idanlevi/cost_manager_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportHandler handles HTTP requests for monthly reports.
type reportHandler struct {
	costService portssvc.CostSvcFacade
}

// newReportHandler creates a new reportHandler.
func newReportHandler(cs portssvc.CostSvcFacade) *reportHandler {
	return &reportHandler{
		costService: cs,
	}
}

// registerReportRoutes registers routes related to reports.
func registerReportRoutes(rg *gin.RouterGroup, costService portssvc.CostSvcFacade) {
	h := newReportHandler(costService)

	reports := rg.Group("/reports")
	{
		reports.GET("/monthly", h.getMonthlyReport)
	}
}

// getMonthlyReport godoc
// @Summary Monthly cost report
// @Description Returns all costs for a year/month with sums converted into the target currency, plus the total
// @Tags reports
// @Produce json
// @Param year query int true "Report year"
// @Param month query int true "Report month (1-12)"
// @Param currency query string true "Target currency code"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportHandler) getMonthlyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing year"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing month"})
		return
	}
	currency := c.Query("currency")
	if currency == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Target currency required"})
		return
	}

	logger = logger.With(slog.Int("year", year), slog.Int("month", month), slog.String("currency", currency))
	logger.Info("Received request for monthly report")

	report, err := h.costService.GetReport(c.Request.Context(), year, month, currency)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error generating report", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to generate report in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		}
		return
	}

	logger.Info("Report generated", slog.Int("cost_count", len(report.Costs)))
	c.JSON(http.StatusOK, dto.ToReportResponse(report))
}
