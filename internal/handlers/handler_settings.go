package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/idanlevi/cost_manager_app/internal/apperrors"
	portssvc "github.com/idanlevi/cost_manager_app/internal/core/ports/services"
	"github.com/idanlevi/cost_manager_app/internal/dto"
	"github.com/idanlevi/cost_manager_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// settingsHandler handles HTTP requests for persisted configuration.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

// newSettingsHandler creates a new settingsHandler.
func newSettingsHandler(ss portssvc.SettingsSvcFacade) *settingsHandler {
	return &settingsHandler{
		settingsService: ss,
	}
}

// registerSettingsRoutes registers routes related to settings.
func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := newSettingsHandler(settingsService)

	settings := rg.Group("/settings")
	{
		settings.GET("/rate-url", h.getRateURL)
		settings.PUT("/rate-url", h.setRateURL)
		settings.DELETE("/rate-url", h.clearRateURL)
	}
}

// getRateURL godoc
// @Summary Saved exchange-rate endpoint
// @Description Returns the persisted rate endpoint URL
// @Tags settings
// @Produce json
// @Success 200 {object} dto.RateURLResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No endpoint configured"
// @Failure 500 {object} map[string]string "Failed to read setting"
// @Security BearerAuth
// @Router /settings/rate-url [get]
func (h *settingsHandler) getRateURL(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	url, err := h.settingsService.GetRateURL(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No exchange-rate endpoint configured"})
		} else {
			logger.Error("Failed to read rate URL setting", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read setting"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.RateURLResponse{URL: url})
}

// setRateURL godoc
// @Summary Save the exchange-rate endpoint
// @Description Persists the rate endpoint URL across restarts (the rate table itself resets to the fallback on restart until reloaded)
// @Tags settings
// @Accept json
// @Produce json
// @Param setting body dto.SetRateURLRequest true "Endpoint URL"
// @Success 200 {object} dto.RateURLResponse
// @Failure 400 {object} map[string]string "Invalid URL"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to save setting"
// @Security BearerAuth
// @Router /settings/rate-url [put]
func (h *settingsHandler) setRateURL(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SetRateURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for setRateURL", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.settingsService.SetRateURL(c.Request.Context(), req.URL); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error saving rate URL", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to save rate URL setting", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save setting"})
		}
		return
	}

	logger.Info("Rate endpoint saved", slog.String("url", req.URL))
	c.JSON(http.StatusOK, dto.RateURLResponse{URL: req.URL})
}

// clearRateURL godoc
// @Summary Clear the exchange-rate endpoint
// @Description Removes the persisted rate endpoint URL
// @Tags settings
// @Produce json
// @Success 204 "Setting cleared"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to clear setting"
// @Security BearerAuth
// @Router /settings/rate-url [delete]
func (h *settingsHandler) clearRateURL(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.settingsService.ClearRateURL(c.Request.Context()); err != nil {
		logger.Error("Failed to clear rate URL setting", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear setting"})
		return
	}

	logger.Info("Rate endpoint cleared")
	c.Status(http.StatusNoContent)
}
