package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/idanlevi/cost_manager_app/internal/apperrors"
	portssvc "github.com/idanlevi/cost_manager_app/internal/core/ports/services"
	"github.com/idanlevi/cost_manager_app/internal/dto"
	"github.com/idanlevi/cost_manager_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ratesHandler handles HTTP requests for the exchange-rate table.
type ratesHandler struct {
	converterService portssvc.ConverterSvcFacade
	settingsService  portssvc.SettingsSvcFacade
}

// newRatesHandler creates a new ratesHandler.
func newRatesHandler(conv portssvc.ConverterSvcFacade, settings portssvc.SettingsSvcFacade) *ratesHandler {
	return &ratesHandler{
		converterService: conv,
		settingsService:  settings,
	}
}

// registerRatesRoutes registers routes related to exchange rates.
func registerRatesRoutes(rg *gin.RouterGroup, conv portssvc.ConverterSvcFacade, settings portssvc.SettingsSvcFacade) {
	h := newRatesHandler(conv, settings)

	ratesGroup := rg.Group("/rates")
	{
		ratesGroup.GET("", h.getRates)
		ratesGroup.POST("/refresh", h.refreshRates)
		ratesGroup.GET("/currencies", h.getSupportedCurrencies)
	}
}

// getRates godoc
// @Summary Current exchange-rate table
// @Description Returns the live rate table (fallback until the first successful refresh)
// @Tags rates
// @Produce json
// @Success 200 {object} dto.RatesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /rates [get]
func (h *ratesHandler) getRates(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToRatesResponse(h.converterService.Rates()))
}

// refreshRates godoc
// @Summary Reload the exchange-rate table
// @Description Fetches a fresh table from the body URL, or from the saved setting when no URL is given. The table is replaced wholesale; on failure the previous table stays in place.
// @Tags rates
// @Accept json
// @Produce json
// @Param refresh body dto.RefreshRatesRequest false "Optional endpoint override"
// @Success 200 {object} dto.RatesResponse
// @Failure 400 {object} map[string]string "Invalid input or no endpoint configured"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Rate endpoint unreachable or malformed"
// @Security BearerAuth
// @Router /rates/refresh [post]
func (h *ratesHandler) refreshRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	// An empty body means "use the saved endpoint". Binding is attempted on
	// any body (chunked requests carry no Content-Length) and EOF marks the
	// empty case.
	var req dto.RefreshRatesRequest
	if c.Request.Body != nil {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			logger.Warn("Failed to bind JSON for refreshRates", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	url := req.URL
	if url == "" {
		saved, err := h.settingsService.GetRateURL(c.Request.Context())
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "No exchange-rate endpoint configured"})
			} else {
				logger.Error("Failed to read rate URL setting", slog.String("error", err.Error()))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read rate endpoint setting"})
			}
			return
		}
		url = saved
	}

	logger.Info("Refreshing exchange rates", slog.String("url", url))

	table, err := h.converterService.LoadRates(c.Request.Context(), url)
	if err != nil {
		if errors.Is(err, apperrors.ErrFetch) {
			logger.Warn("Rate refresh failed, keeping previous table", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to refresh rates", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh rates"})
		}
		return
	}

	logger.Info("Exchange rates replaced", slog.Int("currency_count", len(table)))
	c.JSON(http.StatusOK, dto.ToRatesResponse(table))
}

// getSupportedCurrencies godoc
// @Summary Supported currency codes
// @Description Lists the codes of the live rate table; the list follows whatever table is currently loaded
// @Tags rates
// @Produce json
// @Success 200 {object} dto.CurrenciesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /rates/currencies [get]
func (h *ratesHandler) getSupportedCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CurrenciesResponse{Currencies: h.converterService.SupportedCurrencies()})
}
