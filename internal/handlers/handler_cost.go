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

// costHandler handles HTTP requests related to cost records.
type costHandler struct {
	costService portssvc.CostSvcFacade
}

// newCostHandler creates a new costHandler.
func newCostHandler(cs portssvc.CostSvcFacade) *costHandler {
	return &costHandler{
		costService: cs,
	}
}

// registerCostRoutes registers routes related to cost records.
func registerCostRoutes(rg *gin.RouterGroup, costService portssvc.CostSvcFacade) {
	h := newCostHandler(costService)

	costs := rg.Group("/costs")
	{
		costs.POST("", h.addCost)
		costs.DELETE("", h.clearAll)
	}
}

// addCost godoc
// @Summary Record a new cost
// @Description Persists a cost entry; the creation timestamp and date parts are assigned by the server
// @Tags costs
// @Accept json
// @Produce json
// @Param cost body dto.CreateCostRequest true "Cost details"
// @Success 201 {object} dto.CostResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record cost"
// @Security BearerAuth
// @Router /costs [post]
func (h *costHandler) addCost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for addCost", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to add cost", slog.String("category", req.Category), slog.String("currency", req.Currency))

	cost, err := h.costService.AddCost(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error adding cost", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to add cost in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record cost"})
		}
		return
	}

	logger.Info("Cost recorded successfully", slog.String("cost_id", cost.CostID))
	c.JSON(http.StatusCreated, dto.ToCostResponse(cost))
}

// clearAll godoc
// @Summary Delete all cost records
// @Description Administrative reset: removes every stored cost unconditionally
// @Tags costs
// @Produce json
// @Success 204 "All costs deleted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to clear costs"
// @Security BearerAuth
// @Router /costs [delete]
func (h *costHandler) clearAll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	principal, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Principal not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	logger.Info("Received request to clear all costs", slog.String("principal", principal))

	if err := h.costService.ClearAll(c.Request.Context()); err != nil {
		logger.Error("Failed to clear costs in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear costs"})
		return
	}

	logger.Info("All costs cleared")
	c.Status(http.StatusNoContent)
}
