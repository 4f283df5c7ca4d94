package dto

import (
	"github.com/idanlevi/cost_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCostRequest defines the data needed to record a new cost.
// The sum must be strictly positive; that rule is enforced in the service
// since binding tags cannot compare decimals.
type CreateCostRequest struct {
	Sum         decimal.Decimal `json:"sum" binding:"required"`
	Currency    string          `json:"currency" binding:"required,currencycode"`
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description" binding:"required"`
}

// CostResponse echoes the caller-supplied fields of a created cost. The
// assigned id and timestamps are deliberately not returned.
type CostResponse struct {
	Sum         decimal.Decimal `json:"sum"`
	Currency    string          `json:"currency"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// ToCostResponse converts a domain.CostRecord to a CostResponse DTO.
func ToCostResponse(cost *domain.CostRecord) CostResponse {
	return CostResponse{
		Sum:         cost.Sum,
		Currency:    cost.Currency,
		Category:    cost.Category,
		Description: cost.Description,
	}
}
