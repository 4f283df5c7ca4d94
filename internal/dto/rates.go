package dto

import (
	"github.com/idanlevi/cost_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RefreshRatesRequest optionally overrides the saved endpoint for one load.
// An empty URL means "use the configured setting".
type RefreshRatesRequest struct {
	URL string `json:"url" binding:"omitempty,url"`
}

// RatesResponse returns the live rate table.
type RatesResponse struct {
	Rates map[string]decimal.Decimal `json:"rates"`
}

// CurrenciesResponse lists the currency codes known to the live table.
type CurrenciesResponse struct {
	Currencies []string `json:"currencies"`
}

// ToRatesResponse converts a domain.RateTable to a RatesResponse DTO.
func ToRatesResponse(table domain.RateTable) RatesResponse {
	rates := make(map[string]decimal.Decimal, len(table))
	for code, rate := range table {
		rates[code] = rate
	}
	return RatesResponse{Rates: rates}
}
