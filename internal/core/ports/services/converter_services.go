package services

import (
	"context"

	"github.com/idanlevi/cost_manager_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConverterSvcFacade owns the live rate table and converts amounts between
// currencies. The supported-currency list is a projection of whatever table is
// currently loaded, never a compile-time constant.
type ConverterSvcFacade interface {
	// Convert converts amount from one currency to another via the base unit.
	// It is deliberately lenient: a zero amount, equal codes, or a code absent
	// from the table all return the amount unchanged so a missing rate never
	// blocks a report.
	Convert(amount decimal.Decimal, from string, to string) decimal.Decimal

	// LoadRates fetches the table from the given endpoint and replaces the
	// live table wholesale. On any failure the previous table stays in place.
	LoadRates(ctx context.Context, url string) (domain.RateTable, error)

	// SupportedCurrencies returns the sorted codes of the live table.
	SupportedCurrencies() []string

	// Rates returns a copy of the live table.
	Rates() domain.RateTable
}
