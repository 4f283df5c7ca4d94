package domain

import "github.com/shopspring/decimal"

// ReportEntry is one cost inside a monthly report: the original record fields
// plus the sum converted into the report's target currency.
type ReportEntry struct {
	Sum          decimal.Decimal `json:"sum"`
	Currency     string          `json:"currency"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	Day          int             `json:"day"`
	ConvertedSum decimal.Decimal `json:"convertedSum"`
}

// ReportTotal is the aggregate of all converted sums in the target currency.
type ReportTotal struct {
	Currency string          `json:"currency"`
	Total    decimal.Decimal `json:"total"`
}

// MonthlyReport is computed on demand and never stored or cached. Totals are
// exact sums of unrounded converted values; rounding happens at display time.
type MonthlyReport struct {
	Year           int           `json:"year"`
	Month          int           `json:"month"`
	TargetCurrency string        `json:"targetCurrency"`
	Costs          []ReportEntry `json:"costs"`
	Total          ReportTotal   `json:"total"`
}
