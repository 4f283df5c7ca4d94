package domain

import "github.com/shopspring/decimal"

// RateTable maps a currency code to the number of its units per one unit of
// the base currency (the currency whose rate is 1). Conversions between any
// two known currencies route through the base unit.
type RateTable map[string]decimal.Decimal

// Clone returns an independent copy of the table.
func (t RateTable) Clone() RateTable {
	out := make(RateTable, len(t))
	for code, rate := range t {
		out[code] = rate
	}
	return out
}

// FallbackRateTable returns the hard-coded table used until the first
// successful load from the configured endpoint. It is rebuilt on every call so
// callers cannot alias the defaults.
func FallbackRateTable() RateTable {
	return RateTable{
		"USD":  decimal.NewFromInt(1),
		"GBP":  decimal.RequireFromString("1.8"),
		"EURO": decimal.RequireFromString("0.7"),
		"ILS":  decimal.RequireFromString("3.4"),
	}
}
