package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostRecord represents a single recorded expense in the domain.
// Records are immutable once created: there is no update operation, and
// individual records are never deleted, only bulk-cleared.
type CostRecord struct {
	CostID      string          `json:"costID"` // Primary Key (UUID)
	Sum         decimal.Decimal `json:"sum"`
	Currency    string          `json:"currency"` // e.g. "USD", "EURO"
	Category    string          `json:"category"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
	// Year, Month and Day are derived from CreatedAt at insert time so the
	// monthly report filter never needs a full scan.
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}
