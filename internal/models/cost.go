package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cost is the persistence model for a single expense row.
type Cost struct {
	CostID      string          `json:"costID"` // Primary Key (UUID)
	Sum         decimal.Decimal `json:"sum"`    // NUMERIC, always > 0
	Currency    string          `json:"currency"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
	Year        int             `json:"year"`  // derived from CreatedAt
	Month       int             `json:"month"` // derived from CreatedAt
	Day         int             `json:"day"`   // derived from CreatedAt
}
