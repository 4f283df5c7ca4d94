package repositories

import (
	"context"

	"github.com/idanlevi/cost_manager_app/internal/core/domain"
)

// CostRepository persists cost records. A single insert or read is one atomic
// unit against the store; there are no multi-record writes.
type CostRepository interface {
	// SaveCost inserts a new cost record. Records are immutable, so there is
	// no update counterpart.
	SaveCost(ctx context.Context, cost domain.CostRecord) error

	// FindCostsByMonth returns every record whose derived year and month
	// exactly equal the arguments, ordered by creation time.
	FindCostsByMonth(ctx context.Context, year int, month int) ([]domain.CostRecord, error)

	// DeleteAllCosts removes every record unconditionally.
	DeleteAllCosts(ctx context.Context) error
}
