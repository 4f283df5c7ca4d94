package repositories

import (
	"context"

	"github.com/idanlevi/cost_manager_app/internal/core/domain"
)

// RateSource fetches a complete rate table from a remote endpoint. The
// endpoint contract is a single unauthenticated GET returning a flat JSON
// object of currency code to positive number.
type RateSource interface {
	FetchRates(ctx context.Context, url string) (domain.RateTable, error)
}
