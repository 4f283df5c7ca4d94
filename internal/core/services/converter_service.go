package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/idanlevi/cost_manager_app/internal/apperrors"
	"github.com/idanlevi/cost_manager_app/internal/core/domain"
	portsrepo "github.com/idanlevi/cost_manager_app/internal/core/ports/repositories"
	portssvc "github.com/idanlevi/cost_manager_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// converterService owns the live rate table. The table is only ever replaced
// wholesale under the write lock; conversions take the read lock. It starts
// from the hard-coded fallback and is never persisted.
type converterService struct {
	mu     sync.RWMutex
	rates  domain.RateTable
	source portsrepo.RateSource
}

// NewConverterService creates a converter initialized with the fallback table.
func NewConverterService(source portsrepo.RateSource) portssvc.ConverterSvcFacade {
	return &converterService{
		rates:  domain.FallbackRateTable(),
		source: source,
	}
}

var _ portssvc.ConverterSvcFacade = (*converterService)(nil)

// Convert routes amount through the base unit: amount / rate[from] * rate[to].
// A zero amount, equal codes, or a code missing from the table return the
// amount unchanged. The lenient fallback is deliberate so a stale or partial
// table never blocks a report; a stricter variant would surface the missing
// rate as a validation error instead.
func (s *converterService) Convert(amount decimal.Decimal, from string, to string) decimal.Decimal {
	if from == to || amount.IsZero() {
		return amount
	}

	s.mu.RLock()
	fromRate, fromOK := s.rates[from]
	toRate, toOK := s.rates[to]
	s.mu.RUnlock()

	if !fromOK || !toOK || fromRate.IsZero() {
		return amount
	}

	return amount.Div(fromRate).Mul(toRate)
}

// LoadRates fetches a fresh table from the endpoint and swaps it in. Any
// failure leaves the previous table (or the fallback) in place; there is no
// retry and no partial merge.
func (s *converterService) LoadRates(ctx context.Context, url string) (domain.RateTable, error) {
	table, err := s.source.FetchRates(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to load rates in service: %w", err)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("%w: rate endpoint returned an empty table", apperrors.ErrFetch)
	}
	for code, rate := range table {
		if rate.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: rate for %s must be positive, got %s", apperrors.ErrFetch, code, rate)
		}
	}

	s.mu.Lock()
	s.rates = table
	s.mu.Unlock()

	return table.Clone(), nil
}

// SupportedCurrencies returns the sorted codes of the live table. The list is
// a projection of whatever table is loaded, not a constant.
func (s *converterService) SupportedCurrencies() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	codes := make([]string, 0, len(s.rates))
	for code := range s.rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Rates returns an independent copy of the live table.
func (s *converterService) Rates() domain.RateTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rates.Clone()
}
