package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/idanlevi/cost_manager_app/internal/apperrors"
	"github.com/idanlevi/cost_manager_app/internal/core/domain"
	portsrepo "github.com/idanlevi/cost_manager_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// maxRateBodyBytes caps the response body read; a flat rate table is tiny.
const maxRateBodyBytes = 1 << 20

// HTTPSource fetches a rate table with a single unauthenticated GET. The
// endpoint must answer 200 with a flat JSON object of code -> positive number.
type HTTPSource struct {
	client *http.Client
}

// NewHTTPSource creates a rate source with the given request timeout.
func NewHTTPSource(timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		client: &http.Client{Timeout: timeout},
	}
}

// Ensure implementation matches interface
var _ portsrepo.RateSource = (*HTTPSource)(nil)

// FetchRates issues the GET and decodes the body. Every failure mode maps to
// apperrors.ErrFetch; the caller decides what table to keep using.
func (s *HTTPSource) FetchRates(ctx context.Context, url string) (domain.RateTable, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid rate URL %q: %v", apperrors.ErrFetch, url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: rate endpoint unreachable: %v", apperrors.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: rate endpoint returned status %d", apperrors.ErrFetch, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRateBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read rate response: %v", apperrors.ErrFetch, err)
	}

	var raw map[string]json.Number
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: rate response is not a JSON object of numbers: %v", apperrors.ErrFetch, err)
	}

	table := make(domain.RateTable, len(raw))
	for code, num := range raw {
		rate, err := decimal.NewFromString(num.String())
		if err != nil {
			return nil, fmt.Errorf("%w: rate for %s is not a number: %v", apperrors.ErrFetch, code, err)
		}
		table[code] = rate
	}

	return table, nil
}
