package services

import (
	"context"

	"github.com/idanlevi/cost_manager_app/internal/core/domain"
	"github.com/idanlevi/cost_manager_app/internal/dto"
)

// CostSvcFacade exposes the cost store operations.
type CostSvcFacade interface {
	// AddCost validates and persists a new cost record, stamping the creation
	// time and the derived year/month/day.
	AddCost(ctx context.Context, req dto.CreateCostRequest) (*domain.CostRecord, error)

	// GetReport returns the monthly report for (year, month) with every sum
	// converted into targetCurrency. A month with no matching records yields
	// an empty cost list and a zero total.
	GetReport(ctx context.Context, year int, month int, targetCurrency string) (*domain.MonthlyReport, error)

	// ClearAll deletes every stored cost record. Administrative reset only.
	ClearAll(ctx context.Context) error
}
