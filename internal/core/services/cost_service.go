package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/idanlevi/cost_manager_app/internal/apperrors"
	"github.com/idanlevi/cost_manager_app/internal/core/domain"
	portsrepo "github.com/idanlevi/cost_manager_app/internal/core/ports/repositories"
	portssvc "github.com/idanlevi/cost_manager_app/internal/core/ports/services"
	"github.com/idanlevi/cost_manager_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// costService implements the cost store operations on top of the cost
// repository and the currency converter.
type costService struct {
	costRepo  portsrepo.CostRepository
	converter portssvc.ConverterSvcFacade
}

// NewCostService creates a new cost service.
func NewCostService(costRepo portsrepo.CostRepository, converter portssvc.ConverterSvcFacade) portssvc.CostSvcFacade {
	return &costService{
		costRepo:  costRepo,
		converter: converter,
	}
}

var _ portssvc.CostSvcFacade = (*costService)(nil)

// AddCost validates the input, stamps the creation time, derives the date
// parts and persists the record. Binding tags cover presence; the positive-sum
// rule lives here.
func (s *costService) AddCost(ctx context.Context, req dto.CreateCostRequest) (*domain.CostRecord, error) {
	if req.Sum.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: sum must be positive", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.Currency) == "" {
		return nil, fmt.Errorf("%w: currency is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.Category) == "" {
		return nil, fmt.Errorf("%w: category is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}

	now := time.Now()

	cost := domain.CostRecord{
		CostID:      uuid.NewString(),
		Sum:         req.Sum,
		Currency:    strings.ToUpper(req.Currency),
		Category:    req.Category,
		Description: req.Description,
		CreatedAt:   now,
		Year:        now.Year(),
		Month:       int(now.Month()),
		Day:         now.Day(),
	}

	if err := s.costRepo.SaveCost(ctx, cost); err != nil {
		return nil, fmt.Errorf("failed to save cost in service: %w", err)
	}

	return &cost, nil
}

// GetReport retrieves the records for (year, month), converts each sum into
// targetCurrency and sums the converted values. The total is an exact decimal
// sum; rounding is a display concern.
func (s *costService) GetReport(ctx context.Context, year int, month int, targetCurrency string) (*domain.MonthlyReport, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}
	if strings.TrimSpace(targetCurrency) == "" {
		return nil, fmt.Errorf("%w: target currency is required", apperrors.ErrValidation)
	}
	targetCurrency = strings.ToUpper(targetCurrency)

	costs, err := s.costRepo.FindCostsByMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to read costs for report in service: %w", err)
	}

	report := &domain.MonthlyReport{
		Year:           year,
		Month:          month,
		TargetCurrency: targetCurrency,
		Costs:          make([]domain.ReportEntry, len(costs)),
		Total: domain.ReportTotal{
			Currency: targetCurrency,
			Total:    decimal.Zero,
		},
	}

	for i, cost := range costs {
		converted := s.converter.Convert(cost.Sum, cost.Currency, targetCurrency)
		report.Costs[i] = domain.ReportEntry{
			Sum:          cost.Sum,
			Currency:     cost.Currency,
			Category:     cost.Category,
			Description:  cost.Description,
			Day:          cost.Day,
			ConvertedSum: converted,
		}
		report.Total.Total = report.Total.Total.Add(converted)
	}

	return report, nil
}

// ClearAll deletes every stored cost record unconditionally.
func (s *costService) ClearAll(ctx context.Context) error {
	if err := s.costRepo.DeleteAllCosts(ctx); err != nil {
		return fmt.Errorf("failed to clear costs in service: %w", err)
	}
	return nil
}
