package mapping

import (
	"github.com/idanlevi/cost_manager_app/internal/core/domain"
	"github.com/idanlevi/cost_manager_app/internal/models"
)

// ToModelCost converts a domain.CostRecord to the persistence model.
func ToModelCost(cost domain.CostRecord) models.Cost {
	return models.Cost{
		CostID:      cost.CostID,
		Sum:         cost.Sum,
		Currency:    cost.Currency,
		Category:    cost.Category,
		Description: cost.Description,
		CreatedAt:   cost.CreatedAt,
		Year:        cost.Year,
		Month:       cost.Month,
		Day:         cost.Day,
	}
}

// ToDomainCost converts a persistence model to a domain.CostRecord.
func ToDomainCost(cost models.Cost) domain.CostRecord {
	return domain.CostRecord{
		CostID:      cost.CostID,
		Sum:         cost.Sum,
		Currency:    cost.Currency,
		Category:    cost.Category,
		Description: cost.Description,
		CreatedAt:   cost.CreatedAt,
		Year:        cost.Year,
		Month:       cost.Month,
		Day:         cost.Day,
	}
}

// ToDomainCostSlice converts a slice of persistence models to domain records.
func ToDomainCostSlice(costs []models.Cost) []domain.CostRecord {
	out := make([]domain.CostRecord, len(costs))
	for i, cost := range costs {
		out[i] = ToDomainCost(cost)
	}
	return out
}
