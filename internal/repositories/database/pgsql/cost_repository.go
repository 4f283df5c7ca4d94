package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/idanlevi/cost_manager_app/internal/apperrors"
	"github.com/idanlevi/cost_manager_app/internal/core/domain"
	portsrepo "github.com/idanlevi/cost_manager_app/internal/core/ports/repositories"
	"github.com/idanlevi/cost_manager_app/internal/models"
	"github.com/idanlevi/cost_manager_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCostRepository struct {
	BaseRepository
}

// newPgxCostRepository creates a new repository for cost records.
func newPgxCostRepository(pool *pgxpool.Pool) portsrepo.CostRepository {
	return &PgxCostRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CostRepository = (*PgxCostRepository)(nil)

// SaveCost inserts a single cost record. One insert is one atomic unit; there
// are no multi-record writes to coordinate.
func (r *PgxCostRepository) SaveCost(ctx context.Context, cost domain.CostRecord) error {
	modelCost := mapping.ToModelCost(cost)

	query := `
		INSERT INTO costs (cost_id, sum, currency, category, description, created_at, year, month, day)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelCost.CostID,
		modelCost.Sum,
		modelCost.Currency,
		modelCost.Category,
		modelCost.Description,
		modelCost.CreatedAt,
		modelCost.Year,
		modelCost.Month,
		modelCost.Day,
	)

	if err != nil {
		return fmt.Errorf("%w: failed to save cost %s: %v", apperrors.ErrStorage, modelCost.CostID, err)
	}
	return nil
}

// FindCostsByMonth retrieves all records whose derived year and month equal
// the arguments, using the (year, month) index.
func (r *PgxCostRepository) FindCostsByMonth(ctx context.Context, year int, month int) ([]domain.CostRecord, error) {
	query := `
		SELECT cost_id, sum, currency, category, description, created_at, year, month, day
		FROM costs
		WHERE year = $1 AND month = $2
		ORDER BY created_at;
	`

	rows, err := r.Pool.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query costs for %d-%02d: %v", apperrors.ErrStorage, year, month, err)
	}
	defer rows.Close()

	modelCosts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Cost, error) {
		var cost models.Cost
		err := row.Scan(
			&cost.CostID,
			&cost.Sum,
			&cost.Currency,
			&cost.Category,
			&cost.Description,
			&cost.CreatedAt,
			&cost.Year,
			&cost.Month,
			&cost.Day,
		)
		return cost, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.CostRecord{}, nil
		}
		return nil, fmt.Errorf("%w: failed to scan costs: %v", apperrors.ErrStorage, err)
	}

	return mapping.ToDomainCostSlice(modelCosts), nil
}

// DeleteAllCosts removes every record unconditionally.
func (r *PgxCostRepository) DeleteAllCosts(ctx context.Context) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM costs;`); err != nil {
		return fmt.Errorf("%w: failed to delete costs: %v", apperrors.ErrStorage, err)
	}
	return nil
}
