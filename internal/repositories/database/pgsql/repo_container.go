package pgsql

import (
	portsrepo "github.com/idanlevi/cost_manager_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CostRepo:     newPgxCostRepository(dbPool),
		SettingsRepo: newPgxSettingsRepository(dbPool),
	}
}
