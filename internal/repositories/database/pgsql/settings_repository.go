package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/idanlevi/cost_manager_app/internal/apperrors"
	portsrepo "github.com/idanlevi/cost_manager_app/internal/core/ports/repositories"
	"github.com/idanlevi/cost_manager_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSettingsRepository struct {
	BaseRepository
}

// newPgxSettingsRepository creates a new repository for key/value settings.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

// SaveSetting inserts or replaces the value for a key.
func (r *PgxSettingsRepository) SaveSetting(ctx context.Context, key string, value string) error {
	setting := models.Setting{
		Key:           key,
		Value:         value,
		LastUpdatedAt: time.Now(),
	}

	query := `
		INSERT INTO settings (key, value, last_updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			last_updated_at = EXCLUDED.last_updated_at;
	`

	if _, err := r.Pool.Exec(ctx, query, setting.Key, setting.Value, setting.LastUpdatedAt); err != nil {
		return fmt.Errorf("%w: failed to save setting %s: %v", apperrors.ErrStorage, key, err)
	}
	return nil
}

// FindSetting retrieves the value for a key.
func (r *PgxSettingsRepository) FindSetting(ctx context.Context, key string) (string, error) {
	var setting models.Setting
	err := r.Pool.QueryRow(ctx, `SELECT key, value, last_updated_at FROM settings WHERE key = $1;`, key).
		Scan(&setting.Key, &setting.Value, &setting.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("%w: failed to find setting %s: %v", apperrors.ErrStorage, key, err)
	}
	return setting.Value, nil
}

// DeleteSetting removes a key; deleting an absent key is not an error.
func (r *PgxSettingsRepository) DeleteSetting(ctx context.Context, key string) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM settings WHERE key = $1;`, key); err != nil {
		return fmt.Errorf("%w: failed to delete setting %s: %v", apperrors.ErrStorage, key, err)
	}
	return nil
}
