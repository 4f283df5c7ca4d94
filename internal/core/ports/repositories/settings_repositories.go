package repositories

import "context"

// SettingsRepository persists key/value configuration outside the cost store.
type SettingsRepository interface {
	// SaveSetting inserts or replaces the value for a key.
	SaveSetting(ctx context.Context, key string, value string) error

	// FindSetting returns the value for a key, or apperrors.ErrNotFound when
	// the key has never been set (or was cleared).
	FindSetting(ctx context.Context, key string) (string, error)

	// DeleteSetting removes a key. Deleting an absent key is not an error.
	DeleteSetting(ctx context.Context, key string) error
}
