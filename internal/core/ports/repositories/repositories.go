package repositories

// RepositoryProvider bundles every repository implementation for injection
// into the service container.
type RepositoryProvider struct {
	CostRepo     CostRepository
	SettingsRepo SettingsRepository
}
