package services

import (
	portsrepo "github.com/idanlevi/cost_manager_app/internal/core/ports/repositories"
	portssvc "github.com/idanlevi/cost_manager_app/internal/core/ports/services"
)

// NewServiceContainer creates a service container with properly initialized
// dependencies. The converter is built first since the cost service converts
// sums while assembling reports.
func NewServiceContainer(repos portsrepo.RepositoryProvider, rateSource portsrepo.RateSource) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Converter = NewConverterService(rateSource)
	container.Cost = NewCostService(repos.CostRepo, container.Converter)
	container.Settings = NewSettingsService(repos.SettingsRepo)

	return container
}
