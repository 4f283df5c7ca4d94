package services

// ServiceContainer bundles every service facade for route registration.
type ServiceContainer struct {
	Cost      CostSvcFacade
	Converter ConverterSvcFacade
	Settings  SettingsSvcFacade
}
