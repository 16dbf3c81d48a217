package services

// ServiceContainer aggregates the application services so route registration
// can receive a single dependency.
type ServiceContainer struct {
	Member     MemberSvcFacade
	Payment    PaymentSvcFacade
	Rates      RateProviderSvc
	Settlement SettlementSvcFacade
}
