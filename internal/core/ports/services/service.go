package services

// ServiceContainer is what the handlers are given: the transaction
// orchestrator and the read-only reports.
type ServiceContainer struct {
	Transaction TransactionSvcFacade
	Reporting   ReportingService
}
