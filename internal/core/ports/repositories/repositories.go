package repositories

// RepositoryProvider is the storage a driver (postgres or memory) hands to
// the service container.
type RepositoryProvider struct {
	Ledger     LedgerReader
	UnitOfWork UnitOfWork
	Reporting  ReportingRepository
}
