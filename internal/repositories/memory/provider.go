package memory

import (
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// NewRepositoryProvider wires one store into every repository slot.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Ledger:     s,
		UnitOfWork: s,
		Reporting:  s,
	}
}

// SeedDefaults loads the same chart of accounts, vat codes and cash book as
// the initial database migration.
func (s *Store) SeedDefaults() {
	for _, n := range []domain.Nominal{
		{ID: 1100, Name: "Sales ledger control"},
		{ID: 1200, Name: "Bank current account"},
		{ID: 2100, Name: "Purchase ledger control"},
		{ID: 2200, Name: "VAT"},
		{ID: 4000, Name: "Sales"},
		{ID: 5000, Name: "Purchases"},
	} {
		s.SeedNominal(n)
	}
	s.SeedVatCode(domain.VatCode{ID: 1, Code: "S", Name: "Standard", Rate: decimal.NewFromInt(20)})
	s.SeedVatCode(domain.VatCode{ID: 2, Code: "Z", Name: "Zero rated", Rate: decimal.Zero})
	s.SeedCashBook(domain.CashBook{ID: 1, Name: "Current account", NominalID: 1200})
}
