//go:build integration

package pgsql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/apperrors"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/services"
	"github.com/SscSPs/bookkeeping_ledger/internal/platform/registry"
	"github.com/SscSPs/bookkeeping_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/bookkeeping_ledger/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ids seeded by the initial migration
const (
	debtors     int64 = 1100
	bank        int64 = 1200
	sales       int64 = 4000
	standardVat int64 = 1
	current     int64 = 1
)

var july = time.Date(2020, 7, 1, 0, 0, 0, 0, time.UTC)

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type PgxLedgerIntegrationSuite struct {
	suite.Suite
	ctx     context.Context
	repos   portsrepo.RepositoryProvider
	service portssvc.TransactionSvcFacade
}

func TestPgxLedgerIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("needs docker")
	}
	suite.Run(t, new(PgxLedgerIntegrationSuite))
}

func (s *PgxLedgerIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()
	pool := testutil.SetupTestDB(s.T())
	s.repos = pgsql.NewRepositoryProvider(pool)

	reg, err := registry.Load("../../../../configs/modules.yaml")
	s.Require().NoError(err)
	s.service = services.NewTransactionService(s.repos.Ledger, s.repos.UnitOfWork, reg)
}

func (s *PgxLedgerIntegrationSuite) invoice(ref string) *domain.Header {
	total := amt("120")
	h, err := s.service.Post(s.ctx, domain.ModuleSales, domain.Submission{
		Header: domain.HeaderInput{Type: domain.SaleInvoice, Ref: ref, Period: "202007", Date: july, Total: &total},
		Lines: []domain.LineInput{domain.NewLine(domain.LineFields{
			NominalID: sales, VatCodeID: standardVat, Goods: amt("100"), Vat: amt("20"),
		})},
	}, "it")
	s.Require().NoError(err)
	return h
}

func (s *PgxLedgerIntegrationSuite) TestPostPersistsEveryLedger() {
	h := s.invoice("PG-INV1")

	stored, err := s.repos.Ledger.FindHeaderByID(s.ctx, domain.ModuleSales, h.ID)
	s.Require().NoError(err)
	s.True(stored.Total.Equal(amt("120")))
	s.True(stored.Due.Equal(amt("120")))
	s.True(stored.Date.Equal(july))

	lines, err := s.repos.Ledger.FindLinesByHeader(s.ctx, h.ID)
	s.Require().NoError(err)
	s.Require().Len(lines, 1)
	s.True(lines[0].Goods.Equal(amt("100")), "lines keep the entered sign of an invoice")
	s.NotNil(lines[0].GoodsNominalTransactionID)
	s.NotNil(lines[0].VatTransactionID)

	nominal, err := s.repos.Ledger.FindNominalTransactions(s.ctx, domain.ModuleSales, h.ID)
	s.Require().NoError(err)
	s.Require().Len(nominal, 3)
	sum := decimal.Zero
	for _, n := range nominal {
		sum = sum.Add(n.Value)
	}
	s.True(sum.IsZero())
	s.Equal(*lines[0].TotalNominalTransactionID, nominal[2].ID)
	s.Equal(debtors, nominal[2].NominalID)

	vat, err := s.repos.Ledger.FindVatTransactions(s.ctx, domain.ModuleSales, h.ID)
	s.Require().NoError(err)
	s.Require().Len(vat, 1)
	s.True(vat[0].VatRate.Equal(amt("20")))

	_, err = s.repos.Ledger.FindHeaderByID(s.ctx, domain.ModulePurchases, h.ID)
	s.ErrorIs(err, apperrors.ErrNotFound, "lookups are module scoped")
}

func (s *PgxLedgerIntegrationSuite) TestReceiptMatchesAndVoidRestores() {
	inv := s.invoice("PG-INV2")

	total := amt("120")
	cb := current
	rec, err := s.service.Post(s.ctx, domain.ModuleSales, domain.Submission{
		Header:  domain.HeaderInput{Type: domain.SaleReceipt, Ref: "PG-REC2", Period: "202007", Date: july, CashBookID: &cb, Total: &total},
		Matches: []domain.MatchInput{{MatchedToID: inv.ID, Value: amt("120")}},
	}, "it")
	s.Require().NoError(err)
	s.True(rec.Due.IsZero())

	stored, err := s.repos.Ledger.FindHeaderByID(s.ctx, domain.ModuleSales, inv.ID)
	s.Require().NoError(err)
	s.True(stored.Due.IsZero())

	entries, err := s.repos.Ledger.FindCashBookTransactions(s.ctx, domain.ModuleSales, rec.ID)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.True(entries[0].Value.Equal(amt("120")))

	nominal, err := s.repos.Ledger.FindNominalTransactions(s.ctx, domain.ModuleSales, rec.ID)
	s.Require().NoError(err)
	s.Require().Len(nominal, 2)
	s.Equal(bank, nominal[0].NominalID)

	_, err = s.service.Void(s.ctx, domain.ModuleSales, rec.ID, "it")
	s.Require().NoError(err)

	stored, err = s.repos.Ledger.FindHeaderByID(s.ctx, domain.ModuleSales, inv.ID)
	s.Require().NoError(err)
	s.True(stored.Due.Equal(amt("120")))

	matches, err := s.repos.Ledger.FindMatchesByHeader(s.ctx, domain.ModuleSales, inv.ID)
	s.Require().NoError(err)
	s.Empty(matches)
}

func (s *PgxLedgerIntegrationSuite) TestRepostUpdatesInPlace() {
	inv := s.invoice("PG-INV3")
	before, err := s.repos.Ledger.FindNominalTransactions(s.ctx, domain.ModuleSales, inv.ID)
	s.Require().NoError(err)
	lines, err := s.repos.Ledger.FindLinesByHeader(s.ctx, inv.ID)
	s.Require().NoError(err)

	total := amt("60")
	_, err = s.service.Repost(s.ctx, domain.ModuleSales, inv.ID, domain.Submission{
		Header: domain.HeaderInput{Type: domain.SaleInvoice, Ref: "PG-INV3", Period: "202007", Date: july, Total: &total},
		Lines: []domain.LineInput{domain.ExistingLine(lines[0].ID, domain.LineFields{
			NominalID: sales, VatCodeID: standardVat, Goods: amt("50"), Vat: amt("10"),
		})},
	}, "it")
	s.Require().NoError(err)

	after, err := s.repos.Ledger.FindNominalTransactions(s.ctx, domain.ModuleSales, inv.ID)
	s.Require().NoError(err)
	s.Require().Len(after, len(before))
	for i := range before {
		s.Equal(before[i].ID, after[i].ID, "postings keep their ids")
	}
	s.True(after[2].Value.Equal(amt("60")))
}

func (s *PgxLedgerIntegrationSuite) TestListHeadersPages() {
	for _, ref := range []string{"PG-P1", "PG-P2", "PG-P3"} {
		s.invoice(ref)
	}

	seen := map[int64]bool{}
	var token *string
	for page := 0; page < 20; page++ {
		headers, next, err := s.repos.Ledger.ListHeaders(s.ctx, portsrepo.HeaderFilter{Module: domain.ModuleSales, Limit: 2, NextToken: token})
		s.Require().NoError(err)
		for _, h := range headers {
			s.False(seen[h.ID], "header %d returned twice", h.ID)
			seen[h.ID] = true
		}
		if next == nil {
			break
		}
		token = next
	}
	s.GreaterOrEqual(len(seen), 3)
}

func (s *PgxLedgerIntegrationSuite) TestUnitOfWorkRollsBack() {
	boom := errors.New("boom")
	var insertedID int64
	err := s.repos.UnitOfWork.WithinTx(s.ctx, func(ctx context.Context, store portsrepo.LedgerStore) error {
		h := domain.Header{
			Module: domain.ModuleNominal, Type: domain.NominalJournal, Period: "202007", Date: july,
			Status: domain.HeaderActive, AuditFields: domain.AuditFields{CreatedAt: july, LastUpdatedAt: july},
		}
		if err := store.InsertHeader(ctx, &h); err != nil {
			return err
		}
		insertedID = h.ID
		return boom
	})
	s.ErrorIs(err, boom)
	s.NotZero(insertedID)

	_, err = s.repos.Ledger.FindHeaderByID(s.ctx, domain.ModuleNominal, insertedID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *PgxLedgerIntegrationSuite) TestDuplicateSlotIsRejected() {
	inv := s.invoice("PG-DUP")
	existing, err := s.repos.Ledger.FindNominalTransactions(s.ctx, domain.ModuleSales, inv.ID)
	s.Require().NoError(err)

	err = s.repos.UnitOfWork.WithinTx(s.ctx, func(ctx context.Context, store portsrepo.LedgerStore) error {
		dup := existing[0]
		dup.ID = 0
		_, err := store.InsertNominalTransactions(ctx, []domain.NominalTransaction{dup})
		return err
	})
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *PgxLedgerIntegrationSuite) TestTrialBalanceNets() {
	s.invoice("PG-TB")

	rows, err := s.repos.Reporting.GetTrialBalanceData(s.ctx, "202007")
	s.Require().NoError(err)
	debit, credit := decimal.Zero, decimal.Zero
	for _, r := range rows {
		debit = debit.Add(r.Debit)
		credit = credit.Add(r.Credit)
	}
	s.True(debit.Equal(credit))

	outstanding, err := s.repos.Reporting.ListOutstandingHeaders(s.ctx, domain.ModuleSales, july)
	s.Require().NoError(err)
	s.NotEmpty(outstanding)
}
