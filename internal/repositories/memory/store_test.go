package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/apperrors"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2020, 7, d, 0, 0, 0, 0, time.UTC)
}

func insertHeader(t *testing.T, s *Store, h domain.Header) domain.Header {
	t.Helper()
	err := s.WithinTx(context.Background(), func(ctx context.Context, store portsrepo.LedgerStore) error {
		return store.InsertHeader(ctx, &h)
	})
	require.NoError(t, err)
	return h
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	s := NewStore()
	boom := errors.New("boom")

	err := s.WithinTx(context.Background(), func(ctx context.Context, store portsrepo.LedgerStore) error {
		h := domain.Header{Module: domain.ModuleSales, Ref: "x", Status: domain.HeaderActive}
		require.NoError(t, store.InsertHeader(ctx, &h))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	headers, _, err := s.ListHeaders(context.Background(), portsrepo.HeaderFilter{Module: domain.ModuleSales})
	require.NoError(t, err)
	assert.Empty(t, headers)
}

func TestWithinTx_RollsBackOnCancelledContext(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())

	err := s.WithinTx(ctx, func(ctx context.Context, store portsrepo.LedgerStore) error {
		h := domain.Header{Module: domain.ModuleSales, Status: domain.HeaderActive}
		cancel()
		return store.InsertHeader(ctx, &h)
	})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = s.FindHeaderByID(context.Background(), domain.ModuleSales, 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFindHeaderByID_WrongModule(t *testing.T) {
	s := NewStore()
	h := insertHeader(t, s, domain.Header{Module: domain.ModuleSales, Status: domain.HeaderActive})

	_, err := s.FindHeaderByID(context.Background(), domain.ModulePurchases, h.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	got, err := s.FindHeaderByID(context.Background(), domain.ModuleSales, h.ID)
	require.NoError(t, err)
	assert.Equal(t, h.ID, got.ID)
}

func TestListHeaders_PaginatesByDateThenID(t *testing.T) {
	s := NewStore()
	for _, d := range []int{3, 1, 2, 1} {
		insertHeader(t, s, domain.Header{Module: domain.ModuleSales, Date: day(d), Status: domain.HeaderActive})
	}
	insertHeader(t, s, domain.Header{Module: domain.ModuleSales, Date: day(1), Status: domain.HeaderVoid})

	ctx := context.Background()
	page, next, err := s.ListHeaders(ctx, portsrepo.HeaderFilter{Module: domain.ModuleSales, Limit: 2})
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, []int64{2, 4}, headerIDs(page))

	page, next, err = s.ListHeaders(ctx, portsrepo.HeaderFilter{Module: domain.ModuleSales, Limit: 2, NextToken: next})
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, []int64{3, 1}, headerIDs(page))

	all, _, err := s.ListHeaders(ctx, portsrepo.HeaderFilter{Module: domain.ModuleSales, IncludeVoid: true})
	require.NoError(t, err)
	assert.Len(t, all, 5)

	bad := "not-a-token"
	_, _, err = s.ListHeaders(ctx, portsrepo.HeaderFilter{Module: domain.ModuleSales, NextToken: &bad})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func headerIDs(headers []domain.Header) []int64 {
	out := make([]int64, 0, len(headers))
	for _, h := range headers {
		out = append(out, h.ID)
	}
	return out
}

func TestInsertNominalTransactions_RejectsDuplicateSlot(t *testing.T) {
	s := NewStore()
	key := domain.LedgerKey{Module: domain.ModuleNominal, HeaderID: 1, LineID: 1}
	p := domain.NominalTransaction{Key: key, NominalID: 4000, Value: decimal.NewFromInt(10), Field: domain.FieldGoods}

	err := s.WithinTx(context.Background(), func(ctx context.Context, store portsrepo.LedgerStore) error {
		if _, err := store.InsertNominalTransactions(ctx, []domain.NominalTransaction{p}); err != nil {
			return err
		}
		_, err := store.InsertNominalTransactions(ctx, []domain.NominalTransaction{p})
		return err
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestUpdateLines_Missing(t *testing.T) {
	s := NewStore()
	err := s.WithinTx(context.Background(), func(ctx context.Context, store portsrepo.LedgerStore) error {
		return store.UpdateLines(ctx, []domain.Line{{ID: 99}})
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestReferenceData(t *testing.T) {
	s := NewStore()
	s.SeedNominal(domain.Nominal{ID: 1, Name: "Sales"})
	s.SeedVatCode(domain.VatCode{ID: 1, Code: "S", Rate: decimal.NewFromInt(20)})
	s.SeedCashBook(domain.CashBook{ID: 1, Name: "Current", NominalID: 1200})

	ctx := context.Background()
	nominals, err := s.FindNominalsByIDs(ctx, []int64{1, 2})
	require.NoError(t, err)
	assert.Len(t, nominals, 1)

	codes, err := s.FindVatCodesByIDs(ctx, []int64{1})
	require.NoError(t, err)
	assert.True(t, codes[1].Rate.Equal(decimal.NewFromInt(20)))

	cb, err := s.FindCashBookByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1200), cb.NominalID)

	_, err = s.FindCashBookByID(ctx, 2)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestReporting(t *testing.T) {
	s := NewStore()
	s.SeedNominal(domain.Nominal{ID: 1100, Name: "Debtors"})
	s.SeedNominal(domain.Nominal{ID: 4000, Name: "Sales"})

	contact := int64(5)
	inv := insertHeader(t, s, domain.Header{Module: domain.ModuleSales, Date: day(1), Total: decimal.NewFromInt(120), Due: decimal.NewFromInt(120), ContactID: &contact, Status: domain.HeaderActive})
	insertHeader(t, s, domain.Header{Module: domain.ModuleSales, Date: day(2), Total: decimal.NewFromInt(50), Due: decimal.Zero, Status: domain.HeaderActive})
	insertHeader(t, s, domain.Header{Module: domain.ModuleSales, Date: day(20), Total: decimal.NewFromInt(50), Due: decimal.NewFromInt(50), Status: domain.HeaderActive})

	err := s.WithinTx(context.Background(), func(ctx context.Context, store portsrepo.LedgerStore) error {
		key := inv.Key(1)
		_, err := store.InsertNominalTransactions(ctx, []domain.NominalTransaction{
			{Key: key, NominalID: 4000, Value: decimal.NewFromInt(-120), Field: domain.FieldGoods, Period: "202007"},
			{Key: key, NominalID: 1100, Value: decimal.NewFromInt(120), Field: domain.FieldTotal, Period: "202007"},
		})
		return err
	})
	require.NoError(t, err)

	rows, err := s.GetTrialBalanceData(context.Background(), "202007")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Debtors", rows[0].NominalName)
	assert.True(t, rows[0].Debit.Equal(decimal.NewFromInt(120)))
	assert.True(t, rows[1].Credit.Equal(decimal.NewFromInt(120)))

	rows, err = s.GetTrialBalanceData(context.Background(), "202008")
	require.NoError(t, err)
	assert.Empty(t, rows)

	outstanding, err := s.ListOutstandingHeaders(context.Background(), domain.ModuleSales, day(10))
	require.NoError(t, err)
	assert.Equal(t, []int64{inv.ID}, headerIDs(outstanding))
}

func TestSeedDefaults(t *testing.T) {
	s := NewStore()
	s.SeedDefaults()
	repos := NewRepositoryProvider(s)

	nominals, err := repos.Ledger.FindNominalsByIDs(context.Background(), []int64{1100, 1200, 2100, 2200, 4000, 5000})
	require.NoError(t, err)
	assert.Len(t, nominals, 6)

	cb, err := repos.Ledger.FindCashBookByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1200), cb.NominalID)
}
