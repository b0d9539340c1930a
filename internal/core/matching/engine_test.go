package matching

import (
	"errors"
	"testing"

	"github.com/SscSPs/bookkeeping_ledger/internal/apperrors"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T {
	return &v
}

func sales(id int64, typ domain.TransactionType, ref, total string) domain.Header {
	h := domain.Header{ID: id, Module: domain.ModuleSales, Type: typ, Ref: ref, Period: "202007", Total: dec(total), Status: domain.HeaderActive}
	h.SetDue(h.Total)
	return h
}

func index(headers ...domain.Header) map[int64]domain.Header {
	out := make(map[int64]domain.Header, len(headers))
	for _, h := range headers {
		out[h.ID] = h
	}
	return out
}

func TestAllocate_InvoiceFullyMatchedToReceipt(t *testing.T) {
	invoice := sales(0, domain.SaleInvoice, "inv", "2400")
	receipt := sales(2, domain.SaleReceipt, "rec", "-2400")

	res, errs := Allocate(invoice, nil, []domain.MatchInput{{MatchedToID: 2, Value: dec("-2400")}}, index(receipt))
	require.Empty(t, errs)

	require.Len(t, res.Create, 1)
	assert.True(t, res.Create[0].Value.Equal(dec("-2400")))
	assert.Equal(t, int64(2), res.Create[0].MatchedToID)
	assert.Equal(t, domain.ModuleSales, res.Create[0].Module)
	assert.True(t, res.Due.IsZero())
	assert.True(t, res.Paid.Equal(dec("2400")))

	require.Len(t, res.Counterparties, 1)
	assert.True(t, res.Counterparties[0].Due.IsZero())
	assert.True(t, res.Counterparties[0].Paid.Equal(dec("-2400")))
}

func TestAllocate_CounterpartyOverMatched(t *testing.T) {
	receipt := sales(0, domain.SaleReceipt, "rec", "-2500")
	invoice := sales(1, domain.SaleInvoice, "inv", "2400")

	_, errs := Allocate(receipt, nil, []domain.MatchInput{{MatchedToID: 1, Value: dec("2400.01")}}, index(invoice))
	require.Len(t, errs, 1)

	var rangeErr *apperrors.MatchRangeError
	require.True(t, errors.As(errs, &rangeErr))
	assert.False(t, rangeErr.Aggregate)
	assert.Equal(t, int64(1), rangeErr.HeaderID)
	assert.Contains(t, rangeErr.Error(), "Please ensure the total of the transactions you are matching is between 0 and 2400.00")
	assert.ErrorIs(t, errs, apperrors.ErrValidation)
}

func TestAllocate_AggregateOutOfRange(t *testing.T) {
	invoice := sales(0, domain.SaleInvoice, "inv", "2400")
	other := sales(1, domain.SaleInvoice, "other", "2400")

	_, errs := Allocate(invoice, nil, []domain.MatchInput{{MatchedToID: 1, Value: dec("0.01")}}, index(other))
	require.Len(t, errs, 1)
	assert.Equal(t, "Please ensure the total of the transactions you are matching is between 0 and 2400.00", errs[0].Error())
}

func TestAllocate_ZeroValueIsSkipped(t *testing.T) {
	invoice := sales(0, domain.SaleInvoice, "inv", "2400")
	receipt := sales(2, domain.SaleReceipt, "rec", "-2400")

	res, errs := Allocate(invoice, nil, []domain.MatchInput{{MatchedToID: 2, Value: decimal.Zero}}, index(receipt))
	require.Empty(t, errs)
	assert.False(t, res.HasWrites())
	assert.Empty(t, res.Counterparties)
	assert.True(t, res.Due.Equal(dec("2400")))
}

func TestAllocate_EditExistingAsMatchedBy(t *testing.T) {
	receipt := sales(2, domain.SaleReceipt, "rec", "-2400")
	invoice := sales(1, domain.SaleInvoice, "inv", "2400")
	invoice.SetDue(decimal.Zero)
	existing := domain.Match{ID: 9, Module: domain.ModuleSales, MatchedByID: 2, MatchedToID: 1, Value: dec("2400")}

	res, errs := Allocate(receipt, []domain.Match{existing}, []domain.MatchInput{{ID: ptr(int64(9)), MatchedToID: 1, Value: dec("1000")}}, index(invoice))
	require.Empty(t, errs)

	require.Len(t, res.Update, 1)
	assert.True(t, res.Update[0].Value.Equal(dec("1000")))
	assert.True(t, res.Due.Equal(dec("-1400")))
	assert.True(t, res.Paid.Equal(dec("-1000")))
	require.Len(t, res.Counterparties, 1)
	assert.True(t, res.Counterparties[0].Due.Equal(dec("1400")))
	assert.True(t, res.Counterparties[0].Paid.Equal(dec("1000")))
}

func TestAllocate_EditExistingAsMatchedTo(t *testing.T) {
	invoice := sales(1, domain.SaleInvoice, "inv", "2400")
	receipt := sales(2, domain.SaleReceipt, "rec", "-2400")
	receipt.SetDue(decimal.Zero)
	existing := domain.Match{ID: 9, Module: domain.ModuleSales, MatchedByID: 2, MatchedToID: 1, Value: dec("2400")}

	res, errs := Allocate(invoice, []domain.Match{existing}, []domain.MatchInput{{ID: ptr(int64(9)), Value: dec("-1000")}}, index(receipt))
	require.Empty(t, errs)

	require.Len(t, res.Update, 1)
	assert.True(t, res.Update[0].Value.Equal(dec("1000")), "stored in the invoice's convention")
	assert.True(t, res.Due.Equal(dec("1400")))
	assert.True(t, res.Counterparties[0].Due.Equal(dec("-1400")))
}

func TestAllocate_UnchangedExistingMatchIsNotRewritten(t *testing.T) {
	invoice := sales(1, domain.SaleInvoice, "inv", "2400")
	receipt := sales(2, domain.SaleReceipt, "rec", "-2400")
	receipt.SetDue(decimal.Zero)
	existing := domain.Match{ID: 9, Module: domain.ModuleSales, MatchedByID: 2, MatchedToID: 1, Value: dec("2400")}

	res, errs := Allocate(invoice, []domain.Match{existing}, []domain.MatchInput{{ID: ptr(int64(9)), Value: dec("-2400")}}, index(receipt))
	require.Empty(t, errs)
	assert.False(t, res.HasWrites())
	assert.True(t, res.Due.IsZero())
}

func TestAllocate_ZeroOnExistingDeletes(t *testing.T) {
	receipt := sales(2, domain.SaleReceipt, "rec", "-2400")
	receipt.SetDue(decimal.Zero)
	invoice := sales(1, domain.SaleInvoice, "inv", "2400")
	invoice.SetDue(decimal.Zero)
	existing := domain.Match{ID: 9, Module: domain.ModuleSales, MatchedByID: 2, MatchedToID: 1, Value: dec("2400")}

	res, errs := Allocate(receipt, []domain.Match{existing}, []domain.MatchInput{{ID: ptr(int64(9)), Value: decimal.Zero}}, index(invoice))
	require.Empty(t, errs)
	assert.Equal(t, []int64{9}, res.Delete)
	assert.True(t, res.Due.Equal(dec("-2400")))
	assert.True(t, res.Counterparties[0].Due.Equal(dec("2400")))
	assert.True(t, res.Counterparties[0].Paid.IsZero())
}

func TestAllocate_UntouchedExistingMatchStillCounts(t *testing.T) {
	invoice := sales(1, domain.SaleInvoice, "inv", "1000")
	receipt := sales(2, domain.SaleReceipt, "rec", "-2400")
	receipt.SetDue(decimal.Zero)
	existing := domain.Match{ID: 9, Module: domain.ModuleSales, MatchedByID: 2, MatchedToID: 1, Value: dec("2400")}

	// the invoice was reduced to 1000 but is still fully matched for 2400
	_, errs := Allocate(invoice, []domain.Match{existing}, nil, index(receipt))
	require.Len(t, errs, 1)
	var rangeErr *apperrors.MatchRangeError
	require.True(t, errors.As(errs, &rangeErr))
	assert.True(t, rangeErr.Aggregate)
	assert.True(t, rangeErr.Upper.Equal(dec("1000")))
}

func TestAllocate_ExpectedDueConflict(t *testing.T) {
	invoice := sales(0, domain.SaleInvoice, "inv", "2400")
	receipt := sales(2, domain.SaleReceipt, "rec", "-2400")
	receipt.SetDue(dec("-1000"))

	_, errs := Allocate(invoice, nil, []domain.MatchInput{{MatchedToID: 2, Value: dec("-1000"), ExpectedDue: ptr(dec("-2400"))}}, index(receipt))
	require.Len(t, errs, 1)

	var conflict *apperrors.ConcurrentEditConflict
	require.True(t, errors.As(errs, &conflict))
	assert.True(t, conflict.Actual.Equal(dec("-1000")))
	assert.Equal(t, apperrors.CodeConcurrentEdit, conflict.Code())
}

func TestAllocate_IneligibleCounterparties(t *testing.T) {
	invoice := sales(5, domain.SaleInvoice, "inv", "2400")
	purchase := domain.Header{ID: 6, Module: domain.ModulePurchases, Ref: "pl", Total: dec("-100"), Due: dec("-100"), Status: domain.HeaderActive}
	voided := sales(7, domain.SaleReceipt, "void", "0")
	voided.Status = domain.HeaderVoid

	requests := []domain.MatchInput{
		{MatchedToID: 5, Value: dec("1")},
		{MatchedToID: 6, Value: dec("-1")},
		{MatchedToID: 7, Value: dec("0")},
		{MatchedToID: 8, Value: dec("1")},
		{ID: ptr(int64(77)), Value: dec("1")},
	}
	_, errs := Allocate(invoice, nil, requests, index(purchase, voided))
	require.Len(t, errs, 5)
	assert.Equal(t, apperrors.CodeRuleViolation, errs[0].Code())
	assert.Equal(t, apperrors.CodeRuleViolation, errs[1].Code())
	assert.Equal(t, apperrors.CodeRuleViolation, errs[2].Code())
	assert.Equal(t, apperrors.CodeInvalidReference, errs[3].Code())
	assert.Equal(t, "matches[4].id", errs[4].Field())
}

func TestAllocate_SeveralAgainstOneCounterparty(t *testing.T) {
	credit := sales(0, domain.SaleCreditNote, "cn", "-100")
	invoice := sales(1, domain.SaleInvoice, "inv", "150")

	res, errs := Allocate(credit, nil, []domain.MatchInput{
		{MatchedToID: 1, Value: dec("60")},
		{MatchedToID: 1, Value: dec("40")},
	}, index(invoice))
	require.Empty(t, errs)
	assert.Len(t, res.Create, 2)
	assert.True(t, res.Due.IsZero())
	assert.True(t, res.Counterparties[0].Due.Equal(dec("50")))

	_, errs = Allocate(credit, nil, []domain.MatchInput{
		{MatchedToID: 1, Value: dec("100")},
		{MatchedToID: 1, Value: dec("60")},
	}, index(invoice))
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0].Error(), "between 0 and 50.00")
}

func TestRelease(t *testing.T) {
	invoice := sales(1, domain.SaleInvoice, "inv", "2400")
	invoice.SetDue(dec("400"))
	credit := sales(3, domain.SaleCreditNote, "cn", "-500")
	credit.SetDue(dec("-300"))
	existing := []domain.Match{
		{ID: 1, MatchedByID: 2, MatchedToID: 1, Value: dec("2000")},
		{ID: 2, MatchedByID: 3, MatchedToID: 2, Value: dec("200")},
	}

	restored, err := Release(2, existing, index(invoice, credit))
	require.NoError(t, err)
	require.Len(t, restored, 2)
	assert.True(t, restored[0].Due.Equal(dec("2400")))
	assert.True(t, restored[0].Paid.IsZero())
	assert.True(t, restored[1].Due.Equal(dec("-500")))

	_, err = Release(2, existing, index(invoice))
	assert.Error(t, err)
}
