package posting

import (
	"testing"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stored derives a set and assigns ids the way an insert would.
func stored(t *testing.T, h domain.Header, lines []domain.Line) Set {
	t.Helper()
	set, err := Derive(h, lines, accounts(), rates)
	require.NoError(t, err)
	for i := range set.Nominal {
		set.Nominal[i].ID = int64(100 + i)
	}
	for i := range set.Vat {
		set.Vat[i].ID = int64(500 + i)
	}
	for i := range set.CashBook {
		set.CashBook[i].ID = int64(900 + i)
	}
	return set
}

func ids(postings []domain.NominalTransaction) []int64 {
	out := make([]int64, 0, len(postings))
	for _, p := range postings {
		out = append(out, p.ID)
	}
	return out
}

func TestReconcile_IdenticalSubmissionHasNoWrites(t *testing.T) {
	h := header(domain.ModuleSales, domain.SaleInvoice, "240")
	lines := []domain.Line{line(1, 1, "100", "20"), line(2, 2, "100", "20")}
	before := stored(t, h, lines)

	after, err := Derive(h, lines, accounts(), rates)
	require.NoError(t, err)

	nominal := ReconcileNominal(before.Nominal, after.Nominal)
	vat := ReconcileVat(before.Vat, after.Vat)

	assert.False(t, nominal.HasWrites())
	assert.False(t, vat.HasWrites())
	assert.ElementsMatch(t, ids(before.Nominal), ids(nominal.Final()))
}

func TestReconcile_EditOneLineKeepsOthers(t *testing.T) {
	h := header(domain.ModuleSales, domain.SaleInvoice, "240")
	lines := []domain.Line{line(1, 1, "100", "20"), line(2, 2, "100", "20")}
	before := stored(t, h, lines)

	lines[1].Goods = dec("50")
	lines[1].Vat = dec("10")
	after, err := Derive(h, lines, accounts(), rates)
	require.NoError(t, err)

	plan := ReconcileNominal(before.Nominal, after.Nominal)
	assert.Empty(t, plan.Create)
	assert.Empty(t, plan.Delete)
	require.Len(t, plan.Update, 3)
	for _, p := range plan.Update {
		assert.Equal(t, int64(2), p.Key.LineID)
	}
	assert.Equal(t, []int64{100, 101, 102}, ids(plan.Unchanged))
	assert.Equal(t, []int64{103, 104, 105}, ids(plan.Update))
}

func TestReconcile_FieldGoesToZeroDeletesPosting(t *testing.T) {
	h := header(domain.ModuleSales, domain.SaleInvoice, "120")
	lines := []domain.Line{line(1, 1, "100", "20")}
	before := stored(t, h, lines)

	lines[0].Vat = dec("0")
	after, err := Derive(h, lines, accounts(), rates)
	require.NoError(t, err)

	plan := ReconcileNominal(before.Nominal, after.Nominal)
	assert.Equal(t, []int64{101}, plan.Delete)
	assert.Len(t, plan.Update, 1, "control posting value changes")
	assert.Len(t, plan.Unchanged, 1, "goods posting untouched")
	assert.Empty(t, plan.Create)

	vat := ReconcileVat(before.Vat, after.Vat)
	assert.Len(t, vat.Update, 1)
	assert.Equal(t, int64(500), vat.Update[0].ID)
}

func TestReconcile_FieldBecomesNonZeroCreatesPosting(t *testing.T) {
	h := header(domain.ModuleSales, domain.SaleInvoice, "100")
	lines := []domain.Line{line(1, 1, "100", "0")}
	before := stored(t, h, lines)

	lines[0].Vat = dec("20")
	after, err := Derive(h, lines, accounts(), rates)
	require.NoError(t, err)

	plan := ReconcileNominal(before.Nominal, after.Nominal)
	require.Len(t, plan.Create, 1)
	assert.Equal(t, domain.FieldVat, plan.Create[0].Field)
	assert.Zero(t, plan.Create[0].ID)
	assert.Empty(t, plan.Delete)
}

func TestReconcile_DeletedAndNewLines(t *testing.T) {
	h := header(domain.ModuleSales, domain.SaleInvoice, "240")
	before := stored(t, h, []domain.Line{line(1, 1, "100", "20"), line(2, 2, "100", "20")})

	after, err := Derive(h, []domain.Line{line(1, 1, "100", "20"), line(3, 2, "100", "20")}, accounts(), rates)
	require.NoError(t, err)

	plan := ReconcileNominal(before.Nominal, after.Nominal)
	assert.Equal(t, []int64{103, 104, 105}, plan.Delete)
	assert.Len(t, plan.Create, 3)
	assert.Len(t, plan.Unchanged, 3)

	vat := ReconcileVat(before.Vat, after.Vat)
	assert.Equal(t, []int64{501}, vat.Delete)
	assert.Len(t, vat.Create, 1)
}

func TestReconcile_HeaderOnlyEditCascades(t *testing.T) {
	h := header(domain.ModuleCashBook, domain.CashBookReceipt, "120")
	lines := []domain.Line{line(1, 1, "100", "20")}
	before := stored(t, h, lines)

	h.Period = "202008"
	h.Ref = "changed"
	after, err := Derive(h, lines, accounts(), rates)
	require.NoError(t, err)

	plan := ReconcileNominal(before.Nominal, after.Nominal)
	assert.Empty(t, plan.Create)
	assert.Empty(t, plan.Delete)
	require.Len(t, plan.Update, 3)
	for i, p := range plan.Update {
		assert.Equal(t, before.Nominal[i].ID, p.ID)
		assert.Equal(t, before.Nominal[i].Field, p.Field)
		assert.True(t, before.Nominal[i].Value.Equal(p.Value))
		assert.Equal(t, "202008", p.Period)
		assert.Equal(t, "changed", p.Ref)
	}

	cb := ReconcileCashBook(before.CashBook, after.CashBook)
	require.Len(t, cb.Update, 1)
	assert.Equal(t, int64(900), cb.Update[0].ID)
	assert.Equal(t, "202008", cb.Update[0].Period)
}

func TestReconcile_DuplicateStoredRowsAreDeleted(t *testing.T) {
	h := header(domain.ModuleSales, domain.SaleInvoice, "100")
	before := stored(t, h, []domain.Line{line(1, 1, "100", "0")})
	dup := before.Nominal[0]
	dup.ID = 999
	existing := append(before.Nominal, dup)

	plan := ReconcileNominal(existing, before.Nominal)
	assert.Equal(t, []int64{999}, plan.Delete)
	assert.False(t, len(plan.Update) > 0)
}

func TestWire(t *testing.T) {
	h := header(domain.ModuleSales, domain.SaleInvoice, "220")
	lines := []domain.Line{line(1, 1, "100", "20"), line(2, 2, "100", "0")}
	set := stored(t, h, lines)

	wired, changed := Wire(lines, set.Nominal, set.Vat)
	require.Len(t, wired, 2)
	assert.Len(t, changed, 2)

	assert.Equal(t, int64(100), *wired[0].GoodsNominalTransactionID)
	assert.Equal(t, int64(101), *wired[0].VatNominalTransactionID)
	assert.Equal(t, int64(102), *wired[0].TotalNominalTransactionID)
	assert.Equal(t, int64(500), *wired[0].VatTransactionID)

	assert.Equal(t, int64(103), *wired[1].GoodsNominalTransactionID)
	assert.Nil(t, wired[1].VatNominalTransactionID)
	assert.Equal(t, int64(104), *wired[1].TotalNominalTransactionID)
	assert.Equal(t, int64(501), *wired[1].VatTransactionID)

	_, changed = Wire(wired, set.Nominal, set.Vat)
	assert.Empty(t, changed, "rewiring the same set changes nothing")
}
