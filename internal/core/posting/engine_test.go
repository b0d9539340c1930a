package posting

import (
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	salesNominal   int64 = 4000
	vatNominal     int64 = 2200
	controlNominal int64 = 1100
	bankNominal    int64 = 1200
	cashBookID     int64 = 7
	standardRate   int64 = 1
)

var rates = map[int64]decimal.Decimal{standardRate: decimal.NewFromInt(20)}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func accounts() Accounts {
	return Accounts{ControlNominalID: controlNominal, VatNominalID: vatNominal, BankNominalID: bankNominal, CashBookID: cashBookID}
}

func header(module domain.Module, typ domain.TransactionType, total string) domain.Header {
	return domain.Header{
		ID:     10,
		Module: module,
		Type:   typ,
		Ref:    "ref",
		Period: "202007",
		Date:   time.Date(2020, 7, 1, 0, 0, 0, 0, time.UTC),
		Total:  dec(total),
		Status: domain.HeaderActive,
	}
}

func line(id int64, no int, goods, vat string) domain.Line {
	return domain.Line{ID: id, HeaderID: 10, LineNo: no, NominalID: salesNominal, VatCodeID: standardRate, Goods: dec(goods), Vat: dec(vat)}
}

func sum(postings []domain.NominalTransaction) decimal.Decimal {
	total := decimal.Zero
	for _, p := range postings {
		total = total.Add(p.Value)
	}
	return total
}

func TestDerive_JournalTwoLines(t *testing.T) {
	h := header(domain.ModuleNominal, domain.NominalJournal, "120")
	lines := []domain.Line{line(1, 1, "100", "20"), line(2, 2, "-100", "-20")}

	set, err := Derive(h, lines, accounts(), rates)
	require.NoError(t, err)

	require.Len(t, set.Nominal, 4)
	assert.Equal(t, domain.FieldGoods, set.Nominal[0].Field)
	assert.True(t, set.Nominal[0].Value.Equal(dec("100")))
	assert.Equal(t, int64(1), set.Nominal[0].Key.LineID)
	assert.Equal(t, domain.FieldVat, set.Nominal[1].Field)
	assert.True(t, set.Nominal[1].Value.Equal(dec("20")))
	assert.Equal(t, vatNominal, set.Nominal[1].NominalID)
	assert.True(t, set.Nominal[2].Value.Equal(dec("-100")))
	assert.True(t, set.Nominal[3].Value.Equal(dec("-20")))
	assert.Equal(t, int64(2), set.Nominal[3].Key.LineID)
	assert.True(t, sum(set.Nominal).IsZero())

	assert.Len(t, set.Vat, 2)
	assert.Empty(t, set.CashBook)
}

func TestDerive_SalesInvoiceTwentyLines(t *testing.T) {
	h := header(domain.ModuleSales, domain.SaleInvoice, "2400")
	var lines []domain.Line
	for i := 1; i <= 20; i++ {
		lines = append(lines, line(int64(i), i, "100", "20"))
	}

	set, err := Derive(h, lines, accounts(), rates)
	require.NoError(t, err)

	assert.Len(t, set.Nominal, 60)
	assert.Len(t, set.Vat, 20)
	assert.True(t, sum(set.Nominal).IsZero())

	// sales analysis is credited, the control account debited
	assert.True(t, set.Nominal[0].Value.Equal(dec("-100")))
	assert.Equal(t, salesNominal, set.Nominal[0].NominalID)
	assert.True(t, set.Nominal[1].Value.Equal(dec("-20")))
	assert.True(t, set.Nominal[2].Value.Equal(dec("120")))
	assert.Equal(t, controlNominal, set.Nominal[2].NominalID)
	assert.Equal(t, domain.FieldTotal, set.Nominal[2].Field)

	assert.Equal(t, domain.VatOutput, set.Vat[0].VatType)
	assert.Equal(t, domain.SaleInvoice, set.Vat[0].TranType)
	assert.True(t, set.Vat[0].VatRate.Equal(decimal.NewFromInt(20)))
}

func TestDerive_PurchaseInvoiceSigns(t *testing.T) {
	h := header(domain.ModulePurchases, domain.PurchaseInvoice, "120")

	set, err := Derive(h, []domain.Line{line(1, 1, "100", "20")}, accounts(), rates)
	require.NoError(t, err)

	require.Len(t, set.Nominal, 3)
	assert.True(t, set.Nominal[0].Value.Equal(dec("100")))
	assert.True(t, set.Nominal[1].Value.Equal(dec("20")))
	assert.True(t, set.Nominal[2].Value.Equal(dec("-120")))
	assert.Equal(t, domain.VatInput, set.Vat[0].VatType)
}

func TestDerive_PostingCardinality(t *testing.T) {
	tests := []struct {
		name   string
		goods  string
		vat    string
		fields []domain.PostingField
	}{
		{"goods and vat", "100", "20", []domain.PostingField{domain.FieldGoods, domain.FieldVat, domain.FieldTotal}},
		{"goods only", "100", "0", []domain.PostingField{domain.FieldGoods, domain.FieldTotal}},
		{"vat only", "0", "20", []domain.PostingField{domain.FieldVat, domain.FieldTotal}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := header(domain.ModuleSales, domain.SaleInvoice, "0")
			set, err := Derive(h, []domain.Line{line(1, 1, tt.goods, tt.vat)}, accounts(), rates)
			require.NoError(t, err)

			var fields []domain.PostingField
			for _, p := range set.Nominal {
				fields = append(fields, p.Field)
			}
			assert.Equal(t, tt.fields, fields)
			assert.Len(t, set.Vat, 1)
			assert.True(t, sum(set.Nominal).IsZero())
		})
	}
}

func TestDerive_SalesReceiptWithoutLines(t *testing.T) {
	h := header(domain.ModuleSales, domain.SaleReceipt, "-2400")

	set, err := Derive(h, nil, accounts(), rates)
	require.NoError(t, err)

	require.Len(t, set.Nominal, 2)
	bank, control := set.Nominal[0], set.Nominal[1]
	assert.Equal(t, bankNominal, bank.NominalID)
	assert.Equal(t, PaymentBankLine, bank.Key.LineID)
	assert.True(t, bank.Value.Equal(dec("2400")))
	assert.Equal(t, controlNominal, control.NominalID)
	assert.Equal(t, PaymentControlLine, control.Key.LineID)
	assert.True(t, control.Value.Equal(dec("-2400")))

	require.Len(t, set.CashBook, 1)
	assert.Equal(t, cashBookID, set.CashBook[0].CashBookID)
	assert.True(t, set.CashBook[0].Value.Equal(bank.Value))
	assert.Empty(t, set.Vat)
}

func TestDerive_PurchasePaymentWithoutLines(t *testing.T) {
	h := header(domain.ModulePurchases, domain.PurchasePayment, "-500")

	set, err := Derive(h, nil, accounts(), rates)
	require.NoError(t, err)

	require.Len(t, set.Nominal, 2)
	assert.True(t, set.Nominal[0].Value.Equal(dec("-500")), "bank is credited for a payment")
	assert.True(t, set.Nominal[1].Value.Equal(dec("500")))
}

func TestDerive_ZeroPaymentPostsNothing(t *testing.T) {
	h := header(domain.ModuleSales, domain.SaleReceipt, "0")

	set, err := Derive(h, nil, accounts(), rates)
	require.NoError(t, err)
	assert.Empty(t, set.Nominal)
	assert.Empty(t, set.CashBook)
}

func TestDerive_CashBookReceiptMirrorsBank(t *testing.T) {
	h := header(domain.ModuleCashBook, domain.CashBookReceipt, "120")

	set, err := Derive(h, []domain.Line{line(1, 1, "100", "20")}, accounts(), rates)
	require.NoError(t, err)

	require.Len(t, set.Nominal, 3)
	total := set.Nominal[2]
	assert.Equal(t, bankNominal, total.NominalID)
	assert.True(t, total.Value.Equal(dec("120")))
	require.Len(t, set.CashBook, 1)
	assert.True(t, set.CashBook[0].Value.Equal(total.Value))
	assert.Equal(t, total.Slot(), set.CashBook[0].Slot())
	assert.Equal(t, domain.VatOutput, set.Vat[0].VatType)
}

func TestDerive_Errors(t *testing.T) {
	h := header(domain.ModuleSales, domain.SaleInvoice, "120")

	_, err := Derive(h, []domain.Line{line(0, 1, "100", "20")}, accounts(), rates)
	assert.ErrorIs(t, err, ErrUnsavedLine)

	missing := line(1, 1, "100", "20")
	missing.VatCodeID = 99
	_, err = Derive(h, []domain.Line{missing}, accounts(), rates)
	assert.ErrorIs(t, err, ErrMissingVatRate)

	_, err = Derive(h, []domain.Line{line(1, 1, "100", "20")}, Accounts{VatNominalID: vatNominal}, rates)
	assert.ErrorIs(t, err, ErrMissingAccount)

	h.Type = "zz"
	_, err = Derive(h, nil, accounts(), rates)
	assert.ErrorIs(t, err, ErrUnknownType)
}
