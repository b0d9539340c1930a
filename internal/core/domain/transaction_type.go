package domain

import "github.com/shopspring/decimal"

// TransactionType is the per-module document type of a header.
type TransactionType string

const (
	PurchaseInvoice    TransactionType = "pi"
	PurchaseCreditNote TransactionType = "pc"
	PurchasePayment    TransactionType = "pp"
	PurchaseRefund     TransactionType = "pr"

	SaleInvoice    TransactionType = "si"
	SaleCreditNote TransactionType = "sc"
	SaleReceipt    TransactionType = "sp"
	SaleRefund     TransactionType = "sr"

	NominalJournal TransactionType = "nj"

	CashBookPayment TransactionType = "cp"
	CashBookReceipt TransactionType = "cr"
)

// TypeInfo describes how a transaction type is entered and posted.
type TypeInfo struct {
	Type   TransactionType
	Module Module
	Label  string
	// Negate is set for types whose user-entered values are stored negated.
	Negate bool
	// Payment types carry no analysis lines and post straight to bank and control.
	Payment bool
	// Journal types are entered signed and validated for balance.
	Journal bool
	// VatType is empty for journals, where the header chooses.
	VatType VatType
}

// Sign is the multiplier from user-entered values to stored values.
func (t TypeInfo) Sign() decimal.Decimal {
	if t.Negate {
		return decimal.NewFromInt(-1)
	}
	return decimal.NewFromInt(1)
}

// NeedsCashBook reports whether the header must name a cash book.
func (t TypeInfo) NeedsCashBook() bool {
	return t.Payment || t.Module == ModuleCashBook
}

var transactionTypes = map[TransactionType]TypeInfo{
	PurchaseInvoice:    {Type: PurchaseInvoice, Module: ModulePurchases, Label: "Invoice", VatType: VatInput},
	PurchaseCreditNote: {Type: PurchaseCreditNote, Module: ModulePurchases, Label: "Credit Note", Negate: true, VatType: VatInput},
	PurchasePayment:    {Type: PurchasePayment, Module: ModulePurchases, Label: "Payment", Negate: true, Payment: true, VatType: VatInput},
	PurchaseRefund:     {Type: PurchaseRefund, Module: ModulePurchases, Label: "Refund", Payment: true, VatType: VatInput},

	SaleInvoice:    {Type: SaleInvoice, Module: ModuleSales, Label: "Invoice", VatType: VatOutput},
	SaleCreditNote: {Type: SaleCreditNote, Module: ModuleSales, Label: "Credit Note", Negate: true, VatType: VatOutput},
	SaleReceipt:    {Type: SaleReceipt, Module: ModuleSales, Label: "Receipt", Negate: true, Payment: true, VatType: VatOutput},
	SaleRefund:     {Type: SaleRefund, Module: ModuleSales, Label: "Refund", Payment: true, VatType: VatOutput},

	NominalJournal: {Type: NominalJournal, Module: ModuleNominal, Label: "Journal", Journal: true},

	CashBookPayment: {Type: CashBookPayment, Module: ModuleCashBook, Label: "Payment", Negate: true, VatType: VatInput},
	CashBookReceipt: {Type: CashBookReceipt, Module: ModuleCashBook, Label: "Receipt", VatType: VatOutput},
}

// LookupType returns the description of t.
func LookupType(t TransactionType) (TypeInfo, bool) {
	info, ok := transactionTypes[t]
	return info, ok
}
