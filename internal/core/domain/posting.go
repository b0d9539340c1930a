package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerKey locates the header and line that own a posting. Header ids are
// stored by value so one table can serve every module.
type LedgerKey struct {
	Module   Module `json:"module"`
	HeaderID int64  `json:"headerID"`
	LineID   int64  `json:"lineID"`
}

// Slot identifies one posting position of a header: a line and a field.
type Slot struct {
	LineID int64
	Field  PostingField
}

// NominalTransaction is one signed entry in the nominal ledger.
type NominalTransaction struct {
	ID        int64           `json:"id"`
	Key       LedgerKey       `json:"key"`
	NominalID int64           `json:"nominalID"`
	Value     decimal.Decimal `json:"value"`
	Ref       string          `json:"ref"`
	Period    string          `json:"period"`
	Date      time.Time       `json:"date"`
	Type      TransactionType `json:"type"`
	Field     PostingField    `json:"field"`
}

// Slot returns the position this posting occupies.
func (n NominalTransaction) Slot() Slot {
	return Slot{LineID: n.Key.LineID, Field: n.Field}
}

// VatTransaction records the VAT-return view of one line.
type VatTransaction struct {
	ID        int64           `json:"id"`
	Key       LedgerKey       `json:"key"`
	Ref       string          `json:"ref"`
	Period    string          `json:"period"`
	Date      time.Time       `json:"date"`
	Field     PostingField    `json:"field"`
	TranType  TransactionType `json:"tranType"`
	VatType   VatType         `json:"vatType"`
	VatCodeID int64           `json:"vatCodeID"`
	VatRate   decimal.Decimal `json:"vatRate"`
	Goods     decimal.Decimal `json:"goods"`
	Vat       decimal.Decimal `json:"vat"`
}

// CashBookTransaction mirrors a bank-side nominal posting in the cash book.
type CashBookTransaction struct {
	ID         int64           `json:"id"`
	Key        LedgerKey       `json:"key"`
	CashBookID int64           `json:"cashBookID"`
	Value      decimal.Decimal `json:"value"`
	Ref        string          `json:"ref"`
	Period     string          `json:"period"`
	Date       time.Time       `json:"date"`
	Type       TransactionType `json:"type"`
	Field      PostingField    `json:"field"`
}

// Slot returns the position this entry occupies.
func (c CashBookTransaction) Slot() Slot {
	return Slot{LineID: c.Key.LineID, Field: c.Field}
}
