package domain

import "github.com/shopspring/decimal"

// Nominal is a general ledger account.
type Nominal struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// VatCode is a VAT rate that lines reference.
type VatCode struct {
	ID   int64           `json:"id"`
	Code string          `json:"code"`
	Name string          `json:"name"`
	Rate decimal.Decimal `json:"rate"`
}

// CashBook is a bank or cash account with its nominal.
type CashBook struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	NominalID int64  `json:"nominalID"`
}
