package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Header is a row of the headers table.
type Header struct {
	ID         int64           `db:"id"`
	Module     string          `db:"module"`
	Type       string          `db:"type"`
	Ref        string          `db:"ref"`
	Period     string          `db:"period"`
	Date       time.Time       `db:"date"`
	DueDate    *time.Time      `db:"due_date"`     // Nullable
	ContactID  *int64          `db:"contact_id"`   // Nullable
	CashBookID *int64          `db:"cash_book_id"` // Nullable
	VatType    string          `db:"vat_type"`
	Goods      decimal.Decimal `db:"goods"`
	Vat        decimal.Decimal `db:"vat"`
	Total      decimal.Decimal `db:"total"`
	Paid       decimal.Decimal `db:"paid"`
	Due        decimal.Decimal `db:"due"`
	Status     string          `db:"status"`
	AuditFields
}

// Line is a row of the lines table.
type Line struct {
	ID          int64           `db:"id"`
	HeaderID    int64           `db:"header_id"`
	LineNo      int             `db:"line_no"`
	Description string          `db:"description"`
	NominalID   int64           `db:"nominal_id"`
	VatCodeID   int64           `db:"vat_code_id"`
	Goods       decimal.Decimal `db:"goods"`
	Vat         decimal.Decimal `db:"vat"`

	GoodsNominalTransactionID *int64 `db:"goods_nominal_transaction_id"`
	VatNominalTransactionID   *int64 `db:"vat_nominal_transaction_id"`
	TotalNominalTransactionID *int64 `db:"total_nominal_transaction_id"`
	VatTransactionID          *int64 `db:"vat_transaction_id"`
}
