package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// NominalTransaction is a row of the nominal_transactions table.
type NominalTransaction struct {
	ID        int64           `db:"id"`
	Module    string          `db:"module"`
	HeaderID  int64           `db:"header_id"`
	LineID    int64           `db:"line_id"`
	NominalID int64           `db:"nominal_id"`
	Value     decimal.Decimal `db:"value"`
	Ref       string          `db:"ref"`
	Period    string          `db:"period"`
	Date      time.Time       `db:"date"`
	Type      string          `db:"type"`
	Field     string          `db:"field"`
}

// VatTransaction is a row of the vat_transactions table.
type VatTransaction struct {
	ID        int64           `db:"id"`
	Module    string          `db:"module"`
	HeaderID  int64           `db:"header_id"`
	LineID    int64           `db:"line_id"`
	Ref       string          `db:"ref"`
	Period    string          `db:"period"`
	Date      time.Time       `db:"date"`
	Field     string          `db:"field"`
	TranType  string          `db:"tran_type"`
	VatType   string          `db:"vat_type"`
	VatCodeID int64           `db:"vat_code_id"`
	VatRate   decimal.Decimal `db:"vat_rate"`
	Goods     decimal.Decimal `db:"goods"`
	Vat       decimal.Decimal `db:"vat"`
}

// CashBookTransaction is a row of the cashbook_transactions table.
type CashBookTransaction struct {
	ID         int64           `db:"id"`
	Module     string          `db:"module"`
	HeaderID   int64           `db:"header_id"`
	LineID     int64           `db:"line_id"`
	CashBookID int64           `db:"cash_book_id"`
	Value      decimal.Decimal `db:"value"`
	Ref        string          `db:"ref"`
	Period     string          `db:"period"`
	Date       time.Time       `db:"date"`
	Type       string          `db:"type"`
	Field      string          `db:"field"`
}

// Match is a row of the matches table.
type Match struct {
	ID          int64           `db:"id"`
	Module      string          `db:"module"`
	MatchedByID int64           `db:"matched_by_id"`
	MatchedToID int64           `db:"matched_to_id"`
	Value       decimal.Decimal `db:"value"`
	Period      string          `db:"period"`
	CreatedAt   time.Time       `db:"created_at"`
}
