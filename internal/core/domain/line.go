package domain

import "github.com/shopspring/decimal"

// Line is one analysis entry under a header.
type Line struct {
	ID          int64           `json:"id"`
	HeaderID    int64           `json:"headerID"`
	LineNo      int             `json:"lineNo"`
	Description string          `json:"description"`
	NominalID   int64           `json:"nominalID"`
	VatCodeID   int64           `json:"vatCodeID"`
	Goods       decimal.Decimal `json:"goods"`
	Vat         decimal.Decimal `json:"vat"`

	GoodsNominalTransactionID *int64 `json:"goodsNominalTransactionID,omitempty"`
	VatNominalTransactionID   *int64 `json:"vatNominalTransactionID,omitempty"`
	TotalNominalTransactionID *int64 `json:"totalNominalTransactionID,omitempty"`
	VatTransactionID          *int64 `json:"vatTransactionID,omitempty"`
}

// IsZero reports whether both goods and vat are zero.
func (l Line) IsZero() bool {
	return l.Goods.IsZero() && l.Vat.IsZero()
}

// LineFields are the user-editable values of a line.
type LineFields struct {
	Description string
	NominalID   int64
	VatCodeID   int64
	Goods       decimal.Decimal
	Vat         decimal.Decimal
}

// LineAction tells the orchestrator what to do with a submitted line.
type LineAction int

const (
	LineNew LineAction = iota
	LineExisting
	LineDeleted
)

// LineInput is a submitted line resolved into one of three variants:
// New(fields), Existing(id, fields) or Deleted(id).
type LineInput struct {
	Action LineAction
	ID     int64
	Fields LineFields
}

// NewLine builds the variant for a line without a persisted id.
func NewLine(fields LineFields) LineInput {
	return LineInput{Action: LineNew, Fields: fields}
}

// ExistingLine builds the variant for an edited persisted line.
func ExistingLine(id int64, fields LineFields) LineInput {
	return LineInput{Action: LineExisting, ID: id, Fields: fields}
}

// DeletedLine builds the variant for a persisted line flagged for deletion.
func DeletedLine(id int64) LineInput {
	return LineInput{Action: LineDeleted, ID: id}
}
