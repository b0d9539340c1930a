package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// HeaderStatus indicates whether a header still carries postings.
type HeaderStatus string

const (
	HeaderActive HeaderStatus = "active"
	HeaderVoid   HeaderStatus = "void"
)

// Header is one ledger document: invoice, credit note, payment, refund, receipt or journal.
// Amounts are stored in the document's own sign convention, so credit notes and
// payments carry negative totals.
type Header struct {
	ID         int64           `json:"id"`
	Module     Module          `json:"module"`
	Type       TransactionType `json:"type"`
	Ref        string          `json:"ref"`
	Period     string          `json:"period"`
	Date       time.Time       `json:"date"`
	DueDate    *time.Time      `json:"dueDate,omitempty"`
	ContactID  *int64          `json:"contactID,omitempty"`
	CashBookID *int64          `json:"cashBookID,omitempty"`
	VatType    VatType         `json:"vatType,omitempty"`
	Goods      decimal.Decimal `json:"goods"`
	Vat        decimal.Decimal `json:"vat"`
	Total      decimal.Decimal `json:"total"`
	Paid       decimal.Decimal `json:"paid"`
	Due        decimal.Decimal `json:"due"`
	Status     HeaderStatus    `json:"status"`
	AuditFields
}

// Key returns the ledger key of a posting belonging to line lineID of this header.
func (h Header) Key(lineID int64) LedgerKey {
	return LedgerKey{Module: h.Module, HeaderID: h.ID, LineID: lineID}
}

// SetDue stores due and derives paid so that paid + due == total.
func (h *Header) SetDue(due decimal.Decimal) {
	h.Due = due
	h.Paid = h.Total.Sub(due)
}

// IsVoid reports whether the header has been voided.
func (h Header) IsVoid() bool {
	return h.Status == HeaderVoid
}

// IsOutstanding reports whether some of the header is still unmatched.
func (h Header) IsOutstanding() bool {
	return h.Status == HeaderActive && !h.Due.IsZero()
}
