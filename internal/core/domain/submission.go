package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// HeaderInput is the validated header payload. Amounts are in the user's
// convention (positive for every type except journals).
type HeaderInput struct {
	Type       TransactionType
	Ref        string
	Period     string
	Date       time.Time
	DueDate    *time.Time
	ContactID  *int64
	CashBookID *int64
	VatType    VatType
	// Total is nil when nothing was entered.
	Total *decimal.Decimal
}

// Submission is one create or edit request.
type Submission struct {
	Header  HeaderInput
	Lines   []LineInput
	Matches []MatchInput
}
