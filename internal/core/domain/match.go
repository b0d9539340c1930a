package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Match allocates value between two headers of the same module. Value is the
// amount of MatchedTo settled, in MatchedTo's sign convention.
type Match struct {
	ID          int64           `json:"id"`
	Module      Module          `json:"module"`
	MatchedByID int64           `json:"matchedByID"`
	MatchedToID int64           `json:"matchedToID"`
	Value       decimal.Decimal `json:"value"`
	Period      string          `json:"period"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Other returns the id of the header on the opposite side from headerID.
func (m Match) Other(headerID int64) int64 {
	if m.MatchedByID == headerID {
		return m.MatchedToID
	}
	return m.MatchedByID
}

// SettledFor returns the amount of the header opposite headerID that this match
// settles, in that header's sign convention.
func (m Match) SettledFor(headerID int64) decimal.Decimal {
	if m.MatchedByID == headerID {
		return m.Value
	}
	return m.Value.Neg()
}

// MatchInput is one requested allocation from the perspective of the header
// being posted. Value is the amount of the counterparty settled.
type MatchInput struct {
	ID          *int64
	MatchedToID int64
	Value       decimal.Decimal
	// ExpectedDue is the counterparty due the client based its value on.
	ExpectedDue *decimal.Decimal
}
