package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow is the net position of one nominal.
type TrialBalanceRow struct {
	NominalID   int64           `json:"nominalID"`
	NominalName string          `json:"nominalName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalance is the full report with column totals.
type TrialBalance struct {
	Period      string            `json:"period,omitempty"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}

// AgeBuckets splits an outstanding amount by age.
type AgeBuckets struct {
	Current   decimal.Decimal `json:"current"`
	OneMonth  decimal.Decimal `json:"oneMonth"`
	TwoMonths decimal.Decimal `json:"twoMonths"`
	Older     decimal.Decimal `json:"older"`
	Total     decimal.Decimal `json:"total"`
}

// Add places amount in the bucket for a document of the given age in months.
func (b *AgeBuckets) Add(months int, amount decimal.Decimal) {
	switch {
	case months <= 0:
		b.Current = b.Current.Add(amount)
	case months == 1:
		b.OneMonth = b.OneMonth.Add(amount)
	case months == 2:
		b.TwoMonths = b.TwoMonths.Add(amount)
	default:
		b.Older = b.Older.Add(amount)
	}
	b.Total = b.Total.Add(amount)
}

// AgedBalance is the outstanding position of one contact.
type AgedBalance struct {
	ContactID *int64 `json:"contactID,omitempty"`
	AgeBuckets
}

// AgedBalanceReport lists every contact with an outstanding balance.
type AgedBalanceReport struct {
	Module Module        `json:"module"`
	AsOf   time.Time     `json:"asOf"`
	Rows   []AgedBalance `json:"rows"`
	Totals AgeBuckets    `json:"totals"`
}
