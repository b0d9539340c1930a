package memory

import (
	"context"
	"sort"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GetTrialBalanceData nets nominal transactions per nominal. Nominals that net
// to zero are left out.
func (s *Store) GetTrialBalanceData(_ context.Context, period string) ([]domain.TrialBalanceRow, error) {
	d := s.view().d

	net := make(map[int64]decimal.Decimal)
	for _, n := range d.nominal {
		if period != "" && n.Period != period {
			continue
		}
		net[n.NominalID] = net[n.NominalID].Add(n.Value)
	}

	rows := make([]domain.TrialBalanceRow, 0, len(net))
	for id, value := range net {
		if value.IsZero() {
			continue
		}
		row := domain.TrialBalanceRow{NominalID: id, NominalName: d.nominals[id].Name, Debit: decimal.Zero, Credit: decimal.Zero}
		if value.IsPositive() {
			row.Debit = value
		} else {
			row.Credit = value.Neg()
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].NominalID < rows[j].NominalID })
	return rows, nil
}

// ListOutstandingHeaders returns active headers of module with a non-zero due
// dated on or before asOf, oldest first.
func (s *Store) ListOutstandingHeaders(_ context.Context, module domain.Module, asOf time.Time) ([]domain.Header, error) {
	headers := sortedValues(s.view().d.headers, func(h domain.Header) bool {
		return h.Module == module && h.IsOutstanding() && !h.Date.After(asOf)
	})
	sort.SliceStable(headers, func(i, j int) bool { return headers[i].Date.Before(headers[j].Date) })
	return headers, nil
}
