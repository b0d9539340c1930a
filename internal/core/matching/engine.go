// Package matching allocates value between headers and keeps their paid and
// due balances consistent.
package matching

import (
	"fmt"
	"sort"

	"github.com/SscSPs/bookkeeping_ledger/internal/apperrors"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/SscSPs/bookkeeping_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// Result is the outcome of one allocation pass.
type Result struct {
	Create []domain.Match
	Update []domain.Match
	Delete []int64
	// Counterparties are the headers on the other side whose balances moved,
	// ordered by id.
	Counterparties []domain.Header
	Due            decimal.Decimal
	Paid           decimal.Decimal
}

// HasWrites reports whether any match record changes.
func (r Result) HasWrites() bool {
	return len(r.Create) > 0 || len(r.Update) > 0 || len(r.Delete) > 0
}

// Allocate applies requests on behalf of subject, the header being posted.
// subject must carry its new total; its id is zero when it has not been saved
// yet. existing holds every stored match involving subject and counterparties
// the stored state of every header referenced by existing or requests.
//
// A request value is the amount of the counterparty settled, in the
// counterparty's sign. New records are stored with subject as matched_by.
func Allocate(subject domain.Header, existing []domain.Match, requests []domain.MatchInput, counterparties map[int64]domain.Header) (Result, apperrors.ErrorList) {
	var (
		res     Result
		errs    apperrors.ErrorList
		byID    = make(map[int64]domain.Match, len(existing))
		applied = make(map[int64]decimal.Decimal, len(existing))
		seen    = make(map[int64]bool, len(requests))
		working = make(map[int64]domain.Header, len(counterparties))
		touched = make(map[int64]bool)
		added   []decimal.Decimal
	)
	for _, m := range existing {
		byID[m.ID] = m
		applied[m.ID] = m.SettledFor(subject.ID)
	}
	for id, h := range counterparties {
		working[id] = h
	}

	for i, req := range requests {
		value := accounting.Round(req.Value)

		if req.ID != nil {
			m, ok := byID[*req.ID]
			if !ok {
				errs.Add(&apperrors.ReferenceError{Path: fmt.Sprintf("matches[%d].id", i), Kind: "Match", ID: *req.ID})
				continue
			}
			if seen[m.ID] {
				errs.Add(&apperrors.RuleError{Path: fmt.Sprintf("matches[%d].id", i), Message: fmt.Sprintf("Match %d is listed more than once.", m.ID)})
				continue
			}
			seen[m.ID] = true

			otherID := m.Other(subject.ID)
			if req.MatchedToID != 0 && req.MatchedToID != otherID {
				errs.Add(&apperrors.RuleError{Path: fmt.Sprintf("matches[%d].matchedTo", i), Message: fmt.Sprintf("Match %d is not against transaction %d.", m.ID, req.MatchedToID)})
				continue
			}
			other, ok := working[otherID]
			if !ok {
				errs.Add(&apperrors.ReferenceError{Path: fmt.Sprintf("matches[%d].matchedTo", i), Kind: "Transaction", ID: otherID})
				continue
			}
			if conflict := checkExpected(i, req, counterparties[otherID]); conflict != nil {
				errs.Add(conflict)
				continue
			}

			prev := applied[m.ID]
			remaining := other.Due.Add(prev)
			if !accounting.WithinZeroAnd(value, remaining) {
				errs.Add(&apperrors.MatchRangeError{HeaderID: other.ID, Ref: other.Ref, Upper: remaining, Index: i})
				continue
			}
			other.SetDue(remaining.Sub(value))
			working[otherID] = other
			touched[otherID] = true
			applied[m.ID] = value

			switch {
			case value.IsZero():
				res.Delete = append(res.Delete, m.ID)
			case !value.Equal(prev):
				updated := m
				updated.Value = value
				if m.MatchedToID == subject.ID {
					updated.Value = value.Neg()
				}
				res.Update = append(res.Update, updated)
			}
			continue
		}

		if subject.ID != 0 && req.MatchedToID == subject.ID {
			errs.Add(&apperrors.RuleError{Path: fmt.Sprintf("matches[%d].matchedTo", i), Message: "A transaction cannot be matched to itself."})
			continue
		}
		other, ok := working[req.MatchedToID]
		if !ok {
			errs.Add(&apperrors.ReferenceError{Path: fmt.Sprintf("matches[%d].matchedTo", i), Kind: "Transaction", ID: req.MatchedToID})
			continue
		}
		if msg := eligible(subject, other); msg != "" {
			errs.Add(&apperrors.RuleError{Path: fmt.Sprintf("matches[%d].matchedTo", i), Message: msg})
			continue
		}
		if conflict := checkExpected(i, req, counterparties[req.MatchedToID]); conflict != nil {
			errs.Add(conflict)
			continue
		}
		// matching nothing is a no-op and leaves no record
		if value.IsZero() {
			continue
		}
		if !accounting.WithinZeroAnd(value, other.Due) {
			errs.Add(&apperrors.MatchRangeError{HeaderID: other.ID, Ref: other.Ref, Upper: other.Due, Index: i})
			continue
		}
		other.SetDue(other.Due.Sub(value))
		working[other.ID] = other
		touched[other.ID] = true
		added = append(added, value)
		res.Create = append(res.Create, domain.Match{
			Module:      subject.Module,
			MatchedByID: subject.ID,
			MatchedToID: other.ID,
			Value:       value,
			Period:      subject.Period,
		})
	}

	due := subject.Total
	for _, v := range applied {
		due = due.Add(v)
	}
	for _, v := range added {
		due = due.Add(v)
	}
	if !accounting.WithinZeroAnd(due, subject.Total) {
		errs.Add(&apperrors.MatchRangeError{HeaderID: subject.ID, Ref: subject.Ref, Upper: subject.Total, Aggregate: true})
	}

	if len(errs) > 0 {
		return Result{}, errs
	}

	res.Due = due
	res.Paid = subject.Total.Sub(due)
	for id := range touched {
		res.Counterparties = append(res.Counterparties, working[id])
	}
	sort.Slice(res.Counterparties, func(i, j int) bool { return res.Counterparties[i].ID < res.Counterparties[j].ID })
	return res, nil
}

// Release undoes every match of a header that is being voided. It returns the
// counterparties with their balances restored.
func Release(subjectID int64, existing []domain.Match, counterparties map[int64]domain.Header) ([]domain.Header, error) {
	working := make(map[int64]domain.Header, len(counterparties))
	for id, h := range counterparties {
		working[id] = h
	}
	touched := make(map[int64]bool)
	for _, m := range existing {
		otherID := m.Other(subjectID)
		other, ok := working[otherID]
		if !ok {
			return nil, fmt.Errorf("counterparty %d of match %d not loaded", otherID, m.ID)
		}
		other.SetDue(other.Due.Add(m.SettledFor(subjectID)))
		working[otherID] = other
		touched[otherID] = true
	}

	out := make([]domain.Header, 0, len(touched))
	for id := range touched {
		out = append(out, working[id])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func eligible(subject, other domain.Header) string {
	switch {
	case other.Module != subject.Module:
		return fmt.Sprintf("Transaction %s belongs to another ledger.", other.Ref)
	case other.IsVoid():
		return fmt.Sprintf("Transaction %s has been voided.", other.Ref)
	}
	return ""
}

func checkExpected(i int, req domain.MatchInput, stored domain.Header) *apperrors.ConcurrentEditConflict {
	if req.ExpectedDue == nil || req.ExpectedDue.Equal(stored.Due) {
		return nil
	}
	return &apperrors.ConcurrentEditConflict{HeaderID: stored.ID, Ref: stored.Ref, Expected: *req.ExpectedDue, Actual: stored.Due, Index: i}
}
