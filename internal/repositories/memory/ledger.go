package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/apperrors"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_ledger/internal/utils/pagination"
)

// txView reads and writes one dataset. Inside WithinTx it is the only holder
// of that dataset, so it needs no locking of its own.
type txView struct {
	d *dataset
}

func (v *txView) FindHeaderByID(_ context.Context, module domain.Module, headerID int64) (*domain.Header, error) {
	h, ok := v.d.headers[headerID]
	if !ok || h.Module != module {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction %d", headerID))
	}
	return &h, nil
}

func (v *txView) ListHeaders(_ context.Context, filter portsrepo.HeaderFilter) ([]domain.Header, *string, error) {
	var (
		hasCursor = filter.NextToken != nil
		afterDate time.Time
		afterID   int64
	)
	if hasCursor {
		d, id, err := pagination.DecodeHeaderToken(*filter.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		afterDate, afterID = d, id
	}

	headers := sortedValues(v.d.headers, func(h domain.Header) bool {
		switch {
		case h.Module != filter.Module:
			return false
		case h.IsVoid() && !filter.IncludeVoid:
			return false
		case filter.OutstandingOnly && !h.IsOutstanding():
			return false
		case filter.ContactID != nil && (h.ContactID == nil || *h.ContactID != *filter.ContactID):
			return false
		case hasCursor && !pagination.After(h.Date, h.ID, afterDate, afterID):
			return false
		}
		return true
	})
	sort.SliceStable(headers, func(i, j int) bool {
		if !headers[i].Date.Equal(headers[j].Date) {
			return headers[i].Date.Before(headers[j].Date)
		}
		return headers[i].ID < headers[j].ID
	})

	if filter.Limit <= 0 || len(headers) <= filter.Limit {
		return headers, nil, nil
	}
	page := headers[:filter.Limit]
	last := page[len(page)-1]
	next := pagination.EncodeHeaderToken(last.Date, last.ID)
	return page, &next, nil
}

func (v *txView) LockHeaders(_ context.Context, module domain.Module, headerIDs []int64) (map[int64]domain.Header, error) {
	out := make(map[int64]domain.Header, len(headerIDs))
	for _, id := range headerIDs {
		if h, ok := v.d.headers[id]; ok && h.Module == module {
			out[id] = h
		}
	}
	return out, nil
}

func (v *txView) InsertHeader(_ context.Context, header *domain.Header) error {
	v.d.headerSeq++
	header.ID = v.d.headerSeq
	v.d.headers[header.ID] = *header
	return nil
}

func (v *txView) UpdateHeaders(_ context.Context, headers []domain.Header) error {
	for _, h := range headers {
		if _, ok := v.d.headers[h.ID]; !ok {
			return apperrors.NewNotFoundError(fmt.Sprintf("transaction %d", h.ID))
		}
		v.d.headers[h.ID] = h
	}
	return nil
}

func (v *txView) FindLinesByHeader(_ context.Context, headerID int64) ([]domain.Line, error) {
	lines := sortedValues(v.d.lines, func(l domain.Line) bool { return l.HeaderID == headerID })
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].LineNo < lines[j].LineNo })
	return lines, nil
}

func (v *txView) InsertLines(_ context.Context, lines []domain.Line) ([]domain.Line, error) {
	out := make([]domain.Line, 0, len(lines))
	for _, l := range lines {
		if _, ok := v.d.headers[l.HeaderID]; !ok {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction %d", l.HeaderID))
		}
		v.d.lineSeq++
		l.ID = v.d.lineSeq
		v.d.lines[l.ID] = l
		out = append(out, l)
	}
	return out, nil
}

func (v *txView) UpdateLines(_ context.Context, lines []domain.Line) error {
	return update(v.d.lines, lines, func(l domain.Line) int64 { return l.ID }, "line")
}

func (v *txView) DeleteLines(_ context.Context, lineIDs []int64) error {
	remove(v.d.lines, lineIDs)
	return nil
}

func (v *txView) FindNominalTransactions(_ context.Context, module domain.Module, headerID int64) ([]domain.NominalTransaction, error) {
	return sortedValues(v.d.nominal, func(n domain.NominalTransaction) bool {
		return n.Key.Module == module && n.Key.HeaderID == headerID
	}), nil
}

func (v *txView) FindVatTransactions(_ context.Context, module domain.Module, headerID int64) ([]domain.VatTransaction, error) {
	return sortedValues(v.d.vat, func(t domain.VatTransaction) bool {
		return t.Key.Module == module && t.Key.HeaderID == headerID
	}), nil
}

func (v *txView) FindCashBookTransactions(_ context.Context, module domain.Module, headerID int64) ([]domain.CashBookTransaction, error) {
	return sortedValues(v.d.cashBook, func(c domain.CashBookTransaction) bool {
		return c.Key.Module == module && c.Key.HeaderID == headerID
	}), nil
}

func (v *txView) InsertNominalTransactions(_ context.Context, postings []domain.NominalTransaction) ([]domain.NominalTransaction, error) {
	out := make([]domain.NominalTransaction, 0, len(postings))
	for _, p := range postings {
		for _, e := range v.d.nominal {
			if e.Key == p.Key && e.Field == p.Field {
				return nil, fmt.Errorf("%w: nominal transaction %v field %s", apperrors.ErrDuplicate, p.Key, p.Field)
			}
		}
		v.d.nominalSeq++
		p.ID = v.d.nominalSeq
		v.d.nominal[p.ID] = p
		out = append(out, p)
	}
	return out, nil
}

func (v *txView) UpdateNominalTransactions(_ context.Context, postings []domain.NominalTransaction) error {
	return update(v.d.nominal, postings, func(n domain.NominalTransaction) int64 { return n.ID }, "nominal transaction")
}

func (v *txView) DeleteNominalTransactions(_ context.Context, ids []int64) error {
	remove(v.d.nominal, ids)
	return nil
}

func (v *txView) InsertVatTransactions(_ context.Context, vats []domain.VatTransaction) ([]domain.VatTransaction, error) {
	out := make([]domain.VatTransaction, 0, len(vats))
	for _, t := range vats {
		for _, e := range v.d.vat {
			if e.Key == t.Key {
				return nil, fmt.Errorf("%w: vat transaction %v", apperrors.ErrDuplicate, t.Key)
			}
		}
		v.d.vatSeq++
		t.ID = v.d.vatSeq
		v.d.vat[t.ID] = t
		out = append(out, t)
	}
	return out, nil
}

func (v *txView) UpdateVatTransactions(_ context.Context, vats []domain.VatTransaction) error {
	return update(v.d.vat, vats, func(t domain.VatTransaction) int64 { return t.ID }, "vat transaction")
}

func (v *txView) DeleteVatTransactions(_ context.Context, ids []int64) error {
	remove(v.d.vat, ids)
	return nil
}

func (v *txView) InsertCashBookTransactions(_ context.Context, entries []domain.CashBookTransaction) ([]domain.CashBookTransaction, error) {
	out := make([]domain.CashBookTransaction, 0, len(entries))
	for _, c := range entries {
		v.d.cashBookSeq++
		c.ID = v.d.cashBookSeq
		v.d.cashBook[c.ID] = c
		out = append(out, c)
	}
	return out, nil
}

func (v *txView) UpdateCashBookTransactions(_ context.Context, entries []domain.CashBookTransaction) error {
	return update(v.d.cashBook, entries, func(c domain.CashBookTransaction) int64 { return c.ID }, "cash book transaction")
}

func (v *txView) DeleteCashBookTransactions(_ context.Context, ids []int64) error {
	remove(v.d.cashBook, ids)
	return nil
}

func (v *txView) FindMatchesByHeader(_ context.Context, module domain.Module, headerID int64) ([]domain.Match, error) {
	return sortedValues(v.d.matches, func(m domain.Match) bool {
		return m.Module == module && (m.MatchedByID == headerID || m.MatchedToID == headerID)
	}), nil
}

func (v *txView) InsertMatches(_ context.Context, matches []domain.Match) ([]domain.Match, error) {
	out := make([]domain.Match, 0, len(matches))
	for _, m := range matches {
		v.d.matchSeq++
		m.ID = v.d.matchSeq
		v.d.matches[m.ID] = m
		out = append(out, m)
	}
	return out, nil
}

func (v *txView) UpdateMatches(_ context.Context, matches []domain.Match) error {
	return update(v.d.matches, matches, func(m domain.Match) int64 { return m.ID }, "match")
}

func (v *txView) DeleteMatches(_ context.Context, ids []int64) error {
	remove(v.d.matches, ids)
	return nil
}

func (v *txView) FindNominalsByIDs(_ context.Context, ids []int64) (map[int64]domain.Nominal, error) {
	return pick(v.d.nominals, ids), nil
}

func (v *txView) FindVatCodesByIDs(_ context.Context, ids []int64) (map[int64]domain.VatCode, error) {
	return pick(v.d.vatCodes, ids), nil
}

func (v *txView) FindCashBookByID(_ context.Context, id int64) (*domain.CashBook, error) {
	cb, ok := v.d.cashBooks[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("cash book %d", id))
	}
	return &cb, nil
}

func update[V any](m map[int64]V, rows []V, id func(V) int64, what string) error {
	for _, r := range rows {
		if _, ok := m[id(r)]; !ok {
			return apperrors.NewNotFoundError(fmt.Sprintf("%s %d", what, id(r)))
		}
		m[id(r)] = r
	}
	return nil
}

func remove[V any](m map[int64]V, ids []int64) {
	for _, id := range ids {
		delete(m, id)
	}
}

func pick[V any](m map[int64]V, ids []int64) map[int64]V {
	out := make(map[int64]V, len(ids))
	for _, id := range ids {
		if v, ok := m[id]; ok {
			out[id] = v
		}
	}
	return out
}
