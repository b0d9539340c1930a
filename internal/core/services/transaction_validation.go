package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/SscSPs/bookkeeping_ledger/internal/apperrors"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/posting"
	"github.com/SscSPs/bookkeeping_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// storedState is everything persisted for one header.
type storedState struct {
	lines    []domain.Line
	nominal  []domain.NominalTransaction
	vat      []domain.VatTransaction
	cashBook []domain.CashBookTransaction
	matches  []domain.Match
}

func loadStoredState(ctx context.Context, store portsrepo.LedgerReader, module domain.Module, headerID int64) (storedState, error) {
	var (
		st  storedState
		err error
	)
	if st.lines, err = store.FindLinesByHeader(ctx, headerID); err != nil {
		return st, fmt.Errorf("failed to load lines: %w", err)
	}
	if st.nominal, err = store.FindNominalTransactions(ctx, module, headerID); err != nil {
		return st, fmt.Errorf("failed to load nominal transactions: %w", err)
	}
	if st.vat, err = store.FindVatTransactions(ctx, module, headerID); err != nil {
		return st, fmt.Errorf("failed to load vat transactions: %w", err)
	}
	if st.cashBook, err = store.FindCashBookTransactions(ctx, module, headerID); err != nil {
		return st, fmt.Errorf("failed to load cash book transactions: %w", err)
	}
	if st.matches, err = store.FindMatchesByHeader(ctx, module, headerID); err != nil {
		return st, fmt.Errorf("failed to load matches: %w", err)
	}
	return st, nil
}

// resolvedLines is the final line set of a submission before any write.
type resolvedLines struct {
	// lines is in final order with dense numbers; new lines have no id yet.
	lines []domain.Line
	// origin is the payload index of each final line, or -1 for a stored line the
	// payload did not mention.
	origin []int
	// dirty marks stored lines whose values or number changed.
	dirty   map[int64]bool
	deleted []int64
}

func normalizeFields(f domain.LineFields, sign decimal.Decimal) domain.LineFields {
	f.Goods = accounting.Round(f.Goods).Mul(sign)
	f.Vat = accounting.Round(f.Vat).Mul(sign)
	return f
}

func applyFields(l *domain.Line, f domain.LineFields) {
	l.Description = f.Description
	l.NominalID = f.NominalID
	l.VatCodeID = f.VatCodeID
	l.Goods = f.Goods
	l.Vat = f.Vat
}

func sameLine(a, b domain.Line) bool {
	return a.LineNo == b.LineNo && a.Description == b.Description &&
		a.NominalID == b.NominalID && a.VatCodeID == b.VatCodeID &&
		a.Goods.Equal(b.Goods) && a.Vat.Equal(b.Vat)
}

// resolveLines applies the submitted variants to the stored lines. Surviving
// lines keep their relative order and new lines are appended. Stored lines the
// payload does not mention are multiplied by carry, which is -1 when the
// document type changed to one stored with the opposite sign.
func resolveLines(inputs []domain.LineInput, existing []domain.Line, sign, carry decimal.Decimal) (resolvedLines, apperrors.ErrorList) {
	var (
		res     = resolvedLines{dirty: make(map[int64]bool)}
		errs    apperrors.ErrorList
		byID    = make(map[int64]domain.Line, len(existing))
		edits   = make(map[int64]int, len(inputs))
		removed = make(map[int64]bool)
		fields  = make(map[int]domain.LineFields, len(inputs))
		added   []int
	)
	for _, l := range existing {
		byID[l.ID] = l
	}

	for i, in := range inputs {
		if in.Action == domain.LineNew {
			f := normalizeFields(in.Fields, sign)
			if f.Goods.IsZero() && f.Vat.IsZero() {
				errs.Add(&apperrors.ZeroLineError{Index: i})
				continue
			}
			fields[i] = f
			added = append(added, i)
			continue
		}

		if _, ok := byID[in.ID]; !ok {
			errs.Add(&apperrors.ReferenceError{Path: fmt.Sprintf("lines[%d].id", i), Kind: "Line", ID: in.ID})
			continue
		}
		if _, dup := edits[in.ID]; dup || removed[in.ID] {
			errs.Add(&apperrors.RuleError{Path: fmt.Sprintf("lines[%d].id", i), Message: fmt.Sprintf("Line %d is listed more than once.", in.ID)})
			continue
		}
		if in.Action == domain.LineDeleted {
			removed[in.ID] = true
			continue
		}
		f := normalizeFields(in.Fields, sign)
		if f.Goods.IsZero() && f.Vat.IsZero() {
			errs.Add(&apperrors.ZeroLineError{Index: i})
			continue
		}
		fields[i] = f
		edits[in.ID] = i
	}

	ordered := make([]domain.Line, len(existing))
	copy(ordered, existing)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].LineNo < ordered[j].LineNo })

	for _, l := range ordered {
		if removed[l.ID] {
			res.deleted = append(res.deleted, l.ID)
			continue
		}
		next, origin := l, -1
		if i, ok := edits[l.ID]; ok {
			applyFields(&next, fields[i])
			origin = i
		} else {
			next.Goods = l.Goods.Mul(carry)
			next.Vat = l.Vat.Mul(carry)
		}
		next.LineNo = len(res.lines) + 1
		if !sameLine(l, next) {
			res.dirty[l.ID] = true
		}
		res.lines = append(res.lines, next)
		res.origin = append(res.origin, origin)
	}
	for _, i := range added {
		l := domain.Line{LineNo: len(res.lines) + 1}
		applyFields(&l, fields[i])
		res.lines = append(res.lines, l)
		res.origin = append(res.origin, i)
	}
	return res, errs
}

func linePath(origin int, field string) string {
	if origin < 0 {
		return "lines"
	}
	return fmt.Sprintf("lines[%d].%s", origin, field)
}

// checkLineReferences resolves every nominal and vat code the final lines use
// and returns the vat rate of each code.
func checkLineReferences(ctx context.Context, refs portsrepo.ReferenceReader, lines resolvedLines) (map[int64]decimal.Decimal, apperrors.ErrorList, error) {
	nominalIDs := make([]int64, 0, len(lines.lines))
	vatIDs := make([]int64, 0, len(lines.lines))
	for _, l := range lines.lines {
		nominalIDs = append(nominalIDs, l.NominalID)
		vatIDs = append(vatIDs, l.VatCodeID)
	}
	nominals, err := refs.FindNominalsByIDs(ctx, uniqueIDs(nominalIDs))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load nominals: %w", err)
	}
	vatCodes, err := refs.FindVatCodesByIDs(ctx, uniqueIDs(vatIDs))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load vat codes: %w", err)
	}

	var errs apperrors.ErrorList
	rates := make(map[int64]decimal.Decimal, len(vatCodes))
	for i, l := range lines.lines {
		if _, ok := nominals[l.NominalID]; !ok {
			errs.Add(&apperrors.ReferenceError{Path: linePath(lines.origin[i], "nominalID"), Kind: "Nominal", ID: l.NominalID})
		}
		vc, ok := vatCodes[l.VatCodeID]
		if !ok {
			errs.Add(&apperrors.ReferenceError{Path: linePath(lines.origin[i], "vatCodeID"), Kind: "Vat code", ID: l.VatCodeID})
			continue
		}
		rates[l.VatCodeID] = vc.Rate
	}
	return rates, errs, nil
}

// resolveCashBook checks the header's cash book and fills the bank side of accts.
func resolveCashBook(ctx context.Context, refs portsrepo.ReferenceReader, info domain.TypeInfo, h domain.Header, accts *posting.Accounts) (apperrors.ErrorList, error) {
	var errs apperrors.ErrorList
	if h.CashBookID == nil {
		if info.NeedsCashBook() {
			errs.Add(&apperrors.RuleError{Path: "header.cashBookID", Message: "A cash book is required for this transaction type."})
		}
		return errs, nil
	}
	cb, err := refs.FindCashBookByID(ctx, *h.CashBookID)
	if errors.Is(err, apperrors.ErrNotFound) {
		errs.Add(&apperrors.ReferenceError{Path: "header.cashBookID", Kind: "Cash book", ID: *h.CashBookID})
		return errs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cash book %d: %w", *h.CashBookID, err)
	}
	if info.NeedsCashBook() {
		accts.CashBookID = cb.ID
		accts.BankNominalID = cb.NominalID
	}
	return errs, nil
}

// applyTotals sets goods, vat and total on h from the final lines and the
// entered total, and runs the journal balance checks.
func applyTotals(h *domain.Header, info domain.TypeInfo, lines []domain.Line, entered *decimal.Decimal) apperrors.ErrorList {
	var errs apperrors.ErrorList

	switch {
	case info.Journal:
		debits, credits := accounting.DebitsAndCredits(lines)
		if entered == nil {
			errs.Add(&apperrors.MissingTotalError{})
		}
		if !debits.Add(credits).IsZero() {
			errs.Add(&apperrors.UnbalancedJournalError{Debits: debits, Credits: credits, NonZeroNet: true})
		} else if entered != nil && !debits.Equal(accounting.Round(*entered)) {
			errs.Add(&apperrors.UnbalancedJournalError{Debits: debits, Credits: credits, Entered: accounting.Round(*entered)})
		}
		h.Goods, h.Vat = accounting.PositiveLineSums(lines)
		h.Total = debits

	case info.Payment && len(lines) > 0:
		errs.Add(&apperrors.RuleError{Path: "lines", Message: "Payments and refunds cannot have analysis lines."})

	case len(lines) > 0:
		h.Goods, h.Vat = accounting.SumLines(lines)
		h.Total = h.Goods.Add(h.Vat)

	case info.Payment:
		h.Goods, h.Vat, h.Total = decimal.Zero, decimal.Zero, decimal.Zero
		if entered != nil {
			h.Total = accounting.Round(*entered).Mul(info.Sign())
		}

	default:
		if entered != nil && !accounting.Round(*entered).IsZero() {
			errs.Add(&apperrors.RuleError{Path: "header.total", Message: "A transaction without analysis lines must have a zero total."})
		}
		h.Goods, h.Vat, h.Total = decimal.Zero, decimal.Zero, decimal.Zero
	}
	return errs
}

// counterpartyIDs lists, in ascending order, every header other than subjectID
// that a stored match or a request points at.
func counterpartyIDs(subjectID int64, existing []domain.Match, requests []domain.MatchInput) []int64 {
	ids := make([]int64, 0, len(existing)+len(requests))
	for _, m := range existing {
		ids = append(ids, m.Other(subjectID))
	}
	for _, r := range requests {
		if r.MatchedToID != 0 && r.MatchedToID != subjectID {
			ids = append(ids, r.MatchedToID)
		}
	}
	return uniqueIDs(ids)
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
