package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/apperrors"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/matching"
	portsrepo "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/posting"
	"github.com/SscSPs/bookkeeping_ledger/internal/dto"
	"github.com/SscSPs/bookkeeping_ledger/internal/platform/registry"
	"github.com/SscSPs/bookkeeping_ledger/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

const defaultPageSize = 20

// AccountRegistry resolves the configured nominals of a module.
type AccountRegistry interface {
	Accounts(module domain.Module) (registry.ModuleAccounts, error)
}

// transactionService posts, reposts and voids headers. Every write happens in a
// single unit of work; validation completes before the first write.
type transactionService struct {
	BaseService
	reader   portsrepo.LedgerReader
	uow      portsrepo.UnitOfWork
	registry AccountRegistry
	now      func() time.Time
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithClock overrides the time source used for audit fields.
func WithClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(reader portsrepo.LedgerReader, uow portsrepo.UnitOfWork, reg AccountRegistry, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		reader:   reader,
		uow:      uow,
		registry: reg,
		now:      time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// Post creates a header with its lines, postings and matches.
func (s *transactionService) Post(ctx context.Context, module domain.Module, sub domain.Submission, userID string) (*domain.Header, error) {
	return s.submit(ctx, module, 0, sub, userID)
}

// Repost edits a header in place and reconciles everything derived from it.
func (s *transactionService) Repost(ctx context.Context, module domain.Module, headerID int64, sub domain.Submission, userID string) (*domain.Header, error) {
	if headerID <= 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction %d", headerID))
	}
	return s.submit(ctx, module, headerID, sub, userID)
}

func (s *transactionService) submit(ctx context.Context, module domain.Module, headerID int64, sub domain.Submission, userID string) (*domain.Header, error) {
	operation := "post"
	if headerID != 0 {
		operation = "repost"
	}
	logger := s.GetLogger(ctx).With(
		slog.String("module", string(module)),
		slog.String("type", string(sub.Header.Type)),
		slog.String("operation", operation),
	)

	var saved domain.Header
	err := s.uow.WithinTx(ctx, func(ctx context.Context, store portsrepo.LedgerStore) error {
		var err error
		saved, err = s.write(ctx, store, module, headerID, sub, userID)
		return err
	})
	if err != nil {
		var list apperrors.ErrorList
		if errors.As(err, &list) {
			for _, e := range list {
				submissionsRejected.WithLabelValues(string(module), string(e.Code())).Inc()
			}
			logger.Warn("Submission rejected", slog.Int("error_count", len(list)), slog.String("errors", list.Error()))
			return nil, list
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Transaction not found", slog.Int64("header_id", headerID))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save transaction", slog.String("module", string(module)), slog.Int64("header_id", headerID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	transactionsPosted.WithLabelValues(string(module), string(saved.Type), operation).Inc()
	logger.Info("Transaction saved",
		slog.Int64("header_id", saved.ID),
		slog.String("ref", saved.Ref),
		slog.String("total", saved.Total.StringFixed(2)),
		slog.String("due", saved.Due.StringFixed(2)))
	return &saved, nil
}

// write validates sub against the stored state and applies it. It returns an
// ErrorList, and writes nothing, when the submission is rejected.
func (s *transactionService) write(ctx context.Context, store portsrepo.LedgerStore, module domain.Module, headerID int64, sub domain.Submission, userID string) (domain.Header, error) {
	var errs apperrors.ErrorList

	info, ok := domain.LookupType(sub.Header.Type)
	if !ok || info.Module != module {
		errs.Add(&apperrors.RuleError{Path: "header.type", Message: fmt.Sprintf("Transaction type %q is not valid for module %s.", sub.Header.Type, module)})
		return domain.Header{}, errs
	}
	moduleAccts, err := s.registry.Accounts(module)
	if err != nil {
		errs.Add(&apperrors.RuleError{Path: "module", Message: fmt.Sprintf("Module %s is not enabled.", module)})
		return domain.Header{}, errs
	}

	h := domain.Header{Module: module, Status: domain.HeaderActive}
	carry := decimal.NewFromInt(1)
	var st storedState
	if headerID != 0 {
		locked, err := store.LockHeaders(ctx, module, []int64{headerID})
		if err != nil {
			return domain.Header{}, fmt.Errorf("failed to lock transaction %d: %w", headerID, err)
		}
		current, ok := locked[headerID]
		if !ok {
			return domain.Header{}, apperrors.NewNotFoundError(fmt.Sprintf("transaction %d", headerID))
		}
		if current.IsVoid() {
			errs.Add(&apperrors.RuleError{Message: fmt.Sprintf("Transaction %s has been voided and cannot be edited.", current.Ref)})
			return domain.Header{}, errs
		}
		if st, err = loadStoredState(ctx, store, module, headerID); err != nil {
			return domain.Header{}, err
		}
		if prev, ok := domain.LookupType(current.Type); ok && !prev.Sign().Equal(info.Sign()) {
			carry = carry.Neg()
		}
		h = current
	}

	in := sub.Header
	h.Type, h.Ref, h.Period, h.Date = in.Type, in.Ref, in.Period, in.Date
	h.DueDate, h.ContactID, h.CashBookID = in.DueDate, in.ContactID, in.CashBookID
	h.VatType = info.VatType
	if info.Journal {
		h.VatType = in.VatType
		if h.VatType == "" {
			h.VatType = domain.VatInput
		}
	}

	lines, lineErrs := resolveLines(sub.Lines, st.lines, info.Sign(), carry)
	errs.Merge(lineErrs)

	rates, refErrs, err := checkLineReferences(ctx, store, lines)
	if err != nil {
		return domain.Header{}, err
	}
	errs.Merge(refErrs)

	accts := posting.Accounts{ControlNominalID: moduleAccts.ControlNominalID, VatNominalID: moduleAccts.VatNominalID}
	cbErrs, err := resolveCashBook(ctx, store, info, h, &accts)
	if err != nil {
		return domain.Header{}, err
	}
	errs.Merge(cbErrs)

	errs.Merge(applyTotals(&h, info, lines.lines, in.Total))

	cpIDs := counterpartyIDs(headerID, st.matches, sub.Matches)
	counterparties, err := store.LockHeaders(ctx, module, cpIDs)
	if err != nil {
		return domain.Header{}, fmt.Errorf("failed to lock matched transactions: %w", err)
	}
	allocation, matchErrs := matching.Allocate(h, st.matches, sub.Matches, counterparties)
	errs.Merge(matchErrs)

	if len(errs) > 0 {
		return domain.Header{}, errs
	}

	now := s.now().UTC()
	h.SetDue(allocation.Due)
	h.LastUpdatedAt, h.LastUpdatedBy = now, userID
	if headerID == 0 {
		h.CreatedAt, h.CreatedBy = now, userID
		if err := store.InsertHeader(ctx, &h); err != nil {
			return domain.Header{}, fmt.Errorf("failed to insert header: %w", err)
		}
	} else if err := store.UpdateHeaders(ctx, []domain.Header{h}); err != nil {
		return domain.Header{}, fmt.Errorf("failed to update header: %w", err)
	}

	final, err := s.writeLines(ctx, store, h, lines)
	if err != nil {
		return domain.Header{}, err
	}

	set, err := posting.Derive(h, final, accts, rates)
	if err != nil {
		return domain.Header{}, fmt.Errorf("failed to derive postings: %w", err)
	}
	nominals, vats, err := s.writePostings(ctx, store, st, set)
	if err != nil {
		return domain.Header{}, err
	}

	wired, rewired := posting.Wire(final, nominals, vats)
	toUpdate := make([]domain.Line, 0, len(wired))
	changed := make(map[int64]bool, len(rewired))
	for _, l := range rewired {
		changed[l.ID] = true
	}
	for _, l := range wired {
		if changed[l.ID] || lines.dirty[l.ID] {
			toUpdate = append(toUpdate, l)
		}
	}
	if len(toUpdate) > 0 {
		if err := store.UpdateLines(ctx, toUpdate); err != nil {
			return domain.Header{}, fmt.Errorf("failed to update lines: %w", err)
		}
	}

	if err := s.writeMatches(ctx, store, h, allocation, userID, now); err != nil {
		return domain.Header{}, err
	}
	return h, nil
}

// writeLines deletes, inserts and renumbers lines and returns the final set
// with ids. Updates are left to the caller so each line is written once.
func (s *transactionService) writeLines(ctx context.Context, store portsrepo.LedgerWriter, h domain.Header, lines resolvedLines) ([]domain.Line, error) {
	if len(lines.deleted) > 0 {
		if err := store.DeleteLines(ctx, lines.deleted); err != nil {
			return nil, fmt.Errorf("failed to delete lines: %w", err)
		}
	}

	var fresh []domain.Line
	for _, l := range lines.lines {
		if l.ID == 0 {
			l.HeaderID = h.ID
			fresh = append(fresh, l)
		}
	}
	if len(fresh) > 0 {
		inserted, err := store.InsertLines(ctx, fresh)
		if err != nil {
			return nil, fmt.Errorf("failed to insert lines: %w", err)
		}
		fresh = inserted
	}

	final := make([]domain.Line, 0, len(lines.lines))
	next := 0
	for _, l := range lines.lines {
		if l.ID == 0 {
			l = fresh[next]
			next++
		}
		final = append(final, l)
	}
	return final, nil
}

// writePostings applies the reconcile plans for the three posting ledgers and
// returns the surviving nominal and vat rows.
func (s *transactionService) writePostings(ctx context.Context, store portsrepo.LedgerWriter, st storedState, set posting.Set) ([]domain.NominalTransaction, []domain.VatTransaction, error) {
	nominal := posting.ReconcileNominal(st.nominal, set.Nominal)
	if err := store.DeleteNominalTransactions(ctx, nominal.Delete); err != nil {
		return nil, nil, fmt.Errorf("failed to delete nominal transactions: %w", err)
	}
	if err := store.UpdateNominalTransactions(ctx, nominal.Update); err != nil {
		return nil, nil, fmt.Errorf("failed to update nominal transactions: %w", err)
	}
	created, err := store.InsertNominalTransactions(ctx, nominal.Create)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to insert nominal transactions: %w", err)
	}
	nominal.Create = created
	countWrites("nominal", len(nominal.Create), len(nominal.Update), len(nominal.Delete))

	vat := posting.ReconcileVat(st.vat, set.Vat)
	if err := store.DeleteVatTransactions(ctx, vat.Delete); err != nil {
		return nil, nil, fmt.Errorf("failed to delete vat transactions: %w", err)
	}
	if err := store.UpdateVatTransactions(ctx, vat.Update); err != nil {
		return nil, nil, fmt.Errorf("failed to update vat transactions: %w", err)
	}
	createdVat, err := store.InsertVatTransactions(ctx, vat.Create)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to insert vat transactions: %w", err)
	}
	vat.Create = createdVat
	countWrites("vat", len(vat.Create), len(vat.Update), len(vat.Delete))

	cash := posting.ReconcileCashBook(st.cashBook, set.CashBook)
	if err := store.DeleteCashBookTransactions(ctx, cash.Delete); err != nil {
		return nil, nil, fmt.Errorf("failed to delete cash book transactions: %w", err)
	}
	if err := store.UpdateCashBookTransactions(ctx, cash.Update); err != nil {
		return nil, nil, fmt.Errorf("failed to update cash book transactions: %w", err)
	}
	if _, err := store.InsertCashBookTransactions(ctx, cash.Create); err != nil {
		return nil, nil, fmt.Errorf("failed to insert cash book transactions: %w", err)
	}
	countWrites("cashbook", len(cash.Create), len(cash.Update), len(cash.Delete))

	return nominal.Final(), vat.Final(), nil
}

func (s *transactionService) writeMatches(ctx context.Context, store portsrepo.LedgerWriter, h domain.Header, res matching.Result, userID string, now time.Time) error {
	if len(res.Create) > 0 {
		for i := range res.Create {
			res.Create[i].MatchedByID = h.ID
			res.Create[i].CreatedAt = now
		}
		if _, err := store.InsertMatches(ctx, res.Create); err != nil {
			return fmt.Errorf("failed to insert matches: %w", err)
		}
	}
	if err := store.UpdateMatches(ctx, res.Update); err != nil {
		return fmt.Errorf("failed to update matches: %w", err)
	}
	if err := store.DeleteMatches(ctx, res.Delete); err != nil {
		return fmt.Errorf("failed to delete matches: %w", err)
	}

	if len(res.Counterparties) == 0 {
		return nil
	}
	for i := range res.Counterparties {
		res.Counterparties[i].LastUpdatedAt = now
		res.Counterparties[i].LastUpdatedBy = userID
	}
	if err := store.UpdateHeaders(ctx, res.Counterparties); err != nil {
		return fmt.Errorf("failed to update matched transactions: %w", err)
	}
	return nil
}

// Void removes everything derived from a header, releases its matches and
// keeps the header itself with zero balances. Voiding twice is a no-op.
func (s *transactionService) Void(ctx context.Context, module domain.Module, headerID int64, userID string) (*domain.Header, error) {
	var voided domain.Header
	err := s.uow.WithinTx(ctx, func(ctx context.Context, store portsrepo.LedgerStore) error {
		locked, err := store.LockHeaders(ctx, module, []int64{headerID})
		if err != nil {
			return fmt.Errorf("failed to lock transaction %d: %w", headerID, err)
		}
		h, ok := locked[headerID]
		if !ok {
			return apperrors.NewNotFoundError(fmt.Sprintf("transaction %d", headerID))
		}
		if h.IsVoid() {
			voided = h
			return nil
		}

		st, err := loadStoredState(ctx, store, module, headerID)
		if err != nil {
			return err
		}
		counterparties, err := store.LockHeaders(ctx, module, counterpartyIDs(headerID, st.matches, nil))
		if err != nil {
			return fmt.Errorf("failed to lock matched transactions: %w", err)
		}
		restored, err := matching.Release(headerID, st.matches, counterparties)
		if err != nil {
			return err
		}

		if err := store.DeleteNominalTransactions(ctx, idsOf(st.nominal, func(n domain.NominalTransaction) int64 { return n.ID })); err != nil {
			return fmt.Errorf("failed to delete nominal transactions: %w", err)
		}
		if err := store.DeleteVatTransactions(ctx, idsOf(st.vat, func(v domain.VatTransaction) int64 { return v.ID })); err != nil {
			return fmt.Errorf("failed to delete vat transactions: %w", err)
		}
		if err := store.DeleteCashBookTransactions(ctx, idsOf(st.cashBook, func(c domain.CashBookTransaction) int64 { return c.ID })); err != nil {
			return fmt.Errorf("failed to delete cash book transactions: %w", err)
		}
		if err := store.DeleteLines(ctx, idsOf(st.lines, func(l domain.Line) int64 { return l.ID })); err != nil {
			return fmt.Errorf("failed to delete lines: %w", err)
		}
		if err := store.DeleteMatches(ctx, idsOf(st.matches, func(m domain.Match) int64 { return m.ID })); err != nil {
			return fmt.Errorf("failed to delete matches: %w", err)
		}
		countWrites("nominal", 0, 0, len(st.nominal))
		countWrites("vat", 0, 0, len(st.vat))
		countWrites("cashbook", 0, 0, len(st.cashBook))

		now := s.now().UTC()
		for i := range restored {
			restored[i].LastUpdatedAt, restored[i].LastUpdatedBy = now, userID
		}
		h.Goods, h.Vat, h.Total, h.Paid, h.Due = decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
		h.Status = domain.HeaderVoid
		h.LastUpdatedAt, h.LastUpdatedBy = now, userID
		if err := store.UpdateHeaders(ctx, append(restored, h)); err != nil {
			return fmt.Errorf("failed to update headers: %w", err)
		}
		voided = h
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to void transaction", slog.String("module", string(module)), slog.Int64("header_id", headerID))
		return nil, fmt.Errorf("failed to void transaction: %w", err)
	}

	transactionsPosted.WithLabelValues(string(module), string(voided.Type), "void").Inc()
	s.LogInfo(ctx, "Transaction voided", slog.String("module", string(module)), slog.Int64("header_id", headerID))
	return &voided, nil
}

func idsOf[T any](rows []T, id func(T) int64) []int64 {
	out := make([]int64, 0, len(rows))
	for _, r := range rows {
		out = append(out, id(r))
	}
	return out
}

// GetHeader retrieves a header of the module.
func (s *transactionService) GetHeader(ctx context.Context, module domain.Module, headerID int64) (*domain.Header, error) {
	h, err := s.reader.FindHeaderByID(ctx, module, headerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get transaction", slog.String("module", string(module)), slog.Int64("header_id", headerID))
		}
		return nil, err
	}
	return h, nil
}

// ListHeaders retrieves a page of headers ordered by date, then id.
func (s *transactionService) ListHeaders(ctx context.Context, module domain.Module, params dto.ListHeadersParams) (*dto.ListHeadersResponse, error) {
	if params.Limit <= 0 {
		params.Limit = defaultPageSize
	}
	if params.NextToken != nil {
		if _, _, err := pagination.DecodeHeaderToken(*params.NextToken); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
	}

	headers, next, err := s.reader.ListHeaders(ctx, portsrepo.HeaderFilter{
		Module:          module,
		ContactID:       params.ContactID,
		OutstandingOnly: params.Outstanding,
		IncludeVoid:     params.IncludeVoid,
		Limit:           params.Limit,
		NextToken:       params.NextToken,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("module", string(module)))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return &dto.ListHeadersResponse{Headers: dto.ToHeaderResponses(headers), NextToken: next}, nil
}

func (s *transactionService) ListLines(ctx context.Context, module domain.Module, headerID int64) ([]domain.Line, error) {
	if _, err := s.GetHeader(ctx, module, headerID); err != nil {
		return nil, err
	}
	return s.reader.FindLinesByHeader(ctx, headerID)
}

func (s *transactionService) ListNominalTransactions(ctx context.Context, module domain.Module, headerID int64) ([]domain.NominalTransaction, error) {
	if _, err := s.GetHeader(ctx, module, headerID); err != nil {
		return nil, err
	}
	return s.reader.FindNominalTransactions(ctx, module, headerID)
}

func (s *transactionService) ListVatTransactions(ctx context.Context, module domain.Module, headerID int64) ([]domain.VatTransaction, error) {
	if _, err := s.GetHeader(ctx, module, headerID); err != nil {
		return nil, err
	}
	return s.reader.FindVatTransactions(ctx, module, headerID)
}

func (s *transactionService) ListCashBookTransactions(ctx context.Context, module domain.Module, headerID int64) ([]domain.CashBookTransaction, error) {
	if _, err := s.GetHeader(ctx, module, headerID); err != nil {
		return nil, err
	}
	return s.reader.FindCashBookTransactions(ctx, module, headerID)
}

func (s *transactionService) ListMatches(ctx context.Context, module domain.Module, headerID int64) ([]domain.Match, error) {
	if _, err := s.GetHeader(ctx, module, headerID); err != nil {
		return nil, err
	}
	return s.reader.FindMatchesByHeader(ctx, module, headerID)
}
