// Package memory is an in-process ledger store. Units of work run one at a time
// on a copy of the data that replaces the original only when they succeed.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/repositories"
)

type dataset struct {
	headers   map[int64]domain.Header
	lines     map[int64]domain.Line
	nominal   map[int64]domain.NominalTransaction
	vat       map[int64]domain.VatTransaction
	cashBook  map[int64]domain.CashBookTransaction
	matches   map[int64]domain.Match
	nominals  map[int64]domain.Nominal
	vatCodes  map[int64]domain.VatCode
	cashBooks map[int64]domain.CashBook

	headerSeq, lineSeq, nominalSeq, vatSeq, cashBookSeq, matchSeq int64
}

func newDataset() *dataset {
	return &dataset{
		headers:   make(map[int64]domain.Header),
		lines:     make(map[int64]domain.Line),
		nominal:   make(map[int64]domain.NominalTransaction),
		vat:       make(map[int64]domain.VatTransaction),
		cashBook:  make(map[int64]domain.CashBookTransaction),
		matches:   make(map[int64]domain.Match),
		nominals:  make(map[int64]domain.Nominal),
		vatCodes:  make(map[int64]domain.VatCode),
		cashBooks: make(map[int64]domain.CashBook),
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (d *dataset) clone() *dataset {
	c := *d
	c.headers = cloneMap(d.headers)
	c.lines = cloneMap(d.lines)
	c.nominal = cloneMap(d.nominal)
	c.vat = cloneMap(d.vat)
	c.cashBook = cloneMap(d.cashBook)
	c.matches = cloneMap(d.matches)
	c.nominals = cloneMap(d.nominals)
	c.vatCodes = cloneMap(d.vatCodes)
	c.cashBooks = cloneMap(d.cashBooks)
	return &c
}

// Store implements the ledger and reporting repositories in memory.
type Store struct {
	mu   sync.Mutex
	data *dataset
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{data: newDataset()}
}

var (
	_ portsrepo.LedgerReader        = (*Store)(nil)
	_ portsrepo.UnitOfWork          = (*Store)(nil)
	_ portsrepo.ReportingRepository = (*Store)(nil)
	_ portsrepo.LedgerStore         = (*txView)(nil)
)

// WithinTx runs fn with exclusive access to a private copy of the data. The
// copy is kept only when fn succeeds and ctx is still live.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, store portsrepo.LedgerStore) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.data.clone()
	if err := fn(ctx, &txView{d: work}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.data = work
	return nil
}

func (s *Store) view() *txView {
	s.mu.Lock()
	defer s.mu.Unlock()
	// committed snapshots are never mutated, so the view stays valid after unlock
	return &txView{d: s.data}
}

// SeedNominal adds a nominal account.
func (s *Store) SeedNominal(n domain.Nominal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.data.clone()
	d.nominals[n.ID] = n
	s.data = d
}

// SeedVatCode adds a vat code.
func (s *Store) SeedVatCode(v domain.VatCode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.data.clone()
	d.vatCodes[v.ID] = v
	s.data = d
}

// SeedCashBook adds a cash book.
func (s *Store) SeedCashBook(c domain.CashBook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.data.clone()
	d.cashBooks[c.ID] = c
	s.data = d
}

func (s *Store) FindHeaderByID(ctx context.Context, module domain.Module, headerID int64) (*domain.Header, error) {
	return s.view().FindHeaderByID(ctx, module, headerID)
}

func (s *Store) ListHeaders(ctx context.Context, filter portsrepo.HeaderFilter) ([]domain.Header, *string, error) {
	return s.view().ListHeaders(ctx, filter)
}

func (s *Store) FindLinesByHeader(ctx context.Context, headerID int64) ([]domain.Line, error) {
	return s.view().FindLinesByHeader(ctx, headerID)
}

func (s *Store) FindNominalTransactions(ctx context.Context, module domain.Module, headerID int64) ([]domain.NominalTransaction, error) {
	return s.view().FindNominalTransactions(ctx, module, headerID)
}

func (s *Store) FindVatTransactions(ctx context.Context, module domain.Module, headerID int64) ([]domain.VatTransaction, error) {
	return s.view().FindVatTransactions(ctx, module, headerID)
}

func (s *Store) FindCashBookTransactions(ctx context.Context, module domain.Module, headerID int64) ([]domain.CashBookTransaction, error) {
	return s.view().FindCashBookTransactions(ctx, module, headerID)
}

func (s *Store) FindMatchesByHeader(ctx context.Context, module domain.Module, headerID int64) ([]domain.Match, error) {
	return s.view().FindMatchesByHeader(ctx, module, headerID)
}

func (s *Store) FindNominalsByIDs(ctx context.Context, ids []int64) (map[int64]domain.Nominal, error) {
	return s.view().FindNominalsByIDs(ctx, ids)
}

func (s *Store) FindVatCodesByIDs(ctx context.Context, ids []int64) (map[int64]domain.VatCode, error) {
	return s.view().FindVatCodesByIDs(ctx, ids)
}

func (s *Store) FindCashBookByID(ctx context.Context, id int64) (*domain.CashBook, error) {
	return s.view().FindCashBookByID(ctx, id)
}

func sortedValues[V any](m map[int64]V, keep func(V) bool) []V {
	keys := make([]int64, 0, len(m))
	for k, v := range m {
		if keep(v) {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	out := make([]V, 0, len(keys))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}
