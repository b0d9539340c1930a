package repositories

import (
	"context"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// HeaderFilter narrows a header listing.
type HeaderFilter struct {
	Module          domain.Module
	ContactID       *int64
	OutstandingOnly bool
	IncludeVoid     bool
	Limit           int
	NextToken       *string
}

// HeaderReader defines read operations for headers
type HeaderReader interface {
	// FindHeaderByID retrieves a header of the given module.
	FindHeaderByID(ctx context.Context, module domain.Module, headerID int64) (*domain.Header, error)

	// ListHeaders returns headers ordered by date then id, and a token for the next page.
	ListHeaders(ctx context.Context, filter HeaderFilter) ([]domain.Header, *string, error)
}

// HeaderWriter defines write operations for headers
type HeaderWriter interface {
	// LockHeaders loads the headers and holds them for the rest of the unit of work.
	// Ids that do not exist in the module are absent from the result.
	LockHeaders(ctx context.Context, module domain.Module, headerIDs []int64) (map[int64]domain.Header, error)

	// InsertHeader persists a new header and sets its ID.
	InsertHeader(ctx context.Context, header *domain.Header) error

	// UpdateHeaders saves every field of the given headers.
	UpdateHeaders(ctx context.Context, headers []domain.Header) error
}

// LineReader defines read operations for analysis lines
type LineReader interface {
	// FindLinesByHeader returns the lines of a header in line number order.
	FindLinesByHeader(ctx context.Context, headerID int64) ([]domain.Line, error)
}

// LineWriter defines write operations for analysis lines
type LineWriter interface {
	InsertLines(ctx context.Context, lines []domain.Line) ([]domain.Line, error)
	UpdateLines(ctx context.Context, lines []domain.Line) error
	DeleteLines(ctx context.Context, lineIDs []int64) error
}

// PostingReader defines read operations for the three posting ledgers
type PostingReader interface {
	FindNominalTransactions(ctx context.Context, module domain.Module, headerID int64) ([]domain.NominalTransaction, error)
	FindVatTransactions(ctx context.Context, module domain.Module, headerID int64) ([]domain.VatTransaction, error)
	FindCashBookTransactions(ctx context.Context, module domain.Module, headerID int64) ([]domain.CashBookTransaction, error)
}

// PostingWriter defines write operations for the three posting ledgers.
// Insert methods return the rows with their assigned ids, in input order.
type PostingWriter interface {
	InsertNominalTransactions(ctx context.Context, postings []domain.NominalTransaction) ([]domain.NominalTransaction, error)
	UpdateNominalTransactions(ctx context.Context, postings []domain.NominalTransaction) error
	DeleteNominalTransactions(ctx context.Context, ids []int64) error

	InsertVatTransactions(ctx context.Context, vats []domain.VatTransaction) ([]domain.VatTransaction, error)
	UpdateVatTransactions(ctx context.Context, vats []domain.VatTransaction) error
	DeleteVatTransactions(ctx context.Context, ids []int64) error

	InsertCashBookTransactions(ctx context.Context, entries []domain.CashBookTransaction) ([]domain.CashBookTransaction, error)
	UpdateCashBookTransactions(ctx context.Context, entries []domain.CashBookTransaction) error
	DeleteCashBookTransactions(ctx context.Context, ids []int64) error
}

// MatchReader defines read operations for matches
type MatchReader interface {
	// FindMatchesByHeader returns matches where the header is on either side.
	FindMatchesByHeader(ctx context.Context, module domain.Module, headerID int64) ([]domain.Match, error)
}

// MatchWriter defines write operations for matches
type MatchWriter interface {
	InsertMatches(ctx context.Context, matches []domain.Match) ([]domain.Match, error)
	UpdateMatches(ctx context.Context, matches []domain.Match) error
	DeleteMatches(ctx context.Context, ids []int64) error
}

// ReferenceReader resolves the reference data lines and headers point at.
type ReferenceReader interface {
	FindNominalsByIDs(ctx context.Context, ids []int64) (map[int64]domain.Nominal, error)
	FindVatCodesByIDs(ctx context.Context, ids []int64) (map[int64]domain.VatCode, error)
	FindCashBookByID(ctx context.Context, id int64) (*domain.CashBook, error)
}

// LedgerReader combines every read used outside a unit of work.
type LedgerReader interface {
	HeaderReader
	LineReader
	PostingReader
	MatchReader
	ReferenceReader
}

// LedgerWriter combines every write.
type LedgerWriter interface {
	HeaderWriter
	LineWriter
	PostingWriter
	MatchWriter
}

// LedgerStore is the view of storage handed to a unit of work.
type LedgerStore interface {
	LedgerReader
	LedgerWriter
}

// UnitOfWork runs fn atomically. If fn returns an error nothing it wrote is kept.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, store LedgerStore) error) error
}

// TransactionManager is the pgx transaction lifecycle a postgres UnitOfWork is built on.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	// Rollback is safe to call after Commit.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
