package services

import (
	"context"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/SscSPs/bookkeeping_ledger/internal/dto"
)

// TransactionReaderSvc defines read operations over posted transactions
type TransactionReaderSvc interface {
	// GetHeader retrieves a header of the module.
	GetHeader(ctx context.Context, module domain.Module, headerID int64) (*domain.Header, error)

	// ListHeaders retrieves a page of headers of the module.
	ListHeaders(ctx context.Context, module domain.Module, params dto.ListHeadersParams) (*dto.ListHeadersResponse, error)

	ListLines(ctx context.Context, module domain.Module, headerID int64) ([]domain.Line, error)
	ListNominalTransactions(ctx context.Context, module domain.Module, headerID int64) ([]domain.NominalTransaction, error)
	ListVatTransactions(ctx context.Context, module domain.Module, headerID int64) ([]domain.VatTransaction, error)
	ListCashBookTransactions(ctx context.Context, module domain.Module, headerID int64) ([]domain.CashBookTransaction, error)
	ListMatches(ctx context.Context, module domain.Module, headerID int64) ([]domain.Match, error)
}

// TransactionWriterSvc defines the posting operations
type TransactionWriterSvc interface {
	// Post creates a header with its lines, postings and matches.
	Post(ctx context.Context, module domain.Module, sub domain.Submission, userID string) (*domain.Header, error)

	// Repost edits a header and reconciles its postings and matches.
	Repost(ctx context.Context, module domain.Module, headerID int64, sub domain.Submission, userID string) (*domain.Header, error)

	// Void removes a header's lines, postings and matches and marks it void.
	Void(ctx context.Context, module domain.Module, headerID int64, userID string) (*domain.Header, error)
}

// TransactionSvcFacade combines all transaction service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
