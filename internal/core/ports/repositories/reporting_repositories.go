package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
)

// ReportingRepository defines operations for retrieving report data
type ReportingRepository interface {
	// GetTrialBalanceData nets nominal transactions per nominal, optionally for one period.
	GetTrialBalanceData(ctx context.Context, period string) ([]domain.TrialBalanceRow, error)

	// ListOutstandingHeaders returns active headers of a module with a non-zero due dated on or before asOf.
	ListOutstandingHeaders(ctx context.Context, module domain.Module, asOf time.Time) ([]domain.Header, error)
}
