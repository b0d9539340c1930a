package services

import (
	"context"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
)

// ReportingService defines operations for generating ledger reports
type ReportingService interface {
	// TrialBalance nets every nominal, optionally for one period.
	TrialBalance(ctx context.Context, period string) (*domain.TrialBalance, error)

	// AgedBalances buckets the outstanding purchase or sales ledger by age as of a date.
	AgedBalances(ctx context.Context, module domain.Module, asOf time.Time) (*domain.AgedBalanceReport, error)
}
