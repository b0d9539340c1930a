package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/apperrors"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{reportingRepo: repo}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// TrialBalance nets nominal transactions per nominal. An empty period covers every period.
func (s *reportingService) TrialBalance(ctx context.Context, period string) (*domain.TrialBalance, error) {
	rows, err := s.reportingRepo.GetTrialBalanceData(ctx, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve trial balance data", slog.String("period", period))
		return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
	}

	tb := &domain.TrialBalance{Period: period, Rows: rows, TotalDebit: decimal.Zero, TotalCredit: decimal.Zero}
	for _, r := range rows {
		tb.TotalDebit = tb.TotalDebit.Add(r.Debit)
		tb.TotalCredit = tb.TotalCredit.Add(r.Credit)
	}
	if !tb.TotalDebit.Equal(tb.TotalCredit) {
		// every header posts a zero-sum set, so this means the ledger was written around the service
		s.GetLogger(ctx).Error("Trial balance does not net to zero",
			slog.String("period", period),
			slog.String("debit", tb.TotalDebit.StringFixed(2)),
			slog.String("credit", tb.TotalCredit.StringFixed(2)))
	}

	s.LogInfo(ctx, "Trial balance report generated successfully",
		slog.String("period", period),
		slog.Int("row_count", len(rows)))
	return tb, nil
}

// AgedBalances buckets the outstanding headers of a purchase or sales ledger by
// the number of whole months between the header date and asOf.
func (s *reportingService) AgedBalances(ctx context.Context, module domain.Module, asOf time.Time) (*domain.AgedBalanceReport, error) {
	if module != domain.ModulePurchases && module != domain.ModuleSales {
		return nil, fmt.Errorf("%w: aged balances are only available for PL and SL", apperrors.ErrValidation)
	}

	headers, err := s.reportingRepo.ListOutstandingHeaders(ctx, module, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve outstanding transactions", slog.String("module", string(module)))
		return nil, fmt.Errorf("failed to retrieve outstanding transactions: %w", err)
	}

	type contactKey struct {
		set bool
		id  int64
	}
	byContact := make(map[contactKey]*domain.AgedBalance)
	report := &domain.AgedBalanceReport{Module: module, AsOf: asOf}
	for _, h := range headers {
		key := contactKey{}
		if h.ContactID != nil {
			key = contactKey{set: true, id: *h.ContactID}
		}
		row, ok := byContact[key]
		if !ok {
			row = &domain.AgedBalance{ContactID: h.ContactID}
			byContact[key] = row
		}
		months := monthsBetween(h.Date, asOf)
		row.Add(months, h.Due)
		report.Totals.Add(months, h.Due)
	}

	for _, row := range byContact {
		report.Rows = append(report.Rows, *row)
	}
	sort.Slice(report.Rows, func(i, j int) bool {
		a, b := report.Rows[i].ContactID, report.Rows[j].ContactID
		if a == nil || b == nil {
			return a == nil && b != nil
		}
		return *a < *b
	})

	s.LogInfo(ctx, "Aged balances generated successfully",
		slog.String("module", string(module)),
		slog.Int("contact_count", len(report.Rows)))
	return report, nil
}

// monthsBetween counts whole calendar months from `from` to `to`.
func monthsBetween(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	return months
}
