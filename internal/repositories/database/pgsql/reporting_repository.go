package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_ledger/internal/models"
	"github.com/SscSPs/bookkeeping_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetTrialBalanceData nets nominal transactions per nominal, optionally for one period.
func (r *reportingRepository) GetTrialBalanceData(ctx context.Context, period string) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT
			t.nominal_id,
			COALESCE(n.name, '') AS nominal_name,
			SUM(t.value) AS net
		FROM nominal_transactions t
		LEFT JOIN nominals n ON n.id = t.nominal_id
		WHERE ($1 = '' OR t.period = $1)
		GROUP BY t.nominal_id, n.name
		HAVING SUM(t.value) <> 0
		ORDER BY t.nominal_id
	`

	rows, err := r.Pool.Query(ctx, query, period)
	if err != nil {
		return nil, fmt.Errorf("error querying trial balance data: %w", err)
	}
	defer rows.Close()

	var result []domain.TrialBalanceRow
	for rows.Next() {
		var (
			row domain.TrialBalanceRow
			net decimal.Decimal
		)
		if err := rows.Scan(&row.NominalID, &row.NominalName, &net); err != nil {
			return nil, fmt.Errorf("error scanning trial balance row: %w", err)
		}
		row.Debit, row.Credit = decimal.Zero, decimal.Zero
		if net.IsPositive() {
			row.Debit = net
		} else {
			row.Credit = net.Neg()
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", err)
	}
	return result, nil
}

// ListOutstandingHeaders returns active headers of a module with a non-zero due
// dated on or before asOf, oldest first.
func (r *reportingRepository) ListOutstandingHeaders(ctx context.Context, module domain.Module, asOf time.Time) ([]domain.Header, error) {
	rows, err := collect[models.Header](ctx, r.Pool, "outstanding transactions", `
		SELECT `+headerColumns+`
		FROM headers
		WHERE module = $1 AND status = 'active' AND due <> 0 AND date <= $2
		ORDER BY date, id
	`, string(module), asOf)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainHeader), nil
}
