package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/apperrors"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/bookkeeping_ledger/internal/models"
	"github.com/SscSPs/bookkeeping_ledger/internal/utils/mapping"
	"github.com/SscSPs/bookkeeping_ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5/pgxpool"
)

const headerColumns = `id, module, type, ref, period, date, due_date, contact_id, cash_book_id, vat_type,
	goods, vat, total, paid, due, status, created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `id, header_id, line_no, description, nominal_id, vat_code_id, goods, vat,
	goods_nominal_transaction_id, vat_nominal_transaction_id, total_nominal_transaction_id, vat_transaction_id`

// PgxLedgerRepository reads and writes headers, lines, postings and matches.
// Outside a unit of work q is the pool; inside one it is the open transaction.
type PgxLedgerRepository struct {
	q querier
}

func newPgxLedgerRepository(pool *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{q: pool}
}

var _ portsrepo.LedgerStore = (*PgxLedgerRepository)(nil)

// FindHeaderByID retrieves a header of the given module.
func (r *PgxLedgerRepository) FindHeaderByID(ctx context.Context, module domain.Module, headerID int64) (*domain.Header, error) {
	rows, err := collect[models.Header](ctx, r.q, "transaction",
		`SELECT `+headerColumns+` FROM headers WHERE module = $1 AND id = $2`, string(module), headerID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction %d", headerID))
	}
	h := mapping.ToDomainHeader(rows[0])
	return &h, nil
}

// ListHeaders pages through headers by (date, id).
func (r *PgxLedgerRepository) ListHeaders(ctx context.Context, filter portsrepo.HeaderFilter) ([]domain.Header, *string, error) {
	var (
		afterDate *time.Time
		afterID   int64
		limit     *int
	)
	if filter.NextToken != nil {
		d, id, err := pagination.DecodeHeaderToken(*filter.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		afterDate, afterID = &d, id
	}
	if filter.Limit > 0 {
		// one extra row tells us whether another page exists
		n := filter.Limit + 1
		limit = &n
	}

	query := `
		SELECT ` + headerColumns + `
		FROM headers
		WHERE module = $1
			AND ($2::boolean OR status <> 'void')
			AND (NOT $3::boolean OR (status = 'active' AND due <> 0))
			AND ($4::bigint IS NULL OR contact_id = $4)
			AND ($5::date IS NULL OR (date, id) > ($5::date, $6::bigint))
		ORDER BY date, id
		LIMIT $7
	`
	rows, err := collect[models.Header](ctx, r.q, "transactions", query,
		string(filter.Module), filter.IncludeVoid, filter.OutstandingOnly, filter.ContactID, afterDate, afterID, limit)
	if err != nil {
		return nil, nil, err
	}

	headers := mapping.ToDomainSlice(rows, mapping.ToDomainHeader)
	if filter.Limit <= 0 || len(headers) <= filter.Limit {
		return headers, nil, nil
	}
	page := headers[:filter.Limit]
	last := page[len(page)-1]
	next := pagination.EncodeHeaderToken(last.Date, last.ID)
	return page, &next, nil
}

// LockHeaders selects the headers FOR UPDATE in id order so concurrent units
// of work touching the same headers always queue in the same order.
func (r *PgxLedgerRepository) LockHeaders(ctx context.Context, module domain.Module, headerIDs []int64) (map[int64]domain.Header, error) {
	out := make(map[int64]domain.Header, len(headerIDs))
	if len(headerIDs) == 0 {
		return out, nil
	}
	rows, err := collect[models.Header](ctx, r.q, "transactions",
		`SELECT `+headerColumns+` FROM headers WHERE module = $1 AND id = ANY($2) ORDER BY id FOR UPDATE`,
		string(module), headerIDs)
	if err != nil {
		return nil, err
	}
	for _, m := range rows {
		out[m.ID] = mapping.ToDomainHeader(m)
	}
	return out, nil
}

// InsertHeader persists a new header and sets its ID.
func (r *PgxLedgerRepository) InsertHeader(ctx context.Context, header *domain.Header) error {
	m := mapping.ToModelHeader(*header)
	query := `
		INSERT INTO headers (
			module, type, ref, period, date, due_date, contact_id, cash_book_id, vat_type,
			goods, vat, total, paid, due, status, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id
	`
	err := r.q.QueryRow(ctx, query,
		m.Module, m.Type, m.Ref, m.Period, m.Date, m.DueDate, m.ContactID, m.CashBookID, m.VatType,
		m.Goods, m.Vat, m.Total, m.Paid, m.Due, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	).Scan(&header.ID)
	return translate(err, "transaction")
}

// UpdateHeaders saves every mutable field of the given headers.
func (r *PgxLedgerRepository) UpdateHeaders(ctx context.Context, headers []domain.Header) error {
	query := `
		UPDATE headers
		SET type = $2, ref = $3, period = $4, date = $5, due_date = $6, contact_id = $7, cash_book_id = $8,
			vat_type = $9, goods = $10, vat = $11, total = $12, paid = $13, due = $14, status = $15,
			last_updated_at = $16, last_updated_by = $17
		WHERE id = $1
	`
	argSets := make([][]any, 0, len(headers))
	for _, h := range headers {
		m := mapping.ToModelHeader(h)
		argSets = append(argSets, []any{
			m.ID, m.Type, m.Ref, m.Period, m.Date, m.DueDate, m.ContactID, m.CashBookID,
			m.VatType, m.Goods, m.Vat, m.Total, m.Paid, m.Due, m.Status,
			m.LastUpdatedAt, m.LastUpdatedBy,
		})
	}
	return updateEach(ctx, r.q, "transaction", query, argSets)
}

// FindLinesByHeader returns the lines of a header in line number order.
func (r *PgxLedgerRepository) FindLinesByHeader(ctx context.Context, headerID int64) ([]domain.Line, error) {
	rows, err := collect[models.Line](ctx, r.q, "lines",
		`SELECT `+lineColumns+` FROM lines WHERE header_id = $1 ORDER BY line_no, id`, headerID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainLine), nil
}

func (r *PgxLedgerRepository) InsertLines(ctx context.Context, lines []domain.Line) ([]domain.Line, error) {
	query := `
		INSERT INTO lines (
			header_id, line_no, description, nominal_id, vat_code_id, goods, vat,
			goods_nominal_transaction_id, vat_nominal_transaction_id, total_nominal_transaction_id, vat_transaction_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	argSets := make([][]any, 0, len(lines))
	for _, l := range lines {
		m := mapping.ToModelLine(l)
		argSets = append(argSets, []any{
			m.HeaderID, m.LineNo, m.Description, m.NominalID, m.VatCodeID, m.Goods, m.Vat,
			m.GoodsNominalTransactionID, m.VatNominalTransactionID, m.TotalNominalTransactionID, m.VatTransactionID,
		})
	}
	ids, err := insertReturning(ctx, r.q, "line", query, argSets)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Line, len(lines))
	for i, l := range lines {
		l.ID = ids[i]
		out[i] = l
	}
	return out, nil
}

func (r *PgxLedgerRepository) UpdateLines(ctx context.Context, lines []domain.Line) error {
	query := `
		UPDATE lines
		SET line_no = $2, description = $3, nominal_id = $4, vat_code_id = $5, goods = $6, vat = $7,
			goods_nominal_transaction_id = $8, vat_nominal_transaction_id = $9,
			total_nominal_transaction_id = $10, vat_transaction_id = $11
		WHERE id = $1
	`
	argSets := make([][]any, 0, len(lines))
	for _, l := range lines {
		m := mapping.ToModelLine(l)
		argSets = append(argSets, []any{
			m.ID, m.LineNo, m.Description, m.NominalID, m.VatCodeID, m.Goods, m.Vat,
			m.GoodsNominalTransactionID, m.VatNominalTransactionID, m.TotalNominalTransactionID, m.VatTransactionID,
		})
	}
	return updateEach(ctx, r.q, "line", query, argSets)
}

func (r *PgxLedgerRepository) DeleteLines(ctx context.Context, lineIDs []int64) error {
	return deleteByIDs(ctx, r.q, "lines", lineIDs)
}
