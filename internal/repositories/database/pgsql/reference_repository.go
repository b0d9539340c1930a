package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/bookkeeping_ledger/internal/apperrors"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// FindNominalsByIDs returns the nominals that exist among ids.
func (r *PgxLedgerRepository) FindNominalsByIDs(ctx context.Context, ids []int64) (map[int64]domain.Nominal, error) {
	out := make(map[int64]domain.Nominal, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx, `SELECT id, name FROM nominals WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, translate(err, "nominals")
	}
	defer rows.Close()

	for rows.Next() {
		var n domain.Nominal
		if err := rows.Scan(&n.ID, &n.Name); err != nil {
			return nil, translate(err, "nominals")
		}
		out[n.ID] = n
	}
	return out, translate(rows.Err(), "nominals")
}

// FindVatCodesByIDs returns the vat codes that exist among ids.
func (r *PgxLedgerRepository) FindVatCodesByIDs(ctx context.Context, ids []int64) (map[int64]domain.VatCode, error) {
	out := make(map[int64]domain.VatCode, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.q.Query(ctx, `SELECT id, code, name, rate FROM vat_codes WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, translate(err, "vat codes")
	}
	defer rows.Close()

	for rows.Next() {
		var v domain.VatCode
		if err := rows.Scan(&v.ID, &v.Code, &v.Name, &v.Rate); err != nil {
			return nil, translate(err, "vat codes")
		}
		out[v.ID] = v
	}
	return out, translate(rows.Err(), "vat codes")
}

func (r *PgxLedgerRepository) FindCashBookByID(ctx context.Context, id int64) (*domain.CashBook, error) {
	var cb domain.CashBook
	err := r.q.QueryRow(ctx, `SELECT id, name, nominal_id FROM cash_books WHERE id = $1`, id).
		Scan(&cb.ID, &cb.Name, &cb.NominalID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("cash book %d", id))
	}
	if err != nil {
		return nil, translate(err, "cash book")
	}
	return &cb, nil
}
