package pgsql

import (
	"context"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/SscSPs/bookkeeping_ledger/internal/models"
	"github.com/SscSPs/bookkeeping_ledger/internal/utils/mapping"
)

const nominalColumns = `id, module, header_id, line_id, nominal_id, value, ref, period, date, type, field`

const vatColumns = `id, module, header_id, line_id, ref, period, date, field, tran_type, vat_type,
	vat_code_id, vat_rate, goods, vat`

const cashBookColumns = `id, module, header_id, line_id, cash_book_id, value, ref, period, date, type, field`

const matchColumns = `id, module, matched_by_id, matched_to_id, value, period, created_at`

func (r *PgxLedgerRepository) FindNominalTransactions(ctx context.Context, module domain.Module, headerID int64) ([]domain.NominalTransaction, error) {
	rows, err := collect[models.NominalTransaction](ctx, r.q, "nominal transactions",
		`SELECT `+nominalColumns+` FROM nominal_transactions WHERE module = $1 AND header_id = $2 ORDER BY id`,
		string(module), headerID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainNominalTransaction), nil
}

func (r *PgxLedgerRepository) FindVatTransactions(ctx context.Context, module domain.Module, headerID int64) ([]domain.VatTransaction, error) {
	rows, err := collect[models.VatTransaction](ctx, r.q, "vat transactions",
		`SELECT `+vatColumns+` FROM vat_transactions WHERE module = $1 AND header_id = $2 ORDER BY id`,
		string(module), headerID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainVatTransaction), nil
}

func (r *PgxLedgerRepository) FindCashBookTransactions(ctx context.Context, module domain.Module, headerID int64) ([]domain.CashBookTransaction, error) {
	rows, err := collect[models.CashBookTransaction](ctx, r.q, "cash book transactions",
		`SELECT `+cashBookColumns+` FROM cashbook_transactions WHERE module = $1 AND header_id = $2 ORDER BY id`,
		string(module), headerID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainCashBookTransaction), nil
}

func (r *PgxLedgerRepository) InsertNominalTransactions(ctx context.Context, postings []domain.NominalTransaction) ([]domain.NominalTransaction, error) {
	query := `
		INSERT INTO nominal_transactions (module, header_id, line_id, nominal_id, value, ref, period, date, type, field)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	argSets := make([][]any, 0, len(postings))
	for _, p := range postings {
		m := mapping.ToModelNominalTransaction(p)
		argSets = append(argSets, []any{m.Module, m.HeaderID, m.LineID, m.NominalID, m.Value, m.Ref, m.Period, m.Date, m.Type, m.Field})
	}
	ids, err := insertReturning(ctx, r.q, "nominal transaction", query, argSets)
	if err != nil {
		return nil, err
	}
	out := make([]domain.NominalTransaction, len(postings))
	for i, p := range postings {
		p.ID = ids[i]
		out[i] = p
	}
	return out, nil
}

func (r *PgxLedgerRepository) UpdateNominalTransactions(ctx context.Context, postings []domain.NominalTransaction) error {
	query := `
		UPDATE nominal_transactions
		SET nominal_id = $2, value = $3, ref = $4, period = $5, date = $6, type = $7
		WHERE id = $1
	`
	argSets := make([][]any, 0, len(postings))
	for _, p := range postings {
		m := mapping.ToModelNominalTransaction(p)
		argSets = append(argSets, []any{m.ID, m.NominalID, m.Value, m.Ref, m.Period, m.Date, m.Type})
	}
	return updateEach(ctx, r.q, "nominal transaction", query, argSets)
}

func (r *PgxLedgerRepository) DeleteNominalTransactions(ctx context.Context, ids []int64) error {
	return deleteByIDs(ctx, r.q, "nominal_transactions", ids)
}

func (r *PgxLedgerRepository) InsertVatTransactions(ctx context.Context, vats []domain.VatTransaction) ([]domain.VatTransaction, error) {
	query := `
		INSERT INTO vat_transactions (
			module, header_id, line_id, ref, period, date, field, tran_type, vat_type, vat_code_id, vat_rate, goods, vat
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	argSets := make([][]any, 0, len(vats))
	for _, v := range vats {
		m := mapping.ToModelVatTransaction(v)
		argSets = append(argSets, []any{
			m.Module, m.HeaderID, m.LineID, m.Ref, m.Period, m.Date, m.Field, m.TranType, m.VatType,
			m.VatCodeID, m.VatRate, m.Goods, m.Vat,
		})
	}
	ids, err := insertReturning(ctx, r.q, "vat transaction", query, argSets)
	if err != nil {
		return nil, err
	}
	out := make([]domain.VatTransaction, len(vats))
	for i, v := range vats {
		v.ID = ids[i]
		out[i] = v
	}
	return out, nil
}

func (r *PgxLedgerRepository) UpdateVatTransactions(ctx context.Context, vats []domain.VatTransaction) error {
	query := `
		UPDATE vat_transactions
		SET ref = $2, period = $3, date = $4, tran_type = $5, vat_type = $6, vat_code_id = $7,
			vat_rate = $8, goods = $9, vat = $10
		WHERE id = $1
	`
	argSets := make([][]any, 0, len(vats))
	for _, v := range vats {
		m := mapping.ToModelVatTransaction(v)
		argSets = append(argSets, []any{m.ID, m.Ref, m.Period, m.Date, m.TranType, m.VatType, m.VatCodeID, m.VatRate, m.Goods, m.Vat})
	}
	return updateEach(ctx, r.q, "vat transaction", query, argSets)
}

func (r *PgxLedgerRepository) DeleteVatTransactions(ctx context.Context, ids []int64) error {
	return deleteByIDs(ctx, r.q, "vat_transactions", ids)
}

func (r *PgxLedgerRepository) InsertCashBookTransactions(ctx context.Context, entries []domain.CashBookTransaction) ([]domain.CashBookTransaction, error) {
	query := `
		INSERT INTO cashbook_transactions (module, header_id, line_id, cash_book_id, value, ref, period, date, type, field)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	argSets := make([][]any, 0, len(entries))
	for _, c := range entries {
		m := mapping.ToModelCashBookTransaction(c)
		argSets = append(argSets, []any{m.Module, m.HeaderID, m.LineID, m.CashBookID, m.Value, m.Ref, m.Period, m.Date, m.Type, m.Field})
	}
	ids, err := insertReturning(ctx, r.q, "cash book transaction", query, argSets)
	if err != nil {
		return nil, err
	}
	out := make([]domain.CashBookTransaction, len(entries))
	for i, c := range entries {
		c.ID = ids[i]
		out[i] = c
	}
	return out, nil
}

func (r *PgxLedgerRepository) UpdateCashBookTransactions(ctx context.Context, entries []domain.CashBookTransaction) error {
	query := `
		UPDATE cashbook_transactions
		SET cash_book_id = $2, value = $3, ref = $4, period = $5, date = $6, type = $7
		WHERE id = $1
	`
	argSets := make([][]any, 0, len(entries))
	for _, c := range entries {
		m := mapping.ToModelCashBookTransaction(c)
		argSets = append(argSets, []any{m.ID, m.CashBookID, m.Value, m.Ref, m.Period, m.Date, m.Type})
	}
	return updateEach(ctx, r.q, "cash book transaction", query, argSets)
}

func (r *PgxLedgerRepository) DeleteCashBookTransactions(ctx context.Context, ids []int64) error {
	return deleteByIDs(ctx, r.q, "cashbook_transactions", ids)
}

// FindMatchesByHeader returns matches where the header is on either side.
func (r *PgxLedgerRepository) FindMatchesByHeader(ctx context.Context, module domain.Module, headerID int64) ([]domain.Match, error) {
	rows, err := collect[models.Match](ctx, r.q, "matches",
		`SELECT `+matchColumns+` FROM matches WHERE module = $1 AND (matched_by_id = $2 OR matched_to_id = $2) ORDER BY id`,
		string(module), headerID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainSlice(rows, mapping.ToDomainMatch), nil
}

func (r *PgxLedgerRepository) InsertMatches(ctx context.Context, matches []domain.Match) ([]domain.Match, error) {
	query := `
		INSERT INTO matches (module, matched_by_id, matched_to_id, value, period, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	argSets := make([][]any, 0, len(matches))
	for _, mt := range matches {
		m := mapping.ToModelMatch(mt)
		argSets = append(argSets, []any{m.Module, m.MatchedByID, m.MatchedToID, m.Value, m.Period, m.CreatedAt})
	}
	ids, err := insertReturning(ctx, r.q, "match", query, argSets)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Match, len(matches))
	for i, m := range matches {
		m.ID = ids[i]
		out[i] = m
	}
	return out, nil
}

func (r *PgxLedgerRepository) UpdateMatches(ctx context.Context, matches []domain.Match) error {
	query := `UPDATE matches SET matched_by_id = $2, matched_to_id = $3, value = $4, period = $5 WHERE id = $1`
	argSets := make([][]any, 0, len(matches))
	for _, mt := range matches {
		m := mapping.ToModelMatch(mt)
		argSets = append(argSets, []any{m.ID, m.MatchedByID, m.MatchedToID, m.Value, m.Period})
	}
	return updateEach(ctx, r.q, "match", query, argSets)
}

func (r *PgxLedgerRepository) DeleteMatches(ctx context.Context, ids []int64) error {
	return deleteByIDs(ctx, r.q, "matches", ids)
}
