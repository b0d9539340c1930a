package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/bookkeeping_ledger/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SQLSTATE codes the repositories translate.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// translate maps driver errors onto the application's sentinel errors.
func translate(err error, what string) error {
	var pgErr *pgconn.PgError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return apperrors.NewNotFoundError(what)
	case errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation:
		return apperrors.NewAppError(409, what+" already exists", errors.Join(apperrors.ErrDuplicate, err))
	case errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation:
		return fmt.Errorf("%w: %s references a missing row", apperrors.ErrNotFound, what)
	}
	return apperrors.NewAppError(500, "database error on "+what, err)
}

// collect runs a query and scans every row into M by column name.
func collect[M any](ctx context.Context, q querier, what, sql string, args ...any) ([]M, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, translate(err, what)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[M])
	if err != nil {
		return nil, translate(err, what)
	}
	return out, nil
}

// closeBatch closes br and reports its error unless err is already set.
func closeBatch(br pgx.BatchResults, what string, err *error) {
	if cerr := br.Close(); cerr != nil && *err == nil {
		*err = translate(cerr, what)
	}
}

// insertReturning queues one INSERT ... RETURNING id per argument set and
// returns the ids in input order.
func insertReturning(ctx context.Context, q querier, what, sql string, argSets [][]any) (ids []int64, err error) {
	if len(argSets) == 0 {
		return nil, nil
	}
	batch := &pgx.Batch{}
	for _, args := range argSets {
		batch.Queue(sql, args...)
	}
	br := q.SendBatch(ctx, batch)
	defer closeBatch(br, what, &err)

	ids = make([]int64, len(argSets))
	for i := range argSets {
		if err := br.QueryRow().Scan(&ids[i]); err != nil {
			return nil, translate(err, what)
		}
	}
	return ids, nil
}

// updateEach queues one UPDATE per argument set. The first argument of each
// set is the row id; a row that no longer exists is reported as not found.
func updateEach(ctx context.Context, q querier, what, sql string, argSets [][]any) (err error) {
	if len(argSets) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, args := range argSets {
		batch.Queue(sql, args...)
	}
	br := q.SendBatch(ctx, batch)
	defer closeBatch(br, what, &err)

	for _, args := range argSets {
		tag, err := br.Exec()
		if err != nil {
			return translate(err, what)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError(fmt.Sprintf("%s %v", what, args[0]))
		}
	}
	return nil
}

// deleteByIDs removes rows of table by primary key.
func deleteByIDs(ctx context.Context, q querier, table string, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := q.Exec(ctx, "DELETE FROM "+table+" WHERE id = ANY($1)", ids); err != nil {
		return translate(err, table)
	}
	return nil
}
