package pgsql

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/bookkeeping_ledger/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	id  int64
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int64) = r.id
	return nil
}

type fakeBatchResults struct {
	tag      pgconn.CommandTag
	stmtErr  error
	closeErr error
	nextID   int64
	closed   bool
}

func (b *fakeBatchResults) Exec() (pgconn.CommandTag, error) { return b.tag, b.stmtErr }

func (b *fakeBatchResults) Query() (pgx.Rows, error) { return nil, errors.New("not used") }

func (b *fakeBatchResults) QueryRow() pgx.Row {
	b.nextID++
	return fakeRow{id: b.nextID, err: b.stmtErr}
}

func (b *fakeBatchResults) Close() error {
	b.closed = true
	return b.closeErr
}

// batchQuerier only supports SendBatch.
type batchQuerier struct {
	querier
	results *fakeBatchResults
}

func (q batchQuerier) SendBatch(context.Context, *pgx.Batch) pgx.BatchResults { return q.results }

func TestUpdateEach(t *testing.T) {
	ctx := context.Background()
	closeFailure := errors.New("connection reset")

	t.Run("success", func(t *testing.T) {
		br := &fakeBatchResults{tag: pgconn.NewCommandTag("UPDATE 1")}
		err := updateEach(ctx, batchQuerier{results: br}, "line", "UPDATE", [][]any{{int64(1)}, {int64(2)}})
		assert.NoError(t, err)
		assert.True(t, br.closed)
	})

	t.Run("close error is returned", func(t *testing.T) {
		br := &fakeBatchResults{tag: pgconn.NewCommandTag("UPDATE 1"), closeErr: closeFailure}
		err := updateEach(ctx, batchQuerier{results: br}, "line", "UPDATE", [][]any{{int64(1)}})
		require.Error(t, err)
		assert.ErrorIs(t, err, closeFailure)
	})

	t.Run("statement error wins over close error", func(t *testing.T) {
		br := &fakeBatchResults{stmtErr: &pgconn.PgError{Code: pgUniqueViolation}, closeErr: closeFailure}
		err := updateEach(ctx, batchQuerier{results: br}, "line", "UPDATE", [][]any{{int64(1)}})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrDuplicate)
		assert.NotErrorIs(t, err, closeFailure)
	})

	t.Run("missing row", func(t *testing.T) {
		br := &fakeBatchResults{tag: pgconn.NewCommandTag("UPDATE 0")}
		err := updateEach(ctx, batchQuerier{results: br}, "line", "UPDATE", [][]any{{int64(7)}})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestInsertReturning(t *testing.T) {
	ctx := context.Background()

	t.Run("ids in input order", func(t *testing.T) {
		br := &fakeBatchResults{}
		ids, err := insertReturning(ctx, batchQuerier{results: br}, "match", "INSERT", [][]any{{}, {}, {}})
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2, 3}, ids)
		assert.True(t, br.closed)
	})

	t.Run("close error is returned", func(t *testing.T) {
		closeFailure := errors.New("connection reset")
		br := &fakeBatchResults{closeErr: closeFailure}
		_, err := insertReturning(ctx, batchQuerier{results: br}, "match", "INSERT", [][]any{{}})
		require.Error(t, err)
		assert.ErrorIs(t, err, closeFailure)
	})

	t.Run("empty batch sends nothing", func(t *testing.T) {
		ids, err := insertReturning(ctx, batchQuerier{}, "match", "INSERT", nil)
		assert.NoError(t, err)
		assert.Nil(t, ids)
	})
}
