package pgsql

import (
	"context"

	portsrepo "github.com/SscSPs/bookkeeping_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxUnitOfWork runs a function inside one database transaction.
type PgxUnitOfWork struct {
	BaseRepository
}

func newPgxUnitOfWork(pool *pgxpool.Pool) *PgxUnitOfWork {
	return &PgxUnitOfWork{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.UnitOfWork         = (*PgxUnitOfWork)(nil)
	_ portsrepo.TransactionManager = (*BaseRepository)(nil)
)

// WithinTx begins a transaction, hands fn a store bound to it and commits
// only when fn succeeds.
func (u *PgxUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, store portsrepo.LedgerStore) error) error {
	tx, err := u.Begin(ctx)
	if err != nil {
		return err
	}
	defer u.Rollback(ctx, tx) // no-op once committed

	if err := fn(ctx, &PgxLedgerRepository{q: tx}); err != nil {
		return err
	}
	return u.Commit(ctx, tx)
}
