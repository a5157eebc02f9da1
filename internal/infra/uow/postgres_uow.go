// Package uow runs command use cases inside Postgres transactions and
// display snapshots inside repeatable-read, read-only ones.
package uow

import (
	"context"
	"log/slog"
	"time"

	"signage-sync/internal/infra/db"
	"signage-sync/internal/infra/readstore"
	"signage-sync/internal/infra/repository"
	"signage-sync/internal/pkg/errs"
	"signage-sync/internal/usecase/shared"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxTxRetries = 3
)

var (
	errTransactionBegin   = errs.New("begin transaction")
	errTransactionCommit  = errs.New("commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
	// newBackOff paces retries of serialization failures and deadlocks.
	newBackOff func() backoff.BackOff

	menuItems  *repository.MenuItemRepository
	promotions *repository.PromotionRepository
	stores     *repository.StoreRepository
	playlists  *repository.PlaylistRepository
}

func NewPostgresUoW(pool *pgxpool.Pool, logger *slog.Logger) shared.UnitOfWork {
	return &PostgresUoW{
		pool:       pool,
		logger:     logger.With("component", "uow"),
		newBackOff: defaultTxBackOff,
		menuItems:  repository.NewMenuItemRepository(),
		promotions: repository.NewPromotionRepository(),
		stores:     repository.NewStoreRepository(),
		playlists:  repository.NewPlaylistRepository(),
	}
}

func defaultTxBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.RandomizationFactor = 0.2
	b.MaxElapsedTime = 0
	return backoff.WithMaxRetries(b, maxTxRetries)
}

// Within runs fn at read committed. Commands lock the rows they touch with
// FOR UPDATE, so a stronger level only adds serialization retries.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}
	attempt := 0

	op := func() error {
		attempt++
		err := u.runOnce(ctx, opts, fn)
		if err != nil && !isRetryableError(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		u.logger.Warn("retrying transaction",
			"attempt", attempt,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())
	}

	err := backoff.RetryNotify(op, backoff.WithContext(u.newBackOff(), ctx), notify)
	if err != nil && isRetryableError(err) {
		u.logger.Error("transaction failed after max retries", "attempts", attempt, "error", err.Error())
		return errs.Mark(err, errMaxRetriesExceeded)
	}
	return err
}

func (u *PostgresUoW) runOnce(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	err = fn(ctx, &pgTx{dbtx: pgxTx, uow: u})
	if err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}
	u.rollback(ctx, pgxTx)
	return err
}

// WithinReadOnly gives every query of a display snapshot the same view.
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, q db.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly, IsoLevel: pgx.RepeatableRead})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer u.rollback(ctx, pgxTx)

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}
	return pgxTx.Commit(ctx)
}

func (u *PostgresUoW) rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errs.Is(err, pgx.ErrTxClosed) {
		u.logger.Warn("rollback failed", "error", err.Error())
	}
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errs.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx  db.DBTX
	uow   *PostgresUoW
	reads shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) MenuItems() shared.MenuItemRepository {
	return t.uow.menuItems
}

func (t *pgTx) Promotions() shared.PromotionRepository {
	return t.uow.promotions
}

func (t *pgTx) Stores() shared.StoreRepository {
	return t.uow.stores
}

func (t *pgTx) Playlists() shared.PlaylistRepository {
	return t.uow.playlists
}

// Reads is created lazily; most commands touch only one or two lookups.
func (t *pgTx) Reads() shared.CommandReads {
	if t.reads == nil {
		t.reads = readstore.NewCommandReadStore(t.dbtx)
	}
	return t.reads
}
