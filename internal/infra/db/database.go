package db

import (
	"context"
	"log/slog"
	"time"

	"signage-sync/internal/pkg/config"
	"signage-sync/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:generate mockgen -source=database.go -destination=../../../tests/mock/db/mock_dbtx.go -package=dbmock

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx, so repositories run the
// same way inside and outside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Connect opens a pool and pings it, retrying up to cfg.ConnectAttempts
// times. The returned cleanup closes the pool.
func Connect(ctx context.Context, cfg config.DBConfig, logger *slog.Logger) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, errs.Wrap(err, "parse database config")
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	if poolCfg.MaxConnLifetime <= 0 {
		poolCfg.MaxConnLifetime = time.Hour
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, errs.Wrap(err, "open database")
	}

	attempts := cfg.ConnectAttempts
	if attempts == 0 {
		attempts = 1
	}
	retry := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), attempts-1), ctx)
	err = backoff.RetryNotify(func() error {
		return pool.Ping(ctx)
	}, retry, func(err error, wait time.Duration) {
		logger.Warn("database not reachable yet", "host", cfg.Host, "retry_in", wait, "error", err)
	})
	if err != nil {
		pool.Close()
		return nil, nil, errs.Wrap(err, "ping database")
	}

	cleanup := func() {
		pool.Close()
		logger.Info("database pool closed")
	}
	return pool, cleanup, nil
}
