package postgres

import (
	"context"
	"time"

	"github.com/DRSN-tech/products-backend/internal/cfg"
	"github.com/DRSN-tech/products-backend/pkg/e"
	"github.com/DRSN-tech/products-backend/pkg/jitter"
	"github.com/DRSN-tech/products-backend/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgDatabase инкапсулирует пул соединений к PostgreSQL.
type PgDatabase struct {
	Pool *pgxpool.Pool
	cfg  *cfg.PGDBCfg
}

func NewPgDatabase(pool *pgxpool.Pool, cfg *cfg.PGDBCfg) *PgDatabase {
	return &PgDatabase{Pool: pool, cfg: cfg}
}

// Connect создаёт пул и дожидается первого успешного ping, повторяя попытки с экспоненциальной паузой.
func Connect(ctx context.Context, cfg *cfg.PGDBCfg, logger logger.Logger) (*PgDatabase, error) {
	const op = "PgDatabase.Connect"

	poolCfg, err := PoolConfig(cfg)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	policy := jitter.Policy{
		Attempts: cfg.ConnectRetries,
		Base:     500 * time.Millisecond,
		Max:      5 * time.Second,
	}
	err = jitter.Retry(ctx, policy, func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
		return pool.Ping(pingCtx)
	}, func(attempt int, wait time.Duration, err error) {
		logger.Warnf("postgres is not ready (attempt %d), retrying in %s: %v", attempt, wait, err)
	})
	if err != nil {
		pool.Close()
		return nil, e.Wrap(op, err)
	}

	return NewPgDatabase(pool, cfg), nil
}

// PoolConfig разбирает DSN и применяет ограничения пула из конфигурации.
func PoolConfig(cfg *cfg.PGDBCfg) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, err
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.ConnectTimeout > 0 {
		poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}

	return poolCfg, nil
}

func (db *PgDatabase) Ping(ctx context.Context) error {
	const op = "PgDatabase.Ping"

	ctx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()

	if err := db.Pool.Ping(ctx); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Close корректно закрывает пул соединений к базе данных.
func (db *PgDatabase) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}
