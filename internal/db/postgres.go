// internal/db/postgres.go
package db

import (
	"context"
	"fmt"

	"github.com/25ayu25/BGC-MedicalManagementSystem/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect builds the shared connection pool. The pool is the only
// cross-request resource in the process; the caller owns it and must
// Close() it on shutdown.
func Connect(ctx context.Context, cfg config.AppConfig) (*pgxpool.Pool, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	pc, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DATABASE_URL: %w", err)
	}
	if cfg.DBMaxConns > 0 {
		pc.MaxConns = cfg.DBMaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	return pool, nil
}
