package postgres

import (
	"context"
	"fmt"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stock-manager/pkg/config"
)

// Dimensionado del pool: una cantina tiene pocos operadores concurrentes.
const (
	poolMaxConns          = 10
	poolMinConns          = 1
	poolMaxConnLifetime   = time.Hour
	poolMaxConnIdleTime   = 30 * time.Minute
	poolHealthCheckPeriod = time.Minute
)

// NewPool crea el pool de conexiones con DATABASE_URL o, si está vacío, con el DSN de DB_HOST, DB_PORT, etc.
// Cada conexión registra el codec NUMERIC <-> shopspring/decimal.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	pc, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

func poolConfig(cfg config.DBConfig) (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	pc.MaxConns = poolMaxConns
	pc.MinConns = poolMinConns
	pc.MaxConnLifetime = poolMaxConnLifetime
	pc.MaxConnIdleTime = poolMaxConnIdleTime
	pc.HealthCheckPeriod = poolHealthCheckPeriod
	pc.AfterConnect = func(_ context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}
	return pc, nil
}
