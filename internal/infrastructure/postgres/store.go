package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stock-manager/internal/domain/repository"
	"github.com/jhoicas/stock-manager/pkg/config"
	"github.com/jhoicas/stock-manager/pkg/logger"
)

// Store agrupa pool, repositorios y TxRunner del adaptador PostgreSQL.
type Store struct {
	Pool      *pgxpool.Pool
	Products  repository.ProductRepository
	Movements repository.MovementRepository
	Tx        *TxRunner
}

// Open conecta, aplica el esquema si cfg.AutoMigrate y devuelve el Store listo para usar.
func Open(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Store, error) {
	pool, err := NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info().Msg("esquema de base de datos aplicado")
	}
	return &Store{
		Pool:      pool,
		Products:  NewProductRepository(pool),
		Movements: NewMovementRepository(pool),
		Tx:        NewTxRunner(pool),
	}, nil
}

// Close libera el pool.
func (s *Store) Close() {
	s.Pool.Close()
}
