// seed carga el catálogo de demostración (30 productos, 30 movimientos) en PostgreSQL.
//
// Uso: go run ./cmd/seed [-reset]
// Con -reset elimina antes todos los productos y su historial.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-manager/internal/infrastructure/seed"
	"github.com/jhoicas/stock-manager/pkg/config"
	"github.com/jhoicas/stock-manager/pkg/logger"
)

func main() {
	reset := flag.Bool("reset", false, "eliminar productos y movimientos existentes antes de cargar")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if cfg.Store.Driver != config.StorePostgres {
		fmt.Fprintln(os.Stderr, "STORE_DRIVER=memory no persiste datos; use STORE_SEED_DEMO=true al arrancar la API")
		os.Exit(2)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx := context.Background()
	store, err := postgres.Open(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer store.Close()

	if *reset {
		n, err := seed.Reset(ctx, store.Tx)
		if err != nil {
			log.Fatal().Err(err).Msg("reset del catálogo")
		}
		log.Info().Int("products", n).Msg("catálogo eliminado")
	}

	res, err := seed.Demo(ctx, store.Tx, entity.Today())
	if errors.Is(err, seed.ErrNotEmpty) {
		log.Warn().Err(err).Msg("nada que hacer; use -reset para recargar")
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("cargar catálogo de demostración")
	}
	log.Info().Int("products", res.Products).Int("movements", res.Movements).Msg("catálogo de demostración cargado")
}
