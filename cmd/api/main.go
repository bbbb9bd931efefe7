package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/stock-manager/internal/application/analytics"
	"github.com/jhoicas/stock-manager/internal/application/inventory"
	"github.com/jhoicas/stock-manager/internal/application/report"
	"github.com/jhoicas/stock-manager/internal/application/usecase"
	"github.com/jhoicas/stock-manager/internal/domain/entity"
	"github.com/jhoicas/stock-manager/internal/domain/repository"
	"github.com/jhoicas/stock-manager/internal/infrastructure/csvexport"
	"github.com/jhoicas/stock-manager/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/stock-manager/internal/infrastructure/pdf"
	"github.com/jhoicas/stock-manager/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-manager/internal/infrastructure/seed"
	httpRouter "github.com/jhoicas/stock-manager/internal/interfaces/http"
	"github.com/jhoicas/stock-manager/pkg/config"
	"github.com/jhoicas/stock-manager/pkg/logger"
)

// backend repositorios + TxRunner del driver elegido.
type backend struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
	tx        inventory.TxRunner
	close     func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Bool("auth", cfg.JWT.Enabled()).
		Msg("iniciando aplicación")

	ctx := context.Background()
	store, err := openBackend(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer store.close()

	if cfg.Store.SeedDemo {
		res, err := seed.Demo(ctx, store.tx, entity.Today())
		switch {
		case errors.Is(err, seed.ErrNotEmpty):
			log.Info().Msg("catálogo de demostración omitido: el almacén ya tiene datos")
		case err != nil:
			log.Fatal().Err(err).Msg("cargar catálogo de demostración")
		default:
			log.Info().Int("products", res.Products).Int("movements", res.Movements).Msg("catálogo de demostración cargado")
		}
	}

	productUC := usecase.NewProductUseCase(store.products, store.tx, log.Named("products"))
	registerMovementUC := inventory.NewRegisterMovementUseCase(store.tx, log.Named("movements"))
	movementQueryUC := inventory.NewMovementQueryUseCase(store.movements)
	dashboardUC := analytics.NewDashboardUseCase(store.products, store.movements)

	// PDF: informe de stock con maroto
	pdfGenerator := infrapdf.NewMarotoStockReport(cfg.App.Name)
	reportUC := report.NewReportUseCase(store.products, store.movements, csvexport.NewWriter(), pdfGenerator)

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:           cfg.App.Name,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		DocsPath:       cfg.HTTP.DocsPath,
	}, httpRouter.RouterDeps{
		ProductUC:        productUC,
		RegisterMovement: registerMovementUC,
		MovementQuery:    movementQueryUC,
		DashboardUC:      dashboardUC,
		ReportUC:         reportUC,
		JWTSecret:        cfg.JWT.Secret,
		Log:              log.Named("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func openBackend(ctx context.Context, cfg *config.Config, log *logger.Logger) (*backend, error) {
	if cfg.Store.Driver == config.StorePostgres {
		pg, err := postgres.Open(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return &backend{products: pg.Products, movements: pg.Movements, tx: pg.Tx, close: pg.Close}, nil
	}
	mem := memory.NewStore()
	return &backend{products: mem.Products(), movements: mem.Movements(), tx: mem, close: func() {}}, nil
}
