package http

import (
	"os"
	"slices"
	"strings"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/stock-manager/internal/application/analytics"
	"github.com/jhoicas/stock-manager/internal/application/dto"
	"github.com/jhoicas/stock-manager/internal/application/inventory"
	"github.com/jhoicas/stock-manager/internal/application/report"
	"github.com/jhoicas/stock-manager/internal/application/usecase"
	"github.com/jhoicas/stock-manager/pkg/jwt"
	"github.com/jhoicas/stock-manager/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	MovementQuery    *inventory.MovementQueryUseCase
	DashboardUC      *analytics.DashboardUseCase
	ReportUC         *report.ReportUseCase
	JWTSecret        string
	Log              *logger.Logger
}

// AppConfig opciones del servidor Fiber.
type AppConfig struct {
	Name           string
	AllowedOrigins []string
	DocsPath       string // swagger.json; vacío o inexistente = sin /docs
}

// NewApp crea la aplicación Fiber con middlewares, /health y las rutas de la API.
func NewApp(cfg AppConfig, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: fiberErrorHandler(deps.Log),
	})
	app.Use(recover.New())
	app.Use(RequestLogger(deps.Log))
	if len(cfg.AllowedOrigins) > 0 {
		app.Use(cors.New(cors.Config{
			AllowOrigins:  strings.Join(cfg.AllowedOrigins, ","),
			AllowHeaders:  "Origin, Content-Type, Accept, Authorization, " + HeaderRequestID,
			ExposeHeaders: fiber.HeaderContentDisposition + ", " + HeaderRequestID,
		}))
	}

	// Swagger UI en local: http://localhost:<port>/docs
	if cfg.DocsPath != "" {
		if _, err := os.Stat(cfg.DocsPath); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: cfg.DocsPath,
				Path:     "docs",
				Title:    "Stock Manager API",
			}))
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: cfg.Name})
	})

	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	errs := errorResponder{log: deps.Log}
	api := app.Group("/api")

	// Con JWT_SECRET las escrituras exigen rol admin o gestor; las lecturas siguen abiertas.
	write := writeGuard(deps.JWTSecret, jwt.RoleAdmin, jwt.RoleManager)
	guarded := func(h fiber.Handler) []fiber.Handler {
		return append(slices.Clone(write), h)
	}

	exportHandler := NewExportHandler(deps.ReportUC, errs)

	// Products (rutas estáticas antes de /:id)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, errs)
	products.Get("/", productHandler.List)
	products.Get("/categories", productHandler.Categories)
	products.Get("/alerts", productHandler.Alerts)
	products.Get("/alerts/summary", productHandler.AlertSummary)
	products.Get("/export.csv", exportHandler.ProductsCSV)
	products.Get("/export.pdf", exportHandler.ProductsPDF)
	products.Post("/", guarded(productHandler.Create)...)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", guarded(productHandler.Update)...)
	products.Delete("/:id", guarded(productHandler.Delete)...)

	// Movements
	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.MovementQuery, errs)
	movements.Get("/", movementHandler.List)
	movements.Get("/export.csv", exportHandler.MovementsCSV)
	movements.Post("/", guarded(movementHandler.Create)...)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, errs)
	dashboard.Get("/", dashboardHandler.Stats)
	dashboard.Get("/widgets", dashboardHandler.Widgets)
}
