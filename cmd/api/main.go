package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appdocument "github.com/tu-usuario/stockflow/internal/application/document"
	"github.com/tu-usuario/stockflow/internal/application/ledger"
	"github.com/tu-usuario/stockflow/internal/application/usecase"
	infrapdf "github.com/tu-usuario/stockflow/internal/infrastructure/pdf"
	"github.com/tu-usuario/stockflow/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/stockflow/internal/interfaces/http"
	"github.com/tu-usuario/stockflow/pkg/config"
	"github.com/tu-usuario/stockflow/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	engine := ledger.NewEngine(txRunner, productRepo, warehouseRepo, movementRepo)
	workflow := appdocument.NewWorkflow(txRunner, engine, documentRepo, productRepo, warehouseRepo)

	pdfGenerator := infrapdf.NewMarotoDocumentPDF()
	documentPDFUC := appdocument.NewPDFUseCase(documentRepo, productRepo, warehouseRepo, pdfGenerator)

	productUC := usecase.NewProductUseCase(productRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	dashboardUC := usecase.NewDashboardUseCase(analyticsRepo)
	movementExportUC := usecase.NewMovementExportUseCase(movementRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockFlow API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:      productUC,
		WarehouseUC:    warehouseUC,
		DashboardUC:    dashboardUC,
		MovementExport: movementExportUC,
		Engine:         engine,
		Workflow:       workflow,
		DocumentPDF:    documentPDFUC,
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
