package http

import (
	"github.com/gofiber/fiber/v2"
	appdocument "github.com/tu-usuario/stockflow/internal/application/document"
	"github.com/tu-usuario/stockflow/internal/application/ledger"
	"github.com/tu-usuario/stockflow/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC      *usecase.ProductUseCase
	WarehouseUC    *usecase.WarehouseUseCase
	DashboardUC    *usecase.DashboardUseCase
	MovementExport *usecase.MovementExportUseCase
	Engine         *ledger.Engine
	Workflow       *appdocument.Workflow
	DocumentPDF    *appdocument.PDFUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo de productos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Bodegas
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)

	// Ledger: ajustes, historial y stock
	inventoryHandler := NewInventoryHandler(deps.Engine, deps.MovementExport)
	api.Post("/movements", inventoryHandler.RegisterAdjustment)
	api.Get("/movements", inventoryHandler.ListMovements)
	products.Get("/:id/stock", inventoryHandler.GetStock)

	// Documentos: recepciones y entregas
	documents := api.Group("/documents")
	documentHandler := NewDocumentHandler(deps.Workflow, deps.DocumentPDF)
	documents.Post("/", documentHandler.Create)
	documents.Get("/", documentHandler.List)
	documents.Get("/:id", documentHandler.GetByID)
	documents.Post("/:id/validate", documentHandler.Validate)
	documents.Post("/:id/cancel", documentHandler.Cancel)
	documents.Get("/:id/pdf", documentHandler.GetPDF)

	// Tablero
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.GetMetrics)
}
