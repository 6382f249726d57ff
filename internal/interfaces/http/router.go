package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/anthonyrh/techstore-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	InventoryUC *usecase.InventoryUseCase
	ReportUC    *usecase.ReportUseCase
}

// Router registra las rutas de la API y la vista de administración.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Stock movements (anidado bajo el producto)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	products.Post("/:id/stock", inventoryHandler.RegisterMovement)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)

	// Inventory history
	inventory := api.Group("/inventory")
	inventory.Get("/movements", inventoryHandler.ListMovements)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/inventory-summary", reportHandler.InventorySummary)

	// Vista de administración renderizada en servidor
	adminHandler := NewAdminHandler(deps.ProductUC)
	app.Get("/admin", adminHandler.Index)
}
