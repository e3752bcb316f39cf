package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invex/internal/application/backend"
	"github.com/jhoicas/invex/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Inventory *backend.InventoryService
	Log       *logger.Logger
	AppName   string
}

// Router registra las rutas de la API consumida por el cliente (en la raíz, estilo json-server).
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestLogger(deps.Log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	warehousemanHandler := NewWarehousemanHandler(deps.Inventory)
	app.Get("/warehousemans", warehousemanHandler.List)

	products := app.Group("/products")
	productHandler := NewProductHandler(deps.Inventory)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Patch("/:id", productHandler.PatchStocks)

	statisticsHandler := NewStatisticsHandler(deps.Inventory)
	app.Get("/statistics", statisticsHandler.Get)
}
