package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invex/internal/application/backend"
	"github.com/jhoicas/invex/internal/application/dto"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	svc *backend.InventoryService
}

// NewProductHandler construye el handler.
func NewProductHandler(svc *backend.InventoryService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// List GET /products, con filtro opcional ?barcode=.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.svc.ListProducts(c.UserContext(), c.Query("barcode"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /products/:id.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.svc.GetProduct(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create POST /products.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.svc.CreateProduct(c.UserContext(), in.Product())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// PatchStocks PATCH /products/:id con {stocks, warehousemanId}; devuelve el producto actualizado.
func (h *ProductHandler) PatchStocks(c *fiber.Ctx) error {
	var in dto.PatchStocksRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.svc.PatchStocks(c.UserContext(), c.Params("id"), in.Stocks, in.WarehousemanID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
