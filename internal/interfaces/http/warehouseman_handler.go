package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invex/internal/application/backend"
)

// WarehousemanHandler consulta de operarios por código secreto.
type WarehousemanHandler struct {
	svc *backend.InventoryService
}

// NewWarehousemanHandler construye el handler.
func NewWarehousemanHandler(svc *backend.InventoryService) *WarehousemanHandler {
	return &WarehousemanHandler{svc: svc}
}

// List GET /warehousemans?secretKey= devuelve siempre un array (vacío si no hay coincidencia).
func (h *WarehousemanHandler) List(c *fiber.Ctx) error {
	out, err := h.svc.FindWarehousemen(c.UserContext(), c.Query("secretKey"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
