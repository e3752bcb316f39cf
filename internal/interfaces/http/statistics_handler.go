package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invex/internal/application/backend"
)

// StatisticsHandler agregados del inventario.
type StatisticsHandler struct {
	svc *backend.InventoryService
}

// NewStatisticsHandler construye el handler.
func NewStatisticsHandler(svc *backend.InventoryService) *StatisticsHandler {
	return &StatisticsHandler{svc: svc}
}

// Get GET /statistics.
func (h *StatisticsHandler) Get(c *fiber.Ctx) error {
	out, err := h.svc.Statistics(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
