package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcamargo/almacen-api/internal/application/dto"
	"github.com/jcamargo/almacen-api/internal/application/usecase"
)

// DashboardHandler maneja el endpoint de resumen del dashboard.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Conteos agregados de inventario y operaciones
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Failure(err.Error()))
	}
	return c.JSON(summary)
}
