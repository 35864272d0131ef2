package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcamargo/almacen-api/internal/application/dto"
	"github.com/jcamargo/almacen-api/internal/application/usecase"
)

// LocationHandler maneja las peticiones HTTP del registro de ubicaciones.
type LocationHandler struct {
	uc *usecase.LocationUseCase
}

// NewLocationHandler construye el handler.
func NewLocationHandler(uc *usecase.LocationUseCase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// List godoc
// @Summary      Listar ubicaciones
// @Tags         locations
// @Produce      json
// @Success      200  {array}  entity.Location
// @Router       /api/locations [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Failure(err.Error()))
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Crear ubicación (stock vacío)
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLocationRequest  true  "name"
// @Success      200   {object}  dto.LocationResponse
// @Failure      400   {object}  dto.FailureResponse
// @Router       /api/locations [post]
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Failure("Name required"))
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Failure("Name required"))
	}
	loc, err := h.uc.Create(in.Name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Failure(err.Error()))
	}
	return c.JSON(dto.LocationResponse{Success: true, Location: loc})
}
