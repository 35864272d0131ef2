package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jcamargo/almacen-api/internal/application/dto"
	"github.com/jcamargo/almacen-api/internal/application/operations"
	"github.com/jcamargo/almacen-api/internal/domain"
	"github.com/jcamargo/almacen-api/internal/domain/entity"
)

// DeliveryHandler maneja las peticiones HTTP de entregas de stock.
type DeliveryHandler struct {
	uc *operations.UseCase
}

// NewDeliveryHandler construye el handler.
func NewDeliveryHandler(uc *operations.UseCase) *DeliveryHandler {
	return &DeliveryHandler{uc: uc}
}

// List godoc
// @Summary      Listar entregas
// @Tags         deliveries
// @Produce      json
// @Success      200  {array}  entity.Operation
// @Router       /api/deliveries [get]
func (h *DeliveryHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(entity.KindDeliveries)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Failure(err.Error()))
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener entrega por ID
// @Tags         deliveries
// @Produce      json
// @Param        id   path  int  true  "ID de la entrega"
// @Success      200  {object}  entity.Operation
// @Failure      404  {object}  dto.FailureResponse
// @Router       /api/deliveries/{id} [get]
func (h *DeliveryHandler) GetByID(c *fiber.Ctx) error {
	op, err := h.uc.GetByID(entity.KindDeliveries, parseID(c))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.Failure("Delivery not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Failure(err.Error()))
	}
	return c.JSON(op)
}

// Create godoc
// @Summary      Crear entrega (estado Waiting)
// @Tags         deliveries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDeliveryRequest  true  "customer + items"
// @Success      200   {object}  dto.DeliveryResponse
// @Failure      400   {object}  dto.FailureResponse
// @Router       /api/deliveries [post]
func (h *DeliveryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Failure("Invalid payload"))
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Failure("Invalid payload"))
	}
	op, err := h.uc.CreateDelivery(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Failure(err.Error()))
	}
	return c.JSON(dto.DeliveryResponse{Success: true, Delivery: op})
}

// Validate godoc
// @Summary      Validar entrega (resta stock y marca Done)
// @Description  Si algún ítem no tiene stock suficiente, la validación falla
// @Description  atómicamente y la respuesta enumera todos los faltantes.
// @Tags         deliveries
// @Produce      json
// @Param        id   path  int  true  "ID de la entrega"
// @Success      200  {object}  dto.DeliveryResponse
// @Failure      400  {object}  dto.InsufficientStockResponse
// @Failure      404  {object}  dto.FailureResponse
// @Router       /api/deliveries/{id}/validate [put]
func (h *DeliveryHandler) Validate(c *fiber.Ctx) error {
	op, err := h.uc.ValidateDelivery(parseID(c))
	if err != nil {
		var insuff *domain.InsufficientStockError
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Failure("Delivery not found"))
		case errors.Is(err, domain.ErrAlreadyValidated):
			return c.JSON(dto.Failure("Delivery already validated"))
		case errors.As(err, &insuff):
			return c.Status(fiber.StatusBadRequest).JSON(dto.InsufficientStockResponse{
				Success:      false,
				Message:      "Insufficient stock for some items",
				Insufficient: insuff.Items,
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Failure(err.Error()))
		}
	}
	return c.JSON(dto.DeliveryResponse{Success: true, Delivery: op})
}
