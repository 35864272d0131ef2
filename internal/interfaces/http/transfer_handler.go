package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jcamargo/almacen-api/internal/application/dto"
	"github.com/jcamargo/almacen-api/internal/application/operations"
	"github.com/jcamargo/almacen-api/internal/domain"
	"github.com/jcamargo/almacen-api/internal/domain/entity"
)

// TransferHandler maneja las peticiones HTTP de transferencias internas.
type TransferHandler struct {
	uc *operations.UseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(uc *operations.UseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// List godoc
// @Summary      Listar transferencias internas
// @Tags         internal-transfers
// @Produce      json
// @Success      200  {array}  entity.Operation
// @Router       /api/internal-transfers [get]
func (h *TransferHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(entity.KindInternalTransfers)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Failure(err.Error()))
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Crear transferencia interna (estado Waiting)
// @Tags         internal-transfers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransferRequest  true  "fromLocationId, toLocationId, items"
// @Success      200   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.FailureResponse
// @Router       /api/internal-transfers [post]
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Failure("Invalid payload"))
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Failure("Invalid payload"))
	}
	op, err := h.uc.CreateTransfer(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Failure(err.Error()))
	}
	return c.JSON(dto.TransferResponse{Success: true, Transfer: op})
}

// Validate godoc
// @Summary      Validar transferencia (mueve stock entre ubicaciones)
// @Description  Chequea disponibilidad en el origen; si algún ítem falta, la
// @Description  validación falla atómicamente con el faltante itemizado.
// @Tags         internal-transfers
// @Produce      json
// @Param        id   path  int  true  "ID de la transferencia"
// @Success      200  {object}  dto.TransferResponse
// @Failure      400  {object}  dto.InsufficientStockResponse
// @Failure      404  {object}  dto.FailureResponse
// @Router       /api/internal-transfers/{id}/validate [put]
func (h *TransferHandler) Validate(c *fiber.Ctx) error {
	op, err := h.uc.ValidateTransfer(parseID(c))
	if err != nil {
		var insuff *domain.InsufficientStockError
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Failure("Transfer not found"))
		case errors.Is(err, domain.ErrAlreadyValidated):
			return c.JSON(dto.Failure("Transfer already validated"))
		case errors.Is(err, domain.ErrInvalidLocations):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Failure("Invalid locations"))
		case errors.As(err, &insuff):
			return c.Status(fiber.StatusBadRequest).JSON(dto.InsufficientStockResponse{
				Success:      false,
				Message:      "Insufficient stock in source location",
				Insufficient: insuff.Items,
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Failure(err.Error()))
		}
	}
	return c.JSON(dto.TransferResponse{Success: true, Transfer: op})
}
