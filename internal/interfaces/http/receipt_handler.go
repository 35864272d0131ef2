package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jcamargo/almacen-api/internal/application/dto"
	"github.com/jcamargo/almacen-api/internal/application/operations"
	"github.com/jcamargo/almacen-api/internal/domain"
	"github.com/jcamargo/almacen-api/internal/domain/entity"
)

// ReceiptHandler maneja las peticiones HTTP de recepciones de stock.
type ReceiptHandler struct {
	uc *operations.UseCase
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(uc *operations.UseCase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc}
}

// List godoc
// @Summary      Listar recepciones
// @Tags         receipts
// @Produce      json
// @Success      200  {array}  entity.Operation
// @Router       /api/receipts [get]
func (h *ReceiptHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(entity.KindReceipts)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Failure(err.Error()))
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener recepción por ID
// @Tags         receipts
// @Produce      json
// @Param        id   path  int  true  "ID de la recepción"
// @Success      200  {object}  entity.Operation
// @Failure      404  {object}  dto.FailureResponse
// @Router       /api/receipts/{id} [get]
func (h *ReceiptHandler) GetByID(c *fiber.Ctx) error {
	op, err := h.uc.GetByID(entity.KindReceipts, parseID(c))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.Failure("Receipt not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Failure(err.Error()))
	}
	return c.JSON(op)
}

// Create godoc
// @Summary      Crear recepción (estado Waiting)
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReceiptRequest  true  "supplier + items"
// @Success      200   {object}  dto.ReceiptResponse
// @Failure      400   {object}  dto.FailureResponse
// @Router       /api/receipts [post]
func (h *ReceiptHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Failure("Invalid payload"))
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Failure("Invalid payload"))
	}
	op, err := h.uc.CreateReceipt(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Failure(err.Error()))
	}
	return c.JSON(dto.ReceiptResponse{Success: true, Receipt: op})
}

// Validate godoc
// @Summary      Validar recepción (suma stock y marca Done)
// @Tags         receipts
// @Produce      json
// @Param        id   path  int  true  "ID de la recepción"
// @Success      200  {object}  dto.ReceiptResponse
// @Failure      404  {object}  dto.FailureResponse
// @Router       /api/receipts/{id}/validate [put]
func (h *ReceiptHandler) Validate(c *fiber.Ctx) error {
	op, err := h.uc.ValidateReceipt(parseID(c))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Failure("Receipt not found"))
		case errors.Is(err, domain.ErrAlreadyValidated):
			return c.JSON(dto.Failure("Receipt already validated"))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Failure(err.Error()))
		}
	}
	return c.JSON(dto.ReceiptResponse{Success: true, Receipt: op})
}
