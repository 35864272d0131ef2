package http

import (
	"encoding/json"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jcamargo/almacen-api/internal/application/dto"
	"github.com/jcamargo/almacen-api/internal/application/usecase"
	"github.com/jcamargo/almacen-api/internal/domain"
)

// ProductHandler maneja las peticiones HTTP del catálogo de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// parseID convierte el parámetro de ruta a id numérico; 0 si no es numérico
// (ningún id generado es 0, así que cae en "no encontrado").
func parseID(c *fiber.Ctx) int64 {
	id, _ := strconv.ParseInt(c.Params("id"), 10, 64)
	return id
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Success      200  {array}  object
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Failure(err.Error()))
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  object  true  "Campos del producto"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.FailureResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Failure("Invalid payload"))
	}
	product, err := h.uc.Create(fields)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Failure(err.Error()))
	}
	return c.JSON(dto.ProductResponse{Success: true, Product: product})
}

// Update godoc
// @Summary      Actualizar producto (mezcla superficial de campos)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  int     true  "ID del producto"
// @Param        body  body  object  true  "Campos a mezclar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.FailureResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Failure("Invalid payload"))
	}
	product, err := h.uc.Update(parseID(c), fields)
	if err != nil {
		// Compatibilidad: el id desconocido responde 200 con success:false,
		// no 404, porque así lo consume el frontend heredado.
		if err == domain.ErrNotFound {
			return c.JSON(dto.Failure("Product not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Failure(err.Error()))
	}
	return c.JSON(dto.ProductResponse{Success: true, Product: product})
}
