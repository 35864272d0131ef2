package dto

import "github.com/jcamargo/almacen-api/internal/domain/entity"

// No hay struct de entrada para productos: el cuerpo es un map crudo de
// campos libres (los canónicos se coercionan en entity.Product.Merge) porque
// la actualización es una mezcla superficial campo a campo y los campos no
// canónicos deben conservarse.

// ProductResponse sobre de éxito con el producto resultante. La entidad
// serializa directamente la forma del documento (que es también la forma de
// la API), por eso no hay struct de salida separado.
type ProductResponse struct {
	Success bool            `json:"success"`
	Product *entity.Product `json:"product"`
}
