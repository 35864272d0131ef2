package dto

import (
	"encoding/json"

	"github.com/jcamargo/almacen-api/internal/domain/entity"
)

// CreateReceiptRequest entrada para crear una recepción.
// Items es puntero para distinguir "ausente" (payload inválido) de "array
// vacío" (válido estructuralmente).
type CreateReceiptRequest struct {
	Supplier string                  `json:"supplier" validate:"required"`
	Items    *[]entity.OperationItem `json:"items" validate:"required"`
}

// CreateDeliveryRequest entrada para crear una entrega.
type CreateDeliveryRequest struct {
	Customer string                  `json:"customer" validate:"required"`
	Items    *[]entity.OperationItem `json:"items" validate:"required"`
}

// CreateTransferRequest entrada para crear una transferencia interna.
// Los ids de ubicación se coercionan desde número o string; cero cuenta como
// ausente (validate:required).
type CreateTransferRequest struct {
	FromLocationID int64                   `validate:"required"`
	ToLocationID   int64                   `validate:"required"`
	Items          *[]entity.OperationItem `validate:"required"`
}

// UnmarshalJSON coerciona fromLocationId/toLocationId estilo Number().
func (r *CreateTransferRequest) UnmarshalJSON(b []byte) error {
	var raw struct {
		FromLocationID json.RawMessage         `json:"fromLocationId"`
		ToLocationID   json.RawMessage         `json:"toLocationId"`
		Items          *[]entity.OperationItem `json:"items"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	r.FromLocationID = entity.CoerceInt(raw.FromLocationID)
	r.ToLocationID = entity.CoerceInt(raw.ToLocationID)
	r.Items = raw.Items
	return nil
}

// ReceiptResponse sobre de éxito con la recepción.
type ReceiptResponse struct {
	Success bool              `json:"success"`
	Receipt *entity.Operation `json:"receipt"`
}

// DeliveryResponse sobre de éxito con la entrega.
type DeliveryResponse struct {
	Success  bool              `json:"success"`
	Delivery *entity.Operation `json:"delivery"`
}

// TransferResponse sobre de éxito con la transferencia.
type TransferResponse struct {
	Success  bool              `json:"success"`
	Transfer *entity.Operation `json:"transfer"`
}
