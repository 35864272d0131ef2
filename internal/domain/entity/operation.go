package entity

import (
	"encoding/json"
	"strings"
	"time"
)

// OperationKind identifica la lista dentro del documento `operations`.
type OperationKind string

const (
	KindReceipts          OperationKind = "receipts"
	KindDeliveries        OperationKind = "deliveries"
	KindInternalTransfers OperationKind = "internalTransfers"
)

// Estados producidos por el sistema. Los documentos heredados pueden traer
// además Draft/Pending/Scheduled; solo Waiting y Done se generan aquí.
const (
	StatusWaiting = "Waiting"
	StatusDone    = "Done"
)

// NormalizeStatus normaliza un estado para comparación: minúsculas y sin
// espacios alrededor ("DONE", "done " y "Done" son equivalentes).
func NormalizeStatus(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// OperationItem es una línea de operación: producto y cantidad.
type OperationItem struct {
	ProductID int64 `json:"productId"`
	Qty       int64 `json:"qty"`
}

// UnmarshalJSON coerciona productId/qty desde número o string.
func (it *OperationItem) UnmarshalJSON(b []byte) error {
	var raw struct {
		ProductID json.RawMessage `json:"productId"`
		Qty       json.RawMessage `json:"qty"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	it.ProductID = CoerceInt(raw.ProductID)
	it.Qty = CoerceInt(raw.Qty)
	return nil
}

// Operation es una operación del libro de stock: recepción (supplier),
// entrega (customer) o transferencia interna (fromLocationId/toLocationId).
// Se crea una sola vez y muta exactamente una vez: Waiting → Done al validar.
type Operation struct {
	ID             int64           `json:"id"`
	Supplier       string          `json:"supplier,omitempty"`
	Customer       string          `json:"customer,omitempty"`
	FromLocationID int64           `json:"fromLocationId,omitempty"`
	ToLocationID   int64           `json:"toLocationId,omitempty"`
	Items          []OperationItem `json:"items"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	ValidatedAt    *time.Time      `json:"validatedAt,omitempty"`
}

// IsDone indica si la operación ya fue validada (comparación normalizada).
func (o *Operation) IsDone() bool {
	return NormalizeStatus(o.Status) == "done"
}
