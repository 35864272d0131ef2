package entity

import "encoding/json"

// StockRecord es la cantidad de un producto en una ubicación.
// Una ubicación mantiene como máximo un registro por producto.
type StockRecord struct {
	ProductID int64 `json:"productId"`
	Qty       int64 `json:"qty"`
}

// UnmarshalJSON coerciona productId/qty desde número o string.
func (r *StockRecord) UnmarshalJSON(b []byte) error {
	var raw struct {
		ProductID json.RawMessage `json:"productId"`
		Qty       json.RawMessage `json:"qty"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	r.ProductID = CoerceInt(raw.ProductID)
	r.Qty = CoerceInt(raw.Qty)
	return nil
}

// Location es un sitio que mantiene su propio libro de stock por producto,
// independiente del total_stock global del catálogo. Solo la validación de
// transferencias internas (y el comando de seed) muta Stock.
type Location struct {
	ID    int64          `json:"id"`
	Name  string         `json:"name"`
	Stock []*StockRecord `json:"stock"`
}

// Qty devuelve la cantidad registrada para un producto; 0 si no hay registro
// (ausencia no es error).
func (l *Location) Qty(productID int64) int64 {
	for _, r := range l.Stock {
		if r.ProductID == productID {
			return r.Qty
		}
	}
	return 0
}

// Adjust suma delta a la cantidad del producto, creando un registro
// inicializado en cero si el producto no estaba rastreado en la ubicación.
func (l *Location) Adjust(productID, delta int64) {
	for _, r := range l.Stock {
		if r.ProductID == productID {
			r.Qty += delta
			return
		}
	}
	l.Stock = append(l.Stock, &StockRecord{ProductID: productID, Qty: delta})
}
