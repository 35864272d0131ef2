package entity

import "encoding/json"

// Campos canónicos de producto en el documento `products`.
const (
	fieldID           = "id"
	fieldName         = "name"
	fieldTotalStock   = "total_stock"
	fieldReorderLevel = "reorder_level"
)

// Product representa un producto del catálogo. TotalStock es el stock global
// canónico; solo lo mutan la validación de recepciones/entregas y el endpoint
// de edición directa. Los campos desconocidos del documento se conservan en
// Extra para que las actualizaciones parciales no los pierdan.
type Product struct {
	ID           int64
	Name         string
	TotalStock   int64
	ReorderLevel int64
	Extra        map[string]json.RawMessage
}

// LowStock indica si el producto está en nivel de reposición
// (stock total igual o menor al nivel de reorden).
func (p *Product) LowStock() bool {
	return p.TotalStock <= p.ReorderLevel
}

// Merge aplica campos parciales sobre el producto: sobreescritura superficial,
// los arrays/objetos reemplazan por completo al campo homónimo. El campo `id`
// se ignora para preservar la unicidad del identificador.
func (p *Product) Merge(fields map[string]json.RawMessage) {
	for k, v := range fields {
		switch k {
		case fieldID:
			// el id lo asigna el catálogo, nunca el cliente
		case fieldName:
			p.Name = CoerceString(v)
		case fieldTotalStock:
			p.TotalStock = CoerceInt(v)
		case fieldReorderLevel:
			p.ReorderLevel = CoerceInt(v)
		default:
			if p.Extra == nil {
				p.Extra = make(map[string]json.RawMessage)
			}
			p.Extra[k] = v
		}
	}
}

// UnmarshalJSON tolera documentos heredados: números como strings y campos
// faltantes cuentan como 0 (coerción estilo Number()).
func (p *Product) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	p.ID = CoerceInt(raw[fieldID])
	p.Name = CoerceString(raw[fieldName])
	p.TotalStock = CoerceInt(raw[fieldTotalStock])
	p.ReorderLevel = CoerceInt(raw[fieldReorderLevel])
	delete(raw, fieldID)
	delete(raw, fieldName)
	delete(raw, fieldTotalStock)
	delete(raw, fieldReorderLevel)
	if len(raw) > 0 {
		p.Extra = raw
	} else {
		p.Extra = nil
	}
	return nil
}

// MarshalJSON reconstruye el documento plano: campos canónicos más extras.
func (p Product) MarshalJSON() ([]byte, error) {
	m := make(map[string]json.RawMessage, len(p.Extra)+4)
	for k, v := range p.Extra {
		m[k] = v
	}
	var err error
	if m[fieldID], err = json.Marshal(p.ID); err != nil {
		return nil, err
	}
	if m[fieldName], err = json.Marshal(p.Name); err != nil {
		return nil, err
	}
	if m[fieldTotalStock], err = json.Marshal(p.TotalStock); err != nil {
		return nil, err
	}
	if m[fieldReorderLevel], err = json.Marshal(p.ReorderLevel); err != nil {
		return nil, err
	}
	return json.Marshal(m)
}
