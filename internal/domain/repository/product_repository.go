package repository

import (
	"encoding/json"

	"github.com/jcamargo/almacen-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	List() ([]*entity.Product, error)
	GetByID(id int64) (*entity.Product, error)
	Create(p *entity.Product) error
	// Update mezcla campos parciales en el registro existente; devuelve
	// domain.ErrNotFound si el id no existe.
	Update(id int64, fields map[string]json.RawMessage) (*entity.Product, error)
	// Mutate ejecuta fn sobre un snapshot del catálogo bajo el lock del
	// documento y persiste el resultado solo si fn no devuelve error. Es la
	// primitiva chequear-luego-aplicar de la validación de operaciones: el
	// chequeo y los deltas usan la misma lectura.
	Mutate(fn func(products []*entity.Product) ([]*entity.Product, error)) error
}
