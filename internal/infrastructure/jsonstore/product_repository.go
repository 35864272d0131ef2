package jsonstore

import (
	"encoding/json"

	"github.com/jcamargo/almacen-api/internal/domain"
	"github.com/jcamargo/almacen-api/internal/domain/entity"
)

// ProductRepository implementa repository.ProductRepository sobre el
// documento `products`.
type ProductRepository struct {
	store *Store
}

// NewProductRepository construye el repositorio.
func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

func (r *ProductRepository) load() []*entity.Product {
	list := []*entity.Product{}
	r.store.Load(DocProducts, &list)
	return list
}

// List devuelve el catálogo completo.
func (r *ProductRepository) List() ([]*entity.Product, error) {
	var list []*entity.Product
	err := r.store.WithLock(DocProducts, func() error {
		list = r.load()
		return nil
	})
	return list, err
}

// GetByID devuelve nil, nil si el id no existe.
func (r *ProductRepository) GetByID(id int64) (*entity.Product, error) {
	list, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// Create agrega el producto al final del catálogo y persiste.
func (r *ProductRepository) Create(p *entity.Product) error {
	return r.store.WithLock(DocProducts, func() error {
		list := r.load()
		list = append(list, p)
		return r.store.Save(DocProducts, list)
	})
}

// Update mezcla campos parciales en el registro con ese id.
func (r *ProductRepository) Update(id int64, fields map[string]json.RawMessage) (*entity.Product, error) {
	var updated *entity.Product
	err := r.store.WithLock(DocProducts, func() error {
		list := r.load()
		for _, p := range list {
			if p.ID == id {
				p.Merge(fields)
				updated = p
				return r.store.Save(DocProducts, list)
			}
		}
		return domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Mutate aplica fn bajo el lock del documento; si fn falla no se persiste nada.
func (r *ProductRepository) Mutate(fn func(products []*entity.Product) ([]*entity.Product, error)) error {
	return r.store.WithLock(DocProducts, func() error {
		list, err := fn(r.load())
		if err != nil {
			return err
		}
		return r.store.Save(DocProducts, list)
	})
}
