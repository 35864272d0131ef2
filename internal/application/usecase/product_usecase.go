package usecase

import (
	"encoding/json"

	"github.com/jcamargo/almacen-api/internal/domain"
	"github.com/jcamargo/almacen-api/internal/domain/entity"
	"github.com/jcamargo/almacen-api/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo de productos. El stock total lo
// mutan además las validaciones del libro de operaciones.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve el catálogo completo.
func (uc *ProductUseCase) List() ([]*entity.Product, error) {
	return uc.repo.List()
}

// Create crea un producto con id fresco a partir de campos libres; los
// campos canónicos se coercionan y el resto se conserva tal cual.
func (uc *ProductUseCase) Create(fields map[string]json.RawMessage) (*entity.Product, error) {
	p := &entity.Product{}
	p.Merge(fields)
	p.ID = domain.NewID()
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update mezcla campos parciales en el producto; ErrNotFound si no existe.
func (uc *ProductUseCase) Update(id int64, fields map[string]json.RawMessage) (*entity.Product, error) {
	return uc.repo.Update(id, fields)
}
