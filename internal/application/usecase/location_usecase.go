package usecase

import (
	"github.com/jcamargo/almacen-api/internal/domain"
	"github.com/jcamargo/almacen-api/internal/domain/entity"
	"github.com/jcamargo/almacen-api/internal/domain/repository"
)

// LocationUseCase casos de uso del registro de ubicaciones. El stock por
// ubicación solo lo muta la validación de transferencias internas.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// List devuelve todas las ubicaciones.
func (uc *LocationUseCase) List() ([]*entity.Location, error) {
	return uc.repo.List()
}

// Create crea una ubicación con id fresco y libro de stock vacío.
func (uc *LocationUseCase) Create(name string) (*entity.Location, error) {
	loc := &entity.Location{
		ID:    domain.NewID(),
		Name:  name,
		Stock: []*entity.StockRecord{},
	}
	if err := uc.repo.Create(loc); err != nil {
		return nil, err
	}
	return loc, nil
}
