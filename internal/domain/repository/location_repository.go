package repository

import "github.com/jcamargo/almacen-api/internal/domain/entity"

// LocationRepository persiste el registro de ubicaciones y su stock local.
type LocationRepository interface {
	List() ([]*entity.Location, error)
	GetByID(id int64) (*entity.Location, error)
	Create(l *entity.Location) error
	// Mutate ejecuta fn sobre un snapshot de las ubicaciones bajo el lock
	// del documento y persiste solo si fn no devuelve error (misma semántica
	// que ProductRepository.Mutate).
	Mutate(fn func(locations []*entity.Location) ([]*entity.Location, error)) error
}
