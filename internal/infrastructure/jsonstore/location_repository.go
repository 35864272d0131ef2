package jsonstore

import "github.com/jcamargo/almacen-api/internal/domain/entity"

// LocationRepository implementa repository.LocationRepository sobre el
// documento `locations`.
type LocationRepository struct {
	store *Store
}

// NewLocationRepository construye el repositorio.
func NewLocationRepository(store *Store) *LocationRepository {
	return &LocationRepository{store: store}
}

func (r *LocationRepository) load() []*entity.Location {
	list := []*entity.Location{}
	r.store.Load(DocLocations, &list)
	return list
}

// List devuelve el registro completo de ubicaciones.
func (r *LocationRepository) List() ([]*entity.Location, error) {
	var list []*entity.Location
	err := r.store.WithLock(DocLocations, func() error {
		list = r.load()
		return nil
	})
	return list, err
}

// GetByID devuelve nil, nil si el id no existe.
func (r *LocationRepository) GetByID(id int64) (*entity.Location, error) {
	list, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, l := range list {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

// Create agrega la ubicación y persiste.
func (r *LocationRepository) Create(l *entity.Location) error {
	return r.store.WithLock(DocLocations, func() error {
		list := r.load()
		list = append(list, l)
		return r.store.Save(DocLocations, list)
	})
}

// Mutate aplica fn bajo el lock del documento; si fn falla no se persiste nada.
func (r *LocationRepository) Mutate(fn func(locations []*entity.Location) ([]*entity.Location, error)) error {
	return r.store.WithLock(DocLocations, func() error {
		list, err := fn(r.load())
		if err != nil {
			return err
		}
		return r.store.Save(DocLocations, list)
	})
}
