package jsonstore

import (
	"github.com/jcamargo/almacen-api/internal/domain"
	"github.com/jcamargo/almacen-api/internal/domain/entity"
)

// UserRepository implementa repository.UserRepository sobre el documento
// `users`.
type UserRepository struct {
	store *Store
}

// NewUserRepository construye el repositorio.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) load() []*entity.User {
	list := []*entity.User{}
	r.store.Load(DocUsers, &list)
	return list
}

// FindByEmail devuelve nil, nil si el email no está registrado.
func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var found *entity.User
	err := r.store.WithLock(DocUsers, func() error {
		for _, u := range r.load() {
			if u.Email == email {
				found = u
				return nil
			}
		}
		return nil
	})
	return found, err
}

// UpdatePassword sobreescribe la contraseña del usuario en su lugar.
func (r *UserRepository) UpdatePassword(email, newPassword string) error {
	return r.store.WithLock(DocUsers, func() error {
		list := r.load()
		for _, u := range list {
			if u.Email == email {
				u.Password = newPassword
				return r.store.Save(DocUsers, list)
			}
		}
		return domain.ErrUserNotFound
	})
}

// OTPRepository implementa repository.OTPRepository sobre el documento `otp`.
type OTPRepository struct {
	store *Store
}

// NewOTPRepository construye el repositorio.
func NewOTPRepository(store *Store) *OTPRepository {
	return &OTPRepository{store: store}
}

func (r *OTPRepository) load() []*entity.OTPEntry {
	list := []*entity.OTPEntry{}
	r.store.Load(DocOTP, &list)
	return list
}

// Replace descarta las entradas previas del email y agrega la nueva.
func (r *OTPRepository) Replace(e *entity.OTPEntry) error {
	return r.store.WithLock(DocOTP, func() error {
		kept := []*entity.OTPEntry{}
		for _, o := range r.load() {
			if o.Email != e.Email {
				kept = append(kept, o)
			}
		}
		kept = append(kept, e)
		return r.store.Save(DocOTP, kept)
	})
}

// Find exige coincidencia exacta de email y código; nil, nil si no hay.
func (r *OTPRepository) Find(email, code string) (*entity.OTPEntry, error) {
	var found *entity.OTPEntry
	err := r.store.WithLock(DocOTP, func() error {
		for _, o := range r.load() {
			if o.Email == email && o.Code == code {
				found = o
				return nil
			}
		}
		return nil
	})
	return found, err
}

// DeleteByEmail elimina todas las entradas del email.
func (r *OTPRepository) DeleteByEmail(email string) error {
	return r.store.WithLock(DocOTP, func() error {
		kept := []*entity.OTPEntry{}
		for _, o := range r.load() {
			if o.Email != email {
				kept = append(kept, o)
			}
		}
		return r.store.Save(DocOTP, kept)
	})
}
