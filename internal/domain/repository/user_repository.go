package repository

import "github.com/jcamargo/almacen-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// FindByEmail devuelve nil, nil si el email no está registrado.
	FindByEmail(email string) (*entity.User, error)
	// UpdatePassword sobreescribe la contraseña en el documento; devuelve
	// domain.ErrUserNotFound si el email no existe.
	UpdatePassword(email, newPassword string) error
}

// OTPRepository persiste los códigos de recuperación de contraseña.
type OTPRepository interface {
	// Replace descarta cualquier entrada previa del email y agrega la nueva.
	Replace(e *entity.OTPEntry) error
	// Find devuelve nil, nil si no hay coincidencia exacta email+código.
	Find(email, code string) (*entity.OTPEntry, error)
	// DeleteByEmail elimina todas las entradas del email (consumo al resetear).
	DeleteByEmail(email string) error
}
