package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidCredentials = errors.New("email o contraseña inválidos")
	ErrAlreadyValidated   = errors.New("operación ya validada")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrInvalidLocations   = errors.New("ubicaciones inválidas")
	ErrOTPInvalid         = errors.New("código OTP inválido")
	ErrOTPExpired         = errors.New("código OTP expirado")
)

// InsufficientItem detalla un ítem sin stock suficiente durante una validación.
type InsufficientItem struct {
	ProductID int64 `json:"productId"`
	Required  int64 `json:"required"`
	Available int64 `json:"available"`
}

// InsufficientStockError agrupa todos los ítems insuficientes de una operación.
// La validación es atómica: si existe al menos un ítem insuficiente no se
// aplica ningún delta y el error enumera el faltante completo.
type InsufficientStockError struct {
	Items []InsufficientItem
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %d ítem(s)", len(e.Items))
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
