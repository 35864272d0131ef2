package entity

import "time"

// OTPEntry es un código de un solo uso para recuperación de contraseña.
// A lo sumo existe una entrada viva por email: emitir un código nuevo
// descarta los anteriores, y el reset de contraseña los consume todos.
type OTPEntry struct {
	Email     string    `json:"email"`
	Code      string    `json:"otp"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired indica si el código ya venció (la expiración se chequea de forma
// perezosa al verificar, no hay barrido activo).
func (e *OTPEntry) Expired(now time.Time) bool {
	return e.ExpiresAt.Before(now)
}
