package dto

import "github.com/jcamargo/almacen-api/internal/domain"

// FailureResponse cuerpo de fallo: `success:false` más mensaje. El frontend
// heredado distingue éxito por la bandera, no por el código HTTP, así que el
// sobre se preserva tal cual.
type FailureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Failure construye el sobre de fallo estándar.
func Failure(msg string) FailureResponse {
	return FailureResponse{Success: false, Message: msg}
}

// InsufficientStockResponse fallo de validación con el faltante itemizado
// completo (todos los ítems insuficientes, no solo el primero).
type InsufficientStockResponse struct {
	Success      bool                      `json:"success"`
	Message      string                    `json:"message"`
	Insufficient []domain.InsufficientItem `json:"insufficient"`
}

// MessageResponse éxito con mensaje informativo.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
