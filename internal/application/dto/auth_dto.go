package dto

import "github.com/jcamargo/almacen-api/internal/domain/entity"

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse sobre de éxito con el documento del usuario.
type LoginResponse struct {
	Success bool         `json:"success"`
	User    *entity.User `json:"user"`
}

// RequestOTPRequest solicitud de código de recuperación.
type RequestOTPRequest struct {
	Email string `json:"email"`
}

// OTPIssuedResponse respuesta de emisión de OTP. El código solo viaja en la
// respuesta fuera de producción (diagnóstico), nunca en producción.
type OTPIssuedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OTP     string `json:"otp,omitempty"`
}

// VerifyOTPRequest verificación de código. La comparación del código es
// estricta por string, sin coerción.
type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// ResetPasswordRequest cambio de contraseña tras verificar OTP.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}
