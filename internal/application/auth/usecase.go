package auth

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jcamargo/almacen-api/internal/domain"
	"github.com/jcamargo/almacen-api/internal/domain/entity"
	"github.com/jcamargo/almacen-api/internal/domain/repository"
	"github.com/jcamargo/almacen-api/pkg/logger"
)

// UseCase casos de uso de autenticación: login y flujo de recuperación de
// contraseña por OTP. La comparación de contraseña en texto plano vive solo
// aquí; sustituir hashing no toca a ningún llamador.
type UseCase struct {
	users repository.UserRepository
	otps  repository.OTPRepository
	ttl   time.Duration
	log   *logger.Logger
}

// NewUseCase construye el caso de uso de auth. ttl es la vigencia del OTP.
func NewUseCase(users repository.UserRepository, otps repository.OTPRepository, ttl time.Duration, log *logger.Logger) *UseCase {
	return &UseCase{users: users, otps: otps, ttl: ttl, log: log}
}

// Login verifica email y contraseña por coincidencia exacta. Cualquier
// desajuste (usuario inexistente o contraseña errada) devuelve el mismo
// ErrInvalidCredentials, sin distinguir el caso.
func (uc *UseCase) Login(email, password string) (*entity.User, error) {
	u, err := uc.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil || u.Password != password {
		return nil, domain.ErrInvalidCredentials
	}
	return u, nil
}

// RequestOTP emite un código de 6 dígitos (uniforme en 100000–999999) con
// vigencia ttl, reemplazando cualquier entrada previa del email. Devuelve el
// código para que el handler lo exponga solo fuera de producción.
func (uc *UseCase) RequestOTP(email string) (string, error) {
	u, err := uc.users.FindByEmail(email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", domain.ErrUserNotFound
	}

	code := fmt.Sprintf("%d", 100000+rand.IntN(900000))
	entry := &entity.OTPEntry{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(uc.ttl),
	}
	if err := uc.otps.Replace(entry); err != nil {
		return "", err
	}
	uc.log.Info().Str("email", email).Str("otp", code).Msg("OTP emitido")
	return code, nil
}

// VerifyOTP exige coincidencia exacta email+código y luego chequea la
// expiración de forma explícita: vencido es un resultado distinto de
// inválido.
func (uc *UseCase) VerifyOTP(email, code string) error {
	entry, err := uc.otps.Find(email, code)
	if err != nil {
		return err
	}
	if entry == nil {
		return domain.ErrOTPInvalid
	}
	if entry.Expired(time.Now()) {
		return domain.ErrOTPExpired
	}
	return nil
}

// ResetPassword sobreescribe la contraseña y consume TODAS las entradas OTP
// del email (no solo la verificada), de modo que un código ya usado no
// vuelva a verificar.
func (uc *UseCase) ResetPassword(email, newPassword string) error {
	u, err := uc.users.FindByEmail(email)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}
	if err := uc.users.UpdatePassword(email, newPassword); err != nil {
		return err
	}
	return uc.otps.DeleteByEmail(email)
}
