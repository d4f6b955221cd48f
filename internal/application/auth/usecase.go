package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/asesor-cotizaciones/internal/application/dto"
	"github.com/jhoicas/asesor-cotizaciones/internal/application/ports"
	"github.com/jhoicas/asesor-cotizaciones/internal/application/session"
	"github.com/jhoicas/asesor-cotizaciones/internal/domain"
	"github.com/jhoicas/asesor-cotizaciones/internal/domain/entity"
	"github.com/jhoicas/asesor-cotizaciones/pkg/jwt"
	"github.com/jhoicas/asesor-cotizaciones/pkg/logger"
)

// Mensajes visibles en la pantalla de login.
const (
	MsgBadCredentials  = "Error al iniciar sesión. Verifique sus credenciales"
	MsgConnection      = "Error de conexión o inesperado"
	MsgUnknownUserType = "Tipo de usuario desconocido"
	MsgMissingFields   = "Email y contraseña son requeridos"
)

// AuthUseCase casos de uso de autenticación: login y logout.
// El backend es la autoridad; la consola solo decodifica el token para navegar.
type AuthUseCase struct {
	gateway ports.AuthGateway
	session *session.Session
	log     *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(gateway ports.AuthGateway, sess *session.Session, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{gateway: gateway, session: sess, log: log.Component("auth")}
}

// Login envía las credenciales, persiste el token y decide el destino según el claim type.
// Sin reintentos: cualquier error termina la acción con un AppError de tipo AUTH.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResult, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.NewAppError(domain.KindAuth, MsgMissingFields, domain.ErrInvalidInput)
	}

	token, err := uc.gateway.Login(ctx, email, in.Password)
	if err != nil {
		var backendErr *domain.BackendError
		if errors.As(err, &backendErr) {
			msg := backendErr.Body
			if msg == "" {
				msg = MsgBadCredentials
			}
			uc.log.Warn().Int("status", backendErr.StatusCode).Str("email", email).Msg("login rechazado")
			return nil, domain.NewAppError(domain.KindAuth, msg, err)
		}
		uc.log.Error().Err(err).Msg("login: backend inalcanzable")
		return nil, domain.NewAppError(domain.KindAuth, MsgConnection, err)
	}
	if token == "" {
		// Respuesta exitosa sin cuerpo: no hay nada que guardar ni a dónde navegar.
		return nil, domain.NewAppError(domain.KindAuth, MsgConnection, fmt.Errorf("login: %w", domain.ErrNoToken))
	}

	if err := uc.session.Begin(ctx, token); err != nil {
		return nil, domain.NewAppError(domain.KindAuth, MsgConnection, err)
	}

	claims, err := jwt.DecodeUnverified(token)
	if err != nil {
		uc.log.Warn().Err(err).Msg("login: token no decodificable")
		return nil, domain.NewAppError(domain.KindAuth, MsgUnknownUserType, fmt.Errorf("%w: %v", domain.ErrUnknownUserType, err))
	}

	userType := entity.UserType(claims.UserType)
	dest, ok := userType.Destination()
	if !ok {
		uc.log.Warn().Int("type", claims.UserType).Msg("login: tipo de usuario desconocido")
		return nil, domain.NewAppError(domain.KindAuth, MsgUnknownUserType, domain.ErrUnknownUserType)
	}

	uc.log.Info().Int("type", claims.UserType).Str("destination", dest).Msg("login correcto")
	return &dto.LoginResult{Token: token, UserType: claims.UserType, Destination: dest}, nil
}

// Logout borra el token persistido; los ganchos de la sesión detienen el polling.
// No hay invalidación del lado del servidor.
func (uc *AuthUseCase) Logout(ctx context.Context) error {
	return uc.session.End(ctx)
}
