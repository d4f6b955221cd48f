package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrNoToken          = errors.New("token no disponible")
	ErrUnknownUserType  = errors.New("tipo de usuario desconocido")
	ErrQuoteNotFound    = errors.New("cotización no encontrada")
	ErrNoQuotes         = errors.New("no se encontraron cotizaciones")
	ErrBackendUnreached = errors.New("backend inalcanzable")
	ErrBackendResponse  = errors.New("respuesta de error del backend")
)

// ErrorKind clasifica los errores visibles por el operador.
type ErrorKind string

const (
	KindAuth         ErrorKind = "AUTH"
	KindFetch        ErrorKind = "FETCH"
	KindProductFetch ErrorKind = "PRODUCT_FETCH"
	KindStateChange  ErrorKind = "STATE_CHANGE"
)

// AppError error con un mensaje listo para mostrar y la causa original.
// Ningún AppError es fatal: afecta solo a la acción que lo disparó.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
}

func (e *AppError) Unwrap() error { return e.Err }

// NewAppError construye un AppError.
func NewAppError(kind ErrorKind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// UserMessage devuelve el mensaje visible de err si es un AppError, si no fallback.
func UserMessage(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}

// BackendError respuesta no exitosa del backend de cotizaciones.
type BackendError struct {
	StatusCode int
	Body       string // mensaje extraído del cuerpo (campo message o texto plano)
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend HTTP %d: %s", e.StatusCode, e.Body)
}

// Unwrap permite errors.Is con ErrBackendResponse y, para 401/403, con ErrUnauthorized.
func (e *BackendError) Unwrap() []error {
	if e.StatusCode == 401 || e.StatusCode == 403 {
		return []error{ErrBackendResponse, ErrUnauthorized}
	}
	return []error{ErrBackendResponse}
}
