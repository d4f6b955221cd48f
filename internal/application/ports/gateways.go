package ports

import (
	"context"

	"github.com/jhoicas/asesor-cotizaciones/internal/domain/entity"
)

// AuthGateway puerto de salida hacia el endpoint de autenticación del backend.
type AuthGateway interface {
	// Login intercambia credenciales por el token crudo devuelto por el backend.
	Login(ctx context.Context, email, password string) (string, error)
}

// QuoteGateway puerto de salida hacia los recursos de cotizaciones y productos.
// Todas las llamadas llevan el token como Bearer.
type QuoteGateway interface {
	// ListQuotes devuelve la colección completa actual (sin paginación).
	ListQuotes(ctx context.Context, token string) ([]entity.Quote, error)
	// ChangeState fija el estado de una cotización; el cuerpo de la respuesta no se usa.
	ChangeState(ctx context.Context, token string, id int64, state entity.QuoteState) error
	// GetProductByCode devuelve el producto asociado al código.
	GetProductByCode(ctx context.Context, token, code string) (*entity.Product, error)
}
