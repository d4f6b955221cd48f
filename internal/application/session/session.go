// Package session contiene el contexto de sesión del operador: el token persistido
// y los ganchos de cierre que detienen los componentes que dependen de él.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jhoicas/asesor-cotizaciones/internal/application/ports"
	"github.com/jhoicas/asesor-cotizaciones/internal/domain"
	"github.com/jhoicas/asesor-cotizaciones/pkg/logger"
)

// TokenKey clave bajo la que se persiste el token crudo.
const TokenKey = "token"

// Session contexto explícito de sesión. Se crea una vez y se pasa a los componentes
// que necesitan el token; no hay estado global.
type Session struct {
	store ports.KeyValueStore
	log   *logger.Logger

	mu    sync.Mutex
	id    string
	onEnd []func()
}

// New construye la sesión sobre el almacenamiento persistente.
func New(store ports.KeyValueStore, log *logger.Logger) *Session {
	return &Session{store: store, log: log.Component("session")}
}

// Begin persiste el token (sobrescribe uno previo) y abre una nueva sesión.
func (s *Session) Begin(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("sesión: %w", domain.ErrNoToken)
	}
	if err := s.store.Set(ctx, TokenKey, token); err != nil {
		return fmt.Errorf("sesión: guardar token: %w", err)
	}
	s.mu.Lock()
	s.id = uuid.NewString()
	id := s.id
	s.mu.Unlock()

	s.log.Info().Str("session_id", id).Msg("sesión iniciada")
	return nil
}

// Token devuelve el token persistido o domain.ErrNoToken si no hay sesión.
func (s *Session) Token(ctx context.Context) (string, error) {
	tok, ok, err := s.store.Get(ctx, TokenKey)
	if err != nil {
		return "", fmt.Errorf("sesión: leer token: %w", err)
	}
	if !ok || tok == "" {
		return "", domain.ErrNoToken
	}
	return tok, nil
}

// Active indica si hay un token persistido.
func (s *Session) Active(ctx context.Context) bool {
	_, err := s.Token(ctx)
	return err == nil
}

// ID identificador de la sesión abierta en este proceso (vacío si el token viene de una ejecución previa).
func (s *Session) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// OnEnd registra un gancho que se ejecuta en cada End.
func (s *Session) OnEnd(fn func()) {
	s.mu.Lock()
	s.onEnd = append(s.onEnd, fn)
	s.mu.Unlock()
}

// End borra el token persistido y ejecuta los ganchos de cierre.
// Los ganchos corren aunque el borrado falle, para no dejar el polling vivo.
func (s *Session) End(ctx context.Context) error {
	err := s.store.Delete(ctx, TokenKey)

	s.mu.Lock()
	id := s.id
	s.id = ""
	hooks := append([]func(){}, s.onEnd...)
	s.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
	if err != nil {
		return fmt.Errorf("sesión: borrar token: %w", err)
	}
	s.log.Info().Str("session_id", id).Msg("sesión cerrada")
	return nil
}
