// Package notify efectos laterales de "llegaron cotizaciones nuevas".
package notify

import (
	"context"
	"sync"

	"github.com/jhoicas/asesor-cotizaciones/internal/application/ports"
	"github.com/jhoicas/asesor-cotizaciones/pkg/logger"
)

var (
	_ ports.Notifier = (*LogNotifier)(nil)
	_ ports.Notifier = (*Chime)(nil)
	_ ports.Notifier = Multi(nil)
)

// LogNotifier deja constancia en el log.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el notificador de log.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log.Component("notify")}
}

func (n *LogNotifier) NewQuotes(_ context.Context, count int) {
	n.log.Info().Int("count", count).Msg("nuevas cotizaciones")
}

// Chime alerta sonora de un solo uso: la siguiente vista del tablero la consume
// y reproduce el sonido una vez.
type Chime struct {
	mu      sync.Mutex
	pending bool
	rung    int
}

func (c *Chime) NewQuotes(context.Context, int) {
	c.mu.Lock()
	c.pending = true
	c.rung++
	c.mu.Unlock()
}

// Consume devuelve true si hay una alerta pendiente y la descarta.
func (c *Chime) Consume() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := c.pending
	c.pending = false
	return p
}

// Rung total de alertas disparadas desde el arranque.
func (c *Chime) Rung() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rung
}

// Multi reparte la notificación entre varios notificadores.
type Multi []ports.Notifier

func (m Multi) NewQuotes(ctx context.Context, count int) {
	for _, n := range m {
		n.NewQuotes(ctx, count)
	}
}
