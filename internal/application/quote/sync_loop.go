package quote

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jhoicas/asesor-cotizaciones/internal/application/ports"
	"github.com/jhoicas/asesor-cotizaciones/internal/domain"
	"github.com/jhoicas/asesor-cotizaciones/pkg/logger"
)

// DefaultInterval periodo del polling cuando la configuración no indica otro.
const DefaultInterval = 10 * time.Second

// TokenSource entrega el token de la sesión actual.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// SyncLoop mantiene el tablero como réplica eventualmente consistente de la colección
// del backend. Despacha una consulta al arrancar y luego una por periodo, sin esperar
// a que termine la anterior; el tablero descarta las respuestas obsoletas.
type SyncLoop struct {
	board    *Board
	gateway  ports.QuoteGateway
	tokens   TokenSource
	notifier ports.Notifier
	interval time.Duration
	log      *logger.Logger

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}

	inflight sync.WaitGroup
}

// NewSyncLoop construye el ciclo. interval <= 0 usa DefaultInterval.
func NewSyncLoop(board *Board, gateway ports.QuoteGateway, tokens TokenSource, notifier ports.Notifier, interval time.Duration, log *logger.Logger) *SyncLoop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &SyncLoop{
		board:    board,
		gateway:  gateway,
		tokens:   tokens,
		notifier: notifier,
		interval: interval,
		log:      log.Component("sync"),
	}
}

// Start monta el tablero y arranca el polling. ctx controla la vida del ciclo y debe ser
// de proceso, no de una petición. Si no hay token el ciclo no arranca y el tablero
// muestra MsgNoToken. Llamar a Start con el ciclo en marcha no hace nada.
func (l *SyncLoop) Start(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		return nil
	}

	l.board.Reset()
	if _, err := l.tokens.Token(ctx); err != nil {
		l.board.SetListError(MsgNoToken)
		l.log.Warn().Err(err).Msg("polling no iniciado: sin token")
		return domain.NewAppError(domain.KindFetch, MsgNoToken, err)
	}

	loopCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.done = make(chan struct{})
	l.running = true
	go l.run(loopCtx, l.done)

	l.log.Info().Dur("interval", l.interval).Msg("polling iniciado")
	return nil
}

// Stop detiene el timer y descarta las respuestas que lleguen después.
// Las peticiones en vuelo no se cancelan.
func (l *SyncLoop) Stop() {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return
	}
	l.running = false
	l.cancel()
	done := l.done
	l.board.Invalidate()
	l.mu.Unlock()

	<-done
	l.log.Info().Msg("polling detenido")
}

// Running indica si el timer está activo.
func (l *SyncLoop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// Wait espera a que terminen las consultas en vuelo.
func (l *SyncLoop) Wait() {
	l.inflight.Wait()
}

func (l *SyncLoop) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	// Las consultas sobreviven al cierre del ciclo; el tablero las ignora.
	fetchCtx := context.WithoutCancel(ctx)

	l.dispatch(fetchCtx)
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.dispatch(fetchCtx)
		}
	}
}

func (l *SyncLoop) dispatch(ctx context.Context) {
	l.inflight.Add(1)
	go func() {
		defer l.inflight.Done()
		l.Poll(ctx)
	}()
}

// Poll ejecuta un despacho completo de forma síncrona: reserva secuencia, consulta y aplica.
func (l *SyncLoop) Poll(ctx context.Context) FetchOutcome {
	ticket := l.board.NextTicket()

	token, err := l.tokens.Token(ctx)
	if err != nil {
		out := l.board.ApplyFetch(ticket, nil, err)
		if errors.Is(err, domain.ErrNoToken) && out.Applied {
			l.board.SetListError(MsgNoToken)
		}
		return out
	}

	quotes, err := l.gateway.ListQuotes(ctx, token)
	out := l.board.ApplyFetch(ticket, quotes, err)

	ev := l.log.Debug()
	switch {
	case errors.Is(out.Err, domain.ErrUnauthorized):
		ev = l.log.Warn().Err(out.Err).Str("hint", "token rechazado por el backend")
	case errors.Is(out.Err, domain.ErrNoQuotes):
		ev = l.log.Info().Err(out.Err)
	case out.Err != nil:
		ev = l.log.Error().Err(out.Err)
	case err != nil:
		ev = l.log.Error().Err(err)
	}
	ev.Uint64("seq", ticket.Seq).
		Bool("applied", out.Applied).
		Bool("replaced", out.Replaced).
		Int("count", out.Count).
		Msg("consulta de cotizaciones")

	if out.Replaced && l.notifier != nil {
		l.notifier.NewQuotes(ctx, out.Count)
	}
	return out
}
