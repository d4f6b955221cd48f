package quote

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/asesor-cotizaciones/internal/application/ports"
	"github.com/jhoicas/asesor-cotizaciones/internal/domain"
	"github.com/jhoicas/asesor-cotizaciones/internal/domain/entity"
	"github.com/jhoicas/asesor-cotizaciones/pkg/logger"
)

// Controller acciones del operador sobre el tablero: selección, cambio de estado,
// responder, rechazar y detalle de producto.
type Controller struct {
	board   *Board
	gateway ports.QuoteGateway
	tokens  TokenSource
	log     *logger.Logger
}

// NewController construye el controlador.
func NewController(board *Board, gateway ports.QuoteGateway, tokens TokenSource, log *logger.Logger) *Controller {
	return &Controller{board: board, gateway: gateway, tokens: tokens, log: log.Component("quotes")}
}

// ChangeState envía la transición al backend y, si tiene éxito, parchea solo esa cotización.
// No hay guarda de monotonía: se emite cualquier transición pedida. El error se registra
// y se devuelve para el log del llamador; el tablero no cambia ni muestra nada.
func (c *Controller) ChangeState(ctx context.Context, id int64, state entity.QuoteState) error {
	if !state.Valid() {
		return fmt.Errorf("estado %d: %w", state, domain.ErrInvalidInput)
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		c.log.Error().Err(err).Int64("quote_id", id).Msg("error al cambiar el estado")
		return domain.NewAppError(domain.KindStateChange, "Error al cambiar el estado", err)
	}
	if err := c.gateway.ChangeState(ctx, token, id, state); err != nil {
		c.log.Error().Err(err).Int64("quote_id", id).Int("state", int(state)).Msg("error al cambiar el estado")
		return domain.NewAppError(domain.KindStateChange, "Error al cambiar el estado", err)
	}
	if !c.board.PatchState(id, state) {
		c.log.Debug().Int64("quote_id", id).Msg("estado cambiado para una cotización que ya no está en el tablero")
	}
	c.log.Info().Int64("quote_id", id).Str("state", state.Label()).Msg("estado actualizado")
	return nil
}

// Select activa la cotización, la pasa a Recibido (aunque ya esté más adelante) y pide
// su producto. La transición y la consulta corren en paralelo; Select espera a ambas.
func (c *Controller) Select(ctx context.Context, id int64) error {
	q, ok := c.board.Select(id)
	if !ok {
		return domain.ErrQuoteNotFound
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = c.ChangeState(ctx, q.ID, entity.StateReceived)
	}()
	go func() {
		defer wg.Done()
		_ = c.FetchProduct(ctx, q.ProductCode)
	}()
	wg.Wait()
	return nil
}

// Respond devuelve el enlace de contacto (WhatsApp si hay teléfono, si no mailto) y pasa
// la cotización a Respondido sin importar si el canal externo llega a abrirse.
func (c *Controller) Respond(ctx context.Context, id int64) (string, error) {
	q, ok := c.board.Find(id)
	if !ok {
		return "", domain.ErrQuoteNotFound
	}
	link := ContactURL(q)
	_ = c.ChangeState(ctx, id, entity.StateResponded)
	return link, nil
}

// Reject pasa la cotización a Rechazado.
func (c *Controller) Reject(ctx context.Context, id int64) error {
	if _, ok := c.board.Find(id); !ok {
		return domain.ErrQuoteNotFound
	}
	_ = c.ChangeState(ctx, id, entity.StateRejected)
	return nil
}

// FetchProduct pide el producto por código para la selección vigente. Sin caché.
// Si la selección cambia mientras tanto, el resultado se descarta.
func (c *Controller) FetchProduct(ctx context.Context, code string) error {
	selection := c.board.BeginProductFetch()

	token, err := c.tokens.Token(ctx)
	if err != nil {
		c.board.ApplyProduct(selection, nil, err)
		return domain.NewAppError(domain.KindProductFetch, MsgProductError, err)
	}
	p, err := c.gateway.GetProductByCode(ctx, token, code)
	c.board.ApplyProduct(selection, p, err)
	if err != nil {
		c.log.Error().Err(err).Str("product_code", code).Msg("error al obtener los detalles del producto")
		return domain.NewAppError(domain.KindProductFetch, MsgProductError, err)
	}
	return nil
}
