package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/asesor-cotizaciones/internal/application/dto"
	"github.com/jhoicas/asesor-cotizaciones/internal/domain"
	"github.com/jhoicas/asesor-cotizaciones/internal/domain/entity"
)

// DashboardHandler pantalla del asesor y sus acciones.
type DashboardHandler struct {
	deps  RouterDeps
	views *templates
}

// NewDashboardHandler construye el handler del tablero.
func NewDashboardHandler(deps RouterDeps, views *templates) *DashboardHandler {
	return &DashboardHandler{deps: deps, views: views}
}

type dashboardPage struct {
	View           dto.DashboardView
	RefreshSeconds int
	PlayAlert      bool
	SoundURL       string
}

// Show godoc
// @Summary      Tablero del asesor
// @Description  Montar la pantalla arranca la sincronización si no está corriendo.
// @Tags         asesor
// @Produce      html
// @Success      200
// @Router       /asesor [get]
func (h *DashboardHandler) Show(c *fiber.Ctx) error {
	if !h.deps.SyncLoop.Running() {
		if err := h.deps.SyncLoop.Start(h.deps.BaseCtx); err != nil {
			// Sin token: el tablero ya tiene el error de lista para mostrar.
			h.deps.Log.Debug().Err(err).Msg("sincronización no iniciada")
		}
	}

	page := dashboardPage{
		View:           h.view(),
		RefreshSeconds: refreshSeconds(h.deps.PollInterval),
	}
	if h.deps.Chime != nil && h.deps.Chime.Consume() && h.deps.SoundPath != "" {
		page.PlayAlert = true
		page.SoundURL = alertSoundPath
	}
	return render(c, fiber.StatusOK, h.views.dashboard, page)
}

// State godoc
// @Summary      Estado del tablero
// @Tags         asesor
// @Produce      json
// @Success      200  {object}  dto.DashboardView
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /asesor/state [get]
func (h *DashboardHandler) State(c *fiber.Ctx) error {
	return c.JSON(h.view())
}

// Select godoc
// @Summary      Seleccionar cotización
// @Description  Activa la cotización, la pasa a Recibido y pide el detalle de su producto.
// @Tags         asesor
// @Produce      json,html
// @Param        id   path      int  true  "ID de la cotización"
// @Success      200  {object}  dto.DashboardView
// @Success      303
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /asesor/quotes/{id}/select [post]
func (h *DashboardHandler) Select(c *fiber.Ctx) error {
	id, ok := quoteID(c)
	if !ok {
		return badQuoteID(c)
	}
	if err := h.deps.Controller.Select(c.UserContext(), id); err != nil {
		return actionError(c, err)
	}
	return h.done(c)
}

// Respond godoc
// @Summary      Responder cotización
// @Description  Pasa la cotización a Respondido y redirige al canal de contacto (WhatsApp o correo).
// @Tags         asesor
// @Produce      json
// @Param        id   path      int  true  "ID de la cotización"
// @Success      200  {object}  dto.ContactResponse
// @Success      303
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /asesor/quotes/{id}/respond [post]
func (h *DashboardHandler) Respond(c *fiber.Ctx) error {
	id, ok := quoteID(c)
	if !ok {
		return badQuoteID(c)
	}
	link, err := h.deps.Controller.Respond(c.UserContext(), id)
	if err != nil {
		return actionError(c, err)
	}
	if wantsJSON(c) {
		return c.JSON(dto.ContactResponse{ContactURL: link})
	}
	return c.Redirect(link, fiber.StatusSeeOther)
}

// Reject godoc
// @Summary      Rechazar cotización
// @Tags         asesor
// @Produce      json,html
// @Param        id   path      int  true  "ID de la cotización"
// @Success      200  {object}  dto.DashboardView
// @Success      303
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /asesor/quotes/{id}/reject [post]
func (h *DashboardHandler) Reject(c *fiber.Ctx) error {
	id, ok := quoteID(c)
	if !ok {
		return badQuoteID(c)
	}
	if err := h.deps.Controller.Reject(c.UserContext(), id); err != nil {
		return actionError(c, err)
	}
	return h.done(c)
}

func (h *DashboardHandler) view() dto.DashboardView {
	v := toDashboardView(h.deps.Board.Snapshot())
	v.Syncing = h.deps.SyncLoop.Running()
	if h.deps.Chime != nil {
		v.Alerts = h.deps.Chime.Rung()
	}
	return v
}

func (h *DashboardHandler) done(c *fiber.Ctx) error {
	if wantsJSON(c) {
		return c.JSON(h.view())
	}
	return c.Redirect(entity.PathAsesor, fiber.StatusSeeOther)
}

func quoteID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	return id, err == nil && id > 0
}

func badQuoteID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "INVALID_ID", Message: "id de cotización inválido",
	})
}

func actionError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrQuoteNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "QUOTE_NOT_FOUND", Message: "cotización no encontrada",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code: "INTERNAL", Message: domain.UserMessage(err, "Error inesperado"),
	})
}

func refreshSeconds(d time.Duration) int {
	s := int(d / time.Second)
	if s < 1 {
		return 10
	}
	return s
}
