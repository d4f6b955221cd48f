package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/asesor-cotizaciones/internal/application/auth"
	"github.com/jhoicas/asesor-cotizaciones/internal/application/dto"
	"github.com/jhoicas/asesor-cotizaciones/internal/application/quote"
	"github.com/jhoicas/asesor-cotizaciones/internal/application/session"
	"github.com/jhoicas/asesor-cotizaciones/internal/domain"
	"github.com/jhoicas/asesor-cotizaciones/internal/domain/entity"
	"github.com/jhoicas/asesor-cotizaciones/internal/infrastructure/notify"
	"github.com/jhoicas/asesor-cotizaciones/internal/testutil"
	"github.com/jhoicas/asesor-cotizaciones/pkg/jwt"
	"github.com/jhoicas/asesor-cotizaciones/pkg/logger"
)

type harness struct {
	app     *fiber.App
	store   *testutil.MemoryStore
	gateway *testutil.FakeGateway
	session *session.Session
	board   *quote.Board
	loop    *quote.SyncLoop
	chime   *notify.Chime
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		store:   testutil.NewMemoryStore(),
		gateway: testutil.NewFakeGateway(),
		board:   quote.NewBoard(),
		chime:   &notify.Chime{},
	}
	h.session = session.New(h.store, logger.Nop())
	h.loop = quote.NewSyncLoop(h.board, h.gateway, h.session, h.chime, time.Hour, logger.Nop())
	h.session.OnEnd(h.loop.Stop)

	h.app = fiber.New()
	Router(h.app, RouterDeps{
		AuthUC:       auth.NewAuthUseCase(h.gateway, h.session, logger.Nop()),
		Session:      h.session,
		Board:        h.board,
		SyncLoop:     h.loop,
		Controller:   quote.NewController(h.board, h.gateway, h.session, logger.Nop()),
		Chime:        h.chime,
		Log:          logger.Nop(),
		PollInterval: 10 * time.Second,
	})
	t.Cleanup(func() {
		h.loop.Stop()
		h.loop.Wait()
	})
	return h
}

func (h *harness) do(t *testing.T, method, path, body string, header map[string]string) (int, string, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := h.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, resp.Header.Get(fiber.HeaderLocation), string(raw)
}

var formHeader = map[string]string{fiber.HeaderContentType: fiber.MIMEApplicationForm}
var jsonAccept = map[string]string{fiber.HeaderAccept: fiber.MIMEApplicationJSON}

func tokenFor(t *testing.T, userType int) string {
	t.Helper()
	tok, err := jwt.Generate("test-secret", "user-1", userType, 60)
	require.NoError(t, err)
	return tok
}

func sampleQuotes() []entity.Quote {
	base := time.Date(2024, 3, 10, 9, 30, 0, 0, time.Local)
	return []entity.Quote{
		{ID: 1, Name: "Ana", Phone: "+57 300 123 4567", Email: "ana@example.com", Date: base, ProductCode: "P-1", State: entity.StateSent},
		{ID: 2, Name: "Luis", Email: "luis@example.com", Date: base.Add(time.Hour), ProductCode: "P-2", State: entity.StateSent},
	}
}

func (h *harness) loadQuotes(t *testing.T) {
	t.Helper()
	require.NoError(t, h.session.Begin(context.Background(), "tok"))
	h.gateway.SetQuotes(sampleQuotes())
	status, _, _ := h.do(t, fiber.MethodGet, "/asesor", "", nil)
	require.Equal(t, fiber.StatusOK, status)
	require.Eventually(t, func() bool {
		return len(h.board.Snapshot().Quotes) == 2 && h.chime.Rung() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestLogin_RedirigeSegunTipo(t *testing.T) {
	cases := []struct {
		name     string
		userType int
		location string
	}{
		{"administrador", 1, "/admin"},
		{"asesor", 2, "/asesor"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			h.gateway.LoginToken = tokenFor(t, tc.userType)

			status, location, _ := h.do(t, fiber.MethodPost, "/login", "email=a%40b.co&password=x", formHeader)
			assert.Equal(t, fiber.StatusSeeOther, status)
			assert.Equal(t, tc.location, location)

			stored, err := h.session.Token(context.Background())
			require.NoError(t, err)
			assert.Equal(t, h.gateway.LoginToken, stored)
		})
	}
}

func TestLogin_TipoDesconocidoSeQuedaEnLogin(t *testing.T) {
	h := newHarness(t)
	h.gateway.LoginToken = tokenFor(t, 99)

	status, location, body := h.do(t, fiber.MethodPost, "/login", "email=a%40b.co&password=x", formHeader)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Empty(t, location)
	assert.Contains(t, body, auth.MsgUnknownUserType)
}

func TestLogin_CredencialesRechazadasJSON(t *testing.T) {
	h := newHarness(t)
	h.gateway.LoginErr = &domain.BackendError{StatusCode: 401, Body: "Credenciales inválidas"}

	status, _, body := h.do(t, fiber.MethodPost, "/login", `{"email":"a@b.co","password":"x"}`, map[string]string{
		fiber.HeaderContentType: fiber.MIMEApplicationJSON,
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)

	var res dto.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &res))
	assert.Equal(t, "UNAUTHORIZED", res.Code)
	assert.Equal(t, "Credenciales inválidas", res.Message)
	assert.False(t, h.session.Active(context.Background()))
}

func TestLogin_BackendCaido(t *testing.T) {
	h := newHarness(t)
	h.gateway.LoginErr = errors.Join(domain.ErrBackendUnreached, errors.New("dial tcp: refused"))

	status, _, body := h.do(t, fiber.MethodPost, "/login", "email=a%40b.co&password=x", formHeader)
	assert.Equal(t, fiber.StatusBadGateway, status)
	assert.Contains(t, body, auth.MsgConnection)
}

func TestAsesor_SinTokenMuestraError(t *testing.T) {
	h := newHarness(t)

	status, _, body := h.do(t, fiber.MethodGet, "/asesor", "", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, quote.MsgNoToken)
	assert.False(t, h.loop.Running())
	assert.Zero(t, h.gateway.LoginCalls)
}

func TestAsesor_AccionesSinTokenExigenSesion(t *testing.T) {
	h := newHarness(t)

	status, location, _ := h.do(t, fiber.MethodPost, "/asesor/quotes/1/select", "", nil)
	assert.Equal(t, fiber.StatusSeeOther, status)
	assert.Equal(t, "/asesor", location)

	status, _, _ = h.do(t, fiber.MethodGet, "/asesor/state", "", jsonAccept)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestAsesor_MontaSincronizaYExponeEstado(t *testing.T) {
	h := newHarness(t)
	h.loadQuotes(t)

	status, _, body := h.do(t, fiber.MethodGet, "/asesor/state", "", jsonAccept)
	require.Equal(t, fiber.StatusOK, status)

	var view dto.DashboardView
	require.NoError(t, json.Unmarshal([]byte(body), &view))
	require.Len(t, view.Quotes, 2)
	assert.Equal(t, int64(2), view.Quotes[0].ID, "más reciente primero")
	assert.Equal(t, "10/03/2024 09:30", view.Quotes[1].Date)
	assert.Equal(t, "Enviado", view.Quotes[0].StateLabel)
	assert.True(t, view.Syncing)
	assert.Equal(t, 1, view.Alerts)

	_, _, page := h.do(t, fiber.MethodGet, "/asesor", "", nil)
	assert.Contains(t, page, "Buzón de Notificaciones")
	assert.Contains(t, page, "Luis")
}

func TestAsesor_SeleccionarPideProductoYPasaARecibido(t *testing.T) {
	h := newHarness(t)
	h.loadQuotes(t)

	status, location, _ := h.do(t, fiber.MethodPost, "/asesor/quotes/1/select", "", nil)
	assert.Equal(t, fiber.StatusSeeOther, status)
	assert.Equal(t, "/asesor", location)

	assert.Equal(t, []testutil.StateCall{{Token: "tok", ID: 1, State: entity.StateReceived}}, h.gateway.StateCallsSnapshot())
	assert.Equal(t, []string{"P-1"}, h.gateway.ProductCallsSnapshot())

	snap := h.board.Snapshot()
	require.NotNil(t, snap.Active)
	assert.Equal(t, int64(1), snap.Active.ID)
	assert.Equal(t, entity.StateReceived, snap.Active.State)
	require.NotNil(t, snap.Product)
}

func TestAsesor_ResponderRedirigeAlContacto(t *testing.T) {
	h := newHarness(t)
	h.loadQuotes(t)

	status, location, _ := h.do(t, fiber.MethodPost, "/asesor/quotes/1/respond", "", nil)
	assert.Equal(t, fiber.StatusSeeOther, status)
	assert.Equal(t, "https://wa.me/573001234567", location)

	status, location, _ = h.do(t, fiber.MethodPost, "/asesor/quotes/2/respond", "", nil)
	assert.Equal(t, fiber.StatusSeeOther, status)
	assert.Equal(t, "mailto:luis@example.com", location)

	calls := h.gateway.StateCallsSnapshot()
	require.Len(t, calls, 2)
	assert.Equal(t, entity.StateResponded, calls[0].State)
	assert.Equal(t, entity.StateResponded, calls[1].State)
}

func TestAsesor_RechazarYErroresDeID(t *testing.T) {
	h := newHarness(t)
	h.loadQuotes(t)

	status, _, body := h.do(t, fiber.MethodPost, "/asesor/quotes/2/reject", "", jsonAccept)
	require.Equal(t, fiber.StatusOK, status)
	var view dto.DashboardView
	require.NoError(t, json.Unmarshal([]byte(body), &view))
	assert.Equal(t, "Rechazado", view.Quotes[0].StateLabel)
	assert.Equal(t, "rejected", view.Quotes[0].StateClass)

	status, _, _ = h.do(t, fiber.MethodPost, "/asesor/quotes/abc/reject", "", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _, _ = h.do(t, fiber.MethodPost, "/asesor/quotes/999/reject", "", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestLogout_BorraTokenYDetieneSincronizacion(t *testing.T) {
	h := newHarness(t)
	h.loadQuotes(t)
	require.True(t, h.loop.Running())

	status, location, _ := h.do(t, fiber.MethodPost, "/logout", "", nil)
	assert.Equal(t, fiber.StatusSeeOther, status)
	assert.Equal(t, "/", location)

	assert.False(t, h.session.Active(context.Background()))
	assert.False(t, h.loop.Running())
}

func TestLoginPage(t *testing.T) {
	h := newHarness(t)
	status, _, body := h.do(t, fiber.MethodGet, "/", "", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `action="/login"`)
}

func TestLogout_FalloDelAlmacenamientoMuestraLogin(t *testing.T) {
	h := newHarness(t)
	h.loadQuotes(t)
	h.store.Err = errors.New("disco lleno")

	status, location, body := h.do(t, fiber.MethodPost, "/logout", "", nil)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Empty(t, location)
	assert.Contains(t, body, MsgLogoutFailed)
	assert.Contains(t, body, `action="/login"`)
	assert.False(t, h.loop.Running(), "el polling se detiene aunque el borrado falle")

	status, _, body = h.do(t, fiber.MethodPost, "/logout", "", jsonAccept)
	assert.Equal(t, fiber.StatusInternalServerError, status)
	var res dto.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(body), &res))
	assert.Equal(t, "LOGOUT_FAILED", res.Code)
}
