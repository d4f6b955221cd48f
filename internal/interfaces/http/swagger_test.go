package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMountDocs_SirveElDocumento(t *testing.T) {
	app := fiber.New()
	MountDocs(app, "Asesor Cotizaciones")

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/docs/swagger.json", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var doc struct {
		Swagger string                 `json:"swagger"`
		Paths   map[string]interface{} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "2.0", doc.Swagger)
	for _, p := range []string{"/login", "/logout", "/asesor/state", "/asesor/quotes/{id}/select", "/asesor/quotes/{id}/respond", "/asesor/quotes/{id}/reject"} {
		assert.Contains(t, doc.Paths, p)
	}

	ui, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/docs", nil), -1)
	require.NoError(t, err)
	defer ui.Body.Close()
	assert.Equal(t, fiber.StatusOK, ui.StatusCode)
}
