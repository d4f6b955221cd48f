package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/asesor-cotizaciones/pkg/config"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "http://localhost:9092/traversal/api", cfg.Backend.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Sync.Interval)
	assert.Equal(t, time.Duration(0), cfg.Backend.Timeout)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTP.Addr())
	assert.Equal(t, "asesor.db", cfg.Session.DBPath)
}

func TestLoad_EnvYFlags(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BACKEND_BASE_URL", "https://cotizador.example.com/api/")
	t.Setenv("POLL_INTERVAL_SECONDS", "5")
	t.Setenv("HTTP_PORT", "8081")

	cfg, err := config.Load([]string{"--http-port", "9000", "--session-db", "/tmp/s.db"})
	require.NoError(t, err)

	assert.Equal(t, "https://cotizador.example.com/api", cfg.Backend.BaseURL, "se quita la barra final")
	assert.Equal(t, 5*time.Second, cfg.Sync.Interval)
	assert.Equal(t, 9000, cfg.HTTP.Port, "el flag tiene prioridad sobre env")
	assert.Equal(t, "/tmp/s.db", cfg.Session.DBPath)
}

func TestLoad_ValoresInvalidos(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv("BACKEND_BASE_URL", "sin-esquema")
	_, err := config.Load(nil)
	assert.Error(t, err)

	t.Setenv("BACKEND_BASE_URL", "http://localhost:9092")
	t.Setenv("POLL_INTERVAL_SECONDS", "0")
	_, err = config.Load(nil)
	assert.Error(t, err)
}
