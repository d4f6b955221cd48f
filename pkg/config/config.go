package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la consola (Viper: flags > env > archivo > defaults).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	Sync    SyncConfig
	Session SessionConfig
	Notify  NotifyConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP que sirve las pantallas.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig backend REST de cotizaciones.
type BackendConfig struct {
	BaseURL string        // ej. http://localhost:9092/traversal/api
	Timeout time.Duration // 0 = sin timeout
}

// SyncConfig periodo del polling de cotizaciones.
type SyncConfig struct {
	Interval time.Duration
}

// SessionConfig almacenamiento persistente del token.
type SessionConfig struct {
	DBPath string
}

// NotifyConfig sonido de nuevas cotizaciones (opcional).
type NotifyConfig struct {
	SoundPath string
}

// Load lee la configuración. args son los argumentos de línea de comandos (sin el programa).
// Nombres esperados en env: APP_ENV, HTTP_PORT, BACKEND_BASE_URL, POLL_INTERVAL_SECONDS, etc.
func Load(args []string) (*Config, error) {
	v := viper.New()

	// Opcional: archivo .env o config.env; ignoramos error si no existe
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	fs := pflag.NewFlagSet("asesor", pflag.ContinueOnError)
	fs.String("env", "", "entorno (development|production)")
	fs.Int("http-port", 0, "puerto HTTP de la consola")
	fs.String("backend-url", "", "URL base del backend de cotizaciones")
	fs.Int("poll-interval", 0, "segundos entre consultas de cotizaciones")
	fs.String("session-db", "", "archivo SQLite donde se guarda el token")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("config: flags: %w", err)
	}
	for key, flag := range map[string]string{
		"APP_ENV":               "env",
		"HTTP_PORT":             "http-port",
		"BACKEND_BASE_URL":      "backend-url",
		"POLL_INTERVAL_SECONDS": "poll-interval",
		"SESSION_DB_PATH":       "session-db",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", flag, err)
		}
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "asesor-cotizaciones"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Backend: BackendConfig{
			BaseURL: strings.TrimRight(getString(v, "BACKEND_BASE_URL", "http://localhost:9092/traversal/api"), "/"),
			Timeout: time.Duration(getInt(v, "BACKEND_TIMEOUT_SECONDS", 0)) * time.Second,
		},
		Sync: SyncConfig{
			Interval: time.Duration(getInt(v, "POLL_INTERVAL_SECONDS", 10)) * time.Second,
		},
		Session: SessionConfig{
			DBPath: getString(v, "SESSION_DB_PATH", "asesor.db"),
		},
		Notify: NotifyConfig{
			SoundPath: getString(v, "ALERT_SOUND_PATH", ""),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: BACKEND_BASE_URL inválida: %q", c.Backend.BaseURL)
	}
	if c.Sync.Interval <= 0 {
		return fmt.Errorf("config: POLL_INTERVAL_SECONDS debe ser mayor que cero")
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("config: HTTP_PORT fuera de rango: %d", c.HTTP.Port)
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		if s := v.GetString(key); s != "" {
			return s
		}
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
