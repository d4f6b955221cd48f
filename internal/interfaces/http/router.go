package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/asesor-cotizaciones/internal/application/auth"
	"github.com/jhoicas/asesor-cotizaciones/internal/application/quote"
	"github.com/jhoicas/asesor-cotizaciones/internal/application/session"
	"github.com/jhoicas/asesor-cotizaciones/internal/domain/entity"
	"github.com/jhoicas/asesor-cotizaciones/internal/infrastructure/notify"
	"github.com/jhoicas/asesor-cotizaciones/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	Session    *session.Session
	Board      *quote.Board
	SyncLoop   *quote.SyncLoop
	Controller *quote.Controller
	Chime      *notify.Chime
	Log        *logger.Logger

	// BaseCtx contexto de proceso para el polling (no el de una petición).
	BaseCtx context.Context
	// PollInterval se usa como periodo de recarga de la pantalla del asesor.
	PollInterval time.Duration
	// SoundPath archivo de la alerta sonora; vacío = sin sonido.
	SoundPath string
}

// Router registra las dos pantallas y sus acciones.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.BaseCtx == nil {
		deps.BaseCtx = context.Background()
	}
	views := mustParseTemplates()

	app.Use(RequestLogger(deps.Log))

	if deps.SoundPath != "" {
		app.Get(alertSoundPath, func(c *fiber.Ctx) error {
			return c.SendFile(deps.SoundPath)
		})
	}

	// Login (público)
	authHandler := NewAuthHandler(deps.AuthUC, views)
	app.Get(entity.PathLogin, authHandler.LoginPage)
	app.Post("/login", authHandler.Login)
	app.Post("/logout", authHandler.Logout)
	app.Get(entity.PathAdmin, authHandler.AdminPage)

	// Tablero del asesor: montar la pantalla no exige token (muestra el error),
	// las acciones sí.
	dashboard := NewDashboardHandler(deps, views)
	app.Get(entity.PathAsesor, dashboard.Show)

	asesor := app.Group(entity.PathAsesor, RequireSession(deps.Session))
	asesor.Get("/state", dashboard.State)
	quotes := asesor.Group("/quotes/:id")
	quotes.Post("/select", dashboard.Select)
	quotes.Post("/respond", dashboard.Respond)
	quotes.Post("/reject", dashboard.Reject)
}
