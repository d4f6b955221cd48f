package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/asesor-cotizaciones/internal/application/auth"
	"github.com/jhoicas/asesor-cotizaciones/internal/application/quote"
	"github.com/jhoicas/asesor-cotizaciones/internal/application/session"
	"github.com/jhoicas/asesor-cotizaciones/internal/infrastructure/backend"
	"github.com/jhoicas/asesor-cotizaciones/internal/infrastructure/notify"
	"github.com/jhoicas/asesor-cotizaciones/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/asesor-cotizaciones/internal/interfaces/http"
	"github.com/jhoicas/asesor-cotizaciones/pkg/config"
	"github.com/jhoicas/asesor-cotizaciones/pkg/logger"
)

// @title        Asesor Cotizaciones
// @version      1.0
// @description  Consola del asesor: login, tablero de cotizaciones sincronizado con el backend y transiciones de estado.
// @BasePath     /
func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando consola de cotizaciones")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.Open(ctx, cfg.Session.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Session.DBPath).Msg("abrir almacenamiento de sesión")
	}
	defer store.Close()

	sess := session.New(store, log)
	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)

	board := quote.NewBoard()
	chime := &notify.Chime{}
	notifier := notify.Multi{notify.NewLogNotifier(log), chime}
	syncLoop := quote.NewSyncLoop(board, client, sess, notifier, cfg.Sync.Interval, log)
	controller := quote.NewController(board, client, sess, log)

	// Cerrar sesión detiene el polling.
	sess.OnEnd(syncLoop.Stop)

	authUC := auth.NewAuthUseCase(client, sess, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	httpRouter.MountDocs(app, cfg.App.Name)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "syncing": syncLoop.Running()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		Session:      sess,
		Board:        board,
		SyncLoop:     syncLoop,
		Controller:   controller,
		Chime:        chime,
		Log:          log,
		BaseCtx:      ctx,
		PollInterval: cfg.Sync.Interval,
		SoundPath:    cfg.Notify.SoundPath,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	syncLoop.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
