package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/asesor-cotizaciones/internal/application/dto"
	"github.com/jhoicas/asesor-cotizaciones/internal/application/session"
	"github.com/jhoicas/asesor-cotizaciones/internal/domain/entity"
	"github.com/jhoicas/asesor-cotizaciones/pkg/logger"
)

// LocalRequestID clave de Locals con el id de la petición.
const LocalRequestID = "request_id"

// RequestLogger registra cada petición con un id de correlación.
func RequestLogger(log *logger.Logger) fiber.Handler {
	httpLog := log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		id := uuid.NewString()
		c.Locals(LocalRequestID, id)
		c.Set("X-Request-ID", id)

		err := c.Next()

		httpLog.Debug().
			Str("request_id", id).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("elapsed", time.Since(start)).
			Msg("petición")
		return err
	}
}

// RequireSession exige un token persistido. Los clientes JSON reciben 401;
// los formularios vuelven al tablero, que muestra el error de token.
func RequireSession(sess *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sess.Active(c.Context()) {
			return c.Next()
		}
		if wantsJSON(c) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "MISSING_TOKEN", Message: "Token no disponible, por favor inicie sesión.",
			})
		}
		return c.Redirect(entity.PathAsesor, fiber.StatusSeeOther)
	}
}

func wantsJSON(c *fiber.Ctx) bool {
	return c.Is("json") || c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON
}
