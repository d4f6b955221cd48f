package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/asesor-cotizaciones/internal/application/auth"
	"github.com/jhoicas/asesor-cotizaciones/internal/application/dto"
	"github.com/jhoicas/asesor-cotizaciones/internal/domain"
	"github.com/jhoicas/asesor-cotizaciones/internal/domain/entity"
)

// AuthHandler pantalla de login y logout.
type AuthHandler struct {
	uc    *auth.AuthUseCase
	views *templates
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, views *templates) *AuthHandler {
	return &AuthHandler{uc: uc, views: views}
}

// MsgLogoutFailed mensaje cuando no se pudo borrar el token.
const MsgLogoutFailed = "Error al cerrar sesión"

type loginPage struct {
	Email string
	Error string
}

// LoginPage godoc
// @Summary      Pantalla de login
// @Tags         auth
// @Produce      html
// @Success      200
// @Router       / [get]
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, h.views.login, loginPage{})
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Acepta formulario o JSON. Los formularios reciben 303 al destino según el tipo de usuario.
// @Tags         auth
// @Accept       json,x-www-form-urlencoded
// @Produce      json,html
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResult
// @Success      303
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return h.loginFailed(c, fiber.StatusBadRequest, req.Email, "INVALID_REQUEST", auth.MsgMissingFields)
	}

	res, err := h.uc.Login(c.UserContext(), req)
	if err != nil {
		status := fiber.StatusUnauthorized
		code := "LOGIN_FAILED"
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			status, code = fiber.StatusBadRequest, "INVALID_REQUEST"
		case errors.Is(err, domain.ErrBackendUnreached):
			status, code = fiber.StatusBadGateway, "BACKEND_UNREACHABLE"
		case errors.Is(err, domain.ErrUnknownUserType):
			status, code = fiber.StatusForbidden, "UNKNOWN_USER_TYPE"
		case errors.Is(err, domain.ErrUnauthorized):
			code = "UNAUTHORIZED"
		}
		return h.loginFailed(c, status, req.Email, code, domain.UserMessage(err, auth.MsgConnection))
	}

	if wantsJSON(c) {
		return c.JSON(res)
	}
	return c.Redirect(res.Destination, fiber.StatusSeeOther)
}

func (h *AuthHandler) loginFailed(c *fiber.Ctx, status int, email, code, msg string) error {
	if wantsJSON(c) {
		return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
	}
	return render(c, status, h.views.login, loginPage{Email: email, Error: msg})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  Borra el token persistido y detiene la sincronización.
// @Tags         auth
// @Produce      json,html
// @Success      204
// @Success      303
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(c.UserContext()); err != nil {
		// El token pudo quedar en disco, pero el polling ya se detuvo.
		return h.loginFailed(c, fiber.StatusInternalServerError, "", "LOGOUT_FAILED", MsgLogoutFailed)
	}
	if wantsJSON(c) {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Redirect(entity.PathLogin, fiber.StatusSeeOther)
}

// AdminPage godoc
// @Summary      Destino del administrador (marcador)
// @Tags         auth
// @Produce      html
// @Success      200
// @Router       /admin [get]
func (h *AuthHandler) AdminPage(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, h.views.admin, nil)
}
