package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-core-fx/fiberfx/handler"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/vigyat/agrostore/internal/auth"
	"github.com/vigyat/agrostore/internal/server/validation"
	"go.uber.org/zap"
)

type Handler struct {
	authSvc *auth.Service

	validator *validator.Validate
	logger    *zap.Logger
}

func NewHandler(authSvc *auth.Service, validator *validator.Validate, logger *zap.Logger) handler.Handler {
	return &Handler{
		authSvc: authSvc,

		validator: validator,
		logger:    logger,
	}
}

// Register implements handler.Handler.
func (h *Handler) Register(r fiber.Router) {
	r = r.Group("/auth")

	r.Use(h.errorsHandler)
	r.Post("/login", validation.DecorateWithBodyEx(h.validator, h.login))
	r.Post("/logout", h.logout)
	r.Get("/session", h.session)
}

//	@Summary		Log in as admin
//	@Description	Checks the admin credentials and sets the session cookie.
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		LoginRequest	true	"Admin credentials"
//	@Success		200			{object}	LoginResponse
//	@Failure		400			{object}	fiberfx.ErrorResponse
//	@Failure		401			{object}	fiberfx.ErrorResponse
//	@Router			/auth/login [post]
//
// Log in.
func (h *Handler) login(c *fiber.Ctx, req *LoginRequest) error {
	token, err := h.authSvc.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return fmt.Errorf("failed to log in: %w", err)
	}

	ttl := h.authSvc.SessionTTL()
	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		Expires:  time.Now().Add(ttl),
		Secure:   h.authSvc.CookieSecure(),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})

	return c.JSON(LoginResponse{Success: true})
}

//	@Summary	Log out
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	LoginResponse
//	@Router		/auth/logout [post]
//
// Log out.
func (h *Handler) logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   h.authSvc.CookieSecure(),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})

	return c.JSON(LoginResponse{Success: true})
}

//	@Summary	Check the admin session
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	SessionResponse
//	@Router		/auth/session [get]
//
// Check the session.
func (h *Handler) session(c *fiber.Ctx) error {
	return c.JSON(SessionResponse{
		Authenticated: h.authSvc.VerifySession(c.Context(), c.Cookies(auth.CookieName)),
	})
}

func (h *Handler) errorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	if errors.Is(err, auth.ErrInvalidCredentials) {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	return err //nolint:wrapcheck //already wrapped
}
