package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/spitali-app/spitali_backend/internal/service/auth"
	"github.com/spitali-app/spitali_backend/pkg/token"
)

type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func authPayload(res *auth.AuthResult) fiber.Map {
	return fiber.Map{
		"token":      res.AccessToken,
		"expires_in": res.ExpiresIn,
		"user":       res.User,
	}
}

// POST /auth/signup
func (h *AuthHandler) Signup(c fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	res, err := h.svc.Signup(c.Context(), auth.SignupRequest{
		Email:    body.Email,
		Password: body.Password,
		Name:     body.Name,
	})
	if err != nil {
		return mapAuthError(c, err)
	}

	return created(c, authPayload(res))
}

// POST /auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	res, err := h.svc.Login(c.Context(), auth.LoginRequest{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, authPayload(res))
}

// POST /auth/logout  (requires AuthRequired middleware)
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	claims, valid := token.ClaimsFromFiber(c)
	if !valid || claims.SessionID == nil {
		return unauthorized(c)
	}

	if err := h.svc.Logout(c.Context(), *claims.SessionID); err != nil {
		return internalError(c)
	}

	return noContent(c)
}

// GET /me  (requires AuthRequired middleware)
func (h *AuthHandler) Me(c fiber.Ctx) error {
	claims, valid := token.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	u, err := h.svc.Me(c.Context(), claims.UserID)
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{"user": u})
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

func mapAuthError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, auth.ErrInvalidEmail):
		return badRequest(c, err.Error())
	case errors.Is(err, auth.ErrPasswordTooShort):
		return badRequest(c, err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, auth.ErrSessionNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, auth.ErrInvalidToken):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": err.Error()})
	case errors.Is(err, auth.ErrUserNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}
