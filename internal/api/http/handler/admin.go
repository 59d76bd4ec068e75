package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/spitali-app/spitali_backend/internal/service/user"
)

type AdminHandler struct {
	users user.Service
}

func NewAdminHandler(users user.Service) *AdminHandler {
	return &AdminHandler{users: users}
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrInvalidEmail):
		return badRequest(c, err.Error())
	case errors.Is(err, user.ErrInvalidRole):
		return badRequest(c, err.Error())
	case errors.Is(err, user.ErrPasswordTooShort):
		return badRequest(c, err.Error())
	case errors.Is(err, user.ErrEmailAlreadyExists):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /admin/users
func (h *AdminHandler) CreateUser(c fiber.Ctx) error {
	var body struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		Role      string `json:"role"`
		Name      string `json:"name"`
		Specialty string `json:"specialty"`
		City      string `json:"city"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.users.Create(c.Context(), user.CreateRequest{
		Email:     body.Email,
		Password:  body.Password,
		Role:      body.Role,
		Name:      body.Name,
		Specialty: body.Specialty,
		City:      body.City,
	})
	if err != nil {
		return mapUserError(c, err)
	}

	return created(c, u)
}

// GET /admin/stats
func (h *AdminHandler) Stats(c fiber.Ctx) error {
	stats, err := h.users.Stats(c.Context())
	if err != nil {
		return mapUserError(c, err)
	}

	return ok(c, stats)
}
