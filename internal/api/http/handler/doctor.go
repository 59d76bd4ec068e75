package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/spitali-app/spitali_backend/internal/service/doctor"
)

type DoctorHandler struct {
	svc doctor.Service
}

func NewDoctorHandler(svc doctor.Service) *DoctorHandler {
	return &DoctorHandler{svc: svc}
}

func mapDoctorError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, doctor.ErrDoctorNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, doctor.ErrEmailAlreadyExists):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /doctors/search?specialty=&city=
func (h *DoctorHandler) Search(c fiber.Ctx) error {
	rows, err := h.svc.Search(c.Context(), doctor.SearchRequest{
		Specialty: c.Query("specialty"),
		City:      c.Query("city"),
	})
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, fiber.Map{"items": rows})
}

// GET /doctors/by-id/:id
func (h *DoctorHandler) GetByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	d, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, fiber.Map{"item": d})
}

// GET /doctors
func (h *DoctorHandler) List(c fiber.Ctx) error {
	rows, err := h.svc.List(c.Context())
	if err != nil {
		return mapDoctorError(c, err)
	}

	return ok(c, fiber.Map{"items": rows})
}

// POST /doctors
func (h *DoctorHandler) Create(c fiber.Ctx) error {
	var body struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		Name      string `json:"name"`
		Specialty string `json:"specialty"`
		City      string `json:"city"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Email == "" || body.Password == "" {
		return badRequest(c, "email and password are required")
	}

	d, err := h.svc.Create(c.Context(), doctor.CreateRequest{
		Email:     body.Email,
		Password:  body.Password,
		Name:      body.Name,
		Specialty: body.Specialty,
		City:      body.City,
	})
	if err != nil {
		return mapDoctorError(c, err)
	}

	return created(c, d)
}
