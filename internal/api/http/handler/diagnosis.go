package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/spitali-app/spitali_backend/internal/service/diagnosis"
)

type DiagnosisHandler struct {
	svc diagnosis.Service
}

func NewDiagnosisHandler(svc diagnosis.Service) *DiagnosisHandler {
	return &DiagnosisHandler{svc: svc}
}

func mapDiagnosisError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, diagnosis.ErrDiagnosisNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, diagnosis.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, diagnosis.ErrTitleRequired):
		return badRequest(c, err.Error())
	case errors.Is(err, diagnosis.ErrNoDoctorProfile):
		return forbidden(c)
	case errors.Is(err, diagnosis.ErrAccessDenied):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// POST /diagnoses
func (h *DiagnosisHandler) Create(c fiber.Ctx) error {
	claims, role, valid := actorFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		PatientID   string  `json:"patient_id"`
		Title       string  `json:"title"`
		Description *string `json:"description"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.PatientID == "" {
		return badRequest(c, "patient_id is required")
	}

	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}

	d, err := h.svc.Create(c.Context(), diagnosis.Actor{UserID: claims.UserID, Role: role}, diagnosis.CreateRequest{
		PatientID:   patientID,
		Title:       body.Title,
		Description: body.Description,
	})
	if err != nil {
		return mapDiagnosisError(c, err)
	}

	return created(c, d)
}

// GET /diagnoses?patient_id=
func (h *DiagnosisHandler) List(c fiber.Ctx) error {
	claims, role, valid := actorFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	req := diagnosis.ListRequest{}
	if s := c.Query("patient_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}

	rows, err := h.svc.List(c.Context(), diagnosis.Actor{UserID: claims.UserID, Role: role}, req)
	if err != nil {
		return mapDiagnosisError(c, err)
	}

	return ok(c, fiber.Map{"items": rows})
}
