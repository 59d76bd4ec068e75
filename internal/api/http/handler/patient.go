package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/spitali-app/spitali_backend/internal/service/doctor"
	"github.com/spitali-app/spitali_backend/internal/service/patient"
	"github.com/spitali-app/spitali_backend/pkg/authorize"
)

const dateLayout = "2006-01-02"

type PatientHandler struct {
	svc     patient.Service
	doctors doctor.Service
}

func NewPatientHandler(svc patient.Service, doctors doctor.Service) *PatientHandler {
	return &PatientHandler{svc: svc, doctors: doctors}
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrAccessDenied):
		return forbidden(c)
	case errors.Is(err, patient.ErrInvalidGender):
		return badRequest(c, err.Error())
	case errors.Is(err, patient.ErrNothingToUpdate):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// parseDOB accepts a nil or "2006-01-02" date of birth.
func parseDOB(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ---------------------------------------------------------------------------
// Staff-side records
// ---------------------------------------------------------------------------

// GET /patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	var q struct {
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
		Search  string `query:"search"`
	}
	_ = c.Bind().Query(&q)

	result, err := h.svc.List(c.Context(), patient.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
		Search:  q.Search,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, fiber.Map{
		"patients":    result.Data,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// GET /patients/:id
func (h *PatientHandler) Get(c fiber.Ctx) error {
	claims, role, valid := actorFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	p, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapPatientError(c, err)
	}

	// Doctors only see records they registered or ones no doctor registered.
	if role == authorize.RoleNameDoctor {
		d, err := h.doctors.GetByUserID(c.Context(), claims.UserID)
		if err != nil {
			return mapDoctorError(c, err)
		}
		if !patient.CanAccess(role, claims.UserID, &d.ID, p) {
			return forbidden(c)
		}
	}

	return ok(c, p)
}

// POST /patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	claims, role, valid := actorFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Email     *string `json:"email"`
		Phone     *string `json:"phone"`
		Gender    *string `json:"gender"`
		DOB       *string `json:"dob"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	dob, err := parseDOB(body.DOB)
	if err != nil {
		return badRequest(c, "dob must be formatted as "+dateLayout)
	}

	req := patient.CreateRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Phone:     body.Phone,
		Gender:    body.Gender,
		DOB:       dob,
	}

	// Records registered by a doctor stay attached to that doctor.
	if role == authorize.RoleNameDoctor {
		d, err := h.doctors.GetByUserID(c.Context(), claims.UserID)
		if err != nil {
			return mapDoctorError(c, err)
		}
		req.CreatedByDoctorID = &d.ID
	}

	p, err := h.svc.Create(c.Context(), req)
	if err != nil {
		return mapPatientError(c, err)
	}

	return created(c, p)
}

// DELETE /patients/:id
func (h *PatientHandler) Delete(c fiber.Ctx) error {
	claims, role, valid := actorFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	if err := h.svc.Delete(c.Context(), role, claims.UserID, id); err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, fiber.Map{"success": true})
}

// GET /doctors/me/patients
func (h *PatientHandler) MyPatients(c fiber.Ctx) error {
	claims, _, valid := actorFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	rows, err := h.svc.ListForDoctor(c.Context(), claims.UserID)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, fiber.Map{"items": rows})
}

// ---------------------------------------------------------------------------
// Self profile
// ---------------------------------------------------------------------------

// GET /patients/me
func (h *PatientHandler) GetMine(c fiber.Ctx) error {
	claims, _, valid := actorFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	p, err := h.svc.GetMine(c.Context(), claims.UserID)
	if err != nil {
		return mapPatientError(c, err)
	}

	return ok(c, p)
}

// PUT /patients/me
func (h *PatientHandler) UpdateMine(c fiber.Ctx) error {
	claims, _, valid := actorFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		FirstName *string `json:"first_name"`
		LastName  *string `json:"last_name"`
		Phone     *string `json:"phone"`
		Gender    *string `json:"gender"`
		DOB       *string `json:"dob"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	dob, err := parseDOB(body.DOB)
	if err != nil {
		return badRequest(c, "dob must be formatted as "+dateLayout)
	}

	p, wasCreated, err := h.svc.UpsertMine(c.Context(), claims.UserID, patient.UpdateProfileRequest{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Phone:     body.Phone,
		Gender:    body.Gender,
		DOB:       dob,
	})
	if err != nil {
		return mapPatientError(c, err)
	}

	if wasCreated {
		return created(c, p)
	}
	return ok(c, p)
}
