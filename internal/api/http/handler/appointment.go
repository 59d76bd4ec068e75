package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/spitali-app/spitali_backend/internal/service/appointment"
	"github.com/spitali-app/spitali_backend/pkg/authorize"
)

type AppointmentHandler struct {
	svc appointment.Service
}

func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrDoctorNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrSlotTaken):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrAlreadyCancelled):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrAlreadyDone):
		return conflict(c, err.Error())
	case errors.Is(err, appointment.ErrOffGrid):
		return badRequest(c, err.Error())
	case errors.Is(err, appointment.ErrWeekendBooking):
		return badRequest(c, err.Error())
	case errors.Is(err, appointment.ErrBadTimeFormat):
		return badRequest(c, err.Error())
	case errors.Is(err, appointment.ErrInvalidGender):
		return badRequest(c, err.Error())
	case errors.Is(err, appointment.ErrNotAllowed):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// POST /appointments
func (h *AppointmentHandler) Create(c fiber.Ctx) error {
	claims, role, valid := actorFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		DoctorID    string  `json:"doctor_id"`
		ScheduledAt string  `json:"scheduled_at"`
		Reason      *string `json:"reason"`
		Patient     struct {
			ID        *string `json:"id"`
			FirstName *string `json:"first_name"`
			LastName  *string `json:"last_name"`
			Name      *string `json:"name"`
			DOB       *string `json:"dob"`
			Email     *string `json:"email"`
			Phone     *string `json:"phone"`
			Gender    *string `json:"gender"`
		} `json:"patient"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.DoctorID == "" || body.ScheduledAt == "" {
		return badRequest(c, "doctor_id and scheduled_at are required")
	}

	doctorID, err := uuid.Parse(body.DoctorID)
	if err != nil {
		return badRequest(c, "invalid doctor_id")
	}
	scheduledAt, err := appointment.ParseWireTime(body.ScheduledAt)
	if err != nil {
		return badRequest(c, "scheduled_at must be formatted as "+appointment.WireTimeLayout)
	}
	dob, err := parseDOB(body.Patient.DOB)
	if err != nil {
		return badRequest(c, "patient.dob must be formatted as "+dateLayout)
	}

	req := appointment.CreateRequest{
		DoctorID:    doctorID,
		ScheduledAt: scheduledAt,
		Reason:      body.Reason,
		Patient: appointment.PatientInput{
			FirstName: body.Patient.FirstName,
			LastName:  body.Patient.LastName,
			Name:      body.Patient.Name,
			Email:     body.Patient.Email,
			Phone:     body.Patient.Phone,
			Gender:    body.Patient.Gender,
			DOB:       dob,
		},
	}
	if body.Patient.ID != nil && *body.Patient.ID != "" {
		id, err := uuid.Parse(*body.Patient.ID)
		if err != nil {
			return badRequest(c, "invalid patient.id")
		}
		req.Patient.ID = &id
	}

	appt, err := h.svc.Create(c.Context(), appointment.Actor{UserID: claims.UserID, Role: role}, req)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return created(c, appt)
}

// GET /appointments
//
// Admins see every appointment, optionally filtered; doctors and patients
// get their own bookings.
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	claims, role, valid := actorFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	if role != authorize.RoleNameAdmin {
		appts, err := h.svc.ListMine(c.Context(), appointment.Actor{UserID: claims.UserID, Role: role})
		if err != nil {
			return mapAppointmentError(c, err)
		}
		return ok(c, fiber.Map{"items": appts})
	}

	var q struct {
		DoctorID  string `query:"doctor_id"`
		PatientID string `query:"patient_id"`
		Status    string `query:"status"`
		From      string `query:"from"`
		To        string `query:"to"`
		Page      int    `query:"page"`
		PerPage   int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := appointment.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
	}
	if q.DoctorID != "" {
		id, err := uuid.Parse(q.DoctorID)
		if err != nil {
			return badRequest(c, "invalid doctor_id")
		}
		req.DoctorID = &id
	}
	if q.PatientID != "" {
		id, err := uuid.Parse(q.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.From != "" {
		if t, err := appointment.ParseWireTime(q.From); err == nil {
			req.From = &t
		}
	}
	if q.To != "" {
		if t, err := appointment.ParseWireTime(q.To); err == nil {
			req.To = &t
		}
	}

	appts, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, fiber.Map{"items": appts})
}

// GET /patients/me/appointments and GET /doctors/me/appointments
//
// Patients get a bare array, doctors an items wrapper. Both shapes predate
// this server and the client depends on them.
func (h *AppointmentHandler) Mine(c fiber.Ctx) error {
	claims, role, valid := actorFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	appts, err := h.svc.ListMine(c.Context(), appointment.Actor{UserID: claims.UserID, Role: role})
	if err != nil {
		return mapAppointmentError(c, err)
	}

	if role == authorize.RoleNamePatient {
		return ok(c, appts)
	}
	return ok(c, fiber.Map{"items": appts})
}

// GET /appointments/doctor/:doctorId/booked?date=2026-03-02
func (h *AppointmentHandler) BookedSlots(c fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("doctorId"))
	if err != nil {
		return badRequest(c, "invalid doctor id")
	}

	day, err := appointment.ParseWireDate(c.Query("date"))
	if err != nil {
		return badRequest(c, "date must be formatted as 2006-01-02")
	}

	slots, err := h.svc.ListBookedSlots(c.Context(), doctorID, day)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, fiber.Map{"booked": slots})
}

// GET /appointments/:id
func (h *AppointmentHandler) GetByID(c fiber.Ctx) error {
	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetByID(c.Context(), apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// PATCH /appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	claims, role, valid := actorFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.Cancel(c.Context(), appointment.Actor{UserID: claims.UserID, Role: role}, apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}

// PATCH /appointments/:id/done
func (h *AppointmentHandler) Complete(c fiber.Ctx) error {
	claims, role, valid := actorFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.Complete(c.Context(), appointment.Actor{UserID: claims.UserID, Role: role}, apptID)
	if err != nil {
		return mapAppointmentError(c, err)
	}

	return ok(c, appt)
}
