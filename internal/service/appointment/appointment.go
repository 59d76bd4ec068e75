package appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/spitali-app/spitali_backend/config"
	"github.com/spitali-app/spitali_backend/internal/repo"
	entappt "github.com/spitali-app/spitali_backend/internal/repo/appointment"
	entdoctor "github.com/spitali-app/spitali_backend/internal/repo/doctor"
	entpatient "github.com/spitali-app/spitali_backend/internal/repo/patient"
	"github.com/spitali-app/spitali_backend/pkg/authorize"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Actor identifies who is performing an operation.
type Actor struct {
	UserID uuid.UUID
	Role   authorize.RoleName
}

// PatientInput is the patient block of the booking form. A patient booking
// for themselves uses it to fill a missing profile; staff use it to register
// a walk-in, or set ID to book for an existing record instead.
type PatientInput struct {
	ID        *uuid.UUID
	FirstName *string
	LastName  *string
	Name      *string
	Email     *string
	Phone     *string
	Gender    *string
	DOB       *time.Time
}

type CreateRequest struct {
	DoctorID    uuid.UUID
	ScheduledAt time.Time
	Reason      *string
	Patient     PatientInput
}

type ListRequest struct {
	DoctorID  *uuid.UUID
	PatientID *uuid.UUID
	Status    *string
	From      *time.Time
	To        *time.Time
	Page      int
	PerPage   int
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, actor Actor, req CreateRequest) (*repo.Appointment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.Appointment, error)
	List(ctx context.Context, req ListRequest) ([]*repo.Appointment, error)
	ListMine(ctx context.Context, actor Actor) ([]*repo.Appointment, error)
	ListBookedSlots(ctx context.Context, doctorID uuid.UUID, day time.Time) ([]string, error)
	Cancel(ctx context.Context, actor Actor, id uuid.UUID) (*repo.Appointment, error)
	Complete(ctx context.Context, actor Actor, id uuid.UUID) (*repo.Appointment, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	db  *repo.Client
	cfg config.BookingConfig
}

func New(db *repo.Client, cfg config.BookingConfig) Service {
	return &appointmentService{db: db, cfg: cfg}
}

// Create books a slot inside a single transaction: resolve (or create) the
// patient row, confirm the doctor exists, re-check the slot is free, then
// insert. The partial unique index on (doctor_id, scheduled_at) backstops
// the re-check under concurrency.
func (s *appointmentService) Create(ctx context.Context, actor Actor, req CreateRequest) (*repo.Appointment, error) {
	req.ScheduledAt = req.ScheduledAt.UTC().Truncate(time.Minute)

	if s.cfg.EnforceSlotGrid && !OnGrid(req.ScheduledAt) {
		return nil, ErrOffGrid
	}
	if s.cfg.EnforceWeekdays && IsWeekend(req.ScheduledAt) {
		return nil, ErrWeekendBooking
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.Doctor.Get(ctx, req.DoctorID); err != nil {
		if repo.IsNotFound(err) {
			err = ErrDoctorNotFound
		} else {
			err = fmt.Errorf("get doctor: %w", err)
		}
		return nil, err
	}

	var patientID uuid.UUID
	patientID, err = s.resolvePatient(ctx, tx, actor, req)
	if err != nil {
		return nil, err
	}

	var taken bool
	taken, err = tx.Appointment.Query().
		Where(
			entappt.DoctorID(req.DoctorID),
			entappt.ScheduledAt(req.ScheduledAt),
			entappt.StatusNEQ(entappt.StatusCANCELLED),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check slot: %w", err)
	}
	if taken {
		err = ErrSlotTaken
		return nil, err
	}

	c := tx.Appointment.Create().
		SetDoctorID(req.DoctorID).
		SetPatientID(patientID).
		SetScheduledAt(req.ScheduledAt).
		SetStatus(entappt.StatusSCHEDULED)
	if req.Reason != nil {
		c = c.SetNillableReason(req.Reason)
	}

	var appt *repo.Appointment
	appt, err = c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			err = ErrSlotTaken
		} else {
			err = fmt.Errorf("create appointment: %w", err)
		}
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit booking: %w", err)
	}
	return appt, nil
}

// resolvePatient finds or creates the patient row the booking is for.
// Patients always book for themselves; staff may book for an existing
// patient or register a new one on the fly.
func (s *appointmentService) resolvePatient(ctx context.Context, tx *repo.Tx, actor Actor, req CreateRequest) (uuid.UUID, error) {
	in := req.Patient

	var gender *entpatient.Gender
	if in.Gender != nil && *in.Gender != "" {
		g, okG := parseGender(*in.Gender)
		if !okG {
			return uuid.Nil, ErrInvalidGender
		}
		gender = &g
	}

	if actor.Role == authorize.RoleNamePatient {
		p, err := tx.Patient.Query().Where(entpatient.UserID(actor.UserID)).Only(ctx)
		if err == nil {
			return p.ID, nil
		}
		if !repo.IsNotFound(err) {
			return uuid.Nil, fmt.Errorf("find patient: %w", err)
		}

		u, err := tx.User.Get(ctx, actor.UserID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("get user: %w", err)
		}
		create := tx.Patient.Create().
			SetUserID(actor.UserID).
			SetEmail(u.Email).
			SetNillableFirstName(in.FirstName).
			SetNillableLastName(in.LastName).
			SetNillablePhone(in.Phone).
			SetNillableDob(in.DOB).
			SetNillableGender(gender)
		if name := patientDisplayName(in); name != "" {
			create = create.SetName(name)
		}
		p, err = create.Save(ctx)
		if err != nil {
			return uuid.Nil, fmt.Errorf("create patient: %w", err)
		}
		return p.ID, nil
	}

	if in.ID != nil {
		exists, err := tx.Patient.Query().Where(entpatient.ID(*in.ID)).Exist(ctx)
		if err != nil {
			return uuid.Nil, fmt.Errorf("check patient: %w", err)
		}
		if !exists {
			return uuid.Nil, ErrPatientNotFound
		}
		return *in.ID, nil
	}

	name := patientDisplayName(in)
	if name == "" {
		return uuid.Nil, ErrPatientNotFound
	}

	create := tx.Patient.Create().
		SetName(name).
		SetNillableFirstName(in.FirstName).
		SetNillableLastName(in.LastName).
		SetNillableEmail(in.Email).
		SetNillablePhone(in.Phone).
		SetNillableDob(in.DOB).
		SetNillableGender(gender)
	if actor.Role == authorize.RoleNameDoctor {
		d, err := tx.Doctor.Query().Where(entdoctor.UserID(actor.UserID)).Only(ctx)
		if err == nil {
			create = create.SetCreatedByDoctorID(d.ID)
		} else if !repo.IsNotFound(err) {
			return uuid.Nil, fmt.Errorf("find acting doctor: %w", err)
		}
	}
	p, err := create.Save(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create patient: %w", err)
	}
	return p.ID, nil
}

func patientDisplayName(in PatientInput) string {
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		return strings.TrimSpace(*in.Name)
	}
	var parts []string
	if in.FirstName != nil && *in.FirstName != "" {
		parts = append(parts, *in.FirstName)
	}
	if in.LastName != nil && *in.LastName != "" {
		parts = append(parts, *in.LastName)
	}
	return strings.Join(parts, " ")
}

func parseGender(s string) (entpatient.Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return entpatient.GenderMale, true
	case "female":
		return entpatient.GenderFemale, true
	}
	return "", false
}

func (s *appointmentService) GetByID(ctx context.Context, id uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

func (s *appointmentService) List(ctx context.Context, req ListRequest) ([]*repo.Appointment, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Appointment.Query()

	if req.DoctorID != nil {
		q = q.Where(entappt.DoctorID(*req.DoctorID))
	}
	if req.PatientID != nil {
		q = q.Where(entappt.PatientID(*req.PatientID))
	}
	if req.Status != nil {
		q = q.Where(entappt.StatusEQ(entappt.Status(*req.Status)))
	}
	if req.From != nil {
		q = q.Where(entappt.ScheduledAtGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entappt.ScheduledAtLT(*req.To))
	}

	q = q.Order(entappt.ByScheduledAt(sql.OrderDesc()))

	appts, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

func (s *appointmentService) ListMine(ctx context.Context, actor Actor) ([]*repo.Appointment, error) {
	switch actor.Role {
	case authorize.RoleNamePatient:
		p, err := s.db.Patient.Query().Where(entpatient.UserID(actor.UserID)).Only(ctx)
		if err != nil {
			if repo.IsNotFound(err) {
				return nil, ErrPatientNotFound
			}
			return nil, fmt.Errorf("find patient: %w", err)
		}
		appts, err := s.db.Appointment.Query().
			Where(entappt.PatientID(p.ID)).
			Order(entappt.ByScheduledAt(sql.OrderDesc())).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("list patient appointments: %w", err)
		}
		return appts, nil

	case authorize.RoleNameDoctor:
		d, err := s.db.Doctor.Query().Where(entdoctor.UserID(actor.UserID)).Only(ctx)
		if err != nil {
			if repo.IsNotFound(err) {
				return nil, ErrDoctorNotFound
			}
			return nil, fmt.Errorf("find doctor: %w", err)
		}
		appts, err := s.db.Appointment.Query().
			Where(entappt.DoctorID(d.ID)).
			Order(entappt.ByID(sql.OrderDesc())).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("list doctor appointments: %w", err)
		}
		return appts, nil

	default:
		return s.List(ctx, ListRequest{})
	}
}

// ListBookedSlots returns the "HH:mm" labels of non-cancelled appointments
// for one doctor on one calendar day.
func (s *appointmentService) ListBookedSlots(ctx context.Context, doctorID uuid.UUID, day time.Time) ([]string, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	appts, err := s.db.Appointment.Query().
		Where(
			entappt.DoctorID(doctorID),
			entappt.StatusNEQ(entappt.StatusCANCELLED),
			entappt.ScheduledAtGTE(dayStart),
			entappt.ScheduledAtLT(dayEnd),
		).
		Order(entappt.ByScheduledAt(sql.OrderAsc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list booked slots: %w", err)
	}

	out := make([]string, 0, len(appts))
	for _, a := range appts {
		out = append(out, a.ScheduledAt.UTC().Format(SlotLabelLayout))
	}
	return out, nil
}

// Cancel is terminal and frees the slot for rebooking. Allowed for admins,
// the owning patient, or the assigned doctor.
func (s *appointmentService) Cancel(ctx context.Context, actor Actor, id uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkActorOwnership(ctx, actor, appt); err != nil {
		return nil, err
	}

	if appt.Status == entappt.StatusCANCELLED {
		return nil, ErrAlreadyCancelled
	}
	if appt.Status == entappt.StatusDONE {
		return nil, ErrAlreadyDone
	}

	updated, err := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusCANCELLED).
		SetCancelledAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("cancel appointment: %w", err)
	}
	return updated, nil
}

// Complete marks a visit DONE. Only the assigned doctor (or an admin) may
// complete it.
func (s *appointmentService) Complete(ctx context.Context, actor Actor, id uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case authorize.RoleNameAdmin:
	case authorize.RoleNameDoctor:
		d, err := s.db.Doctor.Query().Where(entdoctor.UserID(actor.UserID)).Only(ctx)
		if err != nil || d.ID != appt.DoctorID {
			return nil, ErrNotAllowed
		}
	default:
		return nil, ErrNotAllowed
	}

	if appt.Status == entappt.StatusDONE {
		return nil, ErrAlreadyDone
	}
	if appt.Status == entappt.StatusCANCELLED {
		return nil, ErrAlreadyCancelled
	}

	updated, err := s.db.Appointment.UpdateOne(appt).
		SetStatus(entappt.StatusDONE).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete appointment: %w", err)
	}
	return updated, nil
}

func (s *appointmentService) checkActorOwnership(ctx context.Context, actor Actor, appt *repo.Appointment) error {
	switch actor.Role {
	case authorize.RoleNameAdmin:
		return nil
	case authorize.RoleNamePatient:
		p, err := s.db.Patient.Query().Where(entpatient.UserID(actor.UserID)).Only(ctx)
		if err != nil || p.ID != appt.PatientID {
			return ErrNotAllowed
		}
		return nil
	case authorize.RoleNameDoctor:
		d, err := s.db.Doctor.Query().Where(entdoctor.UserID(actor.UserID)).Only(ctx)
		if err != nil || d.ID != appt.DoctorID {
			return ErrNotAllowed
		}
		return nil
	default:
		return ErrNotAllowed
	}
}
