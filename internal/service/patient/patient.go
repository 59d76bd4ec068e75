package patient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/spitali-app/spitali_backend/internal/repo"
	entappt "github.com/spitali-app/spitali_backend/internal/repo/appointment"
	entdiag "github.com/spitali-app/spitali_backend/internal/repo/diagnosis"
	entdoctor "github.com/spitali-app/spitali_backend/internal/repo/doctor"
	entpatient "github.com/spitali-app/spitali_backend/internal/repo/patient"
	entuser "github.com/spitali-app/spitali_backend/internal/repo/user"
	"github.com/spitali-app/spitali_backend/pkg/authorize"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type ListRequest struct {
	Page    int
	PerPage int
	Search  string // matches name, email or phone
}

type CreateRequest struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Gender    *string
	DOB       *time.Time

	// CreatedByDoctorID marks staff-registered walk-ins.
	CreatedByDoctorID *uuid.UUID
}

type UpdateProfileRequest struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Gender    *string
	DOB       *time.Time
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Patient], error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.Patient, error)
	Create(ctx context.Context, req CreateRequest) (*repo.Patient, error)

	// Self profile for PATIENT users. UpsertMine creates the row on first
	// write; the bool result is true when a new row was created.
	GetMine(ctx context.Context, userID uuid.UUID) (*repo.Patient, error)
	UpsertMine(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*repo.Patient, bool, error)

	// ListForDoctor returns records the doctor registered plus records no
	// doctor registered.
	ListForDoctor(ctx context.Context, doctorUserID uuid.UUID) ([]*repo.Patient, error)

	// Delete removes the patient and every dependent record. Allowed for
	// admins and the registering doctor.
	Delete(ctx context.Context, role authorize.RoleName, actorUserID uuid.UUID, id uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &patientService{db: db}
}

func (s *patientService) List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Patient], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Patient.Query()
	if search := strings.TrimSpace(req.Search); search != "" {
		q = q.Where(entpatient.Or(
			entpatient.NameContainsFold(search),
			entpatient.FirstNameContainsFold(search),
			entpatient.LastNameContainsFold(search),
			entpatient.EmailContainsFold(search),
			entpatient.PhoneContainsFold(search),
		))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}

	rows, err := q.
		Order(entpatient.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(req.PerPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Patient]{
		Data:       rows,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *patientService) GetByID(ctx context.Context, id uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

func (s *patientService) Create(ctx context.Context, req CreateRequest) (*repo.Patient, error) {
	if req.Gender != nil {
		if _, err := parseGender(*req.Gender); err != nil {
			return nil, err
		}
	}

	c := s.db.Patient.Create().
		SetNillableFirstName(req.FirstName).
		SetNillableLastName(req.LastName).
		SetNillableEmail(req.Email).
		SetNillablePhone(req.Phone).
		SetNillableDob(req.DOB).
		SetNillableCreatedByDoctorID(req.CreatedByDoctorID)

	if req.Gender != nil {
		g, _ := parseGender(*req.Gender)
		c = c.SetGender(g)
	}
	if name := displayName(req.FirstName, req.LastName); name != "" {
		c = c.SetName(name)
	}

	p, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}
	return p, nil
}

func (s *patientService) GetMine(ctx context.Context, userID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().Where(entpatient.UserID(userID)).Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("get own patient: %w", err)
	}
	return p, nil
}

func (s *patientService) UpsertMine(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*repo.Patient, bool, error) {
	if req.FirstName == nil && req.LastName == nil && req.Phone == nil && req.Gender == nil && req.DOB == nil {
		return nil, false, ErrNothingToUpdate
	}
	if req.Gender != nil {
		if _, err := parseGender(*req.Gender); err != nil {
			return nil, false, err
		}
	}

	existing, err := s.db.Patient.Query().Where(entpatient.UserID(userID)).Only(ctx)
	if err != nil && !repo.IsNotFound(err) {
		return nil, false, fmt.Errorf("find own patient: %w", err)
	}

	if existing == nil {
		u, err := s.db.User.Query().Where(entuser.ID(userID)).Only(ctx)
		if err != nil {
			return nil, false, fmt.Errorf("get user: %w", err)
		}

		c := s.db.Patient.Create().
			SetUserID(userID).
			SetEmail(u.Email).
			SetNillableFirstName(req.FirstName).
			SetNillableLastName(req.LastName).
			SetNillablePhone(req.Phone).
			SetNillableDob(req.DOB)
		if req.Gender != nil {
			g, _ := parseGender(*req.Gender)
			c = c.SetGender(g)
		}
		if name := displayName(req.FirstName, req.LastName); name != "" {
			c = c.SetName(name)
		}

		p, err := c.Save(ctx)
		if err != nil {
			return nil, false, fmt.Errorf("create own patient: %w", err)
		}
		return p, true, nil
	}

	upd := s.db.Patient.UpdateOne(existing).
		SetNillableFirstName(req.FirstName).
		SetNillableLastName(req.LastName).
		SetNillablePhone(req.Phone).
		SetNillableDob(req.DOB)
	if req.Gender != nil {
		g, _ := parseGender(*req.Gender)
		upd = upd.SetGender(g)
	}

	first := req.FirstName
	last := req.LastName
	if first == nil {
		first = existing.FirstName
	}
	if last == nil {
		last = existing.LastName
	}
	if name := displayName(first, last); name != "" {
		upd = upd.SetName(name)
	}

	p, err := upd.Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("update own patient: %w", err)
	}
	return p, false, nil
}

func (s *patientService) ListForDoctor(ctx context.Context, doctorUserID uuid.UUID) ([]*repo.Patient, error) {
	d, err := s.db.Doctor.Query().Where(entdoctor.UserID(doctorUserID)).Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return []*repo.Patient{}, nil
		}
		return nil, fmt.Errorf("find doctor: %w", err)
	}

	rows, err := s.db.Patient.Query().
		Where(entpatient.Or(
			entpatient.CreatedByDoctorID(d.ID),
			entpatient.CreatedByDoctorIDIsNil(),
		)).
		Order(entpatient.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctor patients: %w", err)
	}
	return rows, nil
}

func (s *patientService) Delete(ctx context.Context, role authorize.RoleName, actorUserID uuid.UUID, id uuid.UUID) error {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	switch role {
	case authorize.RoleNameAdmin:
	case authorize.RoleNameDoctor:
		d, err := s.db.Doctor.Query().Where(entdoctor.UserID(actorUserID)).Only(ctx)
		if err != nil || p.CreatedByDoctorID == nil || *p.CreatedByDoctorID != d.ID {
			return ErrAccessDenied
		}
	default:
		return ErrAccessDenied
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.Appointment.Delete().Where(entappt.PatientID(p.ID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete appointments: %w", err)
	}
	if _, err = tx.Diagnosis.Delete().Where(entdiag.PatientID(p.ID)).Exec(ctx); err != nil {
		return fmt.Errorf("delete diagnoses: %w", err)
	}
	if err = tx.Patient.DeleteOne(p).Exec(ctx); err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	if p.UserID != nil {
		if _, err = tx.User.Delete().Where(entuser.ID(*p.UserID)).Exec(ctx); err != nil {
			return fmt.Errorf("delete linked user: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit delete: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func parseGender(s string) (entpatient.Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return entpatient.GenderMale, nil
	case "female":
		return entpatient.GenderFemale, nil
	default:
		return "", ErrInvalidGender
	}
}

func displayName(first, last *string) string {
	var parts []string
	if first != nil && *first != "" {
		parts = append(parts, *first)
	}
	if last != nil && *last != "" {
		parts = append(parts, *last)
	}
	return strings.Join(parts, " ")
}
