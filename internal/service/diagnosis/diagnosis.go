package diagnosis

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/spitali-app/spitali_backend/internal/repo"
	entdiag "github.com/spitali-app/spitali_backend/internal/repo/diagnosis"
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

type CreateRequest struct {
	PatientID   uuid.UUID
	Title       string
	Description *string
}

type ListRequest struct {
	PatientID *uuid.UUID
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Create records a diagnosis authored by the acting doctor.
	Create(ctx context.Context, actor Actor, req CreateRequest) (*repo.Diagnosis, error)

	// List returns diagnoses visible to the actor: admins see everything,
	// doctors only what they wrote.
	List(ctx context.Context, actor Actor, req ListRequest) ([]*repo.Diagnosis, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type diagnosisService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &diagnosisService{db: db}
}

func (s *diagnosisService) Create(ctx context.Context, actor Actor, req CreateRequest) (*repo.Diagnosis, error) {
	if actor.Role != authorize.RoleNameDoctor {
		return nil, ErrAccessDenied
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}

	d, err := s.db.Doctor.Query().Where(entdoctor.UserID(actor.UserID)).Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNoDoctorProfile
		}
		return nil, fmt.Errorf("find doctor: %w", err)
	}

	exists, err := s.db.Patient.Query().Where(entpatient.ID(req.PatientID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check patient: %w", err)
	}
	if !exists {
		return nil, ErrPatientNotFound
	}

	diag, err := s.db.Diagnosis.Create().
		SetPatientID(req.PatientID).
		SetDoctorID(d.ID).
		SetTitle(strings.TrimSpace(req.Title)).
		SetNillableDescription(req.Description).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create diagnosis: %w", err)
	}
	return diag, nil
}

func (s *diagnosisService) List(ctx context.Context, actor Actor, req ListRequest) ([]*repo.Diagnosis, error) {
	q := s.db.Diagnosis.Query()

	switch actor.Role {
	case authorize.RoleNameAdmin:
	case authorize.RoleNameDoctor:
		d, err := s.db.Doctor.Query().Where(entdoctor.UserID(actor.UserID)).Only(ctx)
		if err != nil {
			if repo.IsNotFound(err) {
				return []*repo.Diagnosis{}, nil
			}
			return nil, fmt.Errorf("find doctor: %w", err)
		}
		q = q.Where(entdiag.DoctorID(d.ID))
	default:
		return nil, ErrAccessDenied
	}

	if req.PatientID != nil {
		q = q.Where(entdiag.PatientID(*req.PatientID))
	}

	rows, err := q.Order(entdiag.ByCreatedAt(sql.OrderDesc())).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list diagnoses: %w", err)
	}
	return rows, nil
}
