package user

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/spitali-app/spitali_backend/internal/repo"
	entappt "github.com/spitali-app/spitali_backend/internal/repo/appointment"
	entuser "github.com/spitali-app/spitali_backend/internal/repo/user"
	"github.com/spitali-app/spitali_backend/pkg/authorize"
	"github.com/spitali-app/spitali_backend/pkg/util/password"
)

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// CreateRequest is the admin-side account creation: any role, with the
// matching profile row created alongside the account.
type CreateRequest struct {
	Email    string
	Password string
	Role     string // free-form; normalized via authorize.ParseRoleName
	Name     string

	// Doctor-only profile fields.
	Specialty string
	City      string
}

// Stats is the admin dashboard summary.
type Stats struct {
	Users        int `json:"users"`
	Doctors      int `json:"doctors"`
	Patients     int `json:"patients"`
	Appointments int `json:"appointments"`
	Scheduled    int `json:"scheduled"`
	Done         int `json:"done"`
	Cancelled    int `json:"cancelled"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error)
	Create(ctx context.Context, req CreateRequest) (*repo.User, error)
	Stats(ctx context.Context) (*Stats, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type userService struct {
	db   *repo.Client
	auth authorize.IAuthorization
}

func New(db *repo.Client, auth authorize.IAuthorization) Service {
	return &userService{db: db, auth: auth}
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *userService) Create(ctx context.Context, req CreateRequest) (*repo.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !reEmail.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return nil, ErrPasswordTooShort
	}
	role, err := authorize.ParseRoleName(req.Role)
	if err != nil {
		return nil, ErrInvalidRole
	}

	passHash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
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

	var u *repo.User
	u, err = tx.User.Create().
		SetEmail(email).
		SetPasswordHash(passHash).
		SetRole(entuser.Role(role)).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			err = ErrEmailAlreadyExists
		} else {
			err = fmt.Errorf("create user: %w", err)
		}
		return nil, err
	}

	switch role {
	case authorize.RoleNameDoctor:
		c := tx.Doctor.Create().SetUserID(u.ID)
		if req.Name != "" {
			c = c.SetName(req.Name)
		}
		if req.Specialty != "" {
			c = c.SetSpecialty(req.Specialty)
		}
		if req.City != "" {
			c = c.SetCity(req.City)
		}
		if _, err = c.Save(ctx); err != nil {
			return nil, fmt.Errorf("create doctor profile: %w", err)
		}
	case authorize.RoleNamePatient:
		c := tx.Patient.Create().SetUserID(u.ID).SetEmail(email)
		if req.Name != "" {
			c = c.SetName(req.Name)
		}
		if _, err = c.Save(ctx); err != nil {
			return nil, fmt.Errorf("create patient profile: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit user: %w", err)
	}

	if s.auth != nil {
		if err := authorize.AssignPortalRole(ctx, s.auth, u.ID.String(), role); err != nil {
			slog.Warn("failed to assign portal role", "user_id", u.ID, "error", err)
		}
		if err := authorize.AssignUserSelfRole(ctx, s.auth, u.ID.String()); err != nil {
			slog.Warn("failed to assign self role", "user_id", u.ID, "error", err)
		}
	}

	return u, nil
}

func (s *userService) Stats(ctx context.Context) (*Stats, error) {
	var out Stats
	var err error

	if out.Users, err = s.db.User.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if out.Doctors, err = s.db.Doctor.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("count doctors: %w", err)
	}
	if out.Patients, err = s.db.Patient.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}
	if out.Appointments, err = s.db.Appointment.Query().Count(ctx); err != nil {
		return nil, fmt.Errorf("count appointments: %w", err)
	}
	if out.Scheduled, err = s.db.Appointment.Query().Where(entappt.StatusEQ(entappt.StatusSCHEDULED)).Count(ctx); err != nil {
		return nil, fmt.Errorf("count scheduled: %w", err)
	}
	if out.Done, err = s.db.Appointment.Query().Where(entappt.StatusEQ(entappt.StatusDONE)).Count(ctx); err != nil {
		return nil, fmt.Errorf("count done: %w", err)
	}
	if out.Cancelled, err = s.db.Appointment.Query().Where(entappt.StatusEQ(entappt.StatusCANCELLED)).Count(ctx); err != nil {
		return nil, fmt.Errorf("count cancelled: %w", err)
	}

	return &out, nil
}
