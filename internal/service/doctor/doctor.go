package doctor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/spitali-app/spitali_backend/internal/repo"
	entdoctor "github.com/spitali-app/spitali_backend/internal/repo/doctor"
	entuser "github.com/spitali-app/spitali_backend/internal/repo/user"
	"github.com/spitali-app/spitali_backend/pkg/authorize"
	"github.com/spitali-app/spitali_backend/pkg/util/password"
)

// Search results are capped so the public directory endpoint cannot be used
// to dump the whole table.
const searchLimit = 50

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SearchRequest struct {
	Specialty string
	City      string
}

type CreateRequest struct {
	Email     string
	Password  string
	Name      string
	Specialty string
	City      string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Search(ctx context.Context, req SearchRequest) ([]*repo.Doctor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.Doctor, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*repo.Doctor, error)
	List(ctx context.Context) ([]*repo.Doctor, error)

	// Create makes the login account and the profile in one transaction.
	Create(ctx context.Context, req CreateRequest) (*repo.Doctor, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type doctorService struct {
	db   *repo.Client
	auth authorize.IAuthorization
}

func New(db *repo.Client, auth authorize.IAuthorization) Service {
	return &doctorService{db: db, auth: auth}
}

// Search matches specialty and city as case-insensitive substrings. Both
// filters are optional; with neither set it returns the first page of the
// directory.
func (s *doctorService) Search(ctx context.Context, req SearchRequest) ([]*repo.Doctor, error) {
	q := s.db.Doctor.Query()

	if spec := strings.TrimSpace(req.Specialty); spec != "" {
		q = q.Where(entdoctor.SpecialtyContainsFold(spec))
	}
	if city := strings.TrimSpace(req.City); city != "" {
		q = q.Where(entdoctor.CityContainsFold(city))
	}

	rows, err := q.
		Order(entdoctor.ByName(sql.OrderAsc())).
		Limit(searchLimit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("search doctors: %w", err)
	}
	return rows, nil
}

func (s *doctorService) GetByID(ctx context.Context, id uuid.UUID) (*repo.Doctor, error) {
	d, err := s.db.Doctor.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}
	return d, nil
}

func (s *doctorService) GetByUserID(ctx context.Context, userID uuid.UUID) (*repo.Doctor, error) {
	d, err := s.db.Doctor.Query().Where(entdoctor.UserID(userID)).Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("get doctor by user: %w", err)
	}
	return d, nil
}

func (s *doctorService) List(ctx context.Context) ([]*repo.Doctor, error) {
	rows, err := s.db.Doctor.Query().
		Order(entdoctor.ByCreatedAt(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return rows, nil
}

func (s *doctorService) Create(ctx context.Context, req CreateRequest) (*repo.Doctor, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

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
		SetRole(entuser.RoleDOCTOR).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			err = ErrEmailAlreadyExists
		} else {
			err = fmt.Errorf("create doctor user: %w", err)
		}
		return nil, err
	}

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

	var d *repo.Doctor
	d, err = c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create doctor profile: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit doctor: %w", err)
	}

	if s.auth != nil {
		if err := authorize.AssignPortalRole(ctx, s.auth, u.ID.String(), authorize.RoleNameDoctor); err != nil {
			slog.Warn("failed to assign portal role", "user_id", u.ID, "error", err)
		}
		if err := authorize.AssignUserSelfRole(ctx, s.auth, u.ID.String()); err != nil {
			slog.Warn("failed to assign self role", "user_id", u.ID, "error", err)
		}
	}

	return d, nil
}
