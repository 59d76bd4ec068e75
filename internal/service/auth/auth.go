package auth

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/spitali-app/spitali_backend/config"
	"github.com/spitali-app/spitali_backend/internal/repo"
	entuser "github.com/spitali-app/spitali_backend/internal/repo/user"
	"github.com/spitali-app/spitali_backend/pkg/authorize"
	"github.com/spitali-app/spitali_backend/pkg/token"
	"github.com/spitali-app/spitali_backend/pkg/util/password"
)

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

var reEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type SignupRequest struct {
	Email    string
	Password string
	Name     string // optional; creates a patient row when present
}

type LoginRequest struct {
	Email    string
	Password string
}

type AuthResult struct {
	AccessToken string
	ExpiresIn   int64 // seconds until the access token expires
	User        *repo.User
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Signup(ctx context.Context, req SignupRequest) (*AuthResult, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResult, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	Me(ctx context.Context, userID uuid.UUID) (*repo.User, error)

	// SessionAlive reports whether the session still exists in Redis.
	SessionAlive(ctx context.Context, sessionID uuid.UUID) (bool, error)

	// CreateSession is shared with the user service for admin-created accounts.
	CreateSession(ctx context.Context, u *repo.User) (*AuthResult, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db    *repo.Client
	rdb   *redis.Client
	token *token.Manager
	auth  authorize.IAuthorization
	cfg   *config.Config
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	tokenMgr *token.Manager,
	auth authorize.IAuthorization,
	cfg *config.Config,
) Service {
	return &authService{
		db:    db,
		rdb:   rdb,
		token: tokenMgr,
		auth:  auth,
		cfg:   cfg,
	}
}

// ---------------------------------------------------------------------------
// Signup
// ---------------------------------------------------------------------------

// Signup registers a patient account. Staff accounts are created by admins
// through the user service.
func (s *authService) Signup(ctx context.Context, req SignupRequest) (*AuthResult, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)

	if !reEmail.MatchString(req.Email) {
		return nil, ErrInvalidEmail
	}
	if len(req.Password) < 8 {
		return nil, ErrPasswordTooShort
	}

	exists, err := s.db.User.Query().Where(entuser.Email(req.Email)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, ErrEmailAlreadyExists
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

	u, err := tx.User.Create().
		SetEmail(req.Email).
		SetPasswordHash(passHash).
		SetRole(entuser.RolePATIENT).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if req.Name != "" {
		_, err = tx.Patient.Create().
			SetUserID(u.ID).
			SetName(req.Name).
			SetEmail(req.Email).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create patient profile: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit signup: %w", err)
	}

	if s.auth != nil {
		if err := authorize.AssignPortalRole(ctx, s.auth, u.ID.String(), authorize.RoleNamePatient); err != nil {
			slog.Warn("failed to assign portal role", "user_id", u.ID, "error", err)
		}
		if err := authorize.AssignUserSelfRole(ctx, s.auth, u.ID.String()); err != nil {
			slog.Warn("failed to assign self role", "user_id", u.ID, "error", err)
		}
	}

	return s.CreateSession(ctx, u)
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.db.User.Query().
		Where(entuser.Email(req.Email)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := password.Verify(u.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.CreateSession(ctx, u)
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		// Session already expired, not an error from the client's perspective
		slog.Debug("logout: session not found in Redis (already expired)", "session_id", sessionID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Me
// ---------------------------------------------------------------------------

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// ---------------------------------------------------------------------------
// Sessions
// ---------------------------------------------------------------------------

func (s *authService) SessionAlive(ctx context.Context, sessionID uuid.UUID) (bool, error) {
	err := s.rdb.Get(ctx, redisKeySession(sessionID.String())).Err()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get session: %w", err)
	}
	return true, nil
}

func (s *authService) CreateSession(ctx context.Context, u *repo.User) (*AuthResult, error) {
	sessionID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("new session id: %w", err)
	}

	sessionTTL := time.Duration(s.cfg.Authentication.SessionTTLMinutes) * time.Minute
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	if err := s.rdb.Set(ctx, redisKeySession(sessionID.String()), u.ID.String(), sessionTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	accessTTL := time.Duration(s.cfg.Authentication.JWT.AccessTTLMinutes) * time.Minute
	accessToken, err := s.token.IssueAccess(u.ID, string(u.Role), &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthResult{
		AccessToken: accessToken,
		ExpiresIn:   int64(accessTTL.Seconds()),
		User:        u,
	}, nil
}
