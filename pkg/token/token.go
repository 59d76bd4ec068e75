package token

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Config struct {
	Issuer   string
	Audience string

	AccessTTL time.Duration
}

type Manager struct {
	cfg    Config
	secret []byte
	parser *jwt.Parser
}

func New(cfg Config, secret []byte) (*Manager, error) {
	if len(secret) < 32 {
		return nil, ErrConfig{Msg: "secret must be at least 32 bytes"}
	}
	if cfg.Issuer == "" {
		return nil, ErrConfig{Msg: "Issuer is required"}
	}
	if cfg.Audience == "" {
		return nil, ErrConfig{Msg: "Audience is required"}
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 15 * time.Minute
	}

	p := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithExpirationRequired(),
	)

	return &Manager{cfg: cfg, secret: secret, parser: p}, nil
}

func (m *Manager) IssueAccess(userID uuid.UUID, role string, sessionID *uuid.UUID) (string, error) {
	return m.issue(TokenTypeAccess, userID, role, sessionID, m.cfg.AccessTTL)
}

func (m *Manager) Verify(tokenStr string) (*Claims, error) {
	var claims jwtClaims
	_, err := m.parser.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken{Err: err}
		}
		return nil, ErrInvalidToken{Err: err}
	}

	out, err := claims.toClaims()
	if err != nil {
		return nil, ErrInvalidToken{Err: err}
	}
	return out, nil
}

func (m *Manager) issue(tt TokenType, userID uuid.UUID, role string, sessionID *uuid.UUID, ttl time.Duration) (string, error) {
	now := time.Now()

	jc := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.cfg.Issuer,
			Audience:  jwt.ClaimStrings{m.cfg.Audience},
			Subject:   userID.String(),
			ID:        randHex(16),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Type:   string(tt),
		UserID: userID.String(),
		Role:   role,
	}
	if sessionID != nil {
		jc.SessionID = sessionID.String()
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jc)
	return tok.SignedString(m.secret)
}

func randHex(nBytes int) string {
	b := make([]byte, nBytes)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
