package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	TokenTypeAccess TokenType = "access"
)

// jwtClaims is the wire payload; Claims is the app-facing view.
type jwtClaims struct {
	jwt.RegisteredClaims

	Type      string `json:"typ"`
	UserID    string `json:"uid"`
	Role      string `json:"role"`
	SessionID string `json:"sid,omitempty"`
}

func (jc *jwtClaims) toClaims() (*Claims, error) {
	uid, err := uuid.Parse(jc.UserID)
	if err != nil {
		return nil, err
	}

	out := &Claims{
		Type:     TokenType(jc.Type),
		UserID:   uid,
		Role:     jc.Role,
		Issuer:   jc.Issuer,
		TokenID:  jc.ID,
		Subject:  jc.Subject,
		IssuedAt: jc.IssuedAt.Time,
	}
	if len(jc.Audience) > 0 {
		out.Audience = jc.Audience[0]
	}
	if jc.ExpiresAt != nil {
		out.ExpiresAt = jc.ExpiresAt.Time
	}
	if jc.NotBefore != nil {
		out.NotBefore = jc.NotBefore.Time
	}
	if jc.SessionID != "" {
		sid, err := uuid.Parse(jc.SessionID)
		if err != nil {
			return nil, err
		}
		out.SessionID = &sid
	}
	return out, nil
}

// Claims is the app-facing token payload.
type Claims struct {
	Type TokenType

	UserID    uuid.UUID
	Role      string
	SessionID *uuid.UUID

	Issuer   string
	Audience string

	IssuedAt  time.Time
	NotBefore time.Time
	ExpiresAt time.Time
	TokenID   string // jti
	Subject   string
}

// GetUserID implements authorize.ClaimsProvider and reqctx.AuthClaims interface.
func (c *Claims) GetUserID() uuid.UUID {
	return c.UserID
}

// GetSessionID implements reqctx.AuthClaims interface.
func (c *Claims) GetSessionID() *uuid.UUID {
	return c.SessionID
}

// GetRole implements reqctx.AuthClaims interface.
func (c *Claims) GetRole() string {
	return c.Role
}

// GetTokenType implements reqctx.AuthClaims interface.
func (c *Claims) GetTokenType() string {
	return string(c.Type)
}

// IsExpired implements reqctx.AuthClaims interface.
func (c *Claims) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}
