package token

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager(t *testing.T, ttl time.Duration) *Manager {
	t.Helper()
	secret := []byte("0123456789abcdef0123456789abcdef")
	m, err := New(Config{
		Issuer:    "spitali-test",
		Audience:  "spitali-api",
		AccessTTL: ttl,
	}, secret)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestIssueAndVerifyAccess(t *testing.T) {
	m := newTestManager(t, time.Minute)

	userID := uuid.Must(uuid.NewV7())
	sessionID := uuid.Must(uuid.NewV7())

	tok, err := m.IssueAccess(userID, "DOCTOR", &sessionID)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if strings.Count(tok, ".") != 2 {
		t.Fatalf("expected compact JWT, got %q", tok)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %v, want %v", claims.UserID, userID)
	}
	if claims.Role != "DOCTOR" {
		t.Errorf("Role = %q, want DOCTOR", claims.Role)
	}
	if claims.SessionID == nil || *claims.SessionID != sessionID {
		t.Errorf("SessionID = %v, want %v", claims.SessionID, sessionID)
	}
	if claims.Type != TokenTypeAccess {
		t.Errorf("Type = %q, want access", claims.Type)
	}
	if claims.IsExpired() {
		t.Error("fresh token reported expired")
	}
}

func TestVerifyRejectsTampered(t *testing.T) {
	m := newTestManager(t, time.Minute)

	tok, err := m.IssueAccess(uuid.Must(uuid.NewV7()), "PATIENT", nil)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	tampered := tok[:len(tok)-2] + "xx"
	if _, err := m.Verify(tampered); err == nil {
		t.Fatal("expected error for tampered token")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	m := newTestManager(t, time.Minute)
	other := newTestManager(t, time.Minute)
	other.secret = []byte("ffffffffffffffffffffffffffffffff")

	tok, err := m.IssueAccess(uuid.Must(uuid.NewV7()), "ADMIN", nil)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}
	if _, err := other.Verify(tok); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	m := newTestManager(t, time.Minute)

	tok, err := m.issue(TokenTypeAccess, uuid.Must(uuid.NewV7()), "PATIENT", nil, -time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = m.Verify(tok)
	if err == nil {
		t.Fatal("expected error for expired token")
	}
	if _, ok := err.(ErrExpiredToken); !ok {
		t.Fatalf("expected ErrExpiredToken, got %T", err)
	}
}

func TestNewValidation(t *testing.T) {
	secret := []byte("0123456789abcdef0123456789abcdef")

	tests := []struct {
		name   string
		cfg    Config
		secret []byte
	}{
		{"short secret", Config{Issuer: "i", Audience: "a"}, []byte("short")},
		{"missing issuer", Config{Audience: "a"}, secret},
		{"missing audience", Config{Issuer: "i"}, secret},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.cfg, tt.secret); err == nil {
				t.Fatal("expected config error")
			}
		})
	}
}
