package token

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/spitali-app/spitali_backend/config"
)

const CtxKeyClaims = "auth.claims"

func FiberAuth(m *Manager) fiber.Handler {
	return func(c fiber.Ctx) error {
		h := c.Get("Authorization")
		if h == "" {
			return fiber.ErrUnauthorized
		}
		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.ErrUnauthorized
		}

		claims, err := m.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			return fiber.ErrUnauthorized
		}

		c.Locals(CtxKeyClaims, claims)
		return c.Next()
	}
}

func ClaimsFromFiber(c fiber.Ctx) (*Claims, bool) {
	v := c.Locals(CtxKeyClaims)
	if v == nil {
		return nil, false
	}
	cl, ok := v.(*Claims)
	return cl, ok
}

// NewTokenManager creates a new JWT manager from config.
// Returns an error if the configuration is invalid.
func NewTokenManager(cfg *config.Config) (*Manager, error) {
	j := cfg.Authentication.JWT

	secret, err := hex.DecodeString(j.SecretHex)
	if err != nil {
		return nil, ErrConfig{Msg: "SecretHex is not valid hex"}
	}

	return New(Config{
		Issuer:    j.Issuer,
		Audience:  j.Audience,
		AccessTTL: time.Duration(j.AccessTTLMinutes) * time.Minute,
	}, secret)
}
