package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"

	"github.com/spitali-app/spitali_backend/pkg/token"
)

// AuthRequired validates a Bearer JWT access token and checks the session in Redis.
// On success, stores *token.Claims in c.Locals(token.CtxKeyClaims).
func AuthRequired(mgr *token.Manager, rdb *redis.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		h := c.Get("Authorization")
		if h == "" {
			return fiber.ErrUnauthorized
		}

		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.ErrUnauthorized
		}

		claims, err := mgr.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			return fiber.ErrUnauthorized
		}

		// Only access tokens are accepted on protected routes
		if claims.Type != token.TokenTypeAccess {
			return fiber.ErrUnauthorized
		}

		// A token without a live session is useless after logout
		if claims.SessionID != nil {
			key := "session:" + claims.SessionID.String()
			if err := rdb.Get(c.Context(), key).Err(); err != nil {
				return fiber.ErrUnauthorized
			}
		}

		c.Locals(token.CtxKeyClaims, claims)
		return c.Next()
	}
}
