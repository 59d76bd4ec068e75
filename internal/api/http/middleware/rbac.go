package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/spitali-app/spitali_backend/pkg/authorize"
	"github.com/spitali-app/spitali_backend/pkg/token"
)

// RequirePermission checks if the authenticated user has the given permission
// in the sys domain. Admins pass via the enforcer's admin bypass.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := token.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		subject := authorize.GroupSubject(claims.UserID.String())
		if err := auth.MustEnforce(c.Context(), subject, authorize.DomainSys, resource, action); err != nil {
			if err == authorize.ErrForbidden {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}

// RequireSelfPermission checks the permission in the caller's own domain.
// Used on /me routes where the resource is owned by the caller.
func RequireSelfPermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := token.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		subject := authorize.GroupSubject(claims.UserID.String())
		domain := authorize.UserSelfDomain(claims.UserID.String())
		if err := auth.MustEnforce(c.Context(), subject, domain, resource, action); err != nil {
			if err == authorize.ErrForbidden {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
