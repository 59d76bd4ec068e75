package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/spitali-app/spitali_backend/pkg/authorize"
	"github.com/spitali-app/spitali_backend/pkg/token"
)

// actorFromFiber resolves the authenticated caller and their portal role.
func actorFromFiber(c fiber.Ctx) (*token.Claims, authorize.RoleName, bool) {
	claims, valid := token.ClaimsFromFiber(c)
	if !valid {
		return nil, "", false
	}
	role, err := authorize.ParseRoleName(claims.Role)
	if err != nil {
		return nil, "", false
	}
	return claims, role, true
}

// Success payloads are written as-is; each endpoint owns its shape. Errors
// always carry a "message" key, which is what the web client displays.

func ok(c fiber.Ctx, payload any) error {
	return c.JSON(payload)
}

func created(c fiber.Ctx, payload any) error {
	return c.Status(fiber.StatusCreated).JSON(payload)
}

func noContent(c fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

func badRequest(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
}

func unauthorized(c fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
}

func forbidden(c fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden"})
}

func notFound(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": msg})
}

func conflict(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": msg})
}

func tooManyRequests(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"message": msg})
}

func internalError(c fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
}
