package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/spitali-app/spitali_backend/internal/api/http/handler"
	"github.com/spitali-app/spitali_backend/pkg/authorize"
)

func (r *Router) registerAdminRoutes(
	app *fiber.App,
	h *handler.AdminHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	admin := app.Group("/admin", authRequired)

	admin.Post("/users", requirePerm(authorize.ResourceUser, authorize.ActionCreate), h.CreateUser)
	admin.Get("/stats", requirePerm(authorize.ResourceSystem, authorize.ActionRead), h.Stats)
}
