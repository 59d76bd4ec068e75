package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/spitali-app/spitali_backend/internal/api/http/handler"
)

func (r *Router) registerAuthRoutes(app *fiber.App, h *handler.AuthHandler, authRequired fiber.Handler) {
	group := app.Group("/auth")
	group.Post("/signup", h.Signup)
	group.Post("/login", h.Login)
	group.Post("/logout", authRequired, h.Logout)

	app.Get("/me", authRequired, h.Me)
}
