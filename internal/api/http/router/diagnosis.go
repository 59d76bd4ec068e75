package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/spitali-app/spitali_backend/internal/api/http/handler"
	"github.com/spitali-app/spitali_backend/pkg/authorize"
)

func (r *Router) registerDiagnosisRoutes(
	app *fiber.App,
	dh *handler.DiagnosisHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	diagnoses := app.Group("/diagnoses", authRequired)

	diagnoses.Get("/", requirePerm(authorize.ResourceDiagnosis, authorize.ActionList), dh.List)
	diagnoses.Post("/", requirePerm(authorize.ResourceDiagnosis, authorize.ActionCreate), dh.Create)
}
