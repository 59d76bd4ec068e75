package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/spitali-app/spitali_backend/internal/api/http/handler"
	"github.com/spitali-app/spitali_backend/pkg/authorize"
)

func (r *Router) registerPatientRoutes(
	app *fiber.App,
	ph *handler.PatientHandler,
	ah *handler.AppointmentHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
	requireSelf func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	patients := app.Group("/patients", authRequired)

	// Self profile
	patients.Get("/me", requireSelf(authorize.ResourcePatient, authorize.ActionRead), ph.GetMine)
	patients.Put("/me", requireSelf(authorize.ResourcePatient, authorize.ActionUpdate), ph.UpdateMine)
	patients.Get("/me/appointments", requirePerm(authorize.ResourceAppointment, authorize.ActionList), ah.Mine)

	// Staff-side records
	patients.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionList), ph.List)
	patients.Post("/", requirePerm(authorize.ResourcePatient, authorize.ActionCreate), ph.Create)
	patients.Get("/:id", requirePerm(authorize.ResourcePatient, authorize.ActionRead), ph.Get)
	patients.Delete("/:id", requirePerm(authorize.ResourcePatient, authorize.ActionDelete), ph.Delete)
}
