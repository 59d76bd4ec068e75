package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/spitali-app/spitali_backend/internal/api/http/handler"
	"github.com/spitali-app/spitali_backend/pkg/authorize"
)

func (r *Router) registerDoctorRoutes(
	app *fiber.App,
	dh *handler.DoctorHandler,
	ph *handler.PatientHandler,
	ah *handler.AppointmentHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	doctors := app.Group("/doctors")

	// Public directory
	doctors.Get("/search", dh.Search)
	doctors.Get("/by-id/:id", dh.GetByID)

	// Doctor's own workspace
	doctors.Get("/me/appointments", authRequired, requirePerm(authorize.ResourceAppointment, authorize.ActionList), ah.Mine)
	doctors.Get("/me/patients", authRequired, requirePerm(authorize.ResourcePatient, authorize.ActionList), ph.MyPatients)

	// Staff management
	doctors.Get("/", authRequired, requirePerm(authorize.ResourceDoctor, authorize.ActionList), dh.List)
	doctors.Post("/", authRequired, requirePerm(authorize.ResourceDoctor, authorize.ActionCreate), dh.Create)
}
