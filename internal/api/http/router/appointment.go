package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/spitali-app/spitali_backend/internal/api/http/handler"
	"github.com/spitali-app/spitali_backend/pkg/authorize"
)

func (r *Router) registerAppointmentRoutes(
	app *fiber.App,
	ah *handler.AppointmentHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	// Public: the booking page needs the taken slots before login.
	app.Get("/appointments/doctor/:doctorId/booked", ah.BookedSlots)

	appts := app.Group("/appointments", authRequired)

	appts.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionList), ah.List)
	appts.Post("/", requirePerm(authorize.ResourceAppointment, authorize.ActionCreate), ah.Create)

	a := appts.Group("/:id")
	a.Get("/", requirePerm(authorize.ResourceAppointment, authorize.ActionRead), ah.GetByID)
	a.Patch("/cancel", requirePerm(authorize.ResourceAppointment, authorize.ActionCancel), ah.Cancel)
	a.Patch("/done", requirePerm(authorize.ResourceAppointment, authorize.ActionUpdate), ah.Complete)
}
