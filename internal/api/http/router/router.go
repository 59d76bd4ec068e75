package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/spitali-app/spitali_backend/config"
	"github.com/spitali-app/spitali_backend/internal/api/http/handler"
	"github.com/spitali-app/spitali_backend/internal/api/http/middleware"
	"github.com/spitali-app/spitali_backend/internal/service/appointment"
	"github.com/spitali-app/spitali_backend/internal/service/auth"
	"github.com/spitali-app/spitali_backend/internal/service/diagnosis"
	"github.com/spitali-app/spitali_backend/internal/service/doctor"
	"github.com/spitali-app/spitali_backend/internal/service/patient"
	"github.com/spitali-app/spitali_backend/internal/service/user"
	"github.com/spitali-app/spitali_backend/pkg/authorize"
	"github.com/spitali-app/spitali_backend/pkg/token"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg          *config.Config
	Redis        *redis.Client
	Auth         authorize.IAuthorization
	TokenMgr     *token.Manager
	AuthSvc      auth.Service
	UserSvc      user.Service
	DoctorSvc    doctor.Service
	PatientSvc   patient.Service
	ApptSvc      appointment.Service
	DiagnosisSvc diagnosis.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.TokenMgr, r.p.Redis)

	// Permission helpers
	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}
	requireSelf := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequireSelfPermission(r.p.Auth, res, act)
	}

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	adminH := handler.NewAdminHandler(r.p.UserSvc)
	doctorH := handler.NewDoctorHandler(r.p.DoctorSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc, r.p.DoctorSvc)
	apptH := handler.NewAppointmentHandler(r.p.ApptSvc)
	diagnosisH := handler.NewDiagnosisHandler(r.p.DiagnosisSvc)

	// 4. Delegate to sub-files
	r.registerAuthRoutes(app, authH, authRequired)
	r.registerDoctorRoutes(app, doctorH, patientH, apptH, authRequired, requirePerm)
	r.registerPatientRoutes(app, patientH, apptH, authRequired, requirePerm, requireSelf)
	r.registerAppointmentRoutes(app, apptH, authRequired, requirePerm)
	r.registerDiagnosisRoutes(app, diagnosisH, authRequired, requirePerm)
	r.registerAdminRoutes(app, adminH, authRequired, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
