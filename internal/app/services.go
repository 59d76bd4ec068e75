package app

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/spitali-app/spitali_backend/config"
	"github.com/spitali-app/spitali_backend/internal/repo"
	"github.com/spitali-app/spitali_backend/internal/service/appointment"
	"github.com/spitali-app/spitali_backend/internal/service/auth"
	"github.com/spitali-app/spitali_backend/internal/service/diagnosis"
	"github.com/spitali-app/spitali_backend/internal/service/doctor"
	"github.com/spitali-app/spitali_backend/internal/service/patient"
	"github.com/spitali-app/spitali_backend/internal/service/user"
	"github.com/spitali-app/spitali_backend/pkg/authorize"
	"github.com/spitali-app/spitali_backend/pkg/token"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvideUserService,
		ProvideDoctorService,
		ProvidePatientService,
		ProvideAppointmentService,
		ProvideDiagnosisService,
		ProvideTokenManager,
	),
)

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	tokenMgr *token.Manager,
	authz authorize.IAuthorization,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, tokenMgr, authz, cfg)
}

func ProvideUserService(db *repo.Client, authz authorize.IAuthorization) user.Service {
	return user.New(db, authz)
}

func ProvideDoctorService(db *repo.Client, authz authorize.IAuthorization) doctor.Service {
	return doctor.New(db, authz)
}

func ProvidePatientService(db *repo.Client) patient.Service {
	return patient.New(db)
}

func ProvideAppointmentService(db *repo.Client, cfg *config.Config) appointment.Service {
	return appointment.New(db, cfg.Booking)
}

func ProvideDiagnosisService(db *repo.Client) diagnosis.Service {
	return diagnosis.New(db)
}

func ProvideTokenManager(cfg *config.Config) (*token.Manager, error) {
	return token.NewTokenManager(cfg)
}
