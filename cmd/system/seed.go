package system

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/spitali-app/spitali_backend/config"
	"github.com/spitali-app/spitali_backend/internal/service/user"
	"github.com/spitali-app/spitali_backend/pkg/authorize"
	"github.com/spitali-app/spitali_backend/pkg/database"
	"github.com/spitali-app/spitali_backend/pkg/util/password"
)

func NewSeedCommand() *cobra.Command {
	var (
		adminEmail    string
		adminPassword string
		demo          bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the initial admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if adminPassword == "" {
				return errors.New("--admin-password is required")
			}

			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			password.Configure(password.FromCentralConfig(cfg.Password))

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			dsn := database.NewDSN(cfg.CasbinDatabase)
			enforcer, cleanup, err := authorize.NewEnforcer(cfg.Authorization.CasbinModelPath, dsn)
			if err != nil {
				return fmt.Errorf("failed to create enforcer: %w", err)
			}
			defer cleanup(context.Background())

			auth, err := authorize.NewAuthorization(enforcer)
			if err != nil {
				return fmt.Errorf("failed to create authorization: %w", err)
			}

			svc := user.New(client, auth)
			ctx := context.Background()

			create := func(req user.CreateRequest) error {
				if _, err := svc.Create(ctx, req); err != nil {
					if errors.Is(err, user.ErrEmailAlreadyExists) {
						fmt.Printf("%s already exists, skipping.\n", req.Email)
						return nil
					}
					return fmt.Errorf("failed to create %s: %w", req.Email, err)
				}
				fmt.Printf("Created %s (%s).\n", req.Email, req.Role)
				return nil
			}

			if err := create(user.CreateRequest{
				Email:    adminEmail,
				Password: adminPassword,
				Role:     "ADMIN",
			}); err != nil {
				return err
			}

			if demo {
				if err := create(user.CreateRequest{
					Email:     "doc@test.com",
					Password:  adminPassword,
					Role:      "DOCTOR",
					Name:      "Dr. Demo",
					Specialty: "General",
					City:      "Prishtine",
				}); err != nil {
					return err
				}
				if err := create(user.CreateRequest{
					Email:    "patient@test.com",
					Password: adminPassword,
					Role:     "PATIENT",
					Name:     "Patient Demo",
				}); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&adminEmail, "admin-email", "admin@example.com", "admin account email")
	cmd.Flags().StringVar(&adminPassword, "admin-password", "", "admin account password")
	cmd.Flags().BoolVar(&demo, "demo", false, "also create demo doctor and patient accounts")

	return cmd
}
