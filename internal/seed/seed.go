package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/mchellal/studia/internal/app/models/dto"
	"github.com/mchellal/studia/internal/app/services"
	"github.com/mchellal/studia/internal/config"
	"github.com/mchellal/studia/internal/pkg/apperrors"
)

// Run creates the bootstrap administrator when one is configured. Seeding is
// idempotent: an admin that already exists is left untouched.
func Run(ctx context.Context, adminService *services.AdminService, cfg *config.Config, log zerolog.Logger) error {
	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		log.Debug().Msg("No seed admin configured, skipping")
		return nil
	}

	fullName := cfg.Seed.AdminFullName
	if fullName == "" {
		fullName = "Administrator"
	}

	_, err := adminService.CreateAdmin(ctx, &dto.CreateAdminRequest{
		Email:    cfg.Seed.AdminEmail,
		Password: cfg.Seed.AdminPassword,
		FullName: fullName,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			log.Debug().Str("email", cfg.Seed.AdminEmail).Msg("Seed admin already exists")
			return nil
		}
		return err
	}

	log.Info().Str("email", cfg.Seed.AdminEmail).Msg("Seed admin created")
	return nil
}
