package configs

import (
	"context"
	"errors"
	"log"
	"time"

	"hospitality/repository"
	"hospitality/services"

	"gorm.io/gorm"
)

// SeedAdmin creates the first admin from ADMIN_EMAIL/ADMIN_PASSWORD through
// the same path as the setup endpoint, so it never adds a second one.
func SeedAdmin(ctx context.Context, db *gorm.DB, cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	admins := repository.NewAdminRepository(db)
	setup := services.NewSetupService(admins, services.NewAuthService(admins, cfg.JWTSecret, time.Minute))
	_, admin, err := setup.Setup(ctx, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword)
	if errors.Is(err, services.ErrConflict) {
		log.Println("admin already exists, seed skipped")
		return nil
	}
	if err != nil {
		return err
	}
	log.Printf("seeded admin email=%s", admin.Email)
	return nil
}
