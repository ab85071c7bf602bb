// Comando seed crea las cuentas del personal interno (admin, hr, operational_head).
// Idempotente: las cuentas ya existentes se omiten. Las claves por defecto son
// de desarrollo; en producción se definen vía SEED_ADMIN_PASSWORD y compañía.
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/upl-snipe/partner-api/internal/domain/entity"
	"github.com/upl-snipe/partner-api/internal/infrastructure/postgres"
	"github.com/upl-snipe/partner-api/pkg/config"
	"github.com/upl-snipe/partner-api/pkg/logger"
)

type seedUser struct {
	name     string
	email    string
	role     string
	password string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	users := []seedUser{
		{"Admin User", "admin@upl.com", entity.RoleAdmin, envOr("SEED_ADMIN_PASSWORD", "admin123")},
		{"HR Manager", "hr@upl.com", entity.RoleHR, envOr("SEED_HR_PASSWORD", "hr123")},
		{"Operational Head", "ophead@upl.com", entity.RoleOperationalHead, envOr("SEED_OPHEAD_PASSWORD", "ophead123")},
	}

	userRepo := postgres.NewUserRepository(pool)
	for _, su := range users {
		existing, err := userRepo.GetByEmail(ctx, su.email)
		if err != nil {
			log.Fatal().Err(err).Str("email", su.email).Msg("consultar usuario")
		}
		if existing != nil {
			log.Info().Str("email", su.email).Msg("usuario ya existe, se omite")
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash de password")
		}
		now := time.Now()
		user := &entity.User{
			ID:           uuid.New().String(),
			Name:         su.name,
			Email:        su.email,
			Role:         su.role,
			PasswordHash: string(hash),
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatal().Err(err).Str("email", su.email).Msg("crear usuario")
		}
		log.Info().Str("email", su.email).Str("role", su.role).Msg("usuario creado")
	}

	log.Info().Msg("seed completado")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
