package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/upl-snipe/partner-api/internal/application/agreement"
	"github.com/upl-snipe/partner-api/internal/application/analytics"
	"github.com/upl-snipe/partner-api/internal/application/auth"
	"github.com/upl-snipe/partner-api/internal/application/franchise"
	"github.com/upl-snipe/partner-api/internal/application/workflow"
	infrapdf "github.com/upl-snipe/partner-api/internal/infrastructure/pdf"
	"github.com/upl-snipe/partner-api/internal/infrastructure/postgres"
	httpRouter "github.com/upl-snipe/partner-api/internal/interfaces/http"
	"github.com/upl-snipe/partner-api/pkg/config"
	"github.com/upl-snipe/partner-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	enquiryRepo := postgres.NewEnquiryRepository(pool)
	franchiseRepo := postgres.NewFranchiseRepository(pool)
	logRepo := postgres.NewAgreementLogRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	workflowUC := workflow.NewUseCase(txRunner, enquiryRepo, franchiseRepo, auth.BcryptHasher{})
	franchiseUC := franchise.NewUseCase(franchiseRepo)
	agreementUC := agreement.NewUseCase(txRunner, franchiseRepo, logRepo,
		infrapdf.NewMarotoPDFGenerator(), agreement.Config{
			Version:     cfg.Agreement.Version,
			CompanyName: cfg.Agreement.CompanyName,
		})
	dashboardUC := analytics.NewDashboardUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Partner Portal API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		WorkflowUC:  workflowUC,
		FranchiseUC: franchiseUC,
		AgreementUC: agreementUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
