package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/upl-snipe/partner-api/internal/application/agreement"
	"github.com/upl-snipe/partner-api/internal/application/analytics"
	"github.com/upl-snipe/partner-api/internal/application/auth"
	"github.com/upl-snipe/partner-api/internal/application/franchise"
	"github.com/upl-snipe/partner-api/internal/application/workflow"
	"github.com/upl-snipe/partner-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	WorkflowUC  *workflow.UseCase
	FranchiseUC *franchise.UseCase
	AgreementUC *agreement.UseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	enquiryHandler := NewEnquiryHandler(deps.WorkflowUC)
	franchiseHandler := NewFranchiseHandler(deps.FranchiseUC)
	agreementHandler := NewAgreementHandler(deps.AgreementUC)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)

	authRequired := AuthMiddleware(deps.JWTSecret)
	staffOnly := RequireRole(entity.RoleAdmin, entity.RoleHR, entity.RoleOperationalHead)
	partnerOnly := RequireRole(entity.RoleFranchisePartner, entity.RoleChannelPartner)

	// Auth
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", authRequired, authHandler.Me)
	authGroup.Post("/set-password", authRequired, authHandler.SetPassword)

	// Solicitudes: el envío es público; el resto es del personal interno.
	enquiries := api.Group("/enquiries")
	enquiries.Post("/", enquiryHandler.Submit)
	enquiries.Get("/", authRequired, staffOnly, enquiryHandler.List)
	enquiries.Post("/manual", authRequired, RequireRole(entity.RoleHR), enquiryHandler.CreateManual)
	enquiries.Get("/:id", authRequired, staffOnly, enquiryHandler.GetByID)
	enquiries.Post("/:id/hr-decision", authRequired, RequireRole(entity.RoleHR), enquiryHandler.HRDecision)
	enquiries.Post("/:id/operational-decision", authRequired, RequireRole(entity.RoleOperationalHead), enquiryHandler.OperationalDecision)

	// Franquicias: el socio ve y completa la suya; el personal interno las consulta todas.
	franchises := api.Group("/franchises", authRequired)
	franchises.Get("/me", partnerOnly, franchiseHandler.GetMine)
	franchises.Put("/me/details", partnerOnly, franchiseHandler.SubmitDetails)
	franchises.Get("/", staffOnly, franchiseHandler.List)
	franchises.Get("/:id", staffOnly, franchiseHandler.GetByID)
	franchises.Get("/:id/agreement/pdf", staffOnly, agreementHandler.DownloadPDF)

	// Contrato del socio autenticado
	agreementGroup := api.Group("/agreement", authRequired, partnerOnly)
	agreementGroup.Post("/accept", agreementHandler.Accept)
	agreementGroup.Get("/status", agreementHandler.Status)
	agreementGroup.Get("/pdf", agreementHandler.DownloadPDF)

	// Panel administrativo
	dashboard := api.Group("/dashboard", authRequired, RequireRole(entity.RoleAdmin, entity.RoleOperationalHead))
	dashboard.Get("/statistics", dashboardHandler.GetStatistics)

	// Cuentas (solo admin)
	api.Get("/users", authRequired, RequireRole(entity.RoleAdmin), authHandler.ListUsers)
}
