package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SalaVentasCO/reception-intake/internal/audit"
	"github.com/SalaVentasCO/reception-intake/internal/config"
	"github.com/SalaVentasCO/reception-intake/internal/dedup"
	"github.com/SalaVentasCO/reception-intake/internal/handlers"
	infraRepo "github.com/SalaVentasCO/reception-intake/internal/infra/repository"
	"github.com/SalaVentasCO/reception-intake/internal/middleware"
	ucRegistration "github.com/SalaVentasCO/reception-intake/internal/usecase/registration"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, guard *dedup.Guard, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	registrationRepo := infraRepo.NewRegistrationGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	// Un *dedup.Guard nil dentro de la interfaz dejaría de ser nil; solo
	// se asigna cuando Redis está disponible.
	var submissionGuard ucRegistration.SubmissionGuard
	if guard != nil {
		submissionGuard = guard
	}

	createRegistrationUC := ucRegistration.NewCreateRegistration(
		registrationRepo,
		submissionGuard,
		auditDispatcher,
	)

	listFollowUpsUC := ucRegistration.NewListFollowUps(registrationRepo)
	buildReportUC := ucRegistration.NewBuildReport(registrationRepo)
	listAdvisorsUC := ucRegistration.NewListAdvisors(registrationRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	sessionHandler := handlers.NewSessionHandler(db)

	advisorHandler := handlers.NewAdvisorHandler(listAdvisorsUC)
	registrationHandler := handlers.NewRegistrationHandler(createRegistrationUC)
	followUpHandler := handlers.NewFollowUpHandler(listFollowUpsUC)
	reportHandler := handlers.NewReportHandler(buildReportUC)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	webHandler := handlers.NewWebHandler()

	// ======================================================
	// ROTAS WEB (HTML)
	// ======================================================
	webApp := r.Group("/web/app")
	{
		webApp.GET("/login", webHandler.LoginPage)
		webApp.GET("/recepcion", webHandler.IntakePage)
		webApp.GET("/seguimiento", webHandler.FollowUpPage)
		webApp.GET("/reportes", webHandler.ReportPage)
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", sessionHandler.GetMe)

			secured.GET("/advisors", advisorHandler.List)
			secured.POST("/registrations", registrationHandler.Create)
			secured.GET("/followups", followUpHandler.List)
			secured.GET("/reports", reportHandler.Get)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
