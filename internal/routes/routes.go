package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/trainer-marketplace/internal/audit"
	"github.com/BruksfildServices01/trainer-marketplace/internal/auth"
	"github.com/BruksfildServices01/trainer-marketplace/internal/cache"
	"github.com/BruksfildServices01/trainer-marketplace/internal/config"
	"github.com/BruksfildServices01/trainer-marketplace/internal/handlers"
	infraRepo "github.com/BruksfildServices01/trainer-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/trainer-marketplace/internal/mailer"
	"github.com/BruksfildServices01/trainer-marketplace/internal/middleware"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
	"github.com/BruksfildServices01/trainer-marketplace/internal/payments"
	"github.com/BruksfildServices01/trainer-marketplace/internal/storage"
	ucCatalog "github.com/BruksfildServices01/trainer-marketplace/internal/usecase/catalog"
	ucContract "github.com/BruksfildServices01/trainer-marketplace/internal/usecase/contract"
	ucPayment "github.com/BruksfildServices01/trainer-marketplace/internal/usecase/payment"
	ucReview "github.com/BruksfildServices01/trainer-marketplace/internal/usecase/review"
	ucService "github.com/BruksfildServices01/trainer-marketplace/internal/usecase/service"
	ucTrainer "github.com/BruksfildServices01/trainer-marketplace/internal/usecase/trainer"
	ucUser "github.com/BruksfildServices01/trainer-marketplace/internal/usecase/user"
	"github.com/BruksfildServices01/trainer-marketplace/internal/validators"
)

// Deps are the long-lived collaborators main owns. Cache, Gateway and
// Audit may be nil.
type Deps struct {
	Tokens  *auth.TokenService
	Store   storage.Store
	Cache   *cache.Cache
	Mailer  mailer.Sender
	Gateway payments.Gateway
	Audit   *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, deps Deps) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.MaxMultipartMemory = handlers.MaxMultipartMemory

	if local, ok := deps.Store.(*storage.Local); ok {
		r.Static(storage.LocalURLPrefix, local.Root())
	}

	// ======================================================
	// INFRA
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(db)
	trainerRepo := infraRepo.NewTrainerGormRepository(db)
	serviceRepo := infraRepo.NewServiceGormRepository(db)
	contractRepo := infraRepo.NewContractGormRepository(db)
	reviewRepo := infraRepo.NewReviewGormRepository(db)
	paymentRepo := infraRepo.NewPaymentGormRepository(db)
	catalogRepo := infraRepo.NewCatalogGormRepository(db)

	// ======================================================
	// USE CASES
	// ======================================================
	var domainCheck func(string) bool
	if cfg.CheckEmailDomain {
		domainCheck = validators.IsEmailDomainValid
	}

	registerUC := ucUser.NewRegister(userRepo, domainCheck)
	loginUC := ucUser.NewLogin(userRepo, deps.Tokens)
	forgotUC := ucUser.NewForgotPassword(userRepo, deps.Mailer, cfg.ClientURL)
	resetUC := ucUser.NewResetPassword(userRepo)
	getUserUC := ucUser.NewGetUser(userRepo)
	updateProfileUC := ucUser.NewUpdateTrainerProfile(userRepo, deps.Store, deps.Audit)

	profileUC := ucTrainer.NewGetProfile(trainerRepo, serviceRepo, reviewRepo, contractRepo)
	statsUC := ucTrainer.NewGetStatistics(trainerRepo, serviceRepo, reviewRepo)

	submitReviewUC := ucReview.NewSubmitReview(reviewRepo, deps.Audit)
	listReviewsUC := ucReview.NewListReviews(reviewRepo)

	searchServicesUC := ucService.NewSearchServices(serviceRepo)
	serviceDetailUC := ucService.NewGetServiceDetail(serviceRepo)
	createServiceUC := ucService.NewCreateService(serviceRepo, deps.Store, deps.Audit)
	updateServiceUC := ucService.NewUpdateService(serviceRepo, deps.Store, deps.Audit)
	serviceStatusUC := ucService.NewSetServiceStatus(serviceRepo, deps.Audit)
	deleteServiceUC := ucService.NewDeleteService(serviceRepo, deps.Store, deps.Audit)
	trainerServicesUC := ucService.NewListTrainerServices(serviceRepo)

	listContractsUC := ucContract.NewListContracts(contractRepo)
	getContractUC := ucContract.NewGetContract(contractRepo)
	createContractUC := ucContract.NewCreateContract(contractRepo, deps.Audit)
	updateContractUC := ucContract.NewUpdateContract(contractRepo, deps.Audit)
	contractFilesUC := ucContract.NewContractFiles(contractRepo, deps.Store)

	checkoutUC := ucPayment.NewCreateCheckout(contractRepo, deps.Gateway)
	webhookUC := ucPayment.NewProcessWebhook(paymentRepo, deps.Gateway, deps.Cache, cfg.MPWebhookSecret, deps.Audit)

	catalogUC := ucCatalog.NewListCatalog(catalogRepo, deps.Cache)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, forgotUC, resetUC)
	userHandler := handlers.NewUserHandler(getUserUC)
	trainerHandler := handlers.NewTrainerHandler(
		profileUC,
		listReviewsUC,
		statsUC,
		updateProfileUC,
		submitReviewUC,
		trainerServicesUC,
	)
	serviceHandler := handlers.NewServiceHandler(
		searchServicesUC,
		serviceDetailUC,
		createServiceUC,
		updateServiceUC,
		serviceStatusUC,
		deleteServiceUC,
	)
	contractHandler := handlers.NewContractHandler(
		listContractsUC,
		getContractUC,
		createContractUC,
		updateContractUC,
		contractFilesUC,
	)
	paymentHandler := handlers.NewPaymentHandler(checkoutUC, webhookUC)
	reviewHandler := handlers.NewReviewHandler(listReviewsUC)
	catalogHandler := handlers.NewCatalogHandler(catalogUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	requireAuth := middleware.AuthMiddleware(deps.Tokens)
	optionalAuth := middleware.OptionalAuth(deps.Tokens)
	onlyClient := middleware.RequireRole(models.RoleClient)
	onlyTrainer := middleware.RequireRole(models.RoleTrainer)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api/v1")
	{
		// ------------------------------
		// AUTH / USERS
		// ------------------------------
		api.POST("/users", authHandler.Register)
		api.GET("/users/:id", userHandler.Get)

		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/forgot-password", authHandler.ForgotPassword)
		api.POST("/auth/reset-password", authHandler.ResetPassword)

		api.GET("/me", requireAuth, userHandler.GetMe)
		api.GET("/me/audit-logs", requireAuth, auditLogsHandler.List)

		// ------------------------------
		// TRAINERS
		// ------------------------------
		trainers := api.Group("/trainers")
		{
			trainers.GET("/:id", optionalAuth, trainerHandler.Profile)
			trainers.GET("/:id/reviews", trainerHandler.Reviews)
			trainers.GET("/:id/statistics", requireAuth, trainerHandler.Statistics)
			trainers.PATCH("/:id", requireAuth, onlyTrainer, trainerHandler.UpdateProfile)
			trainers.POST("/:id/reviews", requireAuth, onlyClient, trainerHandler.SubmitReview)
			trainers.GET("/:id/services", requireAuth, onlyTrainer, trainerHandler.Services)
		}

		// ------------------------------
		// SERVICES
		// ------------------------------
		services := api.Group("/services")
		{
			services.GET("", serviceHandler.Search)
			services.GET("/:id", serviceHandler.Get)
			services.POST("", requireAuth, onlyTrainer, serviceHandler.Create)
			services.PUT("/:id", requireAuth, onlyTrainer, serviceHandler.Update)
			services.PATCH("/:id", requireAuth, onlyTrainer, serviceHandler.SetStatus)
			services.DELETE("/:id", requireAuth, onlyTrainer, serviceHandler.Delete)
		}

		// ------------------------------
		// CONTRACTS
		// ------------------------------
		contracts := api.Group("/contracts")
		contracts.Use(requireAuth)
		{
			contracts.GET("", contractHandler.List)
			contracts.GET("/:id", contractHandler.Get)
			contracts.POST("", onlyClient, contractHandler.Create)
			contracts.PATCH("/:id", contractHandler.Update)
			contracts.GET("/:id/files", contractHandler.ListFiles)
			contracts.POST("/:id/files", onlyTrainer, contractHandler.UploadFile)
		}

		// ------------------------------
		// PAYMENTS
		// ------------------------------
		api.POST("/payments/create-checkout-session", requireAuth, onlyClient, paymentHandler.CreateCheckoutSession)
		api.POST("/payments/webhook", paymentHandler.Webhook)

		// ------------------------------
		// REVIEWS / CATALOG
		// ------------------------------
		api.GET("/reviews", reviewHandler.Top)
		api.GET("/zones", catalogHandler.Zones)
		api.GET("/categories", catalogHandler.Categories)
	}
}
