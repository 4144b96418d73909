// Package server wires services, handlers, and middleware into the HTTP API.
package server

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"nestegg/internal/config"
	"nestegg/internal/events"
	"nestegg/internal/handlers"
	"nestegg/internal/metrics"
	"nestegg/internal/middleware"
	"nestegg/internal/money"
	"nestegg/internal/services"
	"nestegg/internal/validator"

	_ "nestegg/internal/docs" // swagger docs
)

// Services bundles every service the API depends on.
type Services struct {
	User           services.UserServicer
	Category       services.CategoryServicer
	Payment        services.PaymentServicer
	WeeklyBudget   services.WeeklyBudgetServicer
	MainBudget     services.MainBudgetServicer
	Reconciliation services.ReconciliationServicer
	Resolver       services.HouseholdResolver
	Audit          services.AuditServicer
}

// NewServices builds the service layer on top of db. Events go to publisher.
func NewServices(db *gorm.DB, cfg *config.Config, publisher events.Publisher) (*Services, error) {
	policy, err := services.ParseRecalcPolicy(cfg.RecalcPolicy)
	if err != nil {
		return nil, fmt.Errorf("invalid RECALC_POLICY: %w", err)
	}
	defaultAllocation, err := money.Parse(cfg.SyncDefaultAllocation)
	if err != nil {
		return nil, fmt.Errorf("invalid SYNC_DEFAULT_ALLOCATION: %w", err)
	}

	resolver := services.NewHouseholdResolver(db)
	return &Services{
		User:           services.NewUserService(db),
		Category:       services.NewCategoryService(db),
		Payment:        services.NewPaymentService(db, publisher),
		WeeklyBudget:   services.NewWeeklyBudgetService(db, resolver),
		MainBudget:     services.NewMainBudgetService(db, policy, publisher),
		Reconciliation: services.NewReconciliationService(db, resolver, publisher, defaultAllocation),
		Resolver:       resolver,
		Audit:          services.NewAuditService(db),
	}, nil
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(cfg *config.Config, svc *Services) *gin.Engine {
	authHandler := handlers.NewAuthHandler(svc.User, svc.Audit)
	categoryHandler := handlers.NewCategoryHandler(svc.Category, svc.Audit)
	paymentHandler := handlers.NewPaymentHandler(svc.Payment, svc.Audit)
	weeklyHandler := handlers.NewWeeklyBudgetHandler(svc.WeeklyBudget, svc.Audit)
	mainHandler := handlers.NewMainBudgetHandler(svc.MainBudget, svc.Audit)
	reconHandler := handlers.NewReconciliationHandler(svc.Reconciliation, svc.Audit)
	householdHandler := handlers.NewHouseholdHandler(svc.Resolver)
	jobsHandler := handlers.NewJobsHandler(svc.Payment, svc.Reconciliation)
	auditHandler := handlers.NewAuditHandler(svc.Audit)

	validator.Register()

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "X-API-Key"},
		ExposeHeaders: []string{"X-Request-ID"},
	}))
	router.Use(metrics.Middleware())

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if cfg.EnablePprof {
		pprof.Register(router)
	}

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)

	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetUserCategories)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	payments := protected.Group("/payments")
	payments.POST("", paymentHandler.CreatePayment)
	payments.GET("", paymentHandler.ListPayments)
	payments.GET("/:id", paymentHandler.GetPayment)
	payments.PUT("/:id", paymentHandler.UpdatePayment)
	payments.DELETE("/:id", paymentHandler.DeletePayment)
	payments.POST("/:id/status", paymentHandler.SetStatus)

	weekly := protected.Group("/weekly-budgets")
	weekly.POST("", weeklyHandler.CreateWeeklyBudget)
	weekly.GET("", weeklyHandler.ListWeeklyBudgets)
	weekly.GET("/:id", weeklyHandler.GetWeeklyBudget)
	weekly.PUT("/:id", weeklyHandler.UpdateWeeklyBudget)
	weekly.DELETE("/:id", weeklyHandler.DeleteWeeklyBudget)
	weekly.POST("/:id/categories", weeklyHandler.AddCategory)
	weekly.PUT("/:id/categories/:categoryId", weeklyHandler.UpdateAllocation)
	weekly.DELETE("/:id/categories/:categoryId", weeklyHandler.RemoveCategory)
	weekly.POST("/:id/categories/:categoryId/payments", weeklyHandler.AddPayment)
	weekly.PUT("/:id/categories/:categoryId/payments/:paymentId", weeklyHandler.UpdatePayment)
	weekly.DELETE("/:id/categories/:categoryId/payments/:paymentId", weeklyHandler.RemovePayment)
	weekly.GET("/:id/payers", weeklyHandler.GetPayers)

	weekly.POST("/:id/sync-categories", reconHandler.SyncCategories)
	weekly.POST("/:id/fix-payment-links", reconHandler.FixPaymentLinks)
	weekly.POST("/:id/fix-paidby", reconHandler.FixPaidBy)
	weekly.POST("/:id/repair", reconHandler.Repair)
	weekly.GET("/:id/check-payments", reconHandler.CheckPayments)

	mainBudgets := protected.Group("/main-budgets")
	mainBudgets.POST("", mainHandler.CreateMainBudget)
	mainBudgets.GET("", mainHandler.ListMainBudgets)
	mainBudgets.GET("/:id", mainHandler.GetMainBudget)
	mainBudgets.PUT("/:id", mainHandler.UpdateMainBudget)
	mainBudgets.DELETE("/:id", mainHandler.DeleteMainBudget)
	mainBudgets.POST("/:id/weekly/:weekNumber", mainHandler.MaterializeWeek)
	mainBudgets.PUT("/:id/weekly/:weekNumber/allocation", mainHandler.SetSlotAllocation)
	mainBudgets.POST("/:id/recalculate-total", mainHandler.RecalculateTotal)

	protected.GET("/households/:id/budgets", householdHandler.GetBudgets)
	protected.GET("/audit", auditHandler.GetHistory)

	// Job routes, authenticated with a jobs API key
	jobs := router.Group("/api/jobs")
	jobs.Use(middleware.JobsAuthMiddleware(cfg.JobsAPIKeys))
	jobs.POST("/mark-overdue", jobsHandler.MarkOverdue)
	jobs.POST("/weekly-budgets/:id/repair", jobsHandler.RepairWeeklyBudget)

	return router
}
