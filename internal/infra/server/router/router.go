// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/team-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/team-dashboard/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	authController     *controller.AuthController
	ledgerController   *controller.LedgerController
	projectController  *controller.ProjectController
	progressController *controller.ProgressController
	loginRateLimiter   *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
	uploadsDir         string
	uploadsBaseURL     string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	ledgerController *controller.LedgerController,
	projectController *controller.ProjectController,
	progressController *controller.ProgressController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	uploadsDir string,
	uploadsBaseURL string,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		ledgerController:   ledgerController,
		projectController:  projectController,
		progressController: progressController,
		loginRateLimiter:   loginRateLimiter,
		authMiddleware:     authMiddleware,
		uploadsDir:         uploadsDir,
		uploadsBaseURL:     uploadsBaseURL,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupStaticRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupStaticRoutes serves uploaded progress images.
func (r *Router) setupStaticRoutes() {
	if r.uploadsDir != "" && r.uploadsBaseURL != "" {
		r.engine.Static(r.uploadsBaseURL, r.uploadsDir)
	}
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.Refresh)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Ledger routes (require authentication)
		if r.ledgerController != nil && r.authMiddleware != nil {
			ledger := v1.Group("/ledger")
			ledger.Use(r.authMiddleware.Authenticate())
			{
				ledger.POST("/income", r.ledgerController.RecordIncome)
				ledger.GET("/income", r.ledgerController.ListIncome)
				ledger.DELETE("/income/:id", r.ledgerController.DeleteIncome)
				ledger.POST("/expenses", r.ledgerController.RecordExpense)
				ledger.GET("/expenses", r.ledgerController.ListExpenses)
				ledger.GET("/balances", r.ledgerController.ListBalances)
				ledger.GET("/balances/:key", r.ledgerController.GetBalance)
				ledger.GET("/balances/:key/history", r.ledgerController.ListHistory)
				ledger.POST("/balances/:key/withdraw", r.ledgerController.Withdraw)
				ledger.GET("/audit-log", r.ledgerController.ListAuditLog)
				ledger.GET("/overview", r.ledgerController.FundsOverview)
			}
		}

		// Project routes (require authentication)
		if r.projectController != nil && r.authMiddleware != nil {
			projects := v1.Group("/projects")
			projects.Use(r.authMiddleware.Authenticate())
			{
				projects.GET("", r.projectController.List)
				projects.POST("", r.projectController.Create)
				projects.GET("/:id", r.projectController.Get)
				projects.PATCH("/:id", r.projectController.Update)
				projects.DELETE("/:id", r.projectController.Delete)
			}
		}

		// Progress routes (require authentication)
		if r.progressController != nil && r.authMiddleware != nil {
			progress := v1.Group("/progress")
			progress.Use(r.authMiddleware.Authenticate())
			{
				progress.GET("", r.progressController.List)
				progress.POST("", r.progressController.Create)
				progress.GET("/:id", r.progressController.Get)
				progress.PATCH("/:id", r.progressController.Update)
				progress.DELETE("/:id", r.progressController.Delete)
				progress.POST("/:id/image", r.progressController.AttachImage)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
