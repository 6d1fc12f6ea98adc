// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/team-dashboard/backend/config"
	"github.com/team-dashboard/backend/internal/application/usecase/auth"
	"github.com/team-dashboard/backend/internal/application/usecase/ledger"
	"github.com/team-dashboard/backend/internal/application/usecase/progress"
	"github.com/team-dashboard/backend/internal/application/usecase/project"
	"github.com/team-dashboard/backend/internal/domain/valueobject"
	"github.com/team-dashboard/backend/internal/infra/server/router"
	"github.com/team-dashboard/backend/internal/integration/adapters"
	"github.com/team-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/team-dashboard/backend/internal/integration/entrypoint/middleware"
	"github.com/team-dashboard/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, dbHealthChecker func() bool) (*Injector, error) {
	policy, ok := valueobject.PolicyByName(cfg.Ledger.Policy)
	if !ok {
		return nil, fmt.Errorf("unknown distribution policy: %q", cfg.Ledger.Policy)
	}
	// An empty roster would silently turn every per-head share into
	// rounding loss, so refuse to start without one.
	if len(cfg.Ledger.Roster) == 0 {
		return nil, fmt.Errorf("ledger roster must not be empty")
	}
	for _, member := range cfg.Ledger.Roster {
		if strings.TrimSpace(member) == "" {
			return nil, fmt.Errorf("ledger roster contains a blank member slug")
		}
	}

	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	ledgerRepo := persistence.NewLedgerRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	incomeRepo := persistence.NewIncomeRepository(db)
	auditRepo := persistence.NewAuditLogRepository(db)
	projectRepo := persistence.NewProjectRepository(db)
	progressRepo := persistence.NewProgressRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		tokenRepo,
		redisClient,
	)
	fileStorage, err := adapters.NewLocalFileStorage(cfg.Uploads.Dir, cfg.Uploads.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	// Create auth use cases
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create ledger use cases
	recordIncomeUseCase := ledger.NewRecordIncomeUseCase(
		expenseRepo,
		ledgerRepo,
		policy,
		cfg.Ledger.Roster,
		cfg.Ledger.EmergencyFundTarget,
	)
	recordExpenseUseCase := ledger.NewRecordExpenseUseCase(expenseRepo)
	withdrawUseCase := ledger.NewWithdrawUseCase(ledgerRepo)
	deleteIncomeUseCase := ledger.NewDeleteIncomeUseCase(incomeRepo, auditRepo)
	getBalanceUseCase := ledger.NewGetBalanceUseCase(ledgerRepo, cfg.Ledger.HistoryLimit)
	listBalancesUseCase := ledger.NewListBalancesUseCase(ledgerRepo)
	listHistoryUseCase := ledger.NewListHistoryUseCase(ledgerRepo, cfg.Ledger.HistoryLimit)
	listAuditLogUseCase := ledger.NewListAuditLogUseCase(auditRepo, cfg.Ledger.AuditLogLimit)
	listExpensesUseCase := ledger.NewListExpensesUseCase(expenseRepo, cfg.Ledger.HistoryLimit)
	listIncomeUseCase := ledger.NewListIncomeUseCase(incomeRepo, cfg.Ledger.HistoryLimit)
	fundsOverviewUseCase := ledger.NewFundsOverviewUseCase(ledgerRepo)

	// Create project use cases
	createProjectUseCase := project.NewCreateProjectUseCase(projectRepo, auditRepo)
	updateProjectUseCase := project.NewUpdateProjectUseCase(projectRepo, auditRepo)
	deleteProjectUseCase := project.NewDeleteProjectUseCase(projectRepo, auditRepo)
	getProjectUseCase := project.NewGetProjectUseCase(projectRepo)
	listProjectsUseCase := project.NewListProjectsUseCase(projectRepo)

	// Create progress use cases
	createProgressUseCase := progress.NewCreateProgressUseCase(progressRepo, projectRepo, auditRepo)
	updateProgressUseCase := progress.NewUpdateProgressUseCase(progressRepo, auditRepo)
	deleteProgressUseCase := progress.NewDeleteProgressUseCase(progressRepo, auditRepo)
	listProgressUseCase := progress.NewListProgressUseCase(progressRepo)
	getProgressUseCase := progress.NewGetProgressUseCase(progressRepo)
	attachImageUseCase := progress.NewAttachImageUseCase(progressRepo, fileStorage, cfg.Uploads.MaxSizeBytes)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker)

	authController := controller.NewAuthController(
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	ledgerController := controller.NewLedgerController(
		recordIncomeUseCase,
		recordExpenseUseCase,
		withdrawUseCase,
		deleteIncomeUseCase,
		getBalanceUseCase,
		listBalancesUseCase,
		listHistoryUseCase,
		listAuditLogUseCase,
		listExpensesUseCase,
		listIncomeUseCase,
		fundsOverviewUseCase,
		getProjectUseCase,
	)

	projectController := controller.NewProjectController(
		createProjectUseCase,
		updateProjectUseCase,
		deleteProjectUseCase,
		getProjectUseCase,
		listProjectsUseCase,
	)

	progressController := controller.NewProgressController(
		createProgressUseCase,
		updateProgressUseCase,
		deleteProgressUseCase,
		listProgressUseCase,
		getProgressUseCase,
		attachImageUseCase,
	)

	// Create middleware
	loginRateLimiter := middleware.NewRateLimiter()
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		ledgerController,
		projectController,
		progressController,
		loginRateLimiter,
		authMiddleware,
		cfg.Uploads.Dir,
		cfg.Uploads.BaseURL,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}, nil
}
