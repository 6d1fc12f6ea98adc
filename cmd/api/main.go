// Package main is the entry point for the Team Dashboard API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/team-dashboard/backend/config"
	"github.com/team-dashboard/backend/internal/domain/entity"
	"github.com/team-dashboard/backend/internal/infra/db"
	"github.com/team-dashboard/backend/internal/infra/dependency"
	"github.com/team-dashboard/backend/internal/integration/adapters"
	"github.com/team-dashboard/backend/internal/integration/persistence"
	"github.com/team-dashboard/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Team Dashboard API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"policy", cfg.Ledger.Policy,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.BalanceModel{},
		&model.HistoryEntryModel{},
		&model.IncomeTransactionModel{},
		&model.ExpenseRecordModel{},
		&model.AuditLogEntryModel{},
		&model.ProjectModel{},
		&model.ProgressNoteModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Seed the roster accounts
	if err := seedRoster(cfg, database); err != nil {
		slog.Error("Failed to seed roster accounts", "error", err)
		os.Exit(1)
	}

	// Initialize Redis (access token denylist)
	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.Error("Invalid Redis URL", "error", err)
		os.Exit(1)
	}
	if cfg.Redis.Password != "" {
		redisOpts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		redisOpts.DB = cfg.Redis.DB
	}
	redisClient := redis.NewClient(redisOpts)
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close Redis connection", "error", err)
		}
	}()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		slog.Warn("Redis unreachable, token revocation will fail until it recovers", "error", err)
	}
	pingCancel()

	// Wire dependencies
	injector, err := dependency.NewInjector(cfg, database.DB(), redisClient, database.HealthCheck)
	if err != nil {
		slog.Error("Failed to wire dependencies", "error", err)
		os.Exit(1)
	}
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// seedRoster creates the configured roster accounts if they do not exist.
// Accounts that already exist keep their current password.
func seedRoster(cfg *config.Config, database *db.Database) error {
	userRepo := persistence.NewUserRepository(database.DB())
	passwordService := adapters.NewPasswordService()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, username := range cfg.Ledger.Roster {
		hash, err := passwordService.HashPassword(cfg.Ledger.RosterPassword)
		if err != nil {
			return fmt.Errorf("failed to hash roster password: %w", err)
		}

		user := entity.NewUser(username, displayName(username), hash)
		if err := userRepo.EnsureExists(ctx, user); err != nil {
			return fmt.Errorf("failed to seed roster member %q: %w", username, err)
		}
	}

	slog.Info("Roster accounts seeded", "count", len(cfg.Ledger.Roster))
	return nil
}

// displayName capitalizes the roster slug for display.
func displayName(username string) string {
	if username == "" {
		return username
	}
	return strings.ToUpper(username[:1]) + username[1:]
}
