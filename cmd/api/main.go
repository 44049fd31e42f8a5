package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ats-backend/config"
	_ "ats-backend/docs" // Important for Swagger
	v1 "ats-backend/internal/delivery/http/v1"
	"ats-backend/internal/repository/localdata"
	"ats-backend/internal/usecase"
	"ats-backend/pkg/auth"
	"ats-backend/pkg/localstore"
	"ats-backend/pkg/logger"
	"ats-backend/pkg/redis"
	"ats-backend/pkg/security"

	"github.com/go-playground/validator/v10"
	"github.com/gofrs/flock"
)

// @title           ATS Backend API
// @version         1.0
// @description     Local-first applicant tracking backend.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting ats backend", "port", cfg.Port)
	security.InitSecurityLogger("ats-backend", cfg.Environment)
	defer security.Sync()

	// 3. Data directory and single-instance lock. The data model assumes one
	// writer; a second process would race the store.
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		logger.Log.Error("Failed to create data directory", "dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}
	lock := flock.New(cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil || !locked {
		logger.Log.Error("Another instance is already running", "lock", cfg.LockPath(), "error", err)
		os.Exit(1)
	}
	defer lock.Unlock()

	// 4. Setup Store and Repository
	store, err := localstore.Open(cfg.StorePath())
	if err != nil {
		logger.Log.Error("Failed to open local store", "path", cfg.StorePath(), "error", err)
		os.Exit(1)
	}
	defer store.Close()

	repo := localdata.New(store, logger.Log)
	if err := repo.Load(); err != nil {
		logger.Log.Error("Failed to load data", "error", err)
		os.Exit(1)
	}

	// 5. Optional Redis (login rate limiter backend)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
		}
	}

	// 6. Setup UseCases
	validate := validator.New()
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	authUC := usecase.NewAuthUsecase(usecase.DefaultAllowlist(cfg.AdminPasswordHash, cfg.HRPasswordHash), tokens)
	candidateUC := usecase.NewCandidateUsecase(repo, validate)
	educationUC := usecase.NewEducationUsecase(repo, validate)
	backupUC := usecase.NewBackupUsecase(repo)
	spreadsheetUC := usecase.NewSpreadsheetUsecase(repo)
	dashboardUC := usecase.NewDashboardUsecase(repo)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		CandidateUC:   candidateUC,
		EducationUC:   educationUC,
		BackupUC:      backupUC,
		SpreadsheetUC: spreadsheetUC,
		DashboardUC:   dashboardUC,
		Repo:          repo,
		Tokens:        tokens,
		Config:        cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
