package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/chasethilleman/application-tracker-api/config"
	_ "github.com/chasethilleman/application-tracker-api/docs" // Important for Swagger
	v1 "github.com/chasethilleman/application-tracker-api/internal/delivery/http/v1"
	"github.com/chasethilleman/application-tracker-api/internal/repository/postgres"
	"github.com/chasethilleman/application-tracker-api/internal/usecase"
	"github.com/chasethilleman/application-tracker-api/pkg/database"
	"github.com/chasethilleman/application-tracker-api/pkg/logger"
	"github.com/chasethilleman/application-tracker-api/pkg/redis"
)

// @title           Application Tracker API
// @version         1.0
// @description     Backend for the personal job-application tracker.
// @host            localhost:8080
// @BasePath        /api
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
	logger.Log.Info("Starting application tracker backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional, rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repository and Usecase
	applicationRepo := postgres.NewApplicationRepository(dbPool)

	validate := validator.New()
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, validate)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ApplicationUC: applicationUC,
		Config:        cfg,
	})

	// 7. Start Server
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
