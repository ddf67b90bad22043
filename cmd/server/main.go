package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "carrental-backend/internal/api/http"
	"carrental-backend/internal/config"
	"carrental-backend/internal/jobs"
	"carrental-backend/internal/logger"
	"carrental-backend/internal/repository/postgres"
	"carrental-backend/internal/scheduler"
	"carrental-backend/internal/seed"
	"carrental-backend/internal/service"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env if present; real env vars still win
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Car Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Seed initial companies from CSV when the database is empty
	if cfg.Seed.Enabled {
		if err := seed.LoadIfEmpty(context.Background(), store, cfg.Seed.Dir); err != nil {
			logger.Error("Failed to seed companies", "error", err)
			log.Fatalf("Failed to seed companies: %v", err)
		}
	}

	// Initialize Services
	companySvc := service.NewCompanyService(store)
	rentalSvc := service.NewRentalService(store)
	orderSvc := service.NewOrderService(store)
	noteSvc := service.NewNotificationService(store.Notifications())
	emailSvc := service.NewEmailService(
		cfg.Email.SendGridAPIKey,
		cfg.Email.FromEmail,
		cfg.Email.FromName,
		cfg.Email.Disabled,
	)

	// Run the confirmation worker in-process; a standalone cmd/worker can
	// take over in deployments that split the two.
	jobRunner := jobs.NewJobRunner(db, store, &jobs.Services{
		Rental: rentalSvc,
		Email:  emailSvc,
	}, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()

	// Initialize HTTP handlers
	companyHandler := httpapi.NewCompanyHandler(companySvc, rentalSvc)
	rentalHandler := httpapi.NewRentalHandler(rentalSvc)
	orderHandler := httpapi.NewOrderHandler(orderSvc, noteSvc)

	router := httpapi.NewRouter(companyHandler, rentalHandler, orderHandler)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down...")
	cronScheduler.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
