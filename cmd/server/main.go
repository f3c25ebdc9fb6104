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

	_ "github.com/lib/pq"

	httpapi "homestay-booking-backend/internal/api/http"
	"homestay-booking-backend/internal/config"
	"homestay-booking-backend/internal/logger"
	"homestay-booking-backend/internal/repository/postgres"
	"homestay-booking-backend/internal/security"
	"homestay-booking-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Homestay Booking Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("SMTP configuration", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)

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

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
	)

	weekendDays, err := cfg.WeekendDays()
	if err != nil {
		log.Fatalf("Invalid weekend day configuration: %v", err)
	}

	// Initialize Services
	clock := service.SystemClock{}
	bookingSvc := service.NewBookingService(
		store.BookingRepository,
		store.PropertyRepository,
		store.AvailabilityRepository,
		store.UserRepository,
		store.NotificationRepository,
		emailSvc,
		clock,
		service.BookingEngineOptions{
			Currency:          cfg.Booking.Currency,
			ReferencePrefix:   cfg.Booking.ReferencePrefix,
			ReferenceAttempts: cfg.Booking.ReferenceAttempts,
			WeekendDays:       weekendDays,
		},
	)
	propertySvc := service.NewPropertyService(store.PropertyRepository, store.AvailabilityRepository)
	paymentSvc := service.NewPaymentService(store.PaymentTransactionRepository, store.BookingRepository, bookingSvc)
	reviewSvc := service.NewReviewService(store.ReviewRepository, store.BookingRepository, clock)
	noteSvc := service.NewNotificationService(store.NotificationRepository)

	// Build the router
	router := httpapi.NewRouter(httpapi.RouterDeps{
		Bookings:      bookingSvc,
		Properties:    propertySvc,
		Payments:      paymentSvc,
		Reviews:       reviewSvc,
		Notifications: noteSvc,
		Tokens:        tokenManager,
	})

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
