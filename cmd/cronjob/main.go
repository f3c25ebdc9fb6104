package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"homestay-booking-backend/internal/config"
	"homestay-booking-backend/internal/jobs"
	"homestay-booking-backend/internal/logger"
	"homestay-booking-backend/internal/repository/postgres"
	"homestay-booking-backend/internal/scheduler"
	"homestay-booking-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'complete-finished-stays', 'all-nightly')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Homestay Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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

	// Initialize Services
	emailService := service.NewEmailService(
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

	clock := service.SystemClock{}
	bookingService := service.NewBookingService(
		store.BookingRepository,
		store.PropertyRepository,
		store.AvailabilityRepository,
		store.UserRepository,
		store.NotificationRepository,
		emailService,
		clock,
		service.BookingEngineOptions{
			Currency:          cfg.Booking.Currency,
			ReferencePrefix:   cfg.Booking.ReferencePrefix,
			ReferenceAttempts: cfg.Booking.ReferenceAttempts,
			WeekendDays:       weekendDays,
		},
	)

	jobServices := &jobs.Services{
		Email:   emailService,
		Booking: bookingService,
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(db, store, jobServices, cfg, clock)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "complete-finished-stays":
		jobRunner.CompleteFinishedStays()
	case "mark-no-shows":
		jobRunner.MarkNoShows()
	case "send-check-in-reminders":
		jobRunner.SendCheckInReminders()
	case "all-nightly":
		jobRunner.RunAllNightlyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - complete-finished-stays\n")
		fmt.Printf("  - mark-no-shows\n")
		fmt.Printf("  - send-check-in-reminders\n")
		fmt.Printf("  - all-nightly\n")
		os.Exit(1)
	}
}
