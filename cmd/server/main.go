package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	httpapi "rentafleet-backend/internal/api/http"
	"rentafleet-backend/internal/config"
	"rentafleet-backend/internal/logger"
	"rentafleet-backend/internal/repository/postgres"
	"rentafleet-backend/internal/security"
	"rentafleet-backend/internal/service"
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
	logger.Info("Starting RentaFleet Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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

	// Apply schema migrations
	if err := postgres.RunMigrations(db, cfg.Migrations.Path); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		log.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Database migrations applied")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.Auth.Secret,
		time.Duration(cfg.Auth.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.Auth.RefreshTokenExpiry)*time.Minute,
	)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email)
	authSvc := service.NewAuthService(store.EmployeeRepository, tokenManager)
	clientSvc := service.NewClientService(store.ClientRepository)
	employeeSvc := service.NewEmployeeService(store.EmployeeRepository)
	vehicleSvc := service.NewVehicleService(store.VehicleRepository)
	availabilitySvc := service.NewAvailabilityService(store.RentalRepository, store.MaintenanceRepository)
	rentalSvc := service.NewRentalService(
		store.RentalRepository,
		store.ClientRepository,
		store.EmployeeRepository,
		store.VehicleRepository,
		store.MaintenanceRepository,
		availabilitySvc,
		emailSvc,
	)
	maintenanceSvc := service.NewMaintenanceService(store.MaintenanceRepository, store.VehicleRepository, store.RentalRepository)
	fineSvc := service.NewFineService(store.FineRepository, store.RentalRepository)
	reportSvc := service.NewReportService(store.ReportRepository)
	reconcilerSvc := service.NewReconcilerService(store.VehicleRepository, store.RentalRepository, store.MaintenanceRepository)

	// Bring stored statuses in line with today's records before serving
	// traffic, in case the process was down over a date boundary.
	startupCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	report, err := reconcilerSvc.ReconcileVehicleStatuses(startupCtx, "")
	cancel()
	if err != nil {
		logger.Warn("Startup status reconciliation failed", "error", err)
	} else {
		logger.Info("Startup status reconciliation finished", "transitions", len(report.Transitions), "unchanged", report.Unchanged)
	}

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.RouterDeps{
		TokenManager: tokenManager,
		Auth:         authSvc,
		Clients:      clientSvc,
		Employees:    employeeSvc,
		Vehicles:     vehicleSvc,
		Availability: availabilitySvc,
		Rentals:      rentalSvc,
		Maintenances: maintenanceSvc,
		Fines:        fineSvc,
		Reports:      reportSvc,
		Reconciler:   reconcilerSvc,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
