package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	api "buxmate-backend/internal/api/http"
	"buxmate-backend/internal/api/http/middleware"
	"buxmate-backend/internal/auth"
	"buxmate-backend/internal/config"
	"buxmate-backend/internal/logger"
	"buxmate-backend/internal/repository/postgres"
	"buxmate-backend/internal/security"
	"buxmate-backend/internal/service"
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
	logger.Info("Starting Buxmate Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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

	// Initialize session verifier
	var verifier auth.Verifier
	switch cfg.Auth.Provider {
	case "firebase":
		logger.Info("Using Firebase session verification")
		verifier, err = auth.NewFirebaseVerifier(context.Background(), cfg.Auth.CredentialsFile)
		if err != nil {
			logger.Error("Failed to initialize Firebase verifier", "error", err)
			log.Fatalf("Failed to initialize Firebase verifier: %v", err)
		}
	default:
		logger.Info("Using local JWT session verification")
		verifier = auth.NewJWTVerifier(security.NewTokenManager(cfg.Auth.JWTSecret))
	}

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.Email.SendGridAPIKey,
		cfg.Email.FromEmail,
		cfg.Email.FromName,
	)

	// Initialize Services
	invitationSvc := service.NewInvitationService(
		store.InvitationRepository,
		store.EventRepository,
		store.UserRepository,
		store.NotificationRepository,
		security.NewInviteTokenGenerator(),
		emailSvc,
		cfg.Server.BaseURL,
		cfg.Invitations.DefaultExpiryDays,
	)
	rosterSvc := service.NewRosterService(
		store.InvitationRepository,
		store.EventRepository,
		store.UserRepository,
		store.ActivityRepository,
	)
	eventSvc := service.NewEventService(store.EventRepository)
	activitySvc := service.NewActivityService(
		store.ActivityRepository,
		store.EventRepository,
		store.InvitationRepository,
	)
	userSvc := service.NewUserService(store.UserRepository)
	verificationSvc := service.NewVerificationService(
		store.VerificationRepository,
		store.UserRepository,
		emailSvc,
	)
	notificationSvc := service.NewNotificationService(store.NotificationRepository)

	// Initialize HTTP handlers
	authMW := middleware.NewAuthMiddleware(verifier, userSvc)
	eventHandler := api.NewEventHandler(eventSvc, rosterSvc, activitySvc)
	invitationHandler := api.NewInvitationHandler(invitationSvc)
	activityHandler := api.NewActivityHandler(activitySvc)
	userHandler := api.NewUserHandler(userSvc, verificationSvc, notificationSvc)

	router := api.NewRouter(authMW, eventHandler, invitationHandler, activityHandler, userHandler)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("Failed to serve HTTP", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
