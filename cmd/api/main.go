package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Hereaj/portfolio-api/internal/background"
	"github.com/Hereaj/portfolio-api/internal/config"
	"github.com/Hereaj/portfolio-api/internal/database"
	"github.com/Hereaj/portfolio-api/internal/handlers"
	middlewareCustom "github.com/Hereaj/portfolio-api/internal/middleware"
	"github.com/Hereaj/portfolio-api/internal/repositories"
	"github.com/Hereaj/portfolio-api/internal/routes"
	"github.com/Hereaj/portfolio-api/internal/services"
	"github.com/Hereaj/portfolio-api/internal/session"
	pkgauth "github.com/Hereaj/portfolio-api/pkg/auth"
	pkghttp "github.com/Hereaj/portfolio-api/pkg/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("configuration loaded", slog.String("env", cfg.Server.Env))

	// Initialize database
	db, err := database.NewConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	// Run schema migrations
	migrateCtx, migrateCancel := context.WithTimeout(context.Background(), 60*time.Second)
	if err := database.Migrate(migrateCtx, cfg.Database.DSN()); err != nil {
		migrateCancel()
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}
	migrateCancel()

	// Resolve the admin password hash. A pre-hashed value wins; a
	// plaintext fallback is hashed once at startup so the process never
	// holds it beyond this point.
	passwordHash := cfg.Auth.AdminPasswordHash
	if passwordHash == "" {
		passwordHash, err = pkgauth.HashPassword(cfg.Auth.AdminPassword)
		if err != nil {
			logger.Error("failed to hash admin password", slog.Any("error", err))
			os.Exit(1)
		}
	}

	// Initialize repositories
	heroRepo := repositories.NewHeroRepository(db)
	aboutRepo := repositories.NewAboutRepository(db)
	statRepo := repositories.NewStatRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	skillRepo := repositories.NewSkillRepository(db)
	educationRepo := repositories.NewEducationRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	messageRepo := repositories.NewMessageRepository(db)

	// Session state lives in memory; a restart logs the admin out
	store := session.NewStore(cfg.Auth.SessionTTL)
	limiter := session.NewLimiter(cfg.Auth.MaxLoginAttempts, cfg.Auth.AttemptWindow)
	sweeper := background.NewSweeper(store, limiter, logger, cfg.Auth.SweepInterval)

	// Email notifications are optional; without SES config the contact
	// form still stores messages.
	var emailService services.EmailService
	if cfg.Email.EmailEnabled() {
		emailService, err = services.NewAWSSESEmailService(cfg.Email.AWSRegion, cfg.Email.FromAddress, cfg.Email.ToAddress, logger)
		if err != nil {
			logger.Error("failed to initialize email service", slog.Any("error", err))
			os.Exit(1)
		}
	} else {
		emailService = services.NewNoopEmailService(logger)
	}

	// Initialize services
	authService := services.NewAuthService(cfg.Auth.AdminUsername, passwordHash, store, limiter, logger)
	contentService := services.NewContentService(heroRepo, aboutRepo, statRepo, projectRepo, skillRepo, educationRepo, contactRepo, logger)
	messageService := services.NewMessageService(messageRepo, emailService, logger)

	// Initialize handlers
	ipConfig := &pkghttp.IPConfig{TrustedProxies: []string{"127.0.0.1/32", "10.0.0.0/8", "172.16.0.0/12"}}
	portfolioHandler := handlers.NewPortfolioHandler(contentService, messageService)
	adminHandler := handlers.NewAdminHandler(authService, contentService, ipConfig)

	// Setup router
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middlewareCustom.SecurityHeaders(middlewareCustom.SecurityHeadersConfig{Env: cfg.Server.Env}))
	router.Use(middlewareCustom.CORS(middlewareCustom.NewCORSConfig(cfg.Server.AllowedOrigins)))
	router.Use(middlewareCustom.SecureLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// Register routes
	routes.RegisterRoutes(router, portfolioHandler, adminHandler, store)

	// Health check with database
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.HealthCheck(ctx); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"unhealthy","database":"down"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy","database":"up"}`))
	})

	// Create server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start session sweeper
	sweepCtx, sweepCancel := context.WithCancel(context.Background())
	defer sweepCancel()

	go sweeper.Start(sweepCtx)

	// Start server
	go func() {
		logger.Info("starting server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutdown signal received")

	sweepCancel()
	sweeper.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("server stopped gracefully")
}
