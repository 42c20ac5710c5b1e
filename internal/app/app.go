package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"lawlink_backend/database"
	"lawlink_backend/internal/config"
	"lawlink_backend/internal/email"
	"lawlink_backend/internal/handlers"
	"lawlink_backend/internal/logger"
	"lawlink_backend/internal/middleware"
	"lawlink_backend/internal/repositories"
	"lawlink_backend/internal/routes"
	"lawlink_backend/internal/services"
	"lawlink_backend/internal/storage"
	"lawlink_backend/internal/validator"
	"lawlink_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Run boots the whole server: config, database, services, router and the
// completion sweep worker. Blocks until SIGINT/SIGTERM.
func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}
	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("failed to migrate database", "error", err)
	}
	logger.Info("database connected")

	svc := initializeServices(cfg, gormDB)

	router := SetupRouter(cfg, svc)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sweep := workers.NewCompletionWorker(
		svc.Consultations,
		time.Duration(cfg.Sweep.IntervalMinutes)*time.Minute,
	)
	sweep.Start(ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:    address,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", "address", address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}

// ServiceContainer holds every service for handler construction and tests.
type ServiceContainer struct {
	Auth          services.AuthService
	Consultations services.ConsultationService
	Payments      services.PaymentService
	Notifications services.NotificationService
	Availability  services.AvailabilityService
	Affiliations  services.AffiliationService
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB) *ServiceContainer {
	files, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	logger.Info("storage initialized", "type", cfg.Storage.Type)

	var mail email.Provider
	if cfg.Email.Enabled {
		mail = email.NewSMTPProvider(cfg)
		logger.Info("email side-channel enabled", "host", cfg.Email.SMTPHost)
	} else {
		logger.Warn("email side-channel disabled")
	}

	userRepo := repositories.NewUserRepository(gormDB)
	consultationRepo := repositories.NewConsultationRepository(gormDB)
	paymentRepo := repositories.NewPaymentRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)
	availabilityRepo := repositories.NewAvailabilityRepository(gormDB)
	noteRepo := repositories.NewNoteRepository(gormDB)
	affiliationRepo := repositories.NewAffiliationRepository(gormDB)

	return &ServiceContainer{
		Auth: services.NewAuthService(userRepo),
		Consultations: services.NewConsultationService(
			consultationRepo, availabilityRepo, affiliationRepo, paymentRepo, noteRepo, userRepo,
		),
		Payments:      services.NewPaymentService(paymentRepo, consultationRepo, userRepo, files, mail),
		Notifications: services.NewNotificationService(notificationRepo),
		Availability:  services.NewAvailabilityService(availabilityRepo, userRepo),
		Affiliations:  services.NewAffiliationService(affiliationRepo, userRepo, mail),
	}
}

// SetupRouter builds the Gin engine with middleware and all routes.
func SetupRouter(cfg *config.Config, svc *ServiceContainer) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
	)

	v := validator.New()
	base := handlers.NewBaseHandler(v)

	appHandlers := &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(base, svc.Auth),
		ConsultationHandler: handlers.NewConsultationHandler(base, svc.Consultations),
		PaymentHandler:      handlers.NewPaymentHandler(base, svc.Payments),
		NotificationHandler: handlers.NewNotificationHandler(base, svc.Notifications),
		AvailabilityHandler: handlers.NewAvailabilityHandler(base, svc.Availability),
		AffiliationHandler:  handlers.NewAffiliationHandler(base, svc.Affiliations),
	}

	routes.RegisterRoutes(router, appHandlers)
	return router
}
