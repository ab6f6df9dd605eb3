package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/artneelam/studio-api/internal/config"
	"github.com/artneelam/studio-api/internal/database"
	"github.com/artneelam/studio-api/internal/handler"
	"github.com/artneelam/studio-api/internal/middleware"
	"github.com/artneelam/studio-api/internal/models"
	"github.com/artneelam/studio-api/internal/repository"
	"github.com/artneelam/studio-api/internal/router"
	"github.com/artneelam/studio-api/internal/service"
	cloud "github.com/artneelam/studio-api/pkg/cloudinary"
	"github.com/artneelam/studio-api/pkg/scoring"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Lead{},
		&models.Student{},
		&models.AttendanceRecord{},
		&models.Payment{},
		&models.Expense{},
		&models.Notice{},
		&models.Settings{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	validate := validator.New(validator.WithRequiredStructEnabled())

	var scorer scoring.LeadScorer
	if cfg.ScoringAPIKey != "" {
		gateway, err := scoring.NewGateway(scoring.GatewayConfig{
			BaseURL: cfg.ScoringBaseURL,
			APIKey:  cfg.ScoringAPIKey,
			Model:   cfg.ScoringModel,
			Timeout: cfg.ScoringTimeout,
			Logger:  logger,
		})
		if err != nil {
			log.Fatalf("failed to create scoring gateway: %v", err)
		}
		scorer = gateway
	}

	var photoStorage service.PhotoStorage
	if cfg.CloudName != "" {
		uploader, err := cloud.New(cloud.Config{
			CloudName: cfg.CloudName,
			APIKey:    cfg.CloudAPIKey,
			APISecret: cfg.CloudAPISecret,
			Folder:    cfg.CloudFolder,
		}, logger)
		if err != nil {
			log.Fatalf("failed to create cloudinary client: %v", err)
		}
		photoStorage = uploader
	}

	leadRepo := repository.NewLeadRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	noticeRepo := repository.NewNoticeRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	leadService := service.NewLeadService(leadRepo, scorer, validate, logger)
	studentService := service.NewStudentService(studentRepo, attendanceRepo, paymentRepo, validate, logger)
	attendanceService := service.NewAttendanceService(attendanceRepo, studentRepo, validate, logger)
	paymentService := service.NewPaymentService(paymentRepo, studentRepo, validate, logger)
	expenseService := service.NewExpenseService(expenseRepo, validate, logger)
	noticeService := service.NewNoticeService(noticeRepo, validate, logger)
	dashboardService := service.NewDashboardService(leadRepo, studentRepo, attendanceRepo, paymentRepo, noticeRepo, redisClient, cfg.DashboardCacheTTL, cfg.DashboardTimeout, logger)
	settingsService := service.NewSettingsService(settingsRepo, validate, logger)
	messageService := service.NewMessageService(studentRepo, paymentRepo, leadRepo, validate, cfg.CountryCode, cfg.AdminWhatsApp, logger)
	registrationService := service.NewRegistrationService(leadRepo, logger)
	photoService := service.NewPhotoService(photoStorage, studentService, cfg.PhotoMaxSizeMB, logger)
	seedService := service.NewSeedService(leadRepo, studentRepo, attendanceRepo, paymentRepo, expenseRepo, noticeRepo, !cfg.IsProduction(), logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		LeadHandler:         handler.NewLeadHandler(leadService, logger),
		StudentHandler:      handler.NewStudentHandler(studentService, photoService, logger),
		AttendanceHandler:   handler.NewAttendanceHandler(attendanceService, logger),
		PaymentHandler:      handler.NewPaymentHandler(paymentService, logger),
		ExpenseHandler:      handler.NewExpenseHandler(expenseService, logger),
		NoticeHandler:       handler.NewNoticeHandler(noticeService, logger),
		DashboardHandler:    handler.NewDashboardHandler(dashboardService, logger),
		SettingsHandler:     handler.NewSettingsHandler(settingsService, logger),
		MessageHandler:      handler.NewMessageHandler(messageService, logger),
		RegistrationHandler: handler.NewRegistrationHandler(registrationService, logger),
		IntegrationHandler:  handler.NewIntegrationHandler(leadService, logger),
		PortalHandler:       handler.NewPortalHandler(studentService, noticeService, logger),
		SeedHandler:         handler.NewSeedHandler(seedService, logger),
		JWTMiddleware:       middleware.JWTProtected(cfg.JWTSecret),
		APIKeyMiddleware:    middleware.APIKey(cfg.LeadAPIKey),
		CacheInvalidator:    middleware.CacheInvalidator(dashboardService.Invalidate),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
