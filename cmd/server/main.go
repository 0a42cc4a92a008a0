package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fixhub/service-repair/internal/application"
	"github.com/fixhub/service-repair/internal/auth"
	"github.com/fixhub/service-repair/internal/config"
	"github.com/fixhub/service-repair/internal/database"
	"github.com/fixhub/service-repair/internal/events"
	"github.com/fixhub/service-repair/internal/handler"
	"github.com/fixhub/service-repair/internal/health"
	"github.com/fixhub/service-repair/internal/logger"
	"github.com/fixhub/service-repair/internal/middleware"
	"github.com/fixhub/service-repair/internal/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "service-repair")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-repair",
		zap.String("port", cfg.Port),
	)

	// Connect to database
	db, err := database.Connect(cfg.DBConfig, cfg.AppEnv, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if cfg.AppEnv == "development" {
		err := db.AutoMigrate(
			&repository.BookingModel{},
			&repository.BookingItemModel{},
			&repository.BookingPaymentModel{},
			&repository.ContactLogModel{},
			&repository.DeliveryModel{},
			&repository.WarrantyModel{},
			&repository.WarrantyClaimModel{},
			&repository.WarrantyClaimItemModel{},
		)
		if err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		log.Info("database migration completed (dev auto-migrate)")
	} else {
		if err := database.RunMigrations(cfg.DBConfig, "migrations", log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWTConfig.Secret, 15*time.Minute)

	// Initialize Kafka producer
	kafkaProducer := events.NewProducer(cfg.KafkaConfig.Brokers, log)
	defer func() { _ = kafkaProducer.Close() }()

	// Initialize repositories
	bookingRepo := repository.NewGormBookingRepository(db)
	warrantyRepo := repository.NewGormWarrantyRepository(db)
	claimRepo := repository.NewGormClaimRepository(db)

	// Initialize application services
	bookingService := application.NewBookingService(bookingRepo, kafkaProducer, log)
	warrantyService := application.NewWarrantyService(
		warrantyRepo,
		claimRepo,
		bookingRepo,
		kafkaProducer,
		log,
	)

	// Initialize and start the logistics event consumer in a goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	groupID := cfg.KafkaConfig.GroupPrefix + "repair-service"
	logisticsConsumer := events.NewConsumer(
		cfg.KafkaConfig.Brokers,
		groupID,
		events.TopicLogisticsEvents,
		log,
	)
	defer func() { _ = logisticsConsumer.Close() }()

	deliveryHandler := application.NewDeliveryEventHandler(bookingService, log)
	go func() {
		log.Info("starting logistics event consumer", zap.String("group_id", groupID))
		if err := logisticsConsumer.Consume(ctx, deliveryHandler.Handle); err != nil && err != context.Canceled {
			log.Error("logistics event consumer error", zap.Error(err))
		}
	}()

	// Initialize HTTP handlers
	bookingHandler := handler.NewBookingHandler(bookingService, log)
	warrantyHandler := handler.NewWarrantyHandler(warrantyService, log)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())

	// Register health check routes
	healthHandler := health.NewHandler(db, "service-repair")
	healthHandler.RegisterRoutes(router)

	// Register routes
	bookingHandler.RegisterRoutes(&router.RouterGroup, jwtManager)
	warrantyHandler.RegisterRoutes(&router.RouterGroup, jwtManager)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-repair...")

	// Cancel the consumer context
	cancel()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-repair stopped")
}
