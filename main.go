package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"lifefit/internal/config"
	"lifefit/internal/database"
	"lifefit/internal/handlers"
	"lifefit/internal/logger"
	"lifefit/internal/middleware"
	"lifefit/internal/repositories"
	"lifefit/internal/services"
	"lifefit/pkg/rabbitmq"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		// The logger depends on the configuration, so fall back to a bare one.
		zap.NewExample().Fatal("failed to load configuration", zap.Error(err))
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, OutputPath: cfg.LogFile})
	if err != nil {
		zap.NewExample().Fatal("failed to build logger", zap.Error(err))
	}
	defer log.Sync() //nolint:errcheck

	// --- Database ---
	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN, log)
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	if err := repositories.AutoMigrate(db); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	// --- RabbitMQ (optional) ---
	var publisher services.AccountEventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, log)
		if err != nil {
			log.Fatal("failed to initialize RabbitMQ client", zap.Error(err))
		}
		defer mqClient.Close()
		publisher = mqClient

		if err := mqClient.ConsumeAccountEvents(logAccountEvent(log)); err != nil {
			log.Error("failed to start account event consumer", zap.Error(err))
		}
	} else {
		log.Info("RABBITMQ_URL not set, account events are disabled")
	}

	app := newApp(db, cfg, publisher, log)

	// --- Start HTTP Server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("starting server", zap.String("port", cfg.AppPort))
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	<-quit
	log.Info("shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error("error during Fiber shutdown", zap.Error(err))
	}
	log.Info("server gracefully stopped")
}

// newApp wires repositories, services and handlers into a Fiber app.
// publisher may be nil.
func newApp(db *gorm.DB, cfg *config.Config, publisher services.AccountEventPublisher, log *zap.Logger) *fiber.App {
	store := repositories.NewGORMStore(db)
	hasher := services.NewBcryptHasher(cfg.BcryptCost)

	accountService := services.NewAccountService(store, hasher, publisher, log.Named("accounts"))
	authService := services.NewAuthService(store.Accounts(), hasher, cfg.JWTSecret, cfg.TokenTTL, log.Named("auth"))
	postService := services.NewPostService(store, log.Named("posts"))

	app := fiber.New()
	app.Use(fiberlogger.New())

	apiV1 := app.Group("/api/v1")
	handlers.NewAuthHandler(accountService, authService, log).RegisterRoutes(apiV1)

	protected := apiV1.Group("", middleware.AuthRequired(authService, log))
	handlers.NewAccountHandler(accountService, log).RegisterRoutes(protected)
	handlers.NewPostHandler(postService, log).RegisterRoutes(protected)

	app.Get("/health", func(c *fiber.Ctx) error {
		status := "healthy"
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.UserContext()) != nil {
			status = "degraded"
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": status,
			"time":   time.Now().Format(time.RFC3339),
			"events": publisher != nil,
		})
	})

	return app
}

// logAccountEvent is the consumer side of the account events queue.
func logAccountEvent(log *zap.Logger) func(rabbitmq.AccountEvent) error {
	return func(event rabbitmq.AccountEvent) error {
		log.Info("account event received",
			zap.String("event_id", event.ID),
			zap.String("type", event.Type),
			zap.Uint("account_id", event.AccountID),
			zap.Time("occurred_at", event.OccurredAt))
		return nil
	}
}
