package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"feedback-builder/internal/adapter"
	"feedback-builder/internal/cache"
	"feedback-builder/internal/config"
	"feedback-builder/internal/database"
	"feedback-builder/internal/handler"
	"feedback-builder/internal/logger"
	"feedback-builder/internal/middleware"
	"feedback-builder/internal/observability"
	"feedback-builder/internal/repository"
	"feedback-builder/internal/service"
	"feedback-builder/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	redisClient, err := cache.NewRedisClient(startupCtx, cfg.Redis)
	cancelStartup()
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewMetrics(registry)

	categoryRepository := repository.NewCategoryDatabaseAdapter(db)
	formRepository := repository.NewFeedbackFormDatabaseAdapter(db)

	catalogService := service.NewCatalogService(categoryRepository, cacheAdapter, cfg.Builder.CatalogCacheTTL, cfg.Builder.CatalogPageSize, metrics)
	formService := service.NewFeedbackFormService(formRepository)
	builderService := service.NewFormBuilderService(
		catalogService,
		formRepository,
		service.NewDraftSessionStore(cacheAdapter, cfg.Builder.SessionTTL),
		service.NewSubmitGuard(cacheAdapter, cfg.Builder.SubmitLockTTL),
		service.NewLogNotifier(),
		metrics,
	)
	appLogger.Info("Services initialized",
		zap.Int("catalogPageSize", cfg.Builder.CatalogPageSize),
		zap.Duration("sessionTTL", cfg.Builder.SessionTTL))

	v := validation.NewValidator()

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})
	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))

	observability.RegisterMetricsEndpoint(app, registry)
	app.Get("/healthz", handler.NewHealthHandler(db, cacheAdapter).Healthz)
	handler.RegisterRoutes(app,
		handler.NewFeedbackFormHandler(catalogService, formService, v),
		handler.NewBuilderHandler(builderService, v),
		middleware.NewValidationMiddleware(v),
	)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
		return
	}
	appLogger.Info("Server exited gracefully")
}
