package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"clienthub/docs"
	"clienthub/internal/cache"
	"clienthub/internal/config"
	"clienthub/internal/database"
	"clienthub/internal/database/migration"
	"clienthub/internal/event"
	handlers "clienthub/internal/http/handler"
	"clienthub/internal/http/middleware"
	"clienthub/internal/otel"
	"clienthub/internal/repository/postgres"
	"clienthub/internal/service"
	"clienthub/internal/storage"
)

// @title Client Hub API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize tracing; degrades gracefully when no exporter is reachable
	shutdownTracing, err := otel.Init(context.Background(), logger)
	if err != nil {
		logger.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(ctx)
	}()

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	migCtx, cancelMig := context.WithTimeout(context.Background(), 30*time.Second)
	if err := migration.EnsureMigrated(migCtx, db, logger); err != nil {
		cancelMig()
		logger.Fatal("failed to migrate schema", zap.Error(err))
	}
	cancelMig()

	// Initialize S3-compatible object storage for client logos
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		logger.Fatal("failed to initialize object storage", zap.Error(err))
	}

	// Optional backends: dashboard cache and lifecycle event publisher
	rdb := cache.NewRedisClient(cfg.Redis)
	if rdb == nil {
		logger.Info("redis not configured, dashboard cache disabled")
	}
	dashCache := cache.NewDashboardCache(rdb, time.Duration(cfg.Redis.TTLSec)*time.Second, logger)

	var events event.Publisher = event.Noop{}
	if cfg.MQ.URL != "" {
		pub, err := event.NewRabbitPublisher(cfg.MQ.URL)
		if err != nil {
			logger.Warn("message broker unavailable, lifecycle events disabled", zap.Error(err))
		} else {
			events = pub
			defer pub.Close()
		}
	}

	// Initialize repositories and services
	clientRepo := postgres.NewClientPostgres(db)
	projectRepo := postgres.NewProjectPostgres(db)
	taskRepo := postgres.NewTaskPostgres(db)

	clientSvc := service.NewClientService(clientRepo, objStore, dashCache, events, logger)
	projectSvc := service.NewProjectService(projectRepo, dashCache, events, logger)
	taskSvc := service.NewTaskService(taskRepo, dashCache, events, logger)
	dashboardSvc := service.NewDashboardService(clientRepo, projectRepo, taskRepo, dashCache, logger)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	promMW, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal("failed to register metrics", zap.Error(err))
	}

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logger))
	app.Use(otelfiber.Middleware())
	app.Use(promMW.Handler())

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, clientSvc, projectSvc, taskSvc, dashboardSvc)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
