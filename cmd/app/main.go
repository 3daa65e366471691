package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ordering/cmd"
	api "ordering/internal/adapters/in/http"
	"ordering/internal/adapters/out/kafka"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/rabbitmq"
	"ordering/internal/adapters/out/redis"
	"ordering/internal/core/ports"
	"ordering/internal/generated/servers"
	"ordering/internal/observability"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	settings := observability.Settings{
		ServiceName:    configs.ServiceName,
		ServiceVersion: "1.0.0",
		Endpoint:       configs.OTELEndpoint,
		AuthHeader:     configs.OTELAuthHeader,
	}
	tp, shutdownTraces, err := observability.SetupTracingSDK(ctx, settings)
	if err != nil {
		log.Fatalf("failed to set up tracing: %v", err)
	}
	shutdownLogs, err := observability.SetupLoggingSDK(ctx, settings)
	if err != nil {
		log.Fatalf("failed to set up log export: %v", err)
	}
	shutdownTelemetry := observability.JoinShutdown(shutdownTraces, shutdownLogs)

	logger, err := observability.NewLogger(settings, configs.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	gormDB := mustOpenDatabase(ctx, configs, logger)

	publisher, closePublisher := mustCreatePublisher(configs, tp, logger)
	idempotency, closeIdempotency := mustCreateIdempotencyStore(ctx, configs, logger)

	app, err := cmd.NewCompositionRoot(configs, gormDB, publisher, idempotency, logger)
	if err != nil {
		logger.Fatal("failed to wire application", zap.Error(err))
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		logger.Fatal("failed to start jobs", zap.Error(err))
	}

	srv := startWebServer(app, configs, logger)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", zap.Error(err))
	}
	jobManager.StopAll()
	closeAll(logger, closePublisher, closeIdempotency)
	if sqlDB, dbErr := gormDB.DB(); dbErr == nil {
		closeAll(logger, sqlDB)
	}
	if err = shutdownTelemetry(shutdownCtx); err != nil {
		logger.Error("telemetry shutdown", zap.Error(err))
	}
}

func mustOpenDatabase(ctx context.Context, configs cmd.Config, logger *zap.Logger) *gorm.DB {
	dsn := postgres.DSN(configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	if err := postgres.EnsureDatabase(ctx, dsn); err != nil {
		logger.Fatal("failed to ensure database", zap.Error(err))
	}

	gormDB, err := gorm.Open(gormpg.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}

	if err = postgres.Migrate(gormDB); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	return gormDB
}

func mustCreatePublisher(configs cmd.Config, tp trace.TracerProvider, logger *zap.Logger) (ports.EventPublisher, io.Closer) {
	switch configs.EventBroker {
	case cmd.BrokerRabbitMQ:
		conn, ch, err := rabbitmq.Dial(configs.RabbitMQURL)
		if err != nil {
			logger.Fatal("failed to connect to rabbitmq", zap.Error(err))
		}
		publisher, err := rabbitmq.NewPublisher(ch, configs.RabbitMQExchange)
		if err != nil {
			logger.Fatal("failed to declare exchange", zap.Error(err))
		}
		logger.Info("publishing events to rabbitmq", zap.String("exchange", configs.RabbitMQExchange))
		return publisher, conn
	default:
		writer, err := kafka.NewWriter(configs.KafkaBrokers(), configs.KafkaEventsTopic, configs.ServiceName, tp)
		if err != nil {
			logger.Fatal("failed to create kafka writer", zap.Error(err))
		}
		logger.Info("publishing events to kafka", zap.String("topic", configs.KafkaEventsTopic))
		return kafka.NewPublisher(writer), writer
	}
}

func mustCreateIdempotencyStore(ctx context.Context, configs cmd.Config, logger *zap.Logger) (ports.IdempotencyStore, io.Closer) {
	if configs.RedisAddr == "" {
		logger.Warn("REDIS_ADDR is not set, idempotency keys are ignored")
		return nil, nil
	}

	client, err := redis.NewClient(ctx, configs.RedisAddr)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	return redis.NewIdempotencyStore(client, configs.IdempotencyTTL), client
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config, logger *zap.Logger) *http.Server {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(echoLogLevel(configs.LogLevel))
	e.HTTPErrorHandler = api.ErrorHandler(logger)
	e.Use(middleware.Recover())
	e.Use(api.ActorMiddleware([]byte(configs.JWTSecret)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	if err := api.RegisterSwaggerDoc(); err != nil {
		logger.Fatal("failed to load openapi document", zap.Error(err))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, app.CreateHTTPServer())

	srv := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort),
		Handler:           otelhttp.NewHandler(e, configs.ServiceName),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	return srv
}

func echoLogLevel(level string) log.Lvl {
	switch level {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}

func closeAll(logger *zap.Logger, closers ...io.Closer) {
	for _, c := range closers {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil {
			logger.Error("close failed", zap.Error(err))
		}
	}
}
