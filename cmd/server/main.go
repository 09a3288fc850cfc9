package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/stocktrail/stocktrail/docs"
	"github.com/stocktrail/stocktrail/internal/inventory"
	invhttp "github.com/stocktrail/stocktrail/internal/inventory/delivery/http"
	invdomain "github.com/stocktrail/stocktrail/internal/inventory/domain"
	invcommand "github.com/stocktrail/stocktrail/internal/inventory/usecase/command"
	"github.com/stocktrail/stocktrail/internal/report"
	reporthttp "github.com/stocktrail/stocktrail/internal/report/delivery/http"
	"github.com/stocktrail/stocktrail/internal/request"
	reqhttp "github.com/stocktrail/stocktrail/internal/request/delivery/http"
	reqdomain "github.com/stocktrail/stocktrail/internal/request/domain"
	reqcommand "github.com/stocktrail/stocktrail/internal/request/usecase/command"
	"github.com/stocktrail/stocktrail/internal/user"
	userhttp "github.com/stocktrail/stocktrail/internal/user/delivery/http"
	userdomain "github.com/stocktrail/stocktrail/internal/user/domain"
	"github.com/stocktrail/stocktrail/kafka"
	"github.com/stocktrail/stocktrail/pkg/database"
	"github.com/stocktrail/stocktrail/pkg/logger"
	"github.com/stocktrail/stocktrail/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "stocktrail")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting stocktrail server")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "stocktraildb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&userdomain.User{},
		&invdomain.InventoryItem{},
		&invdomain.StockTransaction{},
		&reqdomain.StockRequest{},
	); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Kafka publisher is optional; the server runs without it
	var stockPublisher invcommand.StockEventPublisher
	var requestPublisher reqcommand.RequestEventPublisher
	kafkaBrokers := getEnv("KAFKA_BROKERS", "")
	if kafkaBrokers != "" {
		publisher, err := kafka.NewPublisher(strings.Split(kafkaBrokers, ","))
		if err != nil {
			logger.Logger.Warn().Err(err).
				Str("brokers", kafkaBrokers).
				Msg("Kafka unavailable, continuing without event publishing")
		} else {
			defer publisher.Close()
			stockPublisher = publisher
			requestPublisher = publisher
			logger.Logger.Info().Str("brokers", kafkaBrokers).Msg("Kafka publisher initialized")
		}
	}

	// Redis cache is optional; report endpoints fall back to the database
	var redisClient *redis.Client
	redisAddr := getEnv("REDIS_ADDR", "")
	if redisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     redisAddr,
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       0,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Logger.Warn().Err(err).
				Str("redis_addr", redisAddr).
				Msg("Redis unavailable, continuing without report caching")
		} else {
			redisClient = client
			logger.Logger.Info().Str("redis_addr", redisAddr).Msg("Redis cache initialized")
		}
		cancel()
	}

	// Initialize handlers with Wire DI
	inventoryHandler, err := inventory.InitializeHTTPHandler(db, stockPublisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize inventory handler")
	}

	itemLookup := inventory.ProvideInventoryRepository(db)
	requestHandler, err := request.InitializeHTTPHandler(db, itemLookup, requestPublisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize request handler")
	}

	userHandler, err := user.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize user handler")
	}

	reportHandler, err := report.InitializeHTTPHandler(db, redisClient)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize report handler")
	}

	logger.Logger.Info().Msg("Handlers initialized")

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8080")
	go startHTTPServer(&handlers{
		inventory: inventoryHandler,
		request:   requestHandler,
		user:      userHandler,
		report:    reportHandler,
	}, sqlDB, httpPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

type handlers struct {
	inventory *invhttp.InventoryHandler
	request   *reqhttp.RequestHandler
	user      *userhttp.UserHandler
	report    *reporthttp.ReportHandler
}

func startHTTPServer(h *handlers, db *sql.DB, port string) {
	// Setup router
	router := mux.NewRouter()

	// Register all middlewares using middleware registration system
	middlewareConfig := invhttp.DefaultMiddlewareConfig()
	invhttp.RegisterMiddlewares(router, middlewareConfig)

	// Register routes
	h.user.RegisterRoutes(router)
	h.inventory.RegisterRoutes(router)
	h.request.RegisterRoutes(router)
	h.report.RegisterRoutes(router)

	// Health check endpoint
	h.inventory.RegisterHealthCheck(router, db)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Swagger UI
	invhttp.RegisterSwaggerDocs(router, httpSwagger.Handler())

	// CORS middleware
	corsWrapper := invhttp.SetupCORS(middlewareConfig)

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Str("swagger_endpoint", "/swagger/").
		Msg("HTTP server started")

	if err := http.ListenAndServe(":"+port, corsWrapper(router)); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
