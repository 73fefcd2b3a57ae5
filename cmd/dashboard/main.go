package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/peakstock/stockdeck/docs"
	"github.com/peakstock/stockdeck/internal/catalog/rest"
	"github.com/peakstock/stockdeck/internal/config"
	"github.com/peakstock/stockdeck/internal/dashboard"
	httpDelivery "github.com/peakstock/stockdeck/internal/dashboard/delivery/http"
	"github.com/peakstock/stockdeck/pkg/logger"
	"github.com/peakstock/stockdeck/pkg/tracing"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	serviceName := getEnv("OTEL_SERVICE_NAME", "dashboard-service")
	isDevelopment := cfg.Environment == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", cfg.Environment).
		Str("catalog_base_url", cfg.Catalog.BaseURL).
		Msg("Starting dashboard service")

	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx, tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shut down tracer")
		}
	}()

	catalogClient := rest.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout)

	handler, err := dashboard.InitializeDashboardHandler(catalogClient, cfg.SessionTTL)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handler")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	limiter := httpDelivery.NewRateLimiter(redisClient, cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)

	// Idle sessions mirror navigation away from the page.
	go func() {
		ticker := time.NewTicker(cfg.SessionTTL / 2)
		defer ticker.Stop()
		for range ticker.C {
			remaining := handler.Pages().Purge()
			logger.Logger.Debug().Int("live_sessions", remaining).Msg("Purged idle sessions")
		}
	}()

	startHTTPServer(handler, limiter, cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func startHTTPServer(handler *httpDelivery.DashboardHandler, limiter *httpDelivery.RateLimiter, port string) {
	router := mux.NewRouter()

	middlewareConfig := httpDelivery.DefaultMiddlewareConfig()
	httpDelivery.RegisterMiddlewares(router, middlewareConfig)

	handler.RegisterRoutes(router)
	handler.RegisterMutationRoutes(router, limiter.Limit)
	handler.RegisterHealthCheck(router)

	router.Handle("/metrics", promhttp.Handler())
	httpDelivery.RegisterSwaggerDocs(router, httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	corsHandler := httpDelivery.SetupCORS(middlewareConfig)(router)
	traced := otelhttp.NewHandler(corsHandler, "dashboard-http-request")

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Str("swagger_endpoint", "/swagger/").
		Msg("HTTP server started")

	go func() {
		if err := http.ListenAndServe(":"+port, traced); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
