package main

import (
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/harutok/warikan/internal/adapters/exchangerate"
	portssvc "github.com/harutok/warikan/internal/core/ports/services"
	"github.com/harutok/warikan/internal/core/services"
	"github.com/harutok/warikan/internal/handlers"
	"github.com/harutok/warikan/internal/middleware"
	"github.com/harutok/warikan/internal/platform/config"
	"github.com/harutok/warikan/internal/repositories/memory"
	"github.com/harutok/warikan/internal/repositories/ratecache"
	"github.com/harutok/warikan/pkg/logging"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := logging.Setup(cfg.IsProduction)

	// Rate cache is the only persisted state; members and payments are
	// session-scoped.
	cache, err := ratecache.New(cfg.RateCachePath)
	if err != nil {
		logger.Error("Failed to initialize rate cache", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cache.Close()
	logger.Info("Rate cache initialized", slog.String("path", cfg.RateCachePath))

	memberRepo := memory.NewMemberRepository()
	paymentRepo := memory.NewPaymentRepository()

	fetcher := exchangerate.NewClient(cfg.ExchangeRateAPIURL, cfg.ExchangeRateAPIKey, cfg.FetchTimeout)
	ratesService := services.NewRatesService(fetcher, cache, cfg.RateCacheTTL, cfg.ExchangeRateAPIKey)

	container := &portssvc.ServiceContainer{
		Member:     services.NewMemberService(memberRepo),
		Payment:    services.NewPaymentService(paymentRepo, memberRepo, ratesService),
		Rates:      ratesService,
		Settlement: services.NewSettlementService(memberRepo, paymentRepo),
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, metrics, recovery, CORS)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		middleware.MetricsMiddleware(),
		gin.Recovery(),
		cors.Default(),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
