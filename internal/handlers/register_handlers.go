package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/harutok/warikan/internal/core/domain"
	portssvc "github.com/harutok/warikan/internal/core/ports/services"
	"github.com/harutok/warikan/internal/middleware"
	"github.com/harutok/warikan/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	registerCustomValidators()

	// Health and metrics endpoints
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1")

	v1.GET("/", getHome)
	registerCurrencyRoutes(v1)
	registerMemberRoutes(v1, services.Member)
	registerPaymentRoutes(v1, services.Payment)
	registerSettlementRoutes(v1, services.Settlement)
	registerRatesRoutes(v1, services.Rates, refreshLimiter(cfg))
}

// refreshLimiter builds the rate-limit middleware guarding the rates refresh
// route. An invalid format falls back to a permissive default rather than
// failing startup.
func refreshLimiter(cfg *config.Config) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(cfg.RefreshRateLimit)
	if err != nil {
		slog.Warn("Invalid REFRESH_RATE_LIMIT, defaulting to 10-M", slog.String("value", cfg.RefreshRateLimit), slog.String("error", err.Error()))
		rate, _ = limiter.NewRateFromFormatted("10-M")
	}
	store := limitermemory.NewStore()
	return middleware.RateLimit(limiter.New(store, rate))
}

// registerCustomValidators wires domain validations into the Gin binding
// engine. The currencycode tag restricts payment input to the closed
// supported-currency set, so conversion logic never sees an unknown code from
// the outside.
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("currencycode", func(fl validator.FieldLevel) bool {
			return domain.IsSupportedCurrency(fl.Field().String())
		})
	}
}
