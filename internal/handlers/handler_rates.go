package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/harutok/warikan/internal/core/ports/services"
	"github.com/harutok/warikan/internal/dto"
	"github.com/harutok/warikan/internal/middleware"
)

// ratesHandler handles HTTP requests for the exchange rate table.
type ratesHandler struct {
	ratesService portssvc.RateProviderSvc
}

func newRatesHandler(rs portssvc.RateProviderSvc) *ratesHandler {
	return &ratesHandler{ratesService: rs}
}

// registerRatesRoutes registers the rate table routes. The refresh route gets
// the extra rate-limit middleware because it always hits the external source.
func registerRatesRoutes(rg *gin.RouterGroup, ratesService portssvc.RateProviderSvc, refreshLimiter gin.HandlerFunc) {
	h := newRatesHandler(ratesService)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.getRates)
		rates.POST("/refresh", refreshLimiter, h.refreshRates)
	}
}

// getRates returns the current rate table. A degraded fetch still answers 200
// with the fallback table and a warning; the client stays usable offline.
func (h *ratesHandler) getRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	table, fetchErr := h.ratesService.GetRates(c.Request.Context())
	if fetchErr != nil {
		logger.Warn("Serving fallback rate table", slog.String("reason", fetchErr.Error()))
	}

	c.JSON(http.StatusOK, dto.ToRateTableResponse(table, fetchErr))
}

// refreshRates forces a live fetch, bypassing the cache freshness check.
func (h *ratesHandler) refreshRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	table, fetchErr := h.ratesService.RefreshRates(c.Request.Context())
	if fetchErr != nil {
		logger.Warn("Refresh served fallback rate table", slog.String("reason", fetchErr.Error()))
	}

	c.JSON(http.StatusOK, dto.ToRateTableResponse(table, fetchErr))
}
