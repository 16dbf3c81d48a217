package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harutok/warikan/internal/core/domain"
	"github.com/harutok/warikan/internal/dto"
)

// registerCurrencyRoutes registers the supported-currency route. The set is a
// closed enumeration, so there is no service behind it.
func registerCurrencyRoutes(rg *gin.RouterGroup) {
	currencies := rg.Group("/currencies")
	currencies.GET("", listCurrencies)
}

// listCurrencies returns the supported currency set with display metadata.
func listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(domain.SupportedCurrencies))
}
