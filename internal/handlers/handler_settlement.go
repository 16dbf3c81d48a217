package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/harutok/warikan/internal/core/ports/services"
	"github.com/harutok/warikan/internal/dto"
	"github.com/harutok/warikan/internal/middleware"
)

// settlementHandler handles HTTP requests for the computed settlement.
type settlementHandler struct {
	settlementService portssvc.SettlementSvcFacade
}

func newSettlementHandler(ss portssvc.SettlementSvcFacade) *settlementHandler {
	return &settlementHandler{settlementService: ss}
}

// registerSettlementRoutes registers the settlement route.
func registerSettlementRoutes(rg *gin.RouterGroup, settlementService portssvc.SettlementSvcFacade) {
	h := newSettlementHandler(settlementService)
	rg.GET("/settlement", h.getSettlement)
}

// getSettlement returns each member's net balance against the equal-share
// split, in roster order.
func (h *settlementHandler) getSettlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.settlementService.GetSettlement(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute settlement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute settlement"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSettlementResponse(summary))
}
