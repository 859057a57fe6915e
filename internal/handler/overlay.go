package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetMetrics godoc
// @Summary      Get the price panel view
// @Description  Returns the latest derived market metrics with pre-rendered sparkline SVGs
// @Tags         overlay
// @Produce      json
// @Success      200  {object}  view.Metrics
// @Router       /api/overlay/metrics [get]
func (h *Handler) GetMetrics(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-metrics")
	defer span.End()

	c.JSON(http.StatusOK, h.metrics.View(ctx))
}

// GetSales godoc
// @Summary      Get the marketplace panel view
// @Description  Returns the latest sales feed with rarity tiers, session high, and animation state
// @Tags         overlay
// @Produce      json
// @Success      200  {object}  view.Sales
// @Router       /api/overlay/sales [get]
func (h *Handler) GetSales(c *gin.Context) {
	_, span := h.tracer.Start(c.Request.Context(), "handler.get-sales")
	defer span.End()

	c.JSON(http.StatusOK, h.sales.View())
}
