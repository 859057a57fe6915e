package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"otg-stream-overlay/internal/provider"
)

// ProxyMarketChart godoc
// @Summary      Proxy a raw market-chart request
// @Description  Forwards the client's query parameters upstream with the server's credential attached and returns the upstream status and body verbatim
// @Tags         proxy
// @Produce      json
// @Param        vs_currency  query  string  false  "Quote currency"  default(usd)
// @Param        days         query  int     false  "Lookback days"   default(7)
// @Success      200  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]string
// @Router       /api/proxy/market-chart [get]
func (h *Handler) ProxyMarketChart(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.proxy-market-chart")
	defer span.End()

	up, err := h.marketProxy.PassthroughMarketChart(ctx, h.assetID, c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	writeUpstream(c, up)
}

// ProxySales godoc
// @Summary      Proxy a raw sale-events request
// @Description  Forwards the client's query parameters upstream with the server's API key attached and returns the upstream status and body verbatim; fails with 500 when no key is configured
// @Tags         proxy
// @Produce      json
// @Param        event_type  query  string  false  "Event type filter"  default(sale)
// @Param        limit       query  int     false  "Number of events"   default(10)
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/proxy/sales [get]
func (h *Handler) ProxySales(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.proxy-sales")
	defer span.End()

	up, err := h.salesProxy.Passthrough(ctx, h.collection, c.Request.URL.Query())
	if err != nil {
		if errors.Is(err, provider.ErrMissingAPIKey) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "marketplace API key not configured"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	writeUpstream(c, up)
}

// writeUpstream relays the upstream response untouched. Error bodies pass
// through as-is so overlay clients can show upstream failures faithfully.
func writeUpstream(c *gin.Context, up *provider.Upstream) {
	contentType := up.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(up.Status, contentType, up.Body)
}
