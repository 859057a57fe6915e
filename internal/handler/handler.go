package handler

import (
	"context"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"otg-stream-overlay/internal/provider"
	"otg-stream-overlay/internal/view"
)

// MetricsViewer serves the latest published price panel view.
type MetricsViewer interface {
	View(ctx context.Context) view.Metrics
}

// SalesViewer serves the latest published marketplace panel view.
type SalesViewer interface {
	View() view.Sales
}

// MarketProxy forwards a market-chart request upstream verbatim.
type MarketProxy interface {
	PassthroughMarketChart(ctx context.Context, assetID string, query url.Values) (*provider.Upstream, error)
}

// SalesProxy forwards a sale-events request upstream verbatim.
type SalesProxy interface {
	Passthrough(ctx context.Context, collection string, query url.Values) (*provider.Upstream, error)
}

type Handler struct {
	tracer      trace.Tracer
	metrics     MetricsViewer
	sales       SalesViewer
	marketProxy MarketProxy
	salesProxy  SalesProxy
	assetID     string
	collection  string
}

func New(
	tracer trace.Tracer,
	metrics MetricsViewer,
	sales SalesViewer,
	marketProxy MarketProxy,
	salesProxy SalesProxy,
	assetID string,
	collection string,
) *Handler {
	return &Handler{
		tracer:      tracer,
		metrics:     metrics,
		sales:       sales,
		marketProxy: marketProxy,
		salesProxy:  salesProxy,
		assetID:     assetID,
		collection:  collection,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.Use(CORS())
	r.GET("/health", h.Health)
	r.GET("/api/overlay/metrics", h.GetMetrics)
	r.GET("/api/overlay/sales", h.GetSales)
	r.GET("/api/proxy/market-chart", h.ProxyMarketChart)
	r.GET("/api/proxy/sales", h.ProxySales)
}
