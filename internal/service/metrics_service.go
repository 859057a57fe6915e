package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"

	"otg-stream-overlay/internal/domain"
	"otg-stream-overlay/internal/sparkline"
	"otg-stream-overlay/internal/stats"
	"otg-stream-overlay/internal/view"
)

const (
	metricsCacheTTL = 15 * time.Minute

	// chartDays is the lookback the market chart is fetched with. The 24H
	// slice is carved out of this as the trailing seventh.
	chartDays = 7

	// liveDeltaPoints is how many trailing live samples feed the 1H delta
	// (about an hour at a 5-minute poll).
	liveDeltaPoints = 12
)

var deriveWindows = []domain.Window{
	domain.Window1H, domain.Window4H, domain.Window24H, domain.Window7D,
}

// MarketProvider fetches the market chart series for an asset.
type MarketProvider interface {
	FetchMarketChart(ctx context.Context, assetID string, days int, hourly bool) (domain.MarketChart, error)
}

// RedisClient is the subset of redis used for the snapshot cache.
type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// MetricsService owns the price panel: it polls the market chart, derives the
// snapshot, maintains the live sample buffer, and publishes a fully rendered
// view. Publishing is generation-stamped so a slow cycle can never overwrite
// the result of a newer one.
type MetricsService struct {
	tracer   trace.Tracer
	provider MarketProvider
	redis    RedisClient
	assetID  string
	buffer   *stats.LiveBuffer

	now func() time.Time

	mu         sync.Mutex
	generation uint64
	current    view.Metrics
	lastPrice  string
}

func NewMetricsService(
	tracer trace.Tracer,
	provider MarketProvider,
	redisClient RedisClient,
	assetID string,
	liveSparkPoints int,
) *MetricsService {
	return &MetricsService{
		tracer:   tracer,
		provider: provider,
		redis:    redisClient,
		assetID:  assetID,
		buffer:   stats.NewLiveBuffer(liveSparkPoints),
		now:      time.Now,
		current:  view.Metrics{Asset: assetID},
	}
}

// Refresh runs one poll cycle: fetch, derive, render, publish. Upstream
// failures publish an error banner on the existing view and return the error
// so the poller can log it; they never clear previously applied data.
func (s *MetricsService) Refresh(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "metrics-service.refresh")
	defer span.End()

	gen := s.nextGeneration()

	chart, err := s.provider.FetchMarketChart(ctx, s.assetID, chartDays, true)
	if err != nil {
		s.publishError(gen, fmt.Sprintf("market data unavailable (%s)", s.assetID))
		return fmt.Errorf("refresh metrics for %s: %w", s.assetID, err)
	}

	now := s.now()
	snap := stats.Derive(chart, now.UnixMilli(), deriveWindows)
	if snap.PriceUSD != nil {
		s.buffer.Push(*snap.PriceUSD)
	}

	v := s.buildView(chart, snap, now)
	if !s.publish(gen, v) {
		log.Printf("metrics refresh for %s superseded, result discarded", s.assetID)
		return nil
	}

	if s.redis != nil {
		if err := s.setViewCache(ctx, v); err != nil {
			log.Printf("metrics redis cache write error: %v", err)
		}
	}
	return nil
}

// View returns the latest published view. Before the first successful cycle
// it falls back to the redis-cached view from a previous process, if any.
func (s *MetricsService) View(ctx context.Context) view.Metrics {
	s.mu.Lock()
	current := s.current
	s.mu.Unlock()

	if !current.HasData && s.redis != nil {
		if cached, ok := s.getViewCache(ctx); ok {
			cached.Error = current.Error
			return cached
		}
	}
	return current
}

func (s *MetricsService) buildView(chart domain.MarketChart, snap *domain.MarketSnapshot, now time.Time) view.Metrics {
	v := view.Metrics{
		Asset:     s.assetID,
		UpdatedAt: view.FormatTime(now),
		Date:      view.FormatDate(now),
	}

	if snap.PriceUSD != nil {
		v.HasData = true
		v.Price = view.FormatPrice(*snap.PriceUSD)
	}
	if snap.MarketCapUSD != nil {
		v.MarketCap = view.FormatUsdShort(*snap.MarketCapUSD)
	}
	if snap.Volume24hUSD != nil {
		v.Volume24h = view.FormatUsdShort(*snap.Volume24hUSD)
	}
	if snap.High24hUSD != nil {
		v.High24h = view.FormatPrice(*snap.High24hUSD)
	}
	if snap.Low24hUSD != nil {
		v.Low24h = view.FormatPrice(*snap.Low24hUSD)
	}

	// The 1H delta prefers locally observed samples: the hourly chart is too
	// coarse for it right after a poll.
	change1h := s.buffer.ChangePctOverLast(liveDeltaPoints)
	if change1h == nil {
		change1h = snap.Change(domain.Window1H)
	}
	change24h := snap.Change(domain.Window24H)

	v.Change1H = formatChange(change1h)
	v.Change4H = formatChange(snap.Change(domain.Window4H))
	v.Change24H = formatChange(change24h)
	v.Change7D = formatChange(snap.Change(domain.Window7D))
	v.Trend = string(sparkline.TrendFromChange(change24h))

	v.SparkLive = sparkline.Render(s.buffer.Snapshot(), sparkline.TrendFromChange(change1h), sparkline.Options{
		ShowEndDot: true,
	})

	daySlice := stats.TrailingSlice(chart.Prices, domain.Window24H)
	v.Spark24h = sparkline.Render(daySlice.Values(), sparkline.TrendFromChange(change24h), sparkline.Options{
		Percent:      true,
		AsArea:       true,
		ShowZeroLine: true,
	})

	return v
}

func formatChange(pct *float64) string {
	if pct == nil {
		return ""
	}
	return view.FormatPct(*pct)
}

func (s *MetricsService) nextGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	return s.generation
}

// publish installs the view if gen is still the latest issued generation.
// The price flip flag is derived here, against whatever was last rendered.
func (s *MetricsService) publish(gen uint64, v view.Metrics) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return false
	}
	v.PriceFlip = v.Price != "" && s.lastPrice != "" && v.Price != s.lastPrice
	if v.Price != "" {
		s.lastPrice = v.Price
	}
	s.current = v
	return true
}

// publishError sets the banner on the current view without touching its data
// fields. The banner clears on the next successful publish.
func (s *MetricsService) publishError(gen uint64, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return
	}
	s.current.Error = msg
	s.current.PriceFlip = false
}

func (s *MetricsService) setViewCache(ctx context.Context, v view.Metrics) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, "metrics:"+s.assetID, data, metricsCacheTTL).Err()
}

func (s *MetricsService) getViewCache(ctx context.Context) (view.Metrics, bool) {
	data, err := s.redis.Get(ctx, "metrics:"+s.assetID).Bytes()
	if err == redis.Nil {
		return view.Metrics{}, false
	}
	if err != nil {
		log.Printf("metrics redis cache read error: %v", err)
		return view.Metrics{}, false
	}
	var v view.Metrics
	if err := json.Unmarshal(data, &v); err != nil {
		return view.Metrics{}, false
	}
	return v, true
}
