package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"otg-stream-overlay/internal/domain"
)

const coingeckoBaseURL = "https://api.coingecko.com/api/v3"

// CoinGeckoProvider fetches market-chart data from the CoinGecko API. An
// API key is optional: with one, requests carry the demo-tier header; without
// one, the unauthenticated tier applies with its looser rate limits.
type CoinGeckoProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
	tracer  trace.Tracer
	limiter *Limiter
}

// NewCoinGeckoProvider creates a provider with built-in rate limiting
// (8 requests per minute, one token every 7.5 seconds).
func NewCoinGeckoProvider(tracer trace.Tracer, apiKey string) *CoinGeckoProvider {
	return &CoinGeckoProvider{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: coingeckoBaseURL,
		apiKey:  apiKey,
		tracer:  tracer,
		limiter: NewLimiter(8, 7500*time.Millisecond),
	}
}

// FetchMarketChart fetches the three parallel series (prices, market caps,
// total volumes) for an asset over the trailing lookback window.
func (p *CoinGeckoProvider) FetchMarketChart(ctx context.Context, assetID string, days int, hourly bool) (domain.MarketChart, error) {
	ctx, span := p.tracer.Start(ctx, "coingecko.fetch-market-chart")
	defer span.End()
	span.SetAttributes(attribute.String("asset", assetID), attribute.Int("days", days))

	endpoint := fmt.Sprintf("%s/coins/%s/market_chart?vs_currency=usd&days=%d",
		p.baseURL, url.PathEscape(assetID), days)
	if hourly {
		endpoint += "&interval=hourly"
	}

	body, err := p.doRequest(ctx, endpoint)
	if err != nil {
		return domain.MarketChart{}, fmt.Errorf("fetch market chart for %s: %w", assetID, err)
	}

	var raw struct {
		Prices       [][]float64 `json:"prices"`
		MarketCaps   [][]float64 `json:"market_caps"`
		TotalVolumes [][]float64 `json:"total_volumes"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return domain.MarketChart{}, fmt.Errorf("parse market chart for %s: %w", assetID, err)
	}

	return domain.MarketChart{
		Prices:       toSeries(raw.Prices),
		MarketCaps:   toSeries(raw.MarketCaps),
		TotalVolumes: toSeries(raw.TotalVolumes),
	}, nil
}

// PassthroughMarketChart performs a market-chart request with the client's
// query parameters forwarded as-is and returns the upstream response
// verbatim, whatever its status.
func (p *CoinGeckoProvider) PassthroughMarketChart(ctx context.Context, assetID string, query url.Values) (*Upstream, error) {
	ctx, span := p.tracer.Start(ctx, "coingecko.passthrough")
	defer span.End()

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	endpoint := fmt.Sprintf("%s/coins/%s/market_chart", p.baseURL, url.PathEscape(assetID))
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	p.setHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &Upstream{
		Status:      resp.StatusCode,
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

func (p *CoinGeckoProvider) doRequest(ctx context.Context, endpoint string) ([]byte, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	p.setHeaders(req)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("coingecko API error %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}

func (p *CoinGeckoProvider) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	if p.apiKey != "" {
		req.Header.Set("x-cg-demo-api-key", p.apiKey)
	}
}

// toSeries converts raw [timestampMs, value] pairs into a Series, skipping
// malformed entries.
func toSeries(pairs [][]float64) domain.Series {
	out := make(domain.Series, 0, len(pairs))
	for _, pair := range pairs {
		if len(pair) < 2 {
			continue
		}
		out = append(out, domain.Sample{TimestampMs: int64(pair[0]), Value: pair[1]})
	}
	return out
}
