package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"otg-stream-overlay/internal/domain"
)

type Config struct {
	CoinGeckoAPIKey string
	OpenSeaAPIKey   string
	RedisURL        string

	AssetID        string
	CollectionSlug string

	MetricsPollSecs int
	SalesPollSecs   int
	MaxFeedItems    int
	LiveSparkPoints int

	AllTimeHigh domain.AllTimeHigh
}

func Load() *Config {
	cfg := &Config{
		CoinGeckoAPIKey: strings.TrimSpace(os.Getenv("COINGECKO_API_KEY")),
		OpenSeaAPIKey:   strings.TrimSpace(os.Getenv("OPENSEA_API_KEY")),
		RedisURL:        os.Getenv("REDIS_URL"),
	}

	if cfg.CoinGeckoAPIKey == "" {
		log.Println("Warning: COINGECKO_API_KEY not set, using unauthenticated tier")
	}
	if cfg.OpenSeaAPIKey == "" {
		log.Println("Warning: OPENSEA_API_KEY not set, sales feed and sales proxy will be unavailable")
	}
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set, running without cache")
	}

	cfg.AssetID = strings.TrimSpace(os.Getenv("ASSET_ID"))
	if cfg.AssetID == "" {
		cfg.AssetID = "gunz"
	}

	cfg.CollectionSlug = strings.TrimSpace(os.Getenv("COLLECTION_SLUG"))
	if cfg.CollectionSlug == "" {
		cfg.CollectionSlug = "off-the-grid"
	}

	cfg.MetricsPollSecs = 300
	if v := os.Getenv("METRICS_POLL_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MetricsPollSecs = n
		}
	}

	cfg.SalesPollSecs = 15
	if v := os.Getenv("SALES_POLL_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SalesPollSecs = n
		}
	}

	cfg.MaxFeedItems = 10
	if v := os.Getenv("MAX_FEED_ITEMS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 50 {
			cfg.MaxFeedItems = n
		}
	}

	cfg.LiveSparkPoints = 24
	if v := os.Getenv("LIVE_SPARK_POINTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 1 {
			cfg.LiveSparkPoints = n
		}
	}

	// The all-time-high card is static display config, never derived from
	// the live feed.
	if v := strings.TrimSpace(os.Getenv("ATH_AMOUNT")); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n > 0 {
			cfg.AllTimeHigh.Amount = n
		}
	}
	cfg.AllTimeHigh.Symbol = strings.TrimSpace(os.Getenv("ATH_SYMBOL"))
	cfg.AllTimeHigh.Name = strings.TrimSpace(os.Getenv("ATH_NAME"))
	cfg.AllTimeHigh.ThumbURL = strings.TrimSpace(os.Getenv("ATH_THUMB_URL"))
	if v := strings.TrimSpace(os.Getenv("ATH_TIMESTAMP")); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.AllTimeHigh.Timestamp = n
		}
	}

	return cfg
}
