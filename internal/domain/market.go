package domain

import (
	"fmt"
	"time"
)

// Sample is a single (timestamp, value) observation from a market series.
type Sample struct {
	TimestampMs int64   `json:"timestamp_ms"`
	Value       float64 `json:"value"`
}

// Series is an ordered sequence of samples, non-decreasing in timestamp,
// as delivered by the market-data provider.
type Series []Sample

// Values returns just the numeric values of the series, in order.
func (s Series) Values() []float64 {
	out := make([]float64, len(s))
	for i, sm := range s {
		out[i] = sm.Value
	}
	return out
}

// Window is a trailing look-back duration for change calculations.
type Window time.Duration

const (
	Window1H  Window = Window(time.Hour)
	Window4H  Window = Window(4 * time.Hour)
	Window24H Window = Window(24 * time.Hour)
	Window7D  Window = Window(7 * 24 * time.Hour)
)

// Label returns the display form of a window ("4H", "24H", "7D").
func (w Window) Label() string {
	switch w {
	case Window1H:
		return "1H"
	case Window4H:
		return "4H"
	case Window24H:
		return "24H"
	case Window7D:
		return "7D"
	}
	d := time.Duration(w)
	if d%(24*time.Hour) == 0 {
		return fmt.Sprintf("%dD", d/(24*time.Hour))
	}
	return fmt.Sprintf("%dH", d/time.Hour)
}

// MarketChart holds the three parallel series returned by the market-data
// provider for one asset.
type MarketChart struct {
	Prices       Series `json:"prices"`
	MarketCaps   Series `json:"market_caps"`
	TotalVolumes Series `json:"total_volumes"`
}

// MarketSnapshot is the derived point-in-time view of an asset. Every field
// is independently nullable: missing or degenerate upstream data yields nil,
// never an error.
type MarketSnapshot struct {
	PriceUSD        *float64            `json:"price_usd"`
	MarketCapUSD    *float64            `json:"market_cap_usd"`
	Volume24hUSD    *float64            `json:"volume_24h_usd"`
	Changes         map[Window]*float64 `json:"-"`
	High24hUSD      *float64            `json:"high_24h_usd"`
	Low24hUSD       *float64            `json:"low_24h_usd"`
	LastUpdatedUnix int64               `json:"last_updated_unix"`
}

// Change returns the percentage delta for a window, or nil when the window
// was not derived.
func (s *MarketSnapshot) Change(w Window) *float64 {
	if s == nil || s.Changes == nil {
		return nil
	}
	return s.Changes[w]
}
