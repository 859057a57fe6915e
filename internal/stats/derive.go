package stats

import (
	"math"
	"time"

	"otg-stream-overlay/internal/domain"
)

// Derive computes a MarketSnapshot from the raw market chart series anchored
// at nowMs. Point-in-time fields come from the last sample of each series;
// each requested window's percentage change is anchored via NearestAtOrAfter.
// Degenerate inputs (empty series, zero or non-finite anchors) produce nil
// fields, never an error. No rounding happens here: formatting is a render
// concern.
func Derive(chart domain.MarketChart, nowMs int64, windows []domain.Window) *domain.MarketSnapshot {
	snap := &domain.MarketSnapshot{
		Changes:         make(map[domain.Window]*float64, len(windows)),
		LastUpdatedUnix: nowMs / 1000,
	}
	for _, w := range windows {
		snap.Changes[w] = nil
	}

	snap.PriceUSD = lastValue(chart.Prices)
	snap.MarketCapUSD = lastValue(chart.MarketCaps)
	snap.Volume24hUSD = lastValue(chart.TotalVolumes)

	if len(chart.Prices) == 0 || snap.PriceUSD == nil {
		return snap
	}
	latest := *snap.PriceUSD

	for _, w := range windows {
		target := nowMs - time.Duration(w).Milliseconds()
		anchor := NearestAtOrAfter(chart.Prices, target)
		if anchor == nil {
			continue
		}
		snap.Changes[w] = changePct(anchor.Value, latest)
	}

	snap.High24hUSD, snap.Low24hUSD = HighLow(chart.Prices, domain.Window24H)

	return snap
}

// HighLow computes the max and min over the trailing slice of the series
// approximating the window. Non-finite values are ignored; fewer than two
// valid values yields nil, nil.
func HighLow(series domain.Series, window domain.Window) (*float64, *float64) {
	slice := TrailingSlice(series, window)

	var (
		high, low float64
		valid     int
	)
	for _, s := range slice {
		if !isFinite(s.Value) {
			continue
		}
		if valid == 0 || s.Value > high {
			high = s.Value
		}
		if valid == 0 || s.Value < low {
			low = s.Value
		}
		valid++
	}
	if valid < 2 {
		return nil, nil
	}
	h, l := high, low
	return &h, &l
}

// changePct returns (latest-anchor)/anchor*100, or nil when the anchor is
// zero, negative, or non-finite (division guard).
func changePct(anchor, latest float64) *float64 {
	if !isFinite(anchor) || !isFinite(latest) || anchor <= 0 {
		return nil
	}
	pct := (latest - anchor) / anchor * 100
	return &pct
}

func lastValue(series domain.Series) *float64 {
	if len(series) == 0 {
		return nil
	}
	v := series[len(series)-1].Value
	if !isFinite(v) {
		return nil
	}
	return &v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
