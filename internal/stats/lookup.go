package stats

import (
	"time"

	"otg-stream-overlay/internal/domain"
)

// NearestAtOrAfter returns the first sample whose timestamp is at or after
// targetMs. When the target falls past the end of the series the last sample
// is returned instead: for look-back anchors the closest available point is
// preferred over no answer. Returns nil only for an empty series.
func NearestAtOrAfter(series domain.Series, targetMs int64) *domain.Sample {
	if len(series) == 0 {
		return nil
	}
	for i := range series {
		if series[i].TimestampMs >= targetMs {
			return &series[i]
		}
	}
	return &series[len(series)-1]
}

// TrailingSlice returns the tail of the series whose length approximates the
// given window relative to the series' total span. Sample spacing is assumed
// uniform, so a 24H window over a 7-day series is the last ~1/7th of points.
// At least two samples are kept when the series has them.
func TrailingSlice(series domain.Series, window domain.Window) domain.Series {
	n := len(series)
	if n < 2 {
		return series
	}
	span := series[n-1].TimestampMs - series[0].TimestampMs
	if span <= 0 {
		return series
	}
	frac := float64(time.Duration(window).Milliseconds()) / float64(span)
	size := int(float64(n) * frac)
	if size < 2 {
		size = 2
	}
	if size > n {
		size = n
	}
	return series[n-size:]
}
