package sparkline

import (
	"fmt"
	"strings"
)

// Trend is the color class attached to a sparkline. The sign is decided by
// the caller from the associated change percentage, not recomputed from the
// series.
type Trend string

const (
	TrendPositive Trend = "positive"
	TrendNegative Trend = "negative"
	TrendNeutral  Trend = ""
)

// TrendFromChange maps a nullable change percentage onto a trend class.
func TrendFromChange(pct *float64) Trend {
	switch {
	case pct == nil:
		return TrendNeutral
	case *pct > 0:
		return TrendPositive
	case *pct < 0:
		return TrendNegative
	default:
		return TrendNeutral
	}
}

// Render emits a scalable SVG sparkline for the values: a line path, plus an
// optional filled area, zero baseline, and end-point marker per the options.
// Pure function of input and options; fewer than two valid values renders
// the empty string.
func Render(values []float64, trend Trend, opts Options) string {
	opts = opts.withDefaults()

	filtered := filterFinite(values)
	if len(filtered) < 2 {
		return ""
	}
	series := filtered
	if opts.Percent {
		series = percentRelative(filtered)
	}

	// Normalize on the already-prepared series so the zero baseline and the
	// path agree on scale.
	geoOpts := opts
	geoOpts.Percent = false
	points := Normalize(series, geoOpts)
	if len(points) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg viewBox="0 0 %s %s" preserveAspectRatio="none">`,
		coord(opts.Width), coord(opts.Height))

	if opts.AsArea {
		b.WriteString(fmt.Sprintf(`<path class="%s" d="%s" />`,
			classes("sparkline-area", trend), areaPath(points, opts)))
	}

	b.WriteString(fmt.Sprintf(`<path class="%s" d="%s" pathLength="100" />`,
		classes("sparkline-path", trend), linePath(points)))

	if opts.ShowZeroLine {
		y := zeroY(series, opts)
		fmt.Fprintf(&b, `<line class="sparkline-zero-line" x1="%s" y1="%s" x2="%s" y2="%s" />`,
			coord(opts.MarginX), coord(y), coord(opts.Width-opts.MarginX), coord(y))
	}

	if opts.ShowEndDot {
		last := points[len(points)-1]
		fmt.Fprintf(&b, `<circle class="sparkline-end-dot" cx="%s" cy="%s" r="1.8" />`,
			coord(last.X), coord(last.Y))
	}

	b.WriteString(`</svg>`)
	return b.String()
}

func linePath(points []Point) string {
	var b strings.Builder
	for i, pt := range points {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s%s %s", cmd, coord(pt.X), coord(pt.Y))
	}
	return b.String()
}

// areaPath closes the line down to the bottom margin on both ends.
func areaPath(points []Point, opts Options) string {
	bottom := coord(opts.Height - opts.MarginY)
	first := points[0]
	last := points[len(points)-1]

	var b strings.Builder
	fmt.Fprintf(&b, "M %s %s", coord(first.X), bottom)
	for _, pt := range points {
		fmt.Fprintf(&b, " L %s %s", coord(pt.X), coord(pt.Y))
	}
	fmt.Fprintf(&b, " L %s %s Z", coord(last.X), bottom)
	return b.String()
}

func classes(base string, trend Trend) string {
	if trend == TrendNeutral {
		return base
	}
	return base + " " + string(trend)
}

func coord(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
