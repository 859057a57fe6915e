package sparkline

import "math"

// Point is a screen-space coordinate inside the sparkline viewbox.
type Point struct {
	X float64
	Y float64
}

// Options controls normalization and rendering. Zero values fall back to the
// overlay defaults (140x32 viewbox, 2px margins).
type Options struct {
	Width   float64
	Height  float64
	MarginX float64
	MarginY float64

	// Percent rescales values relative to the first value as
	// ((v/v0)-1)*100 before the geometric mapping, producing a
	// zero-relative series. Falls back to raw values when the first
	// value is zero or non-finite.
	Percent bool

	ShowEndDot   bool
	AsArea       bool
	ShowZeroLine bool
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 140
	}
	if o.Height <= 0 {
		o.Height = 32
	}
	if o.MarginX <= 0 {
		o.MarginX = 2
	}
	if o.MarginY <= 0 {
		o.MarginY = 2
	}
	return o
}

// Normalize maps a numeric sequence into evenly spaced viewbox coordinates
// using linear min-max scaling. Non-finite values are dropped first; fewer
// than two valid values produces no output. A flat series maps onto a
// centered line via the range floor of 1.
func Normalize(values []float64, opts Options) []Point {
	opts = opts.withDefaults()

	filtered := filterFinite(values)
	if len(filtered) < 2 {
		return nil
	}
	if opts.Percent {
		filtered = percentRelative(filtered)
	}

	min, max := minMax(filtered)
	rng := max - min
	if rng == 0 {
		rng = 1
	}

	stepX := (opts.Width - opts.MarginX*2) / float64(len(filtered)-1)
	innerHeight := opts.Height - opts.MarginY*2

	points := make([]Point, len(filtered))
	for i, v := range filtered {
		norm := (v - min) / rng
		points[i] = Point{
			X: opts.MarginX + float64(i)*stepX,
			Y: opts.Height - opts.MarginY - norm*innerHeight,
		}
	}
	return points
}

// zeroY returns the y-coordinate of value 0 for the given series, clamped to
// the visible band. Used as the reference baseline for percent charts.
func zeroY(values []float64, opts Options) float64 {
	opts = opts.withDefaults()

	min, max := minMax(values)
	rng := max - min
	if rng == 0 {
		rng = 1
	}
	norm := (0 - min) / rng
	y := opts.Height - opts.MarginY - norm*(opts.Height-opts.MarginY*2)
	if y < opts.MarginY {
		y = opts.MarginY
	}
	if y > opts.Height-opts.MarginY {
		y = opts.Height - opts.MarginY
	}
	return y
}

// percentRelative rescales values against the first one, yielding percent
// deltas from the series open. Returns the input unchanged when the open is
// unusable as a divisor.
func percentRelative(values []float64) []float64 {
	v0 := values[0]
	if v0 == 0 || math.IsNaN(v0) || math.IsInf(v0, 0) {
		return values
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = (v/v0 - 1) * 100
	}
	return out
}

func filterFinite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func minMax(values []float64) (float64, float64) {
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
