package sparkline

import (
	"strings"
	"testing"
)

func TestRenderEmptyForShortInput(t *testing.T) {
	if got := Render([]float64{42}, TrendPositive, Options{}); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestRenderLineOnly(t *testing.T) {
	svg := Render([]float64{1, 2, 3}, TrendNeutral, Options{})
	if !strings.HasPrefix(svg, `<svg viewBox="0 0 140.00 32.00" preserveAspectRatio="none">`) {
		t.Fatalf("unexpected svg prefix: %q", svg)
	}
	if !strings.Contains(svg, `class="sparkline-path"`) {
		t.Fatalf("expected line path, got %q", svg)
	}
	if !strings.Contains(svg, `pathLength="100"`) {
		t.Fatalf("expected pathLength attribute, got %q", svg)
	}
	for _, absent := range []string{"sparkline-area", "sparkline-zero-line", "sparkline-end-dot"} {
		if strings.Contains(svg, absent) {
			t.Fatalf("unexpected %s in %q", absent, svg)
		}
	}
}

func TestRenderTrendClasses(t *testing.T) {
	tests := []struct {
		trend Trend
		want  string
	}{
		{TrendPositive, `class="sparkline-path positive"`},
		{TrendNegative, `class="sparkline-path negative"`},
		{TrendNeutral, `class="sparkline-path"`},
	}
	for _, tt := range tests {
		svg := Render([]float64{1, 2}, tt.trend, Options{})
		if !strings.Contains(svg, tt.want) {
			t.Fatalf("trend %q: expected %q in %q", tt.trend, tt.want, svg)
		}
	}
}

func TestRenderAreaZeroLineEndDot(t *testing.T) {
	svg := Render([]float64{100, 110, 95}, TrendPositive, Options{
		Percent:      true,
		AsArea:       true,
		ShowZeroLine: true,
		ShowEndDot:   true,
	})

	if !strings.Contains(svg, `class="sparkline-area positive"`) {
		t.Fatalf("expected area path, got %q", svg)
	}
	if !strings.Contains(svg, "sparkline-zero-line") {
		t.Fatalf("expected zero line, got %q", svg)
	}
	if !strings.Contains(svg, `<circle class="sparkline-end-dot"`) {
		t.Fatalf("expected end dot, got %q", svg)
	}
	if !strings.Contains(svg, " Z\"") {
		t.Fatalf("expected closed area path, got %q", svg)
	}
}

func TestRenderIdempotent(t *testing.T) {
	values := []float64{3.1, 2.9, 3.4, 3.2}
	opts := Options{Percent: true, AsArea: true, ShowZeroLine: true}

	a := Render(values, TrendNegative, opts)
	b := Render(values, TrendNegative, opts)
	if a != b {
		t.Fatal("identical input should render byte-identical output")
	}
}

func TestTrendFromChange(t *testing.T) {
	up, down, flat := 1.5, -0.2, 0.0
	tests := []struct {
		pct  *float64
		want Trend
	}{
		{nil, TrendNeutral},
		{&up, TrendPositive},
		{&down, TrendNegative},
		{&flat, TrendNeutral},
	}
	for _, tt := range tests {
		if got := TrendFromChange(tt.pct); got != tt.want {
			t.Fatalf("expected %q, got %q", tt.want, got)
		}
	}
}
