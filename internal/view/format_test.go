package view

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0.0312, "$0.0312"},
		{0.9999, "$0.9999"},
		{1, "$1.000"},
		{1234.5678, "$1234.568"},
	}
	for _, tc := range cases {
		if got := FormatPrice(tc.in); got != tc.want {
			t.Fatalf("FormatPrice(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatUsdShort(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{512.4, "$512.40"},
		{51_400_000, "$51.40M"},
		{2_400_000_000, "$2.40B"},
		{9_500, "$9.50K"},
		{-51_400_000, "$-51.40M"},
	}
	for _, tc := range cases {
		if got := FormatUsdShort(tc.in); got != tc.want {
			t.Fatalf("FormatUsdShort(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatPct(t *testing.T) {
	if got := FormatPct(3.456); got != "+3.46%" {
		t.Fatalf("positive: got %q", got)
	}
	if got := FormatPct(-1.2); got != "-1.20%" {
		t.Fatalf("negative: got %q", got)
	}
	if got := FormatPct(0); got != "+0.00%" {
		t.Fatalf("zero: got %q", got)
	}
}

func TestFormatAmount(t *testing.T) {
	amt := decimal.RequireFromString("2")
	if got := FormatAmount(amt, "GUN"); got != "2.00 GUN" {
		t.Fatalf("got %q", got)
	}
	if got := FormatAmount(amt, ""); got != "2.00" {
		t.Fatalf("missing symbol: got %q", got)
	}
}

func TestFormatAddress(t *testing.T) {
	if got := FormatAddress("0xAbCdEf1234"); got != "…1234" {
		t.Fatalf("got %q", got)
	}
	if got := FormatAddress(""); got != "" {
		t.Fatalf("empty: got %q", got)
	}
	if got := FormatAddress("ab"); got != "…ab" {
		t.Fatalf("short: got %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	cases := []struct {
		day  int
		want string
	}{
		{1, "Sunday, June 1st"},
		{2, "Monday, June 2nd"},
		{3, "Tuesday, June 3rd"},
		{11, "Wednesday, June 11th"},
		{22, "Sunday, June 22nd"},
	}
	for _, tc := range cases {
		d := time.Date(2025, 6, tc.day, 10, 0, 0, 0, time.UTC)
		if got := FormatDate(d); got != tc.want {
			t.Fatalf("day %d: got %q, want %q", tc.day, got, tc.want)
		}
	}
	if got := FormatDate(time.Time{}); got != "" {
		t.Fatalf("zero time: got %q", got)
	}
}

func TestFormatTime(t *testing.T) {
	d := time.Date(2025, 6, 1, 9, 5, 0, 0, time.UTC)
	if got := FormatTime(d); got != "09:05" {
		t.Fatalf("got %q", got)
	}
}

func TestSanitize(t *testing.T) {
	if got := Sanitize(`<img src="x" & more>`); got != `&lt;img src="x" &amp; more&gt;` {
		t.Fatalf("got %q", got)
	}
	if got := Sanitize("plain"); got != "plain" {
		t.Fatalf("got %q", got)
	}
}
