package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatPrice renders a USD price with four decimals under a dollar and
// three above, so sub-cent assets keep their precision.
func FormatPrice(v float64) string {
	if v < 1 {
		return fmt.Sprintf("$%.4f", v)
	}
	return fmt.Sprintf("$%.3f", v)
}

// FormatUsdShort abbreviates large USD values with K/M/B suffixes.
func FormatUsdShort(v float64) string {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1e9:
		return fmt.Sprintf("$%.2fB", v/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("$%.2fM", v/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("$%.2fK", v/1e3)
	default:
		return fmt.Sprintf("$%.2f", v)
	}
}

// FormatPct renders a signed percentage, keeping the explicit plus so
// positive moves read as gains.
func FormatPct(v float64) string {
	if v >= 0 {
		return fmt.Sprintf("+%.2f%%", v)
	}
	return fmt.Sprintf("%.2f%%", v)
}

// FormatAmount renders a token amount with its symbol, e.g. "2.00 GUN".
func FormatAmount(amount decimal.Decimal, symbol string) string {
	return strings.TrimSpace(amount.StringFixed(2) + " " + symbol)
}

// FormatAddress truncates a wallet address to its last four characters.
func FormatAddress(addr string) string {
	if addr == "" {
		return ""
	}
	clean := strings.ToLower(addr)
	if len(clean) <= 4 {
		return "…" + clean
	}
	return "…" + clean[len(clean)-4:]
}

// FormatTime renders an HH:MM clock time.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("15:04")
}

// FormatDate renders "Monday, January 2nd" style dates.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	day := t.Day()
	return fmt.Sprintf("%s, %s %d%s", t.Weekday(), t.Month(), day, ordinalSuffix(day))
}

func ordinalSuffix(n int) string {
	if v := n % 100; v >= 11 && v <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

var sanitizer = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Sanitize escapes HTML-significant characters. View models embed
// upstream-controlled strings next to SVG markup, so everything textual
// passes through here at assembly time.
func Sanitize(s string) string {
	return sanitizer.Replace(s)
}
