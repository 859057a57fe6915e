package sales

import (
	"testing"
	"time"

	"otg-stream-overlay/internal/domain"
)

func saleAt(id string, ts time.Time, qty string, decimals int) domain.SaleEvent {
	return domain.SaleEvent{
		ID:        id,
		Timestamp: ts,
		Payment:   domain.Payment{QuantityRaw: qty, Decimals: decimals, Symbol: "GUN"},
	}
}

func TestFilterWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	events := []domain.SaleEvent{
		saleAt("recent", now.Add(-time.Hour), "1", 0),
		saleAt("edge", now.Add(-24*time.Hour), "1", 0),
		saleAt("stale", now.Add(-25*time.Hour), "1", 0),
		saleAt("unparseable", time.Time{}, "1", 0),
	}

	got := FilterWindow(events, now, 24*time.Hour)
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0].ID != "recent" || got[1].ID != "edge" {
		t.Fatalf("unexpected events kept: %+v", got)
	}
}

func TestMaxByPrice(t *testing.T) {
	now := time.Now()
	events := []domain.SaleEvent{
		saleAt("one", now, "1000000000000000000", 18),
		saleAt("two", now, "2000000000000000000", 18),
	}

	best := MaxByPrice(events)
	if best == nil || best.ID != "two" {
		t.Fatalf("expected event two, got %+v", best)
	}
}

func TestMaxByPriceTiesKeepFirst(t *testing.T) {
	now := time.Now()
	events := []domain.SaleEvent{
		saleAt("first", now, "500", 2),
		saleAt("second", now, "500", 2),
	}

	best := MaxByPrice(events)
	if best == nil || best.ID != "first" {
		t.Fatalf("expected stable tie-break on first event, got %+v", best)
	}
}

func TestMaxByPriceExclusions(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name   string
		events []domain.SaleEvent
	}{
		{"empty", nil},
		{"zero quantity", []domain.SaleEvent{saleAt("z", now, "0", 18)}},
		{"non-numeric", []domain.SaleEvent{saleAt("n", now, "not-a-number", 18)}},
		{"missing", []domain.SaleEvent{saleAt("m", now, "", 18)}},
	}
	for _, tt := range tests {
		if best := MaxByPrice(tt.events); best != nil {
			t.Fatalf("%s: expected nil, got %+v", tt.name, best)
		}
	}
}

func TestMaxByPriceLargeQuantities(t *testing.T) {
	now := time.Now()
	// Both beyond float64 integer precision; decimal comparison must still
	// order them correctly.
	events := []domain.SaleEvent{
		saleAt("low", now, "10000000000000000000000001", 18),
		saleAt("high", now, "10000000000000000000000002", 18),
	}
	best := MaxByPrice(events)
	if best == nil || best.ID != "high" {
		t.Fatalf("expected high, got %+v", best)
	}
}

func TestSessionHigh(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	events := []domain.SaleEvent{
		saleAt("in-window", now.Add(-2*time.Hour), "100", 0),
		saleAt("bigger-but-stale", now.Add(-30*time.Hour), "9999", 0),
	}

	high := SessionHigh(events, now, 24*time.Hour)
	if high == nil || high.ID != "in-window" {
		t.Fatalf("expected in-window event, got %+v", high)
	}

	if got := SessionHigh(nil, now, 24*time.Hour); got != nil {
		t.Fatalf("expected nil for empty input, got %+v", got)
	}
}
