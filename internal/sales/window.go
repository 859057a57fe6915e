package sales

import (
	"time"

	"github.com/shopspring/decimal"

	"otg-stream-overlay/internal/domain"
)

// FilterWindow keeps events whose timestamp falls within the trailing window
// ending at now. Events with missing or unparseable timestamps (zero time
// after canonicalization) are dropped, never included.
func FilterWindow(events []domain.SaleEvent, now time.Time, window time.Duration) []domain.SaleEvent {
	cutoff := now.Add(-window)
	out := make([]domain.SaleEvent, 0, len(events))
	for _, ev := range events {
		if ev.Timestamp.IsZero() {
			continue
		}
		if ev.Timestamp.Before(cutoff) {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// MaxByPrice returns the event with the strictly greatest normalized payment
// amount. Ties keep the first-seen event. Events whose quantity is missing,
// non-numeric, or zero are excluded. Empty input yields nil.
func MaxByPrice(events []domain.SaleEvent) *domain.SaleEvent {
	var (
		best       *domain.SaleEvent
		bestAmount decimal.Decimal
	)
	for i := range events {
		amount, ok := events[i].Payment.Amount()
		if !ok {
			continue
		}
		if best == nil || amount.GreaterThan(bestAmount) {
			best = &events[i]
			bestAmount = amount
		}
	}
	return best
}

// SessionHigh composes FilterWindow and MaxByPrice: the highest-priced sale
// within the trailing window, or nil when the window is empty.
func SessionHigh(events []domain.SaleEvent, now time.Time, window time.Duration) *domain.SaleEvent {
	return MaxByPrice(FilterWindow(events, now, window))
}
