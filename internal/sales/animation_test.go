package sales

import (
	"testing"
	"time"
)

func TestAnimationTrackerFirstSeen(t *testing.T) {
	tracker := NewAnimationTracker(5 * time.Second)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	end, animating := tracker.Observe("sale-1", now)
	if !animating {
		t.Fatal("expected first observation to animate")
	}
	if !end.Equal(now.Add(5 * time.Second)) {
		t.Fatalf("expected end at now+5s, got %v", end)
	}
}

func TestAnimationTrackerIdempotentEndTime(t *testing.T) {
	tracker := NewAnimationTracker(5 * time.Second)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	first, _ := tracker.Observe("sale-1", now)
	second, animating := tracker.Observe("sale-1", now.Add(2*time.Second))
	if !second.Equal(first) {
		t.Fatalf("end time must not move: %v vs %v", first, second)
	}
	if !animating {
		t.Fatal("expected still animating at +2s")
	}

	_, animating = tracker.Observe("sale-1", now.Add(10*time.Second))
	if animating {
		t.Fatal("expected animation finished at +10s")
	}
}

func TestAnimationTrackerDistinctKeys(t *testing.T) {
	tracker := NewAnimationTracker(0) // default window
	now := time.Now()

	tracker.Observe("a", now)
	tracker.Observe("b", now)
	tracker.Observe("a", now)

	if tracker.Size() != 2 {
		t.Fatalf("expected 2 tracked keys, got %d", tracker.Size())
	}
}
