package sales

import (
	"sync"
	"time"
)

const defaultAnimationWindow = 5 * time.Second

// AnimationTracker remembers when each sale's entry animation should end,
// keyed by the event's dedup key. An entry is created exactly once, on first
// observation; later observations of the same key return the original end
// time, so a sale animates only the first time it scrolls in. Entries are
// never evicted; cardinality is bounded by the feed for the life of the
// process.
type AnimationTracker struct {
	mu     sync.Mutex
	window time.Duration
	ends   map[string]time.Time
}

// NewAnimationTracker creates a tracker. Non-positive windows fall back to
// the default of 5 seconds.
func NewAnimationTracker(window time.Duration) *AnimationTracker {
	if window <= 0 {
		window = defaultAnimationWindow
	}
	return &AnimationTracker{window: window, ends: make(map[string]time.Time)}
}

// Observe returns the animation end time for the key, creating it at
// now+window on first sight, and whether the animation is still running.
func (t *AnimationTracker) Observe(key string, now time.Time) (time.Time, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	end, ok := t.ends[key]
	if !ok {
		end = now.Add(t.window)
		t.ends[key] = end
	}
	return end, now.Before(end)
}

// Size reports how many keys have been observed.
func (t *AnimationTracker) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.ends)
}
