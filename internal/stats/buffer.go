package stats

import "sync"

const defaultBufferCapacity = 24

// LiveBuffer is a bounded FIFO of locally observed prices. The upstream
// market chart has hourly resolution at best, too coarse for a "last hour"
// delta when polling every five minutes, so each applied poll appends the
// observed spot price here. The buffer starts empty on every process start;
// short-window deltas stay nil until enough samples accumulate.
type LiveBuffer struct {
	mu       sync.Mutex
	capacity int
	values   []float64
}

// NewLiveBuffer creates an empty buffer. Non-positive capacities fall back
// to the default of 24 (about two hours at a 5-minute poll).
func NewLiveBuffer(capacity int) *LiveBuffer {
	if capacity <= 0 {
		capacity = defaultBufferCapacity
	}
	return &LiveBuffer{capacity: capacity, values: make([]float64, 0, capacity)}
}

// Push appends a value, evicting the oldest when the buffer is full.
func (b *LiveBuffer) Push(v float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.values = append(b.values, v)
	if len(b.values) > b.capacity {
		b.values = b.values[1:]
	}
}

// Snapshot returns a copy of the buffered values, oldest first.
func (b *LiveBuffer) Snapshot() []float64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]float64, len(b.values))
	copy(out, b.values)
	return out
}

// ChangePctOverLast computes the percentage change across the last k values
// (or all of them when fewer are buffered). Returns nil during warm-up
// (fewer than two values) and when the first value is zero or non-finite.
func (b *LiveBuffer) ChangePctOverLast(k int) *float64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(b.values)
	if k > n {
		k = n
	}
	if k < 2 {
		return nil
	}
	window := b.values[n-k:]
	first, last := window[0], window[len(window)-1]
	if !isFinite(first) || !isFinite(last) || first == 0 {
		return nil
	}
	pct := (last - first) / first * 100
	return &pct
}
