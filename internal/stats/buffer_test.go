package stats

import (
	"math"
	"testing"
)

func TestLiveBufferFIFOEviction(t *testing.T) {
	b := NewLiveBuffer(3)
	for _, v := range []float64{1, 2, 3, 4} {
		b.Push(v)
	}

	got := b.Snapshot()
	want := []float64{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestLiveBufferWarmUp(t *testing.T) {
	b := NewLiveBuffer(10)
	if pct := b.ChangePctOverLast(12); pct != nil {
		t.Fatalf("expected nil on empty buffer, got %v", *pct)
	}
	b.Push(100)
	if pct := b.ChangePctOverLast(12); pct != nil {
		t.Fatalf("expected nil with one sample, got %v", *pct)
	}
}

func TestLiveBufferChangePct(t *testing.T) {
	b := NewLiveBuffer(24)
	for _, v := range []float64{50, 100, 110} {
		b.Push(v)
	}

	// k larger than length clamps to the whole buffer.
	pct := b.ChangePctOverLast(100)
	if pct == nil {
		t.Fatal("expected change, got nil")
	}
	if math.Abs(*pct-120.0) > 1e-9 {
		t.Fatalf("expected 120.0, got %v", *pct)
	}

	pct = b.ChangePctOverLast(2)
	if pct == nil || math.Abs(*pct-10.0) > 1e-9 {
		t.Fatalf("expected 10.0 over last 2, got %v", pct)
	}
}

func TestLiveBufferZeroFirstValue(t *testing.T) {
	b := NewLiveBuffer(24)
	b.Push(0)
	b.Push(5)
	if pct := b.ChangePctOverLast(2); pct != nil {
		t.Fatalf("expected nil with zero first value, got %v", *pct)
	}
}

func TestLiveBufferDefaultCapacity(t *testing.T) {
	b := NewLiveBuffer(0)
	for i := 0; i < 100; i++ {
		b.Push(float64(i))
	}
	if got := len(b.Snapshot()); got != defaultBufferCapacity {
		t.Fatalf("expected %d values, got %d", defaultBufferCapacity, got)
	}
}
