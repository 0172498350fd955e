package status

import (
	"sync"
	"testing"
)

func TestMetricMapCachesPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("x")
	b := r.Ints.Get("x")
	if a != b {
		t.Error("Expected the same pointer for one key")
	}
	if r.Ints.Count() != 1 {
		t.Errorf("Expected 1 metric, got %d", r.Ints.Count())
	}
}

func TestConcurrentInc(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				r.Inc(GestureAccepted)
			}
		}()
	}
	wg.Wait()
	if got := r.Int(GestureAccepted); got != 8000 {
		t.Errorf("Expected 8000, got %d", got)
	}
}

func TestNilRegistryIsInert(t *testing.T) {
	var r *Registry
	r.Inc(GestureDropped)
	if r.Int(GestureDropped) != 0 {
		t.Error("Expected zero from nil registry")
	}
}

func TestSmooth(t *testing.T) {
	var f AtomicFloat
	if got := f.Smooth(10, 0.5); got != 10 {
		t.Errorf("Expected first sample taken as is, got %g", got)
	}
	if got := f.Smooth(20, 0.5); got != 15 {
		t.Errorf("Expected 15, got %g", got)
	}
}

func TestSummaryOrdered(t *testing.T) {
	r := NewRegistry()
	r.Inc(RoundsPlayed)
	r.Inc(GestureAccepted)
	r.Floats.Get(FrameMillis).Set(1.5)

	want := "gesture.accepted=1 rounds.played=1 frame.ms=1.50"
	if got := r.Summary(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
