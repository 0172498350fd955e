package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 stored as bits; zero value reads 0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Smooth blends val into the stored value with weight alpha, for frame timings
func (f *AtomicFloat) Smooth(val, alpha float64) float64 {
	for {
		old := f.bits.Load()
		cur := math.Float64frombits(old)
		next := cur + (val-cur)*alpha
		if cur == 0 {
			next = val
		}
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}
