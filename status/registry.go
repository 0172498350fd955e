package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric names shared by producers and the status row
const (
	GestureAccepted = "gesture.accepted"
	GestureDropped  = "gesture.dropped"
	GestureRejected = "gesture.rejected"
	RoundsPlayed    = "rounds.played"
	FrameMillis     = "frame.ms"

	EventsOverwritten = "events.overwritten"
)

// Registry is the session's metric facade
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Inc bumps a counter. Nil registry is a no-op so producers can run unobserved
func (r *Registry) Inc(key string) {
	if r == nil {
		return
	}
	r.Ints.Get(key).Add(1)
}

// Int reads a counter, zero when absent or nil
func (r *Registry) Int(key string) int64 {
	if r == nil {
		return 0
	}
	return r.Ints.Get(key).Load()
}

// Summary formats every metric as key=value in key order
func (r *Registry) Summary() string {
	var parts []string
	r.Ints.Range(func(k string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.2f", k, v.Get()))
	})
	return strings.Join(parts, " ")
}
