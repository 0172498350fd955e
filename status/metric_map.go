package status

import (
	"maps"
	"slices"
	"sync"
)

// MetricMap is a name-indexed set of metrics of type T.
// Entries are never removed, so a pointer from Get stays valid for the life of the map
type MetricMap[T any] struct {
	mu sync.RWMutex
	m  map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{m: make(map[string]*T)}
}

// Get returns the metric named key, allocating a zero value on first use
func (mm *MetricMap[T]) Get(key string) *T {
	mm.mu.RLock()
	v := mm.m[key]
	mm.mu.RUnlock()
	if v != nil {
		return v
	}

	mm.mu.Lock()
	defer mm.mu.Unlock()
	if v = mm.m[key]; v == nil {
		v = new(T)
		mm.m[key] = v
	}
	return v
}

// Range calls fn for each metric, sorted by name
func (mm *MetricMap[T]) Range(fn func(key string, v *T)) {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	for _, k := range slices.Sorted(maps.Keys(mm.m)) {
		fn(k, mm.m[k])
	}
}

func (mm *MetricMap[T]) Count() int {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	return len(mm.m)
}
