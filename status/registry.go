package status

import (
	"strconv"
	"sync/atomic"
)

// Registry is the central metrics facade
// Systems cache pointers at construction; Update loops write directly to atomics
// Readers (HUD, headless summary) only ever load
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Metric is one formatted reading
type Metric struct {
	Key   string
	Value string
}

// Snapshot formats every metric, grouped by type and sorted by key within a group
func (r *Registry) Snapshot() []Metric {
	out := make([]Metric, 0, r.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out = append(out, Metric{key, strconv.FormatInt(v.Load(), 10)})
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		out = append(out, Metric{key, strconv.FormatFloat(v.Get(), 'f', 2, 64)})
	})
	r.Bools.Range(func(key string, v *atomic.Bool) {
		out = append(out, Metric{key, strconv.FormatBool(v.Load())})
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		out = append(out, Metric{key, v.Load()})
	})
	return out
}

// Count returns total metrics across all types
func (r *Registry) Count() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}
