package status

import (
	"strconv"
	"sync/atomic"
)

// Registry is the central metrics facade
// Components cache pointers during init; the game loop writes directly to atomics
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}

// Lines formats every metric as "key value" in a stable order: ints, floats, bools
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		lines = append(lines, key+" "+strconv.FormatInt(v.Load(), 10))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		lines = append(lines, key+" "+strconv.FormatFloat(v.Get(), 'f', 1, 64))
	})
	r.Bools.Range(func(key string, v *atomic.Bool) {
		lines = append(lines, key+" "+strconv.FormatBool(v.Load()))
	})
	return lines
}
