package status

import (
	"slices"
	"sync"
)

// MetricMap holds named metrics of type T. Components fetch their pointers once at
// construction and then update them without touching the map
type MetricMap[T any] struct {
	mu    sync.Mutex
	items map[string]*T
	keys  []string // sorted
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, registering a zero value on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr := new(T)
	m.items[key] = ptr
	i, _ := slices.BinarySearch(m.keys, key)
	m.keys = slices.Insert(m.keys, i, key)
	return ptr
}

// Range visits metrics in key order over a snapshot of the registered keys
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.Lock()
	keys := slices.Clone(m.keys)
	items := make([]*T, len(keys))
	for i, k := range keys {
		items[i] = m.items[k]
	}
	m.mu.Unlock()

	for i, k := range keys {
		fn(k, items[i])
	}
}

func (m *MetricMap[T]) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.keys)
}
