package store

import (
	"context"
	"sync"
)

// memoryCounterStorage keeps counters in process memory. Counters are lost on
// restart; it backs deployments without a writable directory or database.
type memoryCounterStorage struct {
	mu       sync.Mutex
	counters map[string]map[string]int64
}

// NewMemoryCounterStorage returns an empty in-memory [CounterStorage].
func NewMemoryCounterStorage() CounterStorage {
	return &memoryCounterStorage{counters: make(map[string]map[string]int64)}
}

func (m *memoryCounterStorage) day(day string) map[string]int64 {
	counters, ok := m.counters[day]
	if !ok {
		// one day is live at a time; older days are dropped
		clear(m.counters)
		counters = make(map[string]int64)
		m.counters[day] = counters
	}
	return counters
}

func (m *memoryCounterStorage) Increment(_ context.Context, day, name string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	counters := m.day(day)
	counters[name]++
	return counters[name], nil
}

func (m *memoryCounterStorage) IncrementBelow(_ context.Context, day, name string, ceiling int64) (int64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	counters := m.day(day)
	if counters[name] >= ceiling {
		return counters[name], false, nil
	}
	counters[name]++
	return counters[name], true, nil
}

func (m *memoryCounterStorage) Count(_ context.Context, day, name string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.counters[day][name], nil
}
