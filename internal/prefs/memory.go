package prefs

import (
	"context"
	"sync"
)

// memory is an in-memory map-based Store. Values are lost on restart.
type memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{values: make(map[string]string)}
}

func (m *memory) Get(ctx context.Context, key, def string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return def, nil
}

func (m *memory) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memory) Close() error { return nil }
