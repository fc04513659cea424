package cache

import (
	"context"
	"sync"
)

// Memory is an in-process Store. It is the default for `uwtm serve`
// when no Redis address is configured.
type Memory struct {
	mu     sync.RWMutex
	tables map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{tables: make(map[string]string)}
}

// Get implements Store.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	table, ok := m.tables[key]
	return table, ok, nil
}

// Put implements Store.
func (m *Memory) Put(_ context.Context, key string, table string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[key] = table
	return nil
}
