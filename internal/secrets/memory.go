// Package secrets provides the in-process credential bag used when no shared
// backend is configured. Reads dominate; setKeys writes are rare admin calls.
package secrets

import (
	"context"
	"sync"
)

type Memory struct {
	mu   sync.RWMutex
	vals map[string]string
}

// NewMemory seeds the bag, skipping empty values so env defaults behave like
// unset properties.
func NewMemory(seed map[string]string) *Memory {
	vals := make(map[string]string, len(seed))
	for k, v := range seed {
		if v != "" {
			vals[k] = v
		}
	}
	return &Memory{vals: vals}
}

func (m *Memory) Get(_ context.Context, name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.vals[name], nil
}

func (m *Memory) Set(_ context.Context, name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vals[name] = value
	return nil
}
