// Package memory is an in-process storage.Storage used by tests and by
// throwaway runs that should not touch disk.
package memory

import (
	"context"
	"sync"

	"github.com/aanand-mishra/employee-dashboard/internal/storage"
)

type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

func New() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return "", storage.ErrKeyNotFound
	}
	return v, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

func (m *Memory) Close() error { return nil }
