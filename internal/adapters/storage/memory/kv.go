// Package memory implements ports.KV in process memory.
// Nothing survives a restart; it backs tests and the "memory" storage driver.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jsamuelsen/quotekeeper/internal/domain"
)

// KV is a mutex-guarded map.
type KV struct {
	mu    sync.RWMutex
	slots map[string]string
}

// New returns an empty store.
func New() *KV {
	return &KV{slots: make(map[string]string)}
}

func (m *KV) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.slots[key]
	if !ok {
		return "", fmt.Errorf("slot %q: %w", key, domain.ErrStorageAbsent)
	}

	return v, nil
}

func (m *KV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	m.slots[key] = value
	m.mu.Unlock()

	return nil
}

func (m *KV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.slots, key)
	m.mu.Unlock()

	return nil
}

func (m *KV) Clear(_ context.Context) error {
	m.mu.Lock()
	clear(m.slots)
	m.mu.Unlock()

	return nil
}

func (m *KV) Close() error {
	return nil
}
