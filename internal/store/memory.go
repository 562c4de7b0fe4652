package store

import (
	"context"
	"sync"
)

type memory struct {
	mu     sync.RWMutex
	data   map[string]string
	closed bool
}

// NewMemory returns a process-local KV. Nothing survives a restart.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewMemory() KV {
	return &memory{
		data: make(map[string]string),
	}
}

func (m *memory) Get(_ context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrMissingKey
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return "", false, ErrClosed
	}

	v, ok := m.data[key]

	return v, ok, nil
}

func (m *memory) Set(ctx context.Context, key string, value string) error {
	return m.SetMany(ctx, map[string]string{key: value})
}

func (m *memory) SetMany(_ context.Context, entries map[string]string) error {
	if err := validateEntries(entries); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	for k, v := range entries {
		m.data[k] = v
	}

	return nil
}

func (m *memory) Delete(_ context.Context, key string) error {
	if key == "" {
		return ErrMissingKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	delete(m.data, key)

	return nil
}

func (m *memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true

	return nil
}
