package store

import (
	"context"
	"sync"

	"github.com/trainlog/trainlog/internal/repository"
)

var _ repository.KeyValueStore = (*MemoryKV)(nil)

// MemoryKV is an in-process key-value store. Failures can be injected per
// operation to exercise error paths.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string

	getErr    error
	setErr    error
	removeErr error
}

// NewMemoryKV returns an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

// FailGet makes every subsequent Get return err. Pass nil to restore.
func (m *MemoryKV) FailGet(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getErr = err
}

// FailSet makes every subsequent Set return err. Pass nil to restore.
func (m *MemoryKV) FailSet(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setErr = err
}

// FailRemove makes every subsequent Remove return err. Pass nil to restore.
func (m *MemoryKV) FailRemove(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeErr = err
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	if key == "" {
		return repository.ErrInvalidInput
	}
	m.data[key] = value
	return nil
}

func (m *MemoryKV) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.removeErr != nil {
		return m.removeErr
	}
	delete(m.data, key)
	return nil
}
