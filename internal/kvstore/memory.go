package kvstore

import (
	"encoding/json"
	"errors"
	"sort"
	"sync"

	"github.com/mauv0809/playdata/internal/model"
)

var errWritesDisabled = errors.New("writes disabled")

// Memory is an in-memory KVStore for tests and ephemeral runs. Values are
// round-tripped through JSON so it behaves like the durable store.
type Memory struct {
	mu     sync.RWMutex
	data   map[string]string
	failed bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// FailWrites makes every subsequent Set return a StoreError, for exercising
// the write-through failure path.
func (m *Memory) FailWrites(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failed = fail
}

func (m *Memory) Get(key string, out any) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, &model.StoreError{Op: "get", Key: key, Err: err}
	}
	return true, nil
}

func (m *Memory) Set(key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failed {
		return &model.StoreError{Op: "set", Key: key, Err: errWritesDisabled}
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return &model.StoreError{Op: "set", Key: key, Err: err}
	}
	m.data[key] = string(raw)
	return nil
}

func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *Memory) Keys() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
