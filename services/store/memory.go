package store

import (
	"errors"
	"sort"
)

// MemoryStore is the in-process backend used by tests. FailWrites simulates a
// full store (the quota-exceeded case): every Set reports failure and nothing
// is kept.
type MemoryStore struct {
	data       map[string][]byte
	FailWrites bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(key string) ([]byte, error) {
	data, ok := m.data[key]
	if !ok {
		return nil, ErrNoKey
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MemoryStore) Set(key string, value []byte) error {
	if m.FailWrites {
		return errors.New("store full")
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[key] = stored
	return nil
}

func (m *MemoryStore) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func (m *MemoryStore) Keys() ([]string, error) {
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MemoryStore) Close() error { return nil }
