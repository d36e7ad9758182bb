package kv

import (
	"fmt"
	"sync"
)

// Memory keeps values in process. A positive quota caps the summed length of
// all keys and values, mimicking a browser storage limit.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
	quota  int

	// FailWrites forces every write to fail with ErrQuotaExceeded.
	FailWrites bool
}

func NewMemory(quota int) *Memory {
	return &Memory{values: map[string]string{}, quota: quota}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	return m.SetMany(map[string]string{key: value})
}

func (m *Memory) SetMany(values map[string]string) error {
	return m.Replace(values)
}

func (m *Memory) Replace(values map[string]string, deletes ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return fmt.Errorf("write %d key(s): %w", len(values), ErrQuotaExceeded)
	}
	if m.quota > 0 {
		dropped := make(map[string]bool, len(deletes))
		for _, k := range deletes {
			dropped[k] = true
		}
		size := 0
		for k, v := range m.values {
			if _, replaced := values[k]; !replaced && !dropped[k] {
				size += len(k) + len(v)
			}
		}
		for k, v := range values {
			size += len(k) + len(v)
		}
		if size > m.quota {
			return fmt.Errorf("write %d key(s) needs %d of %d bytes: %w", len(values), size, m.quota, ErrQuotaExceeded)
		}
	}
	for _, k := range deletes {
		delete(m.values, k)
	}
	for k, v := range values {
		m.values[k] = v
	}
	return nil
}

func (m *Memory) Delete(keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.values, k)
	}
	return nil
}

// Len reports how many keys are stored.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}
