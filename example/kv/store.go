// Package kv is a small key/value store used to demonstrate generated
// proxies.
package kv

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

var ErrNotFound = errors.New("kv: key not found")

type Store interface {
	Get(key string) (string, error)
	Set(key, value string)
	// Keys lists keys with any of the prefixes, or all keys without one.
	Keys(prefixes ...string) []string
	Len() int
}

type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}

	return v, nil
}

func (m *Memory) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}

func (m *Memory) Keys(prefixes ...string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		if matchesAny(k, prefixes) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	return keys
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.data)
}

func matchesAny(key string, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	for _, p := range prefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}

	return false
}
