package prefs

import (
	"context"
	"sort"
	"sync"
)

type memValue struct {
	isString bool
	i        int64
	s        string
}

// Memory is an in-process Store.
type Memory struct {
	mu     sync.RWMutex
	values map[string]memValue
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]memValue)}
}

// GetInt returns the int stored at key. A string value reads as def.
func (m *Memory) GetInt(ctx context.Context, key string, def int64) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok || v.isString {
		return def, nil
	}
	return v.i, nil
}

// GetString returns the string stored at key. An int value reads as def.
func (m *Memory) GetString(ctx context.Context, key string, def string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok || !v.isString {
		return def, nil
	}
	return v.s, nil
}

func (m *Memory) Contains(ctx context.Context, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.values[key]
	return ok, nil
}

// Keys returns the stored keys in sorted order.
func (m *Memory) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *Memory) Edit() Editor {
	return &memEditor{store: m}
}

type memEditor struct {
	store   *Memory
	changes Changes
}

func (e *memEditor) PutInt(key string, value int64) Editor {
	e.changes.StageInt(key, value)
	return e
}

func (e *memEditor) PutString(key string, value string) Editor {
	e.changes.StageString(key, value)
	return e
}

func (e *memEditor) Remove(key string) Editor {
	e.changes.StageRemove(key)
	return e
}

func (e *memEditor) Apply(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.store.mu.Lock()
	defer e.store.mu.Unlock()
	for _, change := range e.changes.List() {
		switch {
		case change.Remove:
			delete(e.store.values, change.Key)
		case change.String != nil:
			e.store.values[change.Key] = memValue{isString: true, s: *change.String}
		case change.Int != nil:
			e.store.values[change.Key] = memValue{i: *change.Int}
		}
	}
	e.changes.Reset()
	return nil
}
