package storage

import (
	"bytes"
	"context"
	"sort"
	"sync"
)

// MemoryEngine implements KVEngine with an in-process map. Nothing is
// durable; it exists for tests and for running the ledger without a
// data directory.
type MemoryEngine struct {
	mu     sync.RWMutex
	data   map[string][]byte
	closed bool
}

// NewMemoryEngine creates an empty in-memory engine.
func NewMemoryEngine() *MemoryEngine {
	return &MemoryEngine{data: make(map[string][]byte)}
}

// Get retrieves a value by key.
func (e *MemoryEngine) Get(_ context.Context, key []byte) ([]byte, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.closed {
		return nil, ErrClosed
	}

	value, ok := e.data[string(key)]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores a key-value pair.
func (e *MemoryEngine) Set(_ context.Context, key, value []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	e.data[string(key)] = stored
	return nil
}

// Delete removes a key.
func (e *MemoryEngine) Delete(_ context.Context, key []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return ErrClosed
	}

	delete(e.data, string(key))
	return nil
}

// Scan iterates over keys with a given prefix in lexicographic order.
func (e *MemoryEngine) Scan(_ context.Context, prefix []byte, fn func(key, value []byte) bool) error {
	e.mu.RLock()
	if e.closed {
		e.mu.RUnlock()
		return ErrClosed
	}

	keys := make([]string, 0, len(e.data))
	for k := range e.data {
		if bytes.HasPrefix([]byte(k), prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	type pair struct {
		key   []byte
		value []byte
	}
	pairs := make([]pair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, pair{[]byte(k), e.data[k]})
	}
	e.mu.RUnlock()

	for _, p := range pairs {
		if !fn(p.key, p.value) {
			break
		}
	}
	return nil
}

// Stats returns storage statistics.
func (e *MemoryEngine) Stats(_ context.Context) (*KVStats, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.closed {
		return nil, ErrClosed
	}

	var size uint64
	for k, v := range e.data {
		size += uint64(len(k) + len(v))
	}
	return &KVStats{
		TotalKeys: uint64(len(e.data)),
		TotalSize: size,
	}, nil
}

// Close marks the engine closed; further operations fail.
func (e *MemoryEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	return nil
}
