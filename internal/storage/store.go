// Package storage implements the key-value storage that holds the
// transaction lists.
package storage

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned by Store.Get if there is no value for the key.
var ErrNotFound = errors.New("no value stored for the key")

// UpdateFunc computes the new value for a key from the current one.
// found is false if there is no value for the key yet.
type UpdateFunc func(current string, found bool) (string, error)

// Store is a string key-value store.
type Store interface {
	// Get returns the value for the key or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Update atomically replaces the value for the key with the result of fn.
	// If fn returns an error, nothing is written and the error is returned.
	Update(ctx context.Context, key string, fn UpdateFunc) error

	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Memory is a Store that keeps all values in memory.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *Memory) Update(_ context.Context, key string, fn UpdateFunc) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, found := m.values[key]
	value, err := fn(current, found)
	if err != nil {
		return err
	}

	m.values[key] = value
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}
