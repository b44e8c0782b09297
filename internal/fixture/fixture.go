// Package fixture provides scoped test resources: acquire a resource
// with a declared scope and guarantee release on every exit path.
package fixture

import (
	"context"
	"fmt"
	"sync"
)

// Scope declares how long an acquired resource lives.
type Scope int

const (
	// PerCase acquires a fresh resource for every case and releases it
	// when the case finishes.
	PerCase Scope = iota
	// PerSuite acquires once and reuses the same resource for every
	// case until the suite is closed.
	PerSuite
)

// Provider creates and destroys a resource.
type Provider[T any] interface {
	Acquire(ctx context.Context) (T, error)
	Release(ctx context.Context, resource T) error
}

// Manager hands out resources from a Provider honoring the requested
// scope. A suite-scoped resource is acquired lazily on first use and
// held until CloseSuite.
type Manager[T any] struct {
	provider Provider[T]

	mu       sync.Mutex
	suiteRes T
	suiteSet bool
}

// NewManager creates a Manager for the given provider
func NewManager[T any](provider Provider[T]) *Manager[T] {
	return &Manager[T]{provider: provider}
}

// With runs fn with a resource of the requested scope. For PerCase the
// resource is released when fn returns, whether fn succeeds, fails, or
// panics. For PerSuite the resource stays live for later cases; release
// happens in CloseSuite.
func (m *Manager[T]) With(ctx context.Context, scope Scope, fn func(resource T) error) (err error) {
	res, release, err := m.acquire(ctx, scope)
	if err != nil {
		return err
	}
	if release != nil {
		defer func() {
			relErr := release()
			if err == nil {
				err = relErr
			}
		}()
	}
	return fn(res)
}

func (m *Manager[T]) acquire(ctx context.Context, scope Scope) (T, func() error, error) {
	if scope == PerCase {
		res, err := m.provider.Acquire(ctx)
		if err != nil {
			var zero T
			return zero, nil, fmt.Errorf("acquire resource: %w", err)
		}
		return res, func() error { return m.provider.Release(ctx, res) }, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.suiteSet {
		res, err := m.provider.Acquire(ctx)
		if err != nil {
			var zero T
			return zero, nil, fmt.Errorf("acquire suite resource: %w", err)
		}
		m.suiteRes = res
		m.suiteSet = true
	}
	return m.suiteRes, nil, nil
}

// CloseSuite releases the suite-scoped resource if one was acquired.
// Safe to call when no suite resource exists and safe to call twice.
func (m *Manager[T]) CloseSuite(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.suiteSet {
		return nil
	}
	res := m.suiteRes
	var zero T
	m.suiteRes = zero
	m.suiteSet = false
	return m.provider.Release(ctx, res)
}
