// Package container is a typed service registry.
//
// Services are registered and resolved through Key values rather than type
// names, so a lookup is checked at compile time and a missing service is an
// error instead of a crash:
//
//	var AnalyticsKey = container.NewKey[Analytics]("analytics")
//
//	c := container.New()
//	_ = container.Provide(c, AnalyticsKey, newAnalytics())
//	a, err := container.Resolve(c, AnalyticsKey)
package container

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrNotRegistered is returned when resolving a key that has no service.
	ErrNotRegistered = errors.New("service not registered")

	// ErrAlreadyRegistered is returned when providing a key twice.
	ErrAlreadyRegistered = errors.New("service already registered")
)

type token struct {
	name string
}

// Key identifies a service of type T. Keys are distinct even when they share
// a name; the name is only used in errors.
type Key[T any] struct {
	id *token
}

// NewKey creates a key for a service of type T.
func NewKey[T any](name string) Key[T] {
	return Key[T]{id: &token{name: name}}
}

// Name returns the name the key was created with.
func (k Key[T]) Name() string {
	if k.id == nil {
		return ""
	}
	return k.id.name
}

type entry struct {
	once    sync.Once
	value   any
	err     error
	factory func(*Container) (any, error)
}

// Container holds services. It is safe for concurrent use.
type Container struct {
	mu      sync.RWMutex
	entries map[*token]*entry
}

// New creates an empty container.
func New() *Container {
	return &Container{entries: make(map[*token]*entry)}
}

// Provide registers value under key.
func Provide[T any](c *Container, key Key[T], value T) error {
	return c.add(key.id, &entry{factory: func(*Container) (any, error) { return value, nil }})
}

// ProvideFactory registers a constructor under key. It runs on the first
// Resolve; its result, including an error, is kept for later calls. A
// factory may resolve other keys but not its own.
func ProvideFactory[T any](c *Container, key Key[T], factory func(*Container) (T, error)) error {
	return c.add(key.id, &entry{factory: func(c *Container) (any, error) { return factory(c) }})
}

func (c *Container) add(id *token, e *entry) error {
	if id == nil {
		return fmt.Errorf("container: zero key")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[id]; ok {
		return fmt.Errorf("container: %w: %s", ErrAlreadyRegistered, id.name)
	}
	c.entries[id] = e
	return nil
}

// Resolve returns the service registered under key.
func Resolve[T any](c *Container, key Key[T]) (T, error) {
	var zero T
	if key.id == nil {
		return zero, fmt.Errorf("container: %w: zero key", ErrNotRegistered)
	}

	c.mu.RLock()
	e, ok := c.entries[key.id]
	c.mu.RUnlock()
	if !ok {
		return zero, fmt.Errorf("container: %w: %s", ErrNotRegistered, key.id.name)
	}

	e.once.Do(func() {
		e.value, e.err = e.factory(c)
	})
	if e.err != nil {
		return zero, fmt.Errorf("container: build %s: %w", key.id.name, e.err)
	}
	v, _ := e.value.(T)
	return v, nil
}

// Has reports whether key has a registered service.
func Has[T any](c *Container, key Key[T]) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[key.id]
	return ok
}
