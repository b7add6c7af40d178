package container

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Lifetime defines the lifespan of a service
type Lifetime int

const (
	Singleton Lifetime = iota
	Transient
)

// Well known service names.
const (
	Config            = "config"
	Logger            = "logger"
	ValidationService = "validation_service"
)

// Closer allows a service to release resources when the container is flushed
type Closer interface {
	Close() error
}

type ContextCloser interface {
	Close(ctx context.Context) error
}

// Provider creates a service instance
type Provider func(c *Container) (any, error)

type entry struct {
	mu       sync.Mutex
	provider Provider
	lifetime Lifetime
	instance any
}

type Container struct {
	mu       sync.Mutex
	services map[string]*entry
	ctx      context.Context
}

func New(ctx context.Context) *Container {
	return &Container{
		services: make(map[string]*entry),
		ctx:      ctx,
	}
}

// Set registers a ready instance. The first registration of a name wins.
func (c *Container) Set(name string, instance any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.services[name]; ok {
		return
	}
	c.services[name] = &entry{instance: instance, lifetime: Singleton}
}

func (c *Container) Register(name string, lifetime Lifetime, p Provider) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.services[name]; ok {
		return
	}
	c.services[name] = &entry{provider: p, lifetime: lifetime}
}

// Get returns the service instance, creating it if necessary. Providers may
// resolve other services through c, but never their own name.
func (c *Container) Get(name string) (any, error) {
	c.mu.Lock()
	item, ok := c.services[name]
	c.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("container: service %s not found", name)
	}

	if item.lifetime == Transient {
		return item.build(c, name)
	}

	item.mu.Lock()
	defer item.mu.Unlock()
	if item.instance != nil {
		return item.instance, nil
	}

	instance, err := item.build(c, name)
	if err != nil {
		return nil, err
	}
	item.instance = instance
	return instance, nil
}

func (e *entry) build(c *Container, name string) (any, error) {
	if e.provider == nil {
		return nil, fmt.Errorf("container: no provider for %s", name)
	}
	instance, err := e.provider(c)
	if err != nil {
		return nil, fmt.Errorf("container: building %s: %w", name, err)
	}
	return instance, nil
}

// MapTo resolves a service and asserts its type
func MapTo[T any](c *Container, name string) (T, error) {
	var zero T
	val, err := c.Get(name)
	if err != nil {
		return zero, err
	}
	typed, ok := val.(T)
	if !ok {
		return zero, fmt.Errorf("container: service %s is %T, not %T", name, val, zero)
	}
	return typed, nil
}

// MustMap is MapTo for wiring code that cannot continue without the service.
func MustMap[T any](c *Container, name string) T {
	v, err := MapTo[T](c, name)
	if err != nil {
		panic(err)
	}
	return v
}

// Flush closes every built singleton and empties the container.
func (c *Container) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	for name, item := range c.services {
		item.mu.Lock()
		if item.instance != nil {
			if d, ok := item.instance.(Closer); ok {
				errs = append(errs, d.Close())
			}
			if d, ok := item.instance.(ContextCloser); ok {
				errs = append(errs, d.Close(c.ctx))
			}
		}
		item.mu.Unlock()
		delete(c.services, name)
	}
	return errors.Join(errs...)
}

func (c *Container) Context() context.Context {
	return c.ctx
}
