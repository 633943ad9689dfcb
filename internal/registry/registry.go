package registry

import (
	"log/slog"

	"github.com/vk/locationmanager/internal/naming"
)

// Registry holds values keyed by normalized name. Iteration follows the order
// in which names were first registered. It is not safe for concurrent use.
type Registry[T any] struct {
	entries map[string]T
	order   []string
}

// New creates and initializes an empty Registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{
		entries: make(map[string]T),
	}
}

// Register stores v under the normalized form of name and returns that key.
// An existing entry for the same key is replaced in place.
func (r *Registry[T]) Register(name string, v T) string {
	key := naming.Normalize(name)
	if _, exists := r.entries[key]; exists {
		slog.Debug("Replacing registry entry.", "name", key)
	} else {
		r.order = append(r.order, key)
	}
	r.entries[key] = v
	return key
}

// Lookup returns the value registered under the normalized form of name.
func (r *Registry[T]) Lookup(name string) (T, bool) {
	v, ok := r.entries[naming.Normalize(name)]
	return v, ok
}

// Values returns all registered values in registration order.
func (r *Registry[T]) Values() []T {
	values := make([]T, 0, len(r.order))
	for _, key := range r.order {
		values = append(values, r.entries[key])
	}
	return values
}

// Names returns all registered keys in registration order.
func (r *Registry[T]) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered names.
func (r *Registry[T]) Len() int {
	return len(r.order)
}
