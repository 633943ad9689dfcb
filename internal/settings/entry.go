package settings

import (
	"encoding"
	"fmt"
	"slices"
	"sync"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Binding is the type-erased view of an Entry used by the store and by
// config sync.
type Binding interface {
	Section() string
	Key() string
	Description() string
	// Text renders the current value.
	Text() string
	// SetText parses and applies a textual value.
	SetText(string) error
	// SetValue applies a cty value, converting it to the entry's type.
	SetValue(cty.Value) error
}

// Entry is a typed setting. Values may be changed from a background
// goroutine, so access goes through Value and Set.
type Entry[T any] struct {
	mu          sync.RWMutex
	section     string
	key         string
	description string
	def         T
	value       T
	listeners   []func(T)
}

func newEntry[T any](section, key string, def T, description string) *Entry[T] {
	return &Entry[T]{section: section, key: key, description: description, def: def, value: def}
}

func (e *Entry[T]) Section() string     { return e.section }
func (e *Entry[T]) Key() string         { return e.key }
func (e *Entry[T]) Description() string { return e.description }
func (e *Entry[T]) Default() T          { return e.def }

// Value returns the current value.
func (e *Entry[T]) Value() T {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.value
}

// Set replaces the value and notifies OnChange listeners.
func (e *Entry[T]) Set(v T) {
	e.mu.Lock()
	e.value = v
	listeners := slices.Clone(e.listeners)
	e.mu.Unlock()
	for _, fn := range listeners {
		fn(v)
	}
}

// OnChange subscribes fn to value changes.
func (e *Entry[T]) OnChange(fn func(T)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, fn)
}

func (e *Entry[T]) Text() string {
	v := e.Value()
	if m, ok := any(v).(encoding.TextMarshaler); ok {
		if b, err := m.MarshalText(); err == nil {
			return string(b)
		}
	}
	return fmt.Sprint(v)
}

func (e *Entry[T]) SetText(s string) error {
	return e.SetValue(cty.StringVal(s))
}

func (e *Entry[T]) SetValue(val cty.Value) error {
	v, err := fromCty[T](val)
	if err != nil {
		return fmt.Errorf("setting %s/%s: %w", e.section, e.key, err)
	}
	e.Set(v)
	return nil
}

// fromCty converts val to T. Types implementing encoding.TextUnmarshaler are
// decoded from the string form; everything else goes through gocty after
// converting val to T's implied cty type.
func fromCty[T any](val cty.Value) (T, error) {
	var out T
	if val.IsNull() || !val.IsKnown() {
		return out, fmt.Errorf("value is null or unknown")
	}
	if u, ok := any(&out).(encoding.TextUnmarshaler); ok {
		str, err := convert.Convert(val, cty.String)
		if err != nil {
			return out, err
		}
		if err := u.UnmarshalText([]byte(str.AsString())); err != nil {
			return out, err
		}
		return out, nil
	}
	ty, err := gocty.ImpliedType(out)
	if err != nil {
		return out, err
	}
	conv, err := convert.Convert(val, ty)
	if err != nil {
		return out, err
	}
	if err := gocty.FromCtyValue(conv, &out); err != nil {
		return out, err
	}
	return out, nil
}
