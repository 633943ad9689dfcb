// Package diag exposes the engine's diagnostics to package authors. It sits
// in the logging pipeline as an slog.Handler: debug records are delivered to
// OnDebug subscribers, warnings and errors to OnWarning subscribers, and every
// record is then passed on to the wrapped handler.
package diag

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
)

// Message is one diagnostic as seen by subscribers.
type Message struct {
	Level slog.Level
	Text  string
	Attrs map[string]string
}

// Events holds the diagnostic subscribers.
type Events struct {
	mu      sync.RWMutex
	debug   []func(Message)
	warning []func(Message)
}

// NewEvents creates an empty subscriber set.
func NewEvents() *Events { return &Events{} }

// OnDebug subscribes fn to debug diagnostics.
func (e *Events) OnDebug(fn func(Message)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.debug = append(e.debug, fn)
}

// OnWarning subscribes fn to warnings and errors.
func (e *Events) OnWarning(fn func(Message)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.warning = append(e.warning, fn)
}

func (e *Events) dispatch(m Message) {
	e.mu.RLock()
	var subs []func(Message)
	switch {
	case m.Level >= slog.LevelWarn:
		subs = e.warning
	case m.Level < slog.LevelInfo:
		subs = e.debug
	}
	subs = slices.Clone(subs)
	e.mu.RUnlock()

	for _, fn := range subs {
		fn(m)
	}
}

// Handler decorates an slog.Handler with Events delivery.
type Handler struct {
	next   slog.Handler
	events *Events
	attrs  []slog.Attr
	groups []string
}

// NewHandler wraps next. A nil next discards records after delivery.
func NewHandler(next slog.Handler, events *Events) *Handler {
	return &Handler{next: next, events: events}
}

// Enabled reports true for any level a subscriber or the wrapped handler
// wants.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	if level < slog.LevelInfo || level >= slog.LevelWarn {
		return true
	}
	return h.next != nil && h.next.Enabled(ctx, level)
}

// Handle delivers r to subscribers, then forwards it when the wrapped handler
// accepts its level.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	if h.events != nil {
		m := Message{Level: r.Level, Text: r.Message, Attrs: make(map[string]string)}
		prefix := strings.Join(h.groups, ".")
		for _, a := range h.attrs {
			m.Attrs[qualify(prefix, a.Key)] = a.Value.String()
		}
		r.Attrs(func(a slog.Attr) bool {
			m.Attrs[qualify(prefix, a.Key)] = a.Value.String()
			return true
		})
		h.events.dispatch(m)
	}
	if h.next == nil || !h.next.Enabled(ctx, r.Level) {
		return nil
	}
	return h.next.Handle(ctx, r)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	if h.next != nil {
		c.next = h.next.WithAttrs(attrs)
	}
	return &c
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	c.groups = append(append([]string(nil), h.groups...), name)
	if h.next != nil {
		c.next = h.next.WithGroup(name)
	}
	return &c
}

func qualify(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
