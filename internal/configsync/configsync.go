// Package configsync keeps a package's settings in step with a sync server
// over socket.io. The client announces its bound entries on connect and
// applies the values the server pushes back.
package configsync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"sync"
	"time"

	"github.com/vk/locationmanager/internal/ctxlog"
	"github.com/vk/locationmanager/internal/host"
	"github.com/vk/locationmanager/internal/settings"
	"github.com/zclconf/go-cty/cty"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

const (
	// EventRegister is emitted once connected, carrying a Registration.
	EventRegister = "register"
	// EventConfig is pushed by the server with values to apply.
	EventConfig = "config"

	connectTimeout = 15 * time.Second
)

// ErrVersionMismatch indicates a payload for another package version.
var ErrVersionMismatch = errors.New("config sync version mismatch")

// Registration is what the client announces to the server.
type Registration struct {
	Name    string              `json:"name"`
	Version string              `json:"version"`
	Locked  bool                `json:"locked"`
	Entries map[string][]string `json:"entries"`
}

// Client syncs the entries of one package.
type Client struct {
	Name    string
	Version string
	Locked  bool

	mu      sync.Mutex
	entries map[string]settings.Binding
	order   []string
	io      *socket.Socket
}

// New creates a locked client identified as "<GUID> LocationManager".
func New(info host.PackageInfo) *Client {
	return &Client{
		Name:    info.GUID + " LocationManager",
		Version: info.Version,
		Locked:  true,
		entries: make(map[string]settings.Binding),
	}
}

// AddEntry puts b under sync. Adding the same section/key twice keeps the
// first binding.
func (c *Client) AddEntry(b settings.Binding) {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := b.Section() + "/" + b.Key()
	if _, ok := c.entries[k]; ok {
		return
	}
	c.entries[k] = b
	c.order = append(c.order, k)
}

// Entries returns the synced bindings in the order they were added.
func (c *Client) Entries() []settings.Binding {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]settings.Binding, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.entries[k])
	}
	return out
}

// Registration builds the announcement for the current entries.
func (c *Client) Registration() Registration {
	r := Registration{Name: c.Name, Version: c.Version, Locked: c.Locked, Entries: make(map[string][]string)}
	for _, b := range c.Entries() {
		r.Entries[b.Section()] = append(r.Entries[b.Section()], b.Key())
	}
	for _, keys := range r.Entries {
		sort.Strings(keys)
	}
	return r
}

// Connect dials the sync server at rawURL, announces the client and
// subscribes to pushed values. It blocks until connected, ctx is done, or
// the connection attempt times out.
func (c *Client) Connect(ctx context.Context, rawURL string) error {
	logger := ctxlog.FromContext(ctx).With("component", "configsync", "url", rawURL)

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return fmt.Errorf("invalid sync URL %q: scheme and host are required", rawURL)
	}

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	opts.SetTransports(types.NewSet(transports.WebSocket))

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket("/", opts)

	connectChan := make(chan error, 1)
	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Connected to config sync server.", "sid", io.Id())
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		connectChan <- connectError(errs)
	})
	io.On(types.EventName(EventConfig), func(data ...any) {
		if len(data) == 0 {
			return
		}
		payload, ok := data[0].(map[string]any)
		if !ok {
			logger.Warn("Ignoring malformed config payload.", "type", fmt.Sprintf("%T", data[0]))
			return
		}
		if _, err := c.Apply(ctx, payload); err != nil {
			logger.Warn("Failed to apply synced config.", "error", err)
		}
	})

	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return fmt.Errorf("socket.io connection failed: %w", err)
		}
	case <-ctx.Done():
		io.Disconnect()
		return fmt.Errorf("context cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-time.After(connectTimeout):
		io.Disconnect()
		return fmt.Errorf("timed out after %s waiting for socket.io connection", connectTimeout)
	}

	c.mu.Lock()
	c.io = io
	c.mu.Unlock()

	reg := c.Registration()
	logger.Debug("Registering synced entries.", "name", reg.Name, "sections", len(reg.Entries))
	io.Emit(EventRegister, reg)
	return nil
}

// Announce re-emits the registration, so entries added after Connect reach
// the server. It reports whether a connection was open.
func (c *Client) Announce(ctx context.Context) bool {
	c.mu.Lock()
	io := c.io
	c.mu.Unlock()
	if io == nil {
		return false
	}
	reg := c.Registration()
	ctxlog.FromContext(ctx).Debug("Announcing synced entries.", "name", reg.Name, "sections", len(reg.Entries))
	io.Emit(EventRegister, reg)
	return true
}

// connectError turns the arguments of a connect_error event into an error.
func connectError(args []any) error {
	if len(args) == 0 {
		return errors.New("connect_error")
	}
	if err, ok := args[0].(error); ok && err != nil {
		return err
	}
	return fmt.Errorf("%v", args[0])
}

// Close disconnects from the server if connected.
func (c *Client) Close() {
	c.mu.Lock()
	io := c.io
	c.io = nil
	c.mu.Unlock()
	if io != nil {
		slog.Debug("Closing config sync client.", "sid", io.Id())
		io.Disconnect()
	}
}

// Apply writes the values of payload into the synced entries and returns how
// many were applied. Payloads addressed to another client are ignored.
// Payload shape:
//
//	{"name": "...", "version": "...", "values": {"<section>": {"<key>": <value>}}}
func (c *Client) Apply(ctx context.Context, payload map[string]any) (int, error) {
	if name, _ := payload["name"].(string); name != c.Name {
		return 0, nil
	}
	if version, _ := payload["version"].(string); version != c.Version {
		return 0, fmt.Errorf("%w: server %q, client %q", ErrVersionMismatch, version, c.Version)
	}
	values, _ := payload["values"].(map[string]any)

	c.mu.Lock()
	entries := make(map[string]settings.Binding, len(c.entries))
	for k, v := range c.entries {
		entries[k] = v
	}
	c.mu.Unlock()

	logger := ctxlog.FromContext(ctx)
	applied := 0
	var errs []error
	for section, raw := range values {
		keys, ok := raw.(map[string]any)
		if !ok {
			errs = append(errs, fmt.Errorf("section %q: expected an object, got %T", section, raw))
			continue
		}
		for key, v := range keys {
			b, ok := entries[section+"/"+key]
			if !ok {
				logger.Debug("Ignoring value for unsynced entry.", "section", section, "key", key)
				continue
			}
			val, err := toCty(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("section %q, key %q: %w", section, key, err))
				continue
			}
			if err := b.SetValue(val); err != nil {
				errs = append(errs, err)
				continue
			}
			applied++
		}
	}
	return applied, errors.Join(errs...)
}

func toCty(v any) (cty.Value, error) {
	switch x := v.(type) {
	case string:
		return cty.StringVal(x), nil
	case bool:
		return cty.BoolVal(x), nil
	case float64:
		return cty.NumberFloatVal(x), nil
	case int:
		return cty.NumberIntVal(int64(x)), nil
	case int64:
		return cty.NumberIntVal(x), nil
	default:
		return cty.NilVal, fmt.Errorf("unsupported value type %T", v)
	}
}
