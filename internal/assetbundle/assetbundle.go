// Package assetbundle resolves package containers by name. Lookups go through
// a cache, then the containers the host already has open, then the
// containers packages provided to the manager.
package assetbundle

import (
	"errors"
	"fmt"

	"github.com/vk/locationmanager/internal/asset"
)

var (
	// ErrContainerNotFound indicates no container with the requested name.
	ErrContainerNotFound = errors.New("container not found")
	// ErrAssetNotFound indicates a container without the requested asset.
	ErrAssetNotFound = errors.New("asset not found")
)

// LoadedFunc lists the containers the host currently has open.
type LoadedFunc func() []*asset.Container

// Manager resolves containers by name.
type Manager struct {
	cache    map[string]*asset.Container
	provided map[string]*asset.Container
	loaded   LoadedFunc
}

// NewManager creates a manager that consults loaded after its cache. A nil
// loaded means the host has nothing open.
func NewManager(loaded LoadedFunc) *Manager {
	return &Manager{
		cache:    make(map[string]*asset.Container),
		provided: make(map[string]*asset.Container),
		loaded:   loaded,
	}
}

// Provide makes c available under its name as a last-resort source.
func (m *Manager) Provide(c *asset.Container) {
	if c == nil {
		return
	}
	m.provided[c.Name] = c
}

// GetContainer returns the container called name and caches it.
func (m *Manager) GetContainer(name string) (*asset.Container, error) {
	if c, ok := m.cache[name]; ok {
		return c, nil
	}
	if m.loaded != nil {
		for _, c := range m.loaded() {
			if c != nil && c.Name == name {
				m.cache[name] = c
				return c, nil
			}
		}
	}
	if c, ok := m.provided[name]; ok {
		m.cache[name] = c
		return c, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrContainerNotFound, name)
}

// LoadAsset returns the asset called name from the container called
// container.
func (m *Manager) LoadAsset(container, name string) (*asset.Object, error) {
	c, err := m.GetContainer(container)
	if err != nil {
		return nil, err
	}
	obj, ok := c.Load(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s in %s", ErrAssetNotFound, name, container)
	}
	return obj, nil
}
