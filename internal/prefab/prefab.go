// Package prefab queues network-replicated objects for registration with the
// host scene. Besides explicitly registered prefabs it tracks companions:
// network objects nested inside a package's prefabs that the host would
// otherwise fail to replicate because they were never registered.
package prefab

import (
	"context"

	"github.com/vk/locationmanager/internal/asset"
	"github.com/vk/locationmanager/internal/ctxlog"
	"github.com/vk/locationmanager/internal/host"
)

// Companion is a nested network object and the prefab it was found in.
type Companion struct {
	Object     *asset.Object
	ParentName string
}

// Name returns the companion object's name.
func (c *Companion) Name() string { return c.Object.Name }

// Manager holds prefabs waiting for the scene to wake up.
type Manager struct {
	toRegister []*asset.Object
	missing    map[string]*Companion
	order      []string

	// RegisteredMissing lists every companion added to a scene so far.
	RegisteredMissing []*asset.Object

	finished []func()
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{missing: make(map[string]*Companion)}
}

// Register queues obj for the scene. Nil objects are ignored.
func (m *Manager) Register(obj *asset.Object) {
	if obj == nil {
		return
	}
	m.toRegister = append(m.toRegister, obj)
}

// RegisterFrom queues the asset called name from c. It reports whether the
// asset was found.
func (m *Manager) RegisterFrom(c *asset.Container, name string) bool {
	if c == nil {
		return false
	}
	obj, ok := c.Load(name)
	if !ok {
		return false
	}
	m.Register(obj)
	return true
}

// Track records child as a companion of parentName. The first registration
// for a child name wins; it reports whether child was recorded.
func (m *Manager) Track(child *asset.Object, parentName string) bool {
	if child == nil {
		return false
	}
	if _, exists := m.missing[child.Name]; exists {
		return false
	}
	m.missing[child.Name] = &Companion{Object: child, ParentName: parentName}
	m.order = append(m.order, child.Name)
	return true
}

// TrackChildren tracks every network object in root's hierarchy, root
// included.
func (m *Manager) TrackChildren(root *asset.Object, parentName string) {
	for _, child := range root.NetViews() {
		m.Track(child, parentName)
	}
}

// Companions returns the tracked companions in tracking order.
func (m *Manager) Companions() []*Companion {
	out := make([]*Companion, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.missing[name])
	}
	return out
}

// OnFinishedRegistering subscribes fn to the end of every flush.
func (m *Manager) OnFinishedRegistering(fn func()) {
	m.finished = append(m.finished, fn)
}

// FlushInto adds queued prefabs and companions to scene. Only network
// objects are added, and nothing already present by reference or name is
// added twice.
func (m *Manager) FlushInto(ctx context.Context, scene *host.Scene) {
	logger := ctxlog.FromContext(ctx)

	for _, obj := range m.toRegister {
		if !obj.NetView {
			continue
		}
		if scene.Exists(obj) {
			logger.Debug("Prefab already exists.", "prefab", obj.Name)
			continue
		}
		scene.Add(obj)
	}

	for _, c := range m.Companions() {
		if !c.Object.NetView || scene.Exists(c.Object) {
			continue
		}
		scene.Add(c.Object)
		m.RegisteredMissing = append(m.RegisteredMissing, c.Object)
		logger.Debug("Registered missing network object.", "prefab", c.Name(), "parent", c.ParentName)
	}

	for _, fn := range m.finished {
		fn()
	}
}
