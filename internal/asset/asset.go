// Package asset models the in-memory resource payloads that content packages
// hand to the engine. Decoding is the host's job; here an Object is an
// already-loaded prefab tree described only by the components the engine
// inspects.
package asset

// Vec3 is a position or scale in world space.
type Vec3 struct {
	X, Y, Z float32
}

// LocationComponent carries the placement defaults a location prefab ships
// with.
type LocationComponent struct {
	ClearArea      bool
	ExteriorRadius float32
	InteriorRadius float32
	HasInterior    bool
	InteriorPrefab *Object
}

// Object is a loaded prefab. Children form the prefab's hierarchy.
type Object struct {
	Name string
	// NetView marks a network-replicated object.
	NetView bool
	// Character marks a spawnable creature.
	Character bool
	// RoomList marks a dungeon room-list prefab.
	RoomList bool
	// Environment names the environment zone an interior prefab applies.
	Environment string

	Location *LocationComponent
	Children []*Object
}

// NetViews returns every network-replicated object in the hierarchy rooted
// at o, o included, in depth-first order.
func (o *Object) NetViews() []*Object {
	if o == nil {
		return nil
	}
	var out []*Object
	var walk func(n *Object)
	walk = func(n *Object) {
		if n.NetView {
			out = append(out, n)
		}
		for _, c := range n.Children {
			if c != nil {
				walk(c)
			}
		}
	}
	walk(o)
	return out
}

// Instance is a live copy of a prefab placed in the world.
type Instance struct {
	Prefab      *Object
	Position    Vec3
	Scale       Vec3
	Environment string
}

// Container is a named package container (an asset bundle file) holding
// loaded prefabs by name.
type Container struct {
	Name   string
	assets map[string]*Object
	order  []string
}

// NewContainer creates an empty container.
func NewContainer(name string) *Container {
	return &Container{Name: name, assets: make(map[string]*Object)}
}

// Add stores obj under its own name, replacing an earlier asset of the same name.
func (c *Container) Add(obj *Object) {
	if obj == nil {
		return
	}
	if _, exists := c.assets[obj.Name]; !exists {
		c.order = append(c.order, obj.Name)
	}
	c.assets[obj.Name] = obj
}

// Load returns the asset called name.
func (c *Container) Load(name string) (*Object, bool) {
	obj, ok := c.assets[name]
	return obj, ok
}

// Names lists the assets in insertion order.
func (c *Container) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}
