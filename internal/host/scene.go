package host

import "github.com/vk/locationmanager/internal/asset"

// Scene is the host's registry of network-replicated prefabs.
type Scene struct {
	Prefabs []*asset.Object
}

// GetPrefab returns the prefab called name.
func (s *Scene) GetPrefab(name string) *asset.Object {
	if s == nil {
		return nil
	}
	for _, p := range s.Prefabs {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Exists reports whether obj, or any prefab with its name, is registered.
func (s *Scene) Exists(obj *asset.Object) bool {
	if s == nil || obj == nil {
		return false
	}
	for _, p := range s.Prefabs {
		if p == obj || p.Name == obj.Name {
			return true
		}
	}
	return false
}

// Add appends obj.
func (s *Scene) Add(obj *asset.Object) {
	s.Prefabs = append(s.Prefabs, obj)
}

// ObjectDB is the host's item database.
type ObjectDB struct {
	Items []*asset.Object
}

// Prototype is the scene/object database template the startup screen holds
// before a world is loaded.
type Prototype struct {
	Scene    *Scene
	ObjectDB *ObjectDB
}

// Startup is the host's startup screen.
type Startup struct {
	Prototype *Prototype
}

// CreatureSpawner spawns a creature at a fixed point in a location.
type CreatureSpawner struct {
	Name           string
	CreaturePrefab *asset.Object
}
