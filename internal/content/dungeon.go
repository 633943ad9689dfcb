package content

import (
	"errors"
	"fmt"

	"github.com/vk/locationmanager/internal/asset"
	"github.com/vk/locationmanager/internal/assetid"
	"github.com/vk/locationmanager/internal/host"
	"github.com/vk/locationmanager/internal/streaming"
)

// Dungeon pairs a room-list prefab with the generator that spawns it.
type Dungeon struct {
	Prefab    *asset.Object
	Generator *asset.Object
	Rooms     *RoomReferences
}

// NewDungeon registers a dungeon under the generator's name and queues the
// generator for the scene.
func (c *Catalog) NewDungeon(prefab, generator *asset.Object) (*Dungeon, error) {
	if prefab == nil || generator == nil {
		return nil, fmt.Errorf("new dungeon: %w", ErrNilPrefab)
	}
	d := &Dungeon{
		Prefab:    prefab,
		Generator: generator,
		Rooms:     &RoomReferences{catalog: c},
	}
	c.Dungeons.Register(generator.Name, d)
	c.prefabs.Register(generator)
	return d, nil
}

// NewDungeonFromContainer loads both prefabs from container and registers
// the dungeon.
func (c *Catalog) NewDungeonFromContainer(container, prefabName, generatorName string) (*Dungeon, error) {
	prefab, err := c.load(container, prefabName)
	if err != nil {
		return nil, fmt.Errorf("new dungeon %s: %w", generatorName, err)
	}
	generator, err := c.load(container, generatorName)
	if err != nil {
		return nil, fmt.Errorf("new dungeon %s: %w", generatorName, err)
	}
	return c.NewDungeon(prefab, generator)
}

// RoomReferences is the ordered room list of one dungeon.
type RoomReferences struct {
	catalog *Catalog
	list    []*RoomReference
}

// Add appends rooms loaded from container. A room already registered by
// name is reused without loading. Rooms that cannot be loaded are skipped
// with a warning and reported in the returned error.
func (r *RoomReferences) Add(container, first string, others ...string) error {
	var errs []error
	for _, name := range append([]string{first}, others...) {
		if err := r.add(container, name); err != nil {
			r.catalog.logger.Warn("Room not found.", "room", name, "container", container, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (r *RoomReferences) add(container, name string) error {
	c := r.catalog
	if ref, ok := c.registeredRooms[name]; ok {
		r.list = append(r.list, ref)
		return nil
	}
	obj, err := c.load(container, name)
	if err != nil {
		return err
	}
	ref := c.NewRoomReference(obj)
	c.registeredRooms[name] = ref
	r.list = append(r.list, ref)
	c.prefabs.TrackChildren(obj, obj.Name)
	return nil
}

// List returns the rooms in insertion order.
func (r *RoomReferences) List() []*RoomReference {
	out := make([]*RoomReference, len(r.list))
	copy(out, r.list)
	return out
}

// RoomReference is a dungeon room backed by a grafted resource.
type RoomReference struct {
	Name string
	ID   assetid.ID

	data *host.RoomData
}

// NewRoomReference queues prefab for grafting and registers it as a room.
// Network-replicated rooms are also queued for the scene.
func (c *Catalog) NewRoomReference(prefab *asset.Object) *RoomReference {
	ref := &RoomReference{Name: prefab.Name, ID: c.assets.Add(prefab)}
	c.Rooms.Register(prefab.Name, ref)
	if prefab.NetView {
		c.prefabs.Register(prefab)
	}
	return ref
}

// Reference returns a soft reference to the room's resource.
func (r *RoomReference) Reference() streaming.Reference {
	return streaming.NewReference(r.ID)
}

// Data returns the host record for the room, building it on first use.
func (r *RoomReference) Data() *host.RoomData {
	if r.data == nil {
		r.data = &host.RoomData{
			Prefab:  r.Reference(),
			Enabled: true,
			Theme:   host.ThemeNone,
		}
	}
	return r.data
}
