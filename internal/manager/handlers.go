package manager

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/locationmanager/internal/asset"
	"github.com/vk/locationmanager/internal/content"
	"github.com/vk/locationmanager/internal/host"
	"github.com/vk/locationmanager/internal/softasset"
	"github.com/vk/locationmanager/internal/streaming"
)

func (m *Manager) onStartup(ctx context.Context, s *host.Startup) bool {
	if s != nil && s.Prototype != nil {
		m.prototype = s.Prototype.Scene
	}
	for _, loc := range m.Catalog.Locations.Values() {
		loc.Setup(m.bind)
	}
	m.hookLogger(ctx).Debug("Bound location settings.", "locations", m.Catalog.Locations.Len())
	if m.sync != nil {
		m.sync.Announce(ctx)
	}
	return true
}

func (m *Manager) onStreamingReady(ctx context.Context, t *streaming.Tables) {
	err := m.Assets.Graft(ctx, t)
	if err != nil && !errors.Is(err, softasset.ErrNotReady) {
		m.hookLogger(ctx).Warn("Failed to graft package resources.", "error", err)
	}
}

func (m *Manager) onLocalizationLoad(ctx context.Context, load *host.LocalizationLoad) {
	m.Keys.Apply(ctx, load)
}

func (m *Manager) onSceneAwake(ctx context.Context, scene *host.Scene) bool {
	m.Prefabs.FlushInto(ctx, scene)
	return true
}

func (m *Manager) onSetupLocations(ctx context.Context, zs *host.ZoneSystem) bool {
	logger := m.hookLogger(ctx)
	for _, loc := range m.Catalog.Locations.Values() {
		z := loc.ZoneLocation()
		if !z.Prefab.IsValid() {
			err := fmt.Errorf("%w: %s", content.ErrInvalidLocation, z.PrefabName)
			logger.Warn("Skipping custom location.", "location", z.PrefabName, "error", err)
			continue
		}
		zs.Locations = append(zs.Locations, z)
		logger.Debug("Registered custom location.", "location", z.PrefabName)
	}
	return true
}

func (m *Manager) onLocationAwake(ctx context.Context, inst *host.LocationInstance) bool {
	loc, ok := m.Catalog.Locations.Lookup(inst.Name)
	if !ok {
		return true
	}
	if inst.World != nil {
		inst.World.AllLocations = append(inst.World.AllLocations, inst)
	}
	env := loc.InteriorEnvironment
	if !inst.HasInterior || !env.Enabled {
		return false
	}
	pos := asset.Vec3{X: inst.ZoneCenter.X, Y: inst.Position.Y + env.Altitude, Z: inst.ZoneCenter.Z}
	interior := inst.Instantiate(inst.InteriorPrefab, pos)
	interior.Scale = env.Scale
	interior.Environment = env.Environment
	m.hookLogger(ctx).Debug("Spawned interior environment.", "location", loc.Name(), "environment", env.Environment)
	return false
}

func (m *Manager) onDungeonDBAwake(_ context.Context, db *host.DungeonDB) {
	for _, d := range m.Catalog.Dungeons.Values() {
		if db.HasRoomList(d.Prefab) {
			continue
		}
		db.RoomLists = append(db.RoomLists, d.Prefab)
	}
}

func (m *Manager) onGenerateHashList(_ context.Context, db *host.DungeonDB) {
	if db.RoomByHash == nil {
		db.RoomByHash = make(map[int32]*host.RoomData)
	}
	for _, room := range m.Catalog.Rooms.Values() {
		data := room.Data()
		if _, exists := db.RoomByHash[data.Hash()]; !exists {
			db.RoomByHash[data.Hash()] = data
		}
	}
}

func (m *Manager) onDungeonSpawn(_ context.Context, gen *host.DungeonGenerator) bool {
	d, ok := m.Catalog.Dungeons.Lookup(gen.Name)
	if !ok {
		return true
	}
	gen.AvailableRooms = gen.AvailableRooms[:0]
	for _, room := range d.Rooms.List() {
		gen.AvailableRooms = append(gen.AvailableRooms, room.Data())
	}
	return false
}

func (m *Manager) onMinimapAwake(_ context.Context, mm *host.Minimap) {
	options := m.iconOptions()
	for _, loc := range m.Catalog.Locations.Values() {
		sprite := loc.Icon.Sprite(options)
		if sprite == nil {
			continue
		}
		mm.LocationIcons = append(mm.LocationIcons, host.LocationSpriteData{Name: loc.Name(), Icon: sprite})
	}
}

func (m *Manager) onCreatureSpawnerAwake(ctx context.Context, sp *host.CreatureSpawner) {
	if sp.CreaturePrefab != nil {
		return
	}
	sp.CreaturePrefab = m.pickCreature()
	if sp.CreaturePrefab == nil {
		m.hookLogger(ctx).Warn("No creature available for spawner.", "spawner", sp.Name)
	}
}

func (m *Manager) pickCreature() *asset.Object {
	if len(m.RandomCreatures) == 0 {
		return m.prefabByName(FallbackCreature)
	}
	name := m.RandomCreatures[m.rng.IntN(len(m.RandomCreatures))]
	if obj := m.prefabByName(name); obj != nil && obj.Character {
		return obj
	}
	return m.prefabByName(FallbackCreature)
}
