package simhost

import (
	"context"
	"sort"

	"github.com/vk/locationmanager/internal/asset"
	"github.com/vk/locationmanager/internal/ctxlog"
	"github.com/vk/locationmanager/internal/host"
)

// Run fires the lifecycle hooks in host order and reports the outcome:
// startup, streaming ready, localization, scene, location setup, dungeon
// database, minimap, then the per-instance hooks for every enabled
// location, every configured generator and every configured spawner.
func (h *Host) Run(ctx context.Context) (*Report, error) {
	logger := ctxlog.FromContext(ctx).With("component", "simhost")
	hk := h.hooks
	r := &Report{Language: h.cfg.Language}

	prototype := &host.Scene{Prefabs: h.hostPrefabs()}
	startup := &host.Startup{Prototype: &host.Prototype{Scene: prototype, ObjectDB: &host.ObjectDB{}}}
	hk.Startup.Run(ctx, startup, nil)
	logger.Debug("Startup complete.")

	if !h.cfg.DeferStreamingInit {
		h.tables.MarkInitialized()
	}
	hk.StreamingReady.Run(ctx, h.tables, nil)
	h.tables.MarkInitialized()
	logger.Debug("Streaming ready.", "bundles", len(h.tables.Bundles), "loaders", len(h.tables.Loaders))

	hk.LocalizationLoad.Run(ctx, &host.LocalizationLoad{Localization: h.loc, Language: h.cfg.Language},
		func(_ context.Context, load *host.LocalizationLoad) {
			for k, v := range h.cfg.Translations {
				load.Localization.AddWord(k, v)
			}
		})

	scene := &host.Scene{Prefabs: h.hostPrefabs()}
	h.scene = scene
	hk.SceneAwake.Run(ctx, scene, nil)
	logger.Debug("Scene awake.", "prefabs", len(scene.Prefabs))

	zones := &host.ZoneSystem{}
	hk.SetupLocations.Run(ctx, zones, nil)

	db := host.NewDungeonDB()
	hk.DungeonDBAwake.Run(ctx, db, nil)
	hk.GenerateHashList.Run(ctx, db, nil)

	h.minimap = &host.Minimap{
		Icons:         append([]host.SpriteData(nil), h.cfg.Icons...),
		LocationIcons: append([]host.LocationSpriteData(nil), h.cfg.LocationIcons...),
	}
	baseIcons := len(h.minimap.LocationIcons)
	hk.MinimapAwake.Run(ctx, h.minimap, nil)

	for i, z := range zones.Locations {
		r.Locations = append(r.Locations, LocationReport{
			Name:     z.PrefabName,
			Enabled:  z.Enable,
			Biome:    int(z.Biome),
			Quantity: z.Quantity,
		})
		if !z.Enable {
			continue
		}
		obj, err := h.tables.Load(z.Prefab)
		if err != nil {
			logger.Warn("Failed to load location.", "location", z.PrefabName, "error", err)
			r.Errors = append(r.Errors, err.Error())
			continue
		}
		r.Instances = append(r.Instances, h.wakeLocation(ctx, i, obj))
	}

	for _, name := range h.cfg.Generators {
		gen := &host.DungeonGenerator{Name: name + "(Clone)"}
		hk.DungeonSpawn.Run(ctx, gen, func(_ context.Context, g *host.DungeonGenerator) {
			g.AvailableRooms = defaultRooms(db)
		})
		r.Dungeons = append(r.Dungeons, DungeonReport{Generator: name, Rooms: h.roomNames(gen.AvailableRooms)})
	}

	for _, f := range h.cfg.Spawners {
		sp := &host.CreatureSpawner{Name: f.Name}
		if f.Creature != "" {
			sp.CreaturePrefab = scene.GetPrefab(f.Creature)
		}
		hk.CreatureSpawnerAwake.Run(ctx, sp, nil)
		sr := SpawnerReport{Name: f.Name}
		if sp.CreaturePrefab != nil {
			sr.Creature = sp.CreaturePrefab.Name
		}
		r.Spawners = append(r.Spawners, sr)
	}

	for _, p := range scene.Prefabs {
		r.Scene = append(r.Scene, p.Name)
	}
	for _, l := range db.RoomLists {
		r.RoomLists = append(r.RoomLists, l.Name)
	}
	r.Rooms = len(db.RoomByHash)
	for _, icon := range h.minimap.LocationIcons[baseIcons:] {
		r.MinimapIcons = append(r.MinimapIcons, icon.Name)
	}
	r.Bundles = h.bundleReports()
	r.Loaders = len(h.tables.Loaders)
	r.Translations = h.translations()
	if err := h.tables.Validate(); err != nil {
		r.Errors = append(r.Errors, err.Error())
	}

	logger.Info("Host run finished.", "locations", len(r.Locations), "instances", len(r.Instances), "errors", len(r.Errors))
	return r, nil
}

func (h *Host) wakeLocation(ctx context.Context, i int, obj *asset.Object) InstanceReport {
	pos := asset.Vec3{X: float32(i) * h.cfg.ZoneSize * 2, Y: 30, Z: float32(i) * h.cfg.ZoneSize}
	inst := &host.LocationInstance{
		Name:       obj.Name + "(Clone)",
		Position:   pos,
		ZoneCenter: h.zoneCenter(pos),
		World:      h.world,
	}
	if comp := obj.Location; comp != nil {
		inst.HasInterior = comp.HasInterior
		inst.InteriorPrefab = comp.InteriorPrefab
	}

	ran := h.hooks.LocationAwake.Run(ctx, inst, func(_ context.Context, li *host.LocationInstance) {
		li.World.AllLocations = append(li.World.AllLocations, li)
	})

	ir := InstanceReport{Name: inst.Name, HostHandled: ran}
	for _, c := range inst.Children {
		if c.Prefab != nil {
			ir.Interior = c.Prefab.Name
		}
		ir.Environment = c.Environment
		ir.InteriorY = c.Position.Y
	}
	return ir
}

func defaultRooms(db *host.DungeonDB) []*host.RoomData {
	hashes := make([]int, 0, len(db.RoomByHash))
	for k := range db.RoomByHash {
		hashes = append(hashes, int(k))
	}
	sort.Ints(hashes)
	rooms := make([]*host.RoomData, 0, len(hashes))
	for _, k := range hashes {
		if room := db.RoomByHash[int32(k)]; room.Enabled {
			rooms = append(rooms, room)
		}
	}
	return rooms
}

func (h *Host) roomNames(rooms []*host.RoomData) []string {
	names := make([]string, 0, len(rooms))
	for _, room := range rooms {
		idx, ok := h.tables.LoaderIndex[room.Prefab.ID]
		if !ok || h.tables.Loaders[idx].Asset == nil {
			names = append(names, room.Prefab.ID.String())
			continue
		}
		names = append(names, h.tables.Loaders[idx].Asset.Name)
	}
	return names
}

func (h *Host) bundleReports() []BundleReport {
	out := make([]BundleReport, 0, len(h.tables.Bundles))
	for _, b := range h.tables.Bundles {
		out = append(out, BundleReport{
			Name:         b.Name,
			Path:         b.Path,
			Dependencies: append([]int(nil), b.Dependencies...),
			Loaded:       b.Loaded(),
		})
	}
	return out
}

func (h *Host) translations() map[string]string {
	out := make(map[string]string)
	for k := range h.cfg.Translations {
		out[k] = h.loc.Localize("$" + k)
	}
	return out
}
