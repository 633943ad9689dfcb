package simhost

import (
	"fmt"
	"math"

	"github.com/vk/locationmanager/internal/asset"
	"github.com/vk/locationmanager/internal/host"
	"github.com/vk/locationmanager/internal/settings"
	"github.com/vk/locationmanager/internal/streaming"
)

// DefaultZoneSize is the edge length of one world zone.
const DefaultZoneSize = 64

// SpawnerFixture describes a creature spawner woken during a run. An empty
// Creature leaves the spawner unassigned.
type SpawnerFixture struct {
	Name     string
	Creature string
}

// Config describes the host's own content.
type Config struct {
	Language     string
	Translations map[string]string
	Bundles      []streaming.Declaration
	// Containers are the containers the host has open.
	Containers    []*asset.Container
	Icons         []host.SpriteData
	LocationIcons []host.LocationSpriteData
	// Generators are the dungeon generators spawned during a run.
	Generators []string
	Spawners   []SpawnerFixture
	// DeferStreamingInit fires StreamingReady before the tables are
	// initialized.
	DeferStreamingInit bool
	ZoneSize           float32
}

// Host implements host.Host in memory.
type Host struct {
	cfg      Config
	hooks    *host.Hooks
	tables   *streaming.Tables
	scene    *host.Scene
	minimap  *host.Minimap
	loc      *host.Localization
	world    *host.World
	settings map[string]*settings.Store
	order    []string
}

var _ host.Host = (*Host)(nil)

// New builds a host from cfg.
func New(cfg Config) (*Host, error) {
	if cfg.Language == "" {
		cfg.Language = "English"
	}
	if cfg.ZoneSize <= 0 {
		cfg.ZoneSize = DefaultZoneSize
	}
	tables, err := streaming.Build(cfg.Bundles)
	if err != nil {
		return nil, fmt.Errorf("failed to build host tables: %w", err)
	}
	return &Host{
		cfg:      cfg,
		hooks:    host.NewHooks(),
		tables:   tables,
		loc:      host.NewLocalization(cfg.Language),
		world:    &host.World{},
		settings: make(map[string]*settings.Store),
	}, nil
}

func (h *Host) Hooks() *host.Hooks                   { return h.hooks }
func (h *Host) Streaming() *streaming.Tables         { return h.tables }
func (h *Host) Scene() *host.Scene                   { return h.scene }
func (h *Host) Minimap() *host.Minimap               { return h.minimap }
func (h *Host) Localization() *host.Localization     { return h.loc }
func (h *Host) LoadedContainers() []*asset.Container { return h.cfg.Containers }
func (h *Host) World() *host.World                   { return h.world }

// Settings returns the store for info, creating it on first use.
func (h *Host) Settings(info host.PackageInfo) *settings.Store {
	if s, ok := h.settings[info.GUID]; ok {
		return s
	}
	s := settings.NewStore(info.GUID)
	h.settings[info.GUID] = s
	h.order = append(h.order, info.GUID)
	return s
}

// SettingsStores returns every store in creation order.
func (h *Host) SettingsStores() []*settings.Store {
	out := make([]*settings.Store, 0, len(h.order))
	for _, guid := range h.order {
		out = append(out, h.settings[guid])
	}
	return out
}

// hostPrefabs returns the network objects shipped in the host's bundles.
func (h *Host) hostPrefabs() []*asset.Object {
	var out []*asset.Object
	for _, d := range h.cfg.Bundles {
		for _, obj := range d.Assets {
			if obj != nil && obj.NetView {
				out = append(out, obj)
			}
		}
	}
	return out
}

func (h *Host) zoneCenter(p asset.Vec3) asset.Vec3 {
	z := h.cfg.ZoneSize
	return asset.Vec3{
		X: float32(math.Round(float64(p.X/z))) * z,
		Y: 0,
		Z: float32(math.Round(float64(p.Z/z))) * z,
	}
}
