package manager

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/vk/locationmanager/internal/asset"
	"github.com/vk/locationmanager/internal/assetbundle"
	"github.com/vk/locationmanager/internal/configsync"
	"github.com/vk/locationmanager/internal/content"
	"github.com/vk/locationmanager/internal/ctxlog"
	"github.com/vk/locationmanager/internal/hooks"
	"github.com/vk/locationmanager/internal/host"
	"github.com/vk/locationmanager/internal/localize"
	"github.com/vk/locationmanager/internal/prefab"
	"github.com/vk/locationmanager/internal/settings"
	"github.com/vk/locationmanager/internal/softasset"
)

// FallbackCreature is spawned when no random creature can be used.
const FallbackCreature = "Skeleton"

// Package is a unit of content that registers itself with a Manager.
type Package interface {
	Info() host.PackageInfo
	Register(ctx context.Context, m *Manager) error
}

// Manager is the per-package engine instance.
type Manager struct {
	Catalog *content.Catalog
	Assets  *softasset.Loader
	Prefabs *prefab.Manager
	Bundles *assetbundle.Manager
	Keys    *localize.Set

	// RandomCreatures are the prefab names empty spawners pick from.
	RandomCreatures []string

	host      host.Host
	info      host.PackageInfo
	rng       *rand.Rand
	sync      *configsync.Client
	logger    *slog.Logger
	prototype *host.Scene
	icons     map[string]*host.Sprite
	attached  bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithRand sets the source used to pick random creatures.
func WithRand(r *rand.Rand) Option {
	return func(m *Manager) { m.rng = r }
}

// WithSync puts every bound setting under config sync.
func WithSync(c *configsync.Client) Option {
	return func(m *Manager) { m.sync = c }
}

// WithLogger sets the logger used outside hook handlers.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// New creates a manager for the package described by info. Call Attach to
// install its hook handlers.
func New(h host.Host, info host.PackageInfo, opts ...Option) *Manager {
	m := &Manager{host: h, info: info}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	m.logger = m.logger.With("package", info.GUID)

	m.Assets = softasset.New(info)
	m.Prefabs = prefab.NewManager()
	m.Bundles = assetbundle.NewManager(h.LoadedContainers)
	m.Catalog = content.NewCatalog(m.Assets, m.Prefabs, m.Bundles, m.logger)
	m.Keys = localize.NewSet(h.Localization)
	return m
}

// Install creates a manager for pkg, lets it register its content and
// attaches the manager to h.
func Install(ctx context.Context, h host.Host, pkg Package, opts ...Option) (*Manager, error) {
	info := pkg.Info()
	m := New(h, info, opts...)
	if err := pkg.Register(ctx, m); err != nil {
		return nil, fmt.Errorf("package %s: %w", info.GUID, err)
	}
	m.Attach()
	return m, nil
}

// Info returns the package the manager serves.
func (m *Manager) Info() host.PackageInfo { return m.info }

// RegisterPrefab queues obj for the scene.
func (m *Manager) RegisterPrefab(obj *asset.Object) {
	m.Prefabs.Register(obj)
}

// RegisterPrefabFrom queues the asset called name from container.
func (m *Manager) RegisterPrefabFrom(container, name string) error {
	obj, err := m.Bundles.LoadAsset(container, name)
	if err != nil {
		return fmt.Errorf("register prefab %s: %w", name, err)
	}
	m.Prefabs.Register(obj)
	return nil
}

// Localize adds a localized key.
func (m *Manager) Localize(key string) *localize.Key {
	return m.Keys.New(key)
}

// Attach installs the hook handlers. Calling it again has no effect.
func (m *Manager) Attach() {
	if m.attached {
		return
	}
	m.attached = true

	owner := m.info.GUID
	hk := m.host.Hooks()
	hk.Startup.Prefix(owner, hooks.Normal, m.onStartup)
	hk.StreamingReady.Postfix(owner, hooks.Normal, m.onStreamingReady)
	hk.LocalizationLoad.Postfix(owner, hooks.LowerThanNormal, m.onLocalizationLoad)
	hk.SceneAwake.Prefix(owner, hooks.VeryHigh, m.onSceneAwake)
	hk.SetupLocations.Prefix(owner, hooks.Normal, m.onSetupLocations)
	hk.LocationAwake.Prefix(owner, hooks.Normal, m.onLocationAwake)
	hk.DungeonDBAwake.Postfix(owner, hooks.Normal, m.onDungeonDBAwake)
	hk.GenerateHashList.Postfix(owner, hooks.Normal, m.onGenerateHashList)
	hk.DungeonSpawn.Prefix(owner, hooks.Normal, m.onDungeonSpawn)
	hk.MinimapAwake.Postfix(owner, hooks.Normal, m.onMinimapAwake)
	hk.CreatureSpawnerAwake.Postfix(owner, hooks.Normal, m.onCreatureSpawnerAwake)
	m.logger.Debug("Attached to host hooks.")
}

func (m *Manager) bind(section, key string, def settings.Toggle, description string) *settings.Entry[settings.Toggle] {
	e, err := settings.Bind(m.host.Settings(m.info), section, key, def, description)
	if err != nil {
		m.logger.Warn("Failed to bind setting.", "section", section, "key", key, "error", err)
	}
	if e != nil && m.sync != nil {
		m.sync.AddEntry(e)
	}
	return e
}

// prefabByName looks name up in the live scene, or in the startup prototype
// before the scene exists.
func (m *Manager) prefabByName(name string) *asset.Object {
	if scene := m.host.Scene(); scene != nil {
		return scene.GetPrefab(name)
	}
	return m.prototype.GetPrefab(name)
}

// iconOptions maps the host's built-in icon names to sprites. The map is
// cached once the minimap exists.
func (m *Manager) iconOptions() map[string]*host.Sprite {
	if m.icons != nil {
		return m.icons
	}
	mm := m.host.Minimap()
	if mm == nil {
		return map[string]*host.Sprite{}
	}
	m.icons = make(map[string]*host.Sprite, len(mm.Icons)+len(mm.LocationIcons))
	for _, icon := range mm.Icons {
		m.icons[icon.Name] = icon.Icon
	}
	for _, icon := range mm.LocationIcons {
		m.icons[icon.Name] = icon.Icon
	}
	return m.icons
}

func (m *Manager) hookLogger(ctx context.Context) *slog.Logger {
	return ctxlog.FromContext(ctx).With("package", m.info.GUID)
}
