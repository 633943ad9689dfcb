package content

import (
	"errors"
	"log/slog"

	"github.com/vk/locationmanager/internal/asset"
	"github.com/vk/locationmanager/internal/assetbundle"
	"github.com/vk/locationmanager/internal/prefab"
	"github.com/vk/locationmanager/internal/registry"
	"github.com/vk/locationmanager/internal/softasset"
)

var (
	// ErrInvalidLocation indicates a location whose resource does not
	// resolve to a valid reference.
	ErrInvalidLocation = errors.New("location is not valid")
	// ErrNilPrefab indicates a constructor was handed no prefab.
	ErrNilPrefab = errors.New("prefab is nil")
)

// Catalog is the content registered by one package.
type Catalog struct {
	Locations *registry.Registry[*Location]
	// Dungeons are keyed by generator name.
	Dungeons *registry.Registry[*Dungeon]
	// Rooms are keyed by room prefab name.
	Rooms *registry.Registry[*RoomReference]

	registeredRooms map[string]*RoomReference

	assets  *softasset.Loader
	prefabs *prefab.Manager
	bundles *assetbundle.Manager
	logger  *slog.Logger
}

// NewCatalog creates an empty catalog. A nil logger uses slog.Default().
func NewCatalog(assets *softasset.Loader, prefabs *prefab.Manager, bundles *assetbundle.Manager, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{
		Locations:       registry.New[*Location](),
		Dungeons:        registry.New[*Dungeon](),
		Rooms:           registry.New[*RoomReference](),
		registeredRooms: make(map[string]*RoomReference),
		assets:          assets,
		prefabs:         prefabs,
		bundles:         bundles,
		logger:          logger,
	}
}

func (c *Catalog) load(container, name string) (*asset.Object, error) {
	return c.bundles.LoadAsset(container, name)
}
