package manifest

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Packages []*packageBlock `hcl:"package,block"`
	Hosts    []*hostBlock    `hcl:"host,block"`
	Remain   hcl.Body        `hcl:",remain"`
}

type packageBlock struct {
	GUID            string            `hcl:"guid,label"`
	Name            string            `hcl:"name,optional"`
	Version         string            `hcl:"version,optional"`
	RandomCreatures []string          `hcl:"random_creatures,optional"`
	Containers      []*containerBlock `hcl:"container,block"`
	Locations       []*locationBlock  `hcl:"location,block"`
	Dungeons        []*dungeonBlock   `hcl:"dungeon,block"`
	Prefabs         []*prefabRefBlock `hcl:"prefab,block"`
	Localize        []*localizeBlock  `hcl:"localize,block"`
}

type containerBlock struct {
	Name    string         `hcl:"name,label"`
	Prefabs []*prefabBlock `hcl:"prefab,block"`
}

type prefabBlock struct {
	Name        string          `hcl:"name,label"`
	NetView     bool            `hcl:"net_view,optional"`
	Character   bool            `hcl:"character,optional"`
	RoomList    bool            `hcl:"room_list,optional"`
	Environment string          `hcl:"environment,optional"`
	Location    *componentBlock `hcl:"location,block"`
	Children    []*prefabBlock  `hcl:"child,block"`
}

type componentBlock struct {
	ClearArea      bool    `hcl:"clear_area,optional"`
	ExteriorRadius float32 `hcl:"exterior_radius,optional"`
	InteriorRadius float32 `hcl:"interior_radius,optional"`
	// Interior names a prefab in the same container.
	Interior string `hcl:"interior,optional"`
}

type locationBlock struct {
	Container string `hcl:"container,label"`
	Name      string `hcl:"name,label"`

	Biomes         []string  `hcl:"biomes,optional"`
	BiomeArea      string    `hcl:"biome_area,optional"`
	Quantity       int       `hcl:"quantity,optional"`
	Prioritized    bool      `hcl:"prioritized,optional"`
	CenterFirst    bool      `hcl:"center_first,optional"`
	Unique         bool      `hcl:"unique,optional"`
	RandomRotation bool      `hcl:"random_rotation,optional"`
	SlopeRotation  bool      `hcl:"slope_rotation,optional"`
	SnapToWater    bool      `hcl:"snap_to_water,optional"`
	InForest       bool      `hcl:"in_forest,optional"`
	Group          string    `hcl:"group,optional"`
	GroupMax       string    `hcl:"group_max,optional"`
	Distance       []float32 `hcl:"distance,optional"`
	Altitude       []float32 `hcl:"altitude,optional"`
	TerrainDelta   []float32 `hcl:"terrain_delta,optional"`
	Forest         []float32 `hcl:"forest_threshold,optional"`
	FromSimilar    []float32 `hcl:"distance_from_similar,optional"`
	Icon           string    `hcl:"icon,optional"`
	IconAlways     bool      `hcl:"icon_always,optional"`
	IconPlaced     bool      `hcl:"icon_placed,optional"`

	Interior   *interiorBlock   `hcl:"interior,block"`
	Vegetation *vegetationBlock `hcl:"vegetation,block"`
}

type interiorBlock struct {
	Enabled     bool      `hcl:"enabled,optional"`
	Environment string    `hcl:"environment,optional"`
	Altitude    *float32  `hcl:"altitude,optional"`
	Scale       []float32 `hcl:"scale,optional"`
}

type vegetationBlock struct {
	Check             bool      `hcl:"check,optional"`
	CheckDistance     float32   `hcl:"check_distance,optional"`
	Layers            *int      `hcl:"layers,optional"`
	BetterThanAverage float32   `hcl:"better_than_average,optional"`
	Radius            []float32 `hcl:"radius,optional"`
}

type dungeonBlock struct {
	Container string   `hcl:"container,label"`
	Prefab    string   `hcl:"prefab,label"`
	Generator string   `hcl:"generator,label"`
	Rooms     []string `hcl:"rooms,optional"`
}

type prefabRefBlock struct {
	Container string `hcl:"container,label"`
	Name      string `hcl:"name,label"`
}

type localizeBlock struct {
	Key    string   `hcl:"key,label"`
	Remain hcl.Body `hcl:",remain"`
}

type hostBlock struct {
	Language           string            `hcl:"language,optional"`
	Translations       map[string]string `hcl:"translations,optional"`
	ZoneSize           float32           `hcl:"zone_size,optional"`
	DeferStreamingInit bool              `hcl:"defer_streaming_init,optional"`
	Generators         []string          `hcl:"generators,optional"`
	Bundles            []*hostBundle     `hcl:"bundle,block"`
	Containers         []*containerBlock `hcl:"container,block"`
	Icons              []*iconBlock      `hcl:"icon,block"`
	LocationIcons      []*iconBlock      `hcl:"location_icon,block"`
	Spawners           []*spawnerBlock   `hcl:"spawner,block"`
}

type hostBundle struct {
	Name      string         `hcl:"name,label"`
	Path      string         `hcl:"path,optional"`
	DependsOn []string       `hcl:"depends_on,optional"`
	Prefabs   []*prefabBlock `hcl:"prefab,block"`
}

type iconBlock struct {
	Name   string `hcl:"name,label"`
	Sprite string `hcl:"sprite,optional"`
}

type spawnerBlock struct {
	Name     string `hcl:"name,label"`
	Creature string `hcl:"creature,optional"`
}
