package host

import (
	"github.com/vk/locationmanager/internal/asset"
	"github.com/vk/locationmanager/internal/streaming"
)

// Biome is a bitmask of world biomes.
type Biome int

const (
	BiomeNone        Biome = 0
	BiomeMeadows     Biome = 1
	BiomeSwamp       Biome = 2
	BiomeMountain    Biome = 4
	BiomeBlackForest Biome = 8
	BiomePlains      Biome = 16
	BiomeAshLands    Biome = 32
	BiomeDeepNorth   Biome = 64
	BiomeOcean       Biome = 256
	BiomeMistlands   Biome = 512
)

var biomeNames = map[string]Biome{
	"None":        BiomeNone,
	"Meadows":     BiomeMeadows,
	"Swamp":       BiomeSwamp,
	"Mountain":    BiomeMountain,
	"BlackForest": BiomeBlackForest,
	"Plains":      BiomePlains,
	"AshLands":    BiomeAshLands,
	"DeepNorth":   BiomeDeepNorth,
	"Ocean":       BiomeOcean,
	"Mistlands":   BiomeMistlands,
}

// ParseBiome returns the biome called name.
func ParseBiome(name string) (Biome, bool) {
	b, ok := biomeNames[name]
	return b, ok
}

// BiomeArea selects which part of a biome a location may be placed in.
type BiomeArea int

const (
	AreaEdge       BiomeArea = 1
	AreaMedian     BiomeArea = 2
	AreaCenter     BiomeArea = 4
	AreaEverything BiomeArea = 7
)

// ZoneLocation is the host's placement record for one location.
type ZoneLocation struct {
	Enable     bool
	PrefabName string
	Prefab     streaming.Reference
	Biome      Biome
	BiomeArea  BiomeArea

	Quantity               int
	Prioritized            bool
	CenterFirst            bool
	Unique                 bool
	Group                  string
	GroupMax               string
	MinDistanceFromSimilar float32
	MaxDistanceFromSimilar float32
	IconAlways             bool
	IconPlaced             bool
	RandomRotation         bool
	SlopeRotation          bool
	SnapToWater            bool
	InteriorRadius         float32
	ExteriorRadius         float32
	ClearArea              bool

	MinTerrainDelta           float32
	MaxTerrainDelta           float32
	MinimumVegetation         float32
	MaximumVegetation         float32
	SurroundCheckVegetation   bool
	SurroundCheckDistance     float32
	SurroundCheckLayers       int
	SurroundBetterThanAverage float32
	InForest                  bool
	ForestThresholdMin        float32
	ForestThresholdMax        float32
	MinDistance               float32
	MaxDistance               float32
	MinAltitude               float32
	MaxAltitude               float32
	Foldout                   bool
}

// ZoneSystem owns the list of placeable locations.
type ZoneSystem struct {
	Locations []*ZoneLocation
}

// World tracks the location instances currently awake.
type World struct {
	AllLocations []*LocationInstance
}

// LocationInstance is a location placed in the world.
type LocationInstance struct {
	Name           string
	Position       asset.Vec3
	ZoneCenter     asset.Vec3
	HasInterior    bool
	InteriorPrefab *asset.Object
	Children       []*asset.Instance
	World          *World
}

// Instantiate places a copy of prefab under the location.
func (l *LocationInstance) Instantiate(prefab *asset.Object, position asset.Vec3) *asset.Instance {
	inst := &asset.Instance{Prefab: prefab, Position: position, Scale: asset.Vec3{X: 1, Y: 1, Z: 1}}
	l.Children = append(l.Children, inst)
	return inst
}
