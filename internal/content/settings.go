package content

import "github.com/vk/locationmanager/internal/asset"

// MinMax is an inclusive range.
type MinMax struct {
	Min float32
	Max float32
}

// GroupSettings names the placement group a location belongs to.
type GroupSettings struct {
	Name    string
	MaxName string
}

// VegetationSettings controls the surrounding-vegetation placement check.
type VegetationSettings struct {
	Check             bool
	CheckDistance     float32
	Layers            int
	BetterThanAverage float32
	Radius            MinMax
}

// PlacementSettings is handed to the host's placement algorithm unchanged.
type PlacementSettings struct {
	Quantity            int
	Prioritized         bool
	CenterFirst         bool
	Unique              bool
	DistanceFromSimilar MinMax
	RandomRotation      bool
	SlopeRotation       bool
	SnapToWater         bool
	InteriorRadius      float32
	ExteriorRadius      float32
	ClearArea           bool
	TerrainDeltaCheck   MinMax
	VegetationCheck     VegetationSettings
	InForest            bool
	ForestThreshold     MinMax
	Distance            MinMax
	Altitude            MinMax
	Foldout             bool
}

// DefaultPlacement returns the placement a new location starts with.
func DefaultPlacement() PlacementSettings {
	return PlacementSettings{
		ExteriorRadius:    50,
		TerrainDeltaCheck: MinMax{Min: 0, Max: 100},
		VegetationCheck: VegetationSettings{
			Layers: 2,
			Radius: MinMax{Min: 0, Max: 1},
		},
		ForestThreshold: MinMax{Min: 0, Max: 1},
		Distance:        MinMax{Min: 0, Max: 10000},
		Altitude:        MinMax{Min: 0, Max: 1000},
	}
}

// InteriorEnvironmentSettings describes the environment zone spawned inside
// a location with an interior.
type InteriorEnvironmentSettings struct {
	Altitude    float32
	Scale       asset.Vec3
	Environment string
	Enabled     bool
}

// DefaultInteriorEnvironment returns the disabled default interior.
func DefaultInteriorEnvironment() InteriorEnvironmentSettings {
	return InteriorEnvironmentSettings{
		Altitude: 5000,
		Scale:    asset.Vec3{X: 200, Y: 500, Z: 200},
	}
}
