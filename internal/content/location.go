package content

import (
	"fmt"

	"github.com/vk/locationmanager/internal/asset"
	"github.com/vk/locationmanager/internal/assetid"
	"github.com/vk/locationmanager/internal/host"
	"github.com/vk/locationmanager/internal/settings"
	"github.com/vk/locationmanager/internal/streaming"
)

// BindFunc binds a toggle in the package's settings.
type BindFunc func(section, key string, def settings.Toggle, description string) *settings.Entry[settings.Toggle]

// Location is a custom location.
type Location struct {
	Prefab              *asset.Object
	ID                  assetid.ID
	Biome               host.Biome
	BiomeArea           host.BiomeArea
	Group               GroupSettings
	Placement           PlacementSettings
	Icon                IconSettings
	InteriorEnvironment InteriorEnvironmentSettings

	// Enabled is bound by Setup.
	Enabled *settings.Entry[settings.Toggle]

	registered *host.ZoneLocation
}

// NewLocation registers prefab as a location. Placement defaults are taken
// from the prefab's location component, and every network object inside
// the prefab is tracked as a companion.
func (c *Catalog) NewLocation(prefab *asset.Object) (*Location, error) {
	if prefab == nil {
		return nil, fmt.Errorf("new location: %w", ErrNilPrefab)
	}
	l := &Location{
		Prefab:              prefab,
		BiomeArea:           host.AreaEverything,
		Placement:           DefaultPlacement(),
		InteriorEnvironment: DefaultInteriorEnvironment(),
	}
	if comp := prefab.Location; comp != nil {
		l.Placement.ClearArea = comp.ClearArea
		l.Placement.ExteriorRadius = comp.ExteriorRadius
		l.Placement.InteriorRadius = comp.InteriorRadius
		c.prefabs.TrackChildren(prefab, prefab.Name)
	}
	l.ID = c.assets.Add(prefab)
	c.Locations.Register(prefab.Name, l)
	return l, nil
}

// NewLocationFromContainer loads name from container and registers it.
func (c *Catalog) NewLocationFromContainer(container, name string) (*Location, error) {
	obj, err := c.load(container, name)
	if err != nil {
		return nil, fmt.Errorf("new location %s: %w", name, err)
	}
	return c.NewLocation(obj)
}

// Name returns the prefab name.
func (l *Location) Name() string { return l.Prefab.Name }

// Setup binds the location's settings.
func (l *Location) Setup(bind BindFunc) {
	name := l.Prefab.Name
	l.Enabled = bind(name, "Enabled", settings.On, fmt.Sprintf("If on, %s will load", name))
}

// Reference returns a soft reference to the location's resource.
func (l *Location) Reference() streaming.Reference {
	return streaming.NewReference(l.ID)
}

// ZoneLocation builds the host's placement record and remembers it. A
// location without a bound Enabled setting is enabled.
func (l *Location) ZoneLocation() *host.ZoneLocation {
	p := l.Placement
	z := &host.ZoneLocation{
		Enable:                    l.Enabled == nil || l.Enabled.Value() == settings.On,
		PrefabName:                l.Prefab.Name,
		Prefab:                    l.Reference(),
		Biome:                     l.Biome,
		BiomeArea:                 l.BiomeArea,
		Quantity:                  p.Quantity,
		Prioritized:               p.Prioritized,
		CenterFirst:               p.CenterFirst,
		Unique:                    p.Unique,
		Group:                     l.Group.Name,
		GroupMax:                  l.Group.MaxName,
		MinDistanceFromSimilar:    p.DistanceFromSimilar.Min,
		MaxDistanceFromSimilar:    p.DistanceFromSimilar.Max,
		IconAlways:                l.Icon.Always,
		IconPlaced:                l.Icon.Enabled,
		RandomRotation:            p.RandomRotation,
		SlopeRotation:             p.SlopeRotation,
		SnapToWater:               p.SnapToWater,
		InteriorRadius:            p.InteriorRadius,
		ExteriorRadius:            p.ExteriorRadius,
		ClearArea:                 p.ClearArea,
		MinTerrainDelta:           p.TerrainDeltaCheck.Min,
		MaxTerrainDelta:           p.TerrainDeltaCheck.Max,
		MinimumVegetation:         p.VegetationCheck.Radius.Min,
		MaximumVegetation:         p.VegetationCheck.Radius.Max,
		SurroundCheckVegetation:   p.VegetationCheck.Check,
		SurroundCheckDistance:     p.VegetationCheck.CheckDistance,
		SurroundCheckLayers:       p.VegetationCheck.Layers,
		SurroundBetterThanAverage: p.VegetationCheck.BetterThanAverage,
		InForest:                  p.InForest,
		ForestThresholdMin:        p.ForestThreshold.Min,
		ForestThresholdMax:        p.ForestThreshold.Max,
		MinDistance:               p.Distance.Min,
		MaxDistance:               p.Distance.Max,
		MinAltitude:               p.Altitude.Min,
		MaxAltitude:               p.Altitude.Max,
		Foldout:                   p.Foldout,
	}
	l.registered = z
	return z
}

// Registered returns the last record built by ZoneLocation.
func (l *Location) Registered() *host.ZoneLocation { return l.registered }
