// Package ruins is a compiled-in example package adding a ruined tower with
// an interior and a shrine that only shows on the map once placed.
package ruins

import (
	"context"

	"github.com/vk/locationmanager/internal/asset"
	"github.com/vk/locationmanager/internal/content"
	"github.com/vk/locationmanager/internal/host"
	"github.com/vk/locationmanager/internal/localize"
	"github.com/vk/locationmanager/internal/manager"
)

// GUID identifies the package.
const GUID = "com.example.ruins"

// ContainerName is the container the package ships its prefabs in.
const ContainerName = "ruins"

// Module implements the manager.Package interface for this package.
type Module struct{}

var _ manager.Package = (*Module)(nil)

// Info returns the package identity.
func (m *Module) Info() host.PackageInfo {
	return host.PackageInfo{GUID: GUID, Name: "Ruins", Version: "1.0.0"}
}

// Container builds the package's prefabs.
func Container() *asset.Container {
	c := asset.NewContainer(ContainerName)
	interior := &asset.Object{Name: "Ruin_Interior", Environment: "Crypt"}
	c.Add(&asset.Object{
		Name: "Ruin_Tower",
		Location: &asset.LocationComponent{
			ClearArea:      true,
			ExteriorRadius: 20,
			InteriorRadius: 12,
			HasInterior:    true,
			InteriorPrefab: interior,
		},
		Children: []*asset.Object{
			{Name: "Ruin_Chest", NetView: true},
			{Name: "Ruin_Torch", NetView: true},
		},
	})
	c.Add(interior)
	c.Add(&asset.Object{
		Name:     "Ruin_Shrine",
		Location: &asset.LocationComponent{ExteriorRadius: 8},
		Children: []*asset.Object{{Name: "Ruin_Offering", NetView: true}},
	})
	c.Add(&asset.Object{Name: "Ruin_Wraith", NetView: true, Character: true})
	return c
}

// Register adds the tower and the shrine.
func (m *Module) Register(_ context.Context, mgr *manager.Manager) error {
	mgr.Bundles.Provide(Container())

	tower, err := mgr.Catalog.NewLocationFromContainer(ContainerName, "Ruin_Tower")
	if err != nil {
		return err
	}
	tower.Biome = host.BiomeMeadows | host.BiomeBlackForest
	tower.Placement.Quantity = 20
	tower.Placement.Prioritized = true
	tower.Placement.RandomRotation = true
	tower.Placement.Altitude = content.MinMax{Min: 5, Max: 300}
	tower.Placement.DistanceFromSimilar = content.MinMax{Min: 500, Max: 10000}
	tower.Icon.InGameIcon = content.IconBoss
	tower.Icon.Always = true
	tower.InteriorEnvironment.Enabled = true
	tower.InteriorEnvironment.Environment = "Crypt"

	shrine, err := mgr.Catalog.NewLocationFromContainer(ContainerName, "Ruin_Shrine")
	if err != nil {
		return err
	}
	shrine.Biome = host.BiomeMeadows
	shrine.BiomeArea = host.AreaCenter
	shrine.Placement.Quantity = 10
	shrine.Placement.SlopeRotation = true
	shrine.Group = content.GroupSettings{Name: "Shrines"}
	shrine.Icon.InGameIcon = content.IconQuestionMark
	shrine.Icon.Enabled = true

	if err := mgr.RegisterPrefabFrom(ContainerName, "Ruin_Wraith"); err != nil {
		return err
	}
	mgr.RandomCreatures = append(mgr.RandomCreatures, "Ruin_Wraith")

	mgr.Localize("location_ruin_tower").
		English("Ruined Tower").
		Add(localize.German, "Verfallener Turm").
		Add(localize.French, "Tour en ruine")
	mgr.Localize("$location_ruin_shrine").English("Forgotten Shrine")
	return nil
}
