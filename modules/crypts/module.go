// Package crypts is a compiled-in example package adding a dungeon whose
// generator only uses the package's own rooms.
package crypts

import (
	"context"

	"github.com/vk/locationmanager/internal/asset"
	"github.com/vk/locationmanager/internal/host"
	"github.com/vk/locationmanager/internal/manager"
)

// GUID identifies the package.
const GUID = "com.example.crypts"

// ContainerName is the container the package ships its prefabs in.
const ContainerName = "crypts"

// Generator is the dungeon generator prefab.
const Generator = "Crypt_Generator"

// Module implements the manager.Package interface for this package.
type Module struct{}

var _ manager.Package = (*Module)(nil)

// Info returns the package identity.
func (m *Module) Info() host.PackageInfo {
	return host.PackageInfo{GUID: GUID, Name: "Crypts", Version: "0.3.1"}
}

// Container builds the package's prefabs.
func Container() *asset.Container {
	c := asset.NewContainer(ContainerName)
	c.Add(&asset.Object{Name: "Crypt_Rooms", RoomList: true})
	c.Add(&asset.Object{Name: Generator, NetView: true})
	c.Add(&asset.Object{
		Name:    "Crypt_Hall",
		NetView: true,
		Children: []*asset.Object{
			{Name: "Crypt_Sarcophagus", NetView: true},
		},
	})
	c.Add(&asset.Object{Name: "Crypt_Corridor"})
	c.Add(&asset.Object{Name: "Crypt_Stairs"})
	return c
}

// Register adds the dungeon and its rooms.
func (m *Module) Register(_ context.Context, mgr *manager.Manager) error {
	mgr.Bundles.Provide(Container())

	d, err := mgr.Catalog.NewDungeonFromContainer(ContainerName, "Crypt_Rooms", Generator)
	if err != nil {
		return err
	}
	if err := d.Rooms.Add(ContainerName, "Crypt_Hall", "Crypt_Corridor", "Crypt_Stairs"); err != nil {
		return err
	}
	mgr.Localize("location_crypt").English("Crypt")
	return nil
}
