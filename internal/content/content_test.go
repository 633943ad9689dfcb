package content

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/locationmanager/internal/asset"
	"github.com/vk/locationmanager/internal/assetbundle"
	"github.com/vk/locationmanager/internal/assetid"
	"github.com/vk/locationmanager/internal/host"
	"github.com/vk/locationmanager/internal/prefab"
	"github.com/vk/locationmanager/internal/settings"
	"github.com/vk/locationmanager/internal/softasset"
)

type fixture struct {
	catalog *Catalog
	assets  *softasset.Loader
	prefabs *prefab.Manager
	bundles *assetbundle.Manager
	logs    *bytes.Buffer
}

func newFixture(t *testing.T, containers ...*asset.Container) *fixture {
	t.Helper()
	f := &fixture{
		assets:  softasset.New(host.PackageInfo{GUID: "com.example.ruins"}),
		prefabs: prefab.NewManager(),
		bundles: assetbundle.NewManager(nil),
		logs:    &bytes.Buffer{},
	}
	for _, c := range containers {
		f.bundles.Provide(c)
	}
	logger := slog.New(slog.NewTextHandler(f.logs, nil))
	f.catalog = NewCatalog(f.assets, f.prefabs, f.bundles, logger)
	return f
}

func TestNewLocation_DefaultsFromComponent(t *testing.T) {
	chest := &asset.Object{Name: "TreasureChest", NetView: true}
	tower := &asset.Object{
		Name:     "Ruin_Tower",
		Location: &asset.LocationComponent{ClearArea: true, ExteriorRadius: 24, InteriorRadius: 8},
		Children: []*asset.Object{chest},
	}
	f := newFixture(t)

	loc, err := f.catalog.NewLocation(tower)
	require.NoError(t, err)

	assert.True(t, loc.Placement.ClearArea)
	assert.Equal(t, float32(24), loc.Placement.ExteriorRadius)
	assert.Equal(t, float32(8), loc.Placement.InteriorRadius)
	assert.Equal(t, float32(10000), loc.Placement.Distance.Max)
	assert.Equal(t, 2, loc.Placement.VegetationCheck.Layers)
	assert.Equal(t, host.AreaEverything, loc.BiomeArea)
	assert.Equal(t, float32(5000), loc.InteriorEnvironment.Altitude)
	assert.Equal(t, assetid.Generate("Ruin_Tower"), loc.ID)

	companions := f.prefabs.Companions()
	require.Len(t, companions, 1)
	assert.Equal(t, "Ruin_Tower", companions[0].ParentName)

	got, ok := f.catalog.Locations.Lookup("Ruin_Tower (1)")
	require.True(t, ok)
	assert.Same(t, loc, got)
	require.Len(t, f.assets.Pending(), 1)
}

func TestNewLocation_WithoutComponentKeepsDefaults(t *testing.T) {
	f := newFixture(t)
	loc, err := f.catalog.NewLocation(&asset.Object{Name: "Camp", Children: []*asset.Object{{Name: "Fire", NetView: true}}})
	require.NoError(t, err)
	assert.Equal(t, float32(50), loc.Placement.ExteriorRadius)
	assert.Empty(t, f.prefabs.Companions())

	_, err = f.catalog.NewLocation(nil)
	assert.True(t, errors.Is(err, ErrNilPrefab))
}

func TestNewLocationFromContainer(t *testing.T) {
	c := asset.NewContainer("ruins")
	c.Add(&asset.Object{Name: "Ruin_Tower"})
	f := newFixture(t, c)

	loc, err := f.catalog.NewLocationFromContainer("ruins", "Ruin_Tower")
	require.NoError(t, err)
	assert.Equal(t, "Ruin_Tower", loc.Name())

	_, err = f.catalog.NewLocationFromContainer("ruins", "Crypt")
	assert.True(t, errors.Is(err, assetbundle.ErrAssetNotFound))
}

func TestLocation_SetupAndZoneLocation(t *testing.T) {
	f := newFixture(t)
	loc, err := f.catalog.NewLocation(&asset.Object{Name: "Ruin_Tower"})
	require.NoError(t, err)
	loc.Biome = host.BiomeMeadows | host.BiomeBlackForest
	loc.Placement.Quantity = 30
	loc.Group = GroupSettings{Name: "ruins", MaxName: "ruins_max"}
	loc.Icon = IconSettings{Always: true, Enabled: true}

	z := loc.ZoneLocation()
	assert.True(t, z.Enable, "unbound setting counts as on")

	store := settings.NewStore("com.example.ruins")
	var described string
	loc.Setup(func(section, key string, def settings.Toggle, description string) *settings.Entry[settings.Toggle] {
		described = description
		e, err := settings.Bind(store, section, key, def, description)
		require.NoError(t, err)
		return e
	})
	assert.Equal(t, "If on, Ruin_Tower will load", described)
	loc.Enabled.Set(settings.Off)

	z = loc.ZoneLocation()
	assert.False(t, z.Enable)
	assert.Equal(t, "Ruin_Tower", z.PrefabName)
	assert.True(t, z.Prefab.IsValid())
	assert.Equal(t, 30, z.Quantity)
	assert.Equal(t, "ruins_max", z.GroupMax)
	assert.True(t, z.IconAlways)
	assert.Equal(t, float32(1000), z.MaxAltitude)
	assert.Same(t, z, loc.Registered())
}

func TestDungeonAndRooms(t *testing.T) {
	c := asset.NewContainer("crypts")
	list := &asset.Object{Name: "Crypt_Rooms", RoomList: true}
	gen := &asset.Object{Name: "Crypt_Generator", NetView: true}
	hall := &asset.Object{Name: "Crypt_Hall", NetView: true, Children: []*asset.Object{{Name: "Crypt_Door", NetView: true}}}
	stairs := &asset.Object{Name: "Crypt_Stairs"}
	for _, o := range []*asset.Object{list, gen, hall, stairs} {
		c.Add(o)
	}
	f := newFixture(t, c)

	d, err := f.catalog.NewDungeonFromContainer("crypts", "Crypt_Rooms", "Crypt_Generator")
	require.NoError(t, err)
	got, ok := f.catalog.Dungeons.Lookup("Crypt_Generator")
	require.True(t, ok)
	assert.Same(t, d, got)

	err = d.Rooms.Add("crypts", "Crypt_Hall", "Crypt_Stairs", "Crypt_Missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, assetbundle.ErrAssetNotFound))
	assert.Contains(t, f.logs.String(), "Room not found.")

	rooms := d.Rooms.List()
	require.Len(t, rooms, 2)
	assert.Equal(t, "Crypt_Hall", rooms[0].Name)

	other, err := f.catalog.NewDungeon(list, &asset.Object{Name: "Crypt_Generator_Deep"})
	require.NoError(t, err)
	require.NoError(t, other.Rooms.Add("unused", "Crypt_Hall"))
	assert.Same(t, rooms[0], other.Rooms.List()[0], "registered rooms are reused by name")

	data := rooms[0].Data()
	assert.Same(t, data, rooms[0].Data())
	assert.True(t, data.Enabled)
	assert.Equal(t, host.ThemeNone, data.Theme)
	assert.Equal(t, assetid.Generate("Crypt_Hall"), data.Prefab.ID)

	assert.Equal(t, 2, f.catalog.Rooms.Len())
	names := make([]string, 0)
	for _, cp := range f.prefabs.Companions() {
		names = append(names, cp.Name())
	}
	assert.Equal(t, []string{"Crypt_Hall", "Crypt_Door"}, names)

	_, err = f.catalog.NewDungeon(nil, gen)
	assert.True(t, errors.Is(err, ErrNilPrefab))
}

func TestIconSettings_Sprite(t *testing.T) {
	custom := &host.Sprite{Name: "custom"}
	haldor := &host.Sprite{Name: "haldor"}
	options := map[string]*host.Sprite{"Vendor_BlackForest": haldor}

	assert.Same(t, custom, IconSettings{Icon: custom, InGameIcon: IconHaldor}.Sprite(options))
	assert.Same(t, haldor, IconSettings{InGameIcon: IconHaldor}.Sprite(options))
	assert.Nil(t, IconSettings{}.Sprite(options))
	assert.Nil(t, IconSettings{InGameIcon: IconBoss}.Sprite(options))
}

func TestLocationIcon_Names(t *testing.T) {
	assert.Equal(t, "Icon 4", IconPortal.InternalName())
	assert.Equal(t, "Hildir1", IconQuestionMark.InternalName())
	assert.Equal(t, "RandomEvent", IconEvent.InternalName())

	i, err := ParseLocationIcon("Hildir")
	require.NoError(t, err)
	assert.Equal(t, IconHildir, i)
	assert.Equal(t, "Hildir_camp", i.InternalName())

	_, err = ParseLocationIcon("Dragon")
	assert.Error(t, err)
	assert.Equal(t, "LocationIcon(99)", LocationIcon(99).String())
}
