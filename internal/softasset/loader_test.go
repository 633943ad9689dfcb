package softasset

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/locationmanager/internal/asset"
	"github.com/vk/locationmanager/internal/assetid"
	"github.com/vk/locationmanager/internal/ctxlog"
	"github.com/vk/locationmanager/internal/host"
	"github.com/vk/locationmanager/internal/streaming"
)

var testPackage = host.PackageInfo{GUID: "com.example.ruins", Name: "Ruins", Version: "1.0.0"}

// hostTables lays out base(0), shared(1) and towers(2), where towers depends
// on shared and ships the host's own Ruin_Tower.
func hostTables(t *testing.T) *streaming.Tables {
	t.Helper()
	tables, err := streaming.Build([]streaming.Declaration{
		{Name: "base", Path: "host/base", Assets: []*asset.Object{{Name: "Skeleton", NetView: true}}},
		{Name: "shared", Path: "host/shared"},
		{Name: "towers", Path: "host/towers", DependsOn: []string{"shared"}, Assets: []*asset.Object{{Name: "Ruin_Tower"}}},
	})
	require.NoError(t, err)
	require.Equal(t, 2, tables.BundleIndex["towers"])
	tables.MarkInitialized()
	return tables
}

func testContext(buf *bytes.Buffer) context.Context {
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger)
}

func TestGraft_RehomesExistingResource(t *testing.T) {
	tables := hostTables(t)
	replacement := &asset.Object{Name: "Ruin_Tower", NetView: true}

	l := New(testPackage)
	id := l.Add(replacement)
	require.NoError(t, l.Graft(context.Background(), tables))
	require.NoError(t, tables.Validate())

	idx, ok := tables.BundleIndex["LocationManager_Ruin_Tower"]
	require.True(t, ok)
	assert.Equal(t, 3, idx)

	b := tables.Bundles[idx]
	if diff := cmp.Diff([]int{1, 3}, b.Dependencies); diff != "" {
		t.Fatalf("closure mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "com.example.ruins/Bundles/LocationManager_Ruin_Tower", b.Path)
	assert.Equal(t, 1, b.References())

	loader := tables.Loaders[tables.LoaderIndex[id]]
	assert.Same(t, replacement, loader.Asset)
	assert.Equal(t, idx, loader.BundleIndex)
	assert.Equal(t, "com.example.ruins/Prefabs/Ruin_Tower", loader.Location.Path)
	assert.Equal(t, "LocationManager_Ruin_Tower", loader.Location.Bundle)
	assert.Equal(t, 1, loader.References())

	got, err := tables.Load(l.Reference(id))
	require.NoError(t, err)
	assert.Same(t, replacement, got)
	assert.True(t, tables.Bundles[1].Loaded(), "shared dependency loaded with the replacement")
	assert.False(t, tables.Bundles[2].Loaded(), "original bundle left alone")
}

func TestGraft_NetNewResource(t *testing.T) {
	tables := hostTables(t)
	l := New(testPackage)
	l.Add(&asset.Object{Name: "Crypt_Entrance"})
	require.NoError(t, l.Graft(context.Background(), tables))
	require.NoError(t, tables.Validate())

	idx := tables.BundleIndex["LocationManager_Crypt_Entrance"]
	if diff := cmp.Diff([]int{idx}, tables.Bundles[idx].Dependencies); diff != "" {
		t.Fatalf("closure mismatch (-want +got):\n%s", diff)
	}
}

func TestGraft_OriginalAtIndexZeroIsNotInherited(t *testing.T) {
	tables := hostTables(t)
	l := New(testPackage)
	l.Add(&asset.Object{Name: "Skeleton", NetView: true, Character: true})
	require.NoError(t, l.Graft(context.Background(), tables))

	idx := tables.BundleIndex["LocationManager_Skeleton"]
	assert.Equal(t, []int{idx}, tables.Bundles[idx].Dependencies)

	first, ok := tables.FindLoader(assetid.Generate("Skeleton"))
	require.True(t, ok)
	assert.Equal(t, 0, first.BundleIndex, "lookup by scan still finds the host entry first")
	assert.Equal(t, len(tables.Loaders)-1, tables.LoaderIndex[assetid.Generate("Skeleton")])
}

func TestGraft_IdempotentAndIndexStable(t *testing.T) {
	tables := hostTables(t)
	before := append([]*streaming.Bundle(nil), tables.Bundles...)
	beforeLoaders := append([]*streaming.Loader(nil), tables.Loaders...)

	l := New(testPackage)
	l.Add(&asset.Object{Name: "Ruin_Tower"})
	l.Add(&asset.Object{Name: "Crypt_Entrance"})
	require.NoError(t, l.Graft(context.Background(), tables))
	bundles, loaders := len(tables.Bundles), len(tables.Loaders)

	require.NoError(t, l.Graft(context.Background(), tables))
	assert.Len(t, tables.Bundles, bundles)
	assert.Len(t, tables.Loaders, loaders)

	for i, b := range before {
		assert.Same(t, b, tables.Bundles[i], "bundle %d moved", i)
	}
	for i, ld := range beforeLoaders {
		assert.Same(t, ld, tables.Loaders[i], "loader %d moved", i)
	}
	assert.Equal(t, []string{"Crypt_Entrance", "Ruin_Tower"}, l.Grafted())
}

func TestGraft_OverlappingPackagesShareBundle(t *testing.T) {
	tables := hostTables(t)
	a := New(testPackage)
	b := New(host.PackageInfo{GUID: "com.example.other"})
	a.Add(&asset.Object{Name: "Crypt_Entrance"})
	b.Add(&asset.Object{Name: "Crypt_Entrance"})

	require.NoError(t, a.Graft(context.Background(), tables))
	require.NoError(t, b.Graft(context.Background(), tables))

	assert.Equal(t, 4, len(tables.Bundles))
	_, ok := b.ReferenceByName("Crypt_Entrance")
	assert.False(t, ok, "second package skipped the existing bundle")
	ref, ok := a.ReferenceByName("Crypt_Entrance")
	assert.True(t, ok)
	assert.True(t, ref.IsValid())
}

func TestGraft_NotReady(t *testing.T) {
	var buf bytes.Buffer
	ctx := testContext(&buf)

	l := New(testPackage)
	l.Add(&asset.Object{Name: "Crypt_Entrance"})

	err := l.Graft(ctx, nil)
	assert.True(t, errors.Is(err, ErrNotReady))

	tables := streaming.NewTables()
	err = l.Graft(ctx, tables)
	assert.True(t, errors.Is(err, ErrNotReady))
	assert.Empty(t, tables.Bundles)
	assert.Empty(t, tables.Loaders)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "not ready")

	_, ok := l.ReferenceByName("Crypt_Entrance")
	assert.False(t, ok)
}

func TestAdd_SameNameSameID(t *testing.T) {
	l := New(testPackage)
	first := &asset.Object{Name: "Crypt_Entrance"}
	second := &asset.Object{Name: "Crypt_Entrance"}

	id1 := l.Add(first)
	id2 := l.Add(second)
	assert.Equal(t, id1, id2)

	pending := l.Pending()
	require.Len(t, pending, 1)
	assert.Same(t, second, pending[0].Asset)
	assert.Equal(t, id1, pending[0].OriginalID)
	assert.Equal(t, testPackage, pending[0].Source)

	assert.Equal(t, assetid.ID{}, l.Add(nil))
}

func TestReference_InvalidIDIsZero(t *testing.T) {
	l := New(testPackage)
	assert.False(t, l.Reference(assetid.ID{}).IsValid())
}

func TestRehome(t *testing.T) {
	assert.Equal(t, []int{1, 3}, rehome([]int{1, 2}, 2, 3))
	assert.Equal(t, []int{0, 4}, rehome([]int{0, 2, 4}, 2, 4))
	assert.Equal(t, []int{5}, rehome(nil, 2, 5))
}
