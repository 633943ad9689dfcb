package prefab

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/locationmanager/internal/asset"
	"github.com/vk/locationmanager/internal/ctxlog"
	"github.com/vk/locationmanager/internal/host"
)

func TestTrack_FirstRegistrationWins(t *testing.T) {
	m := NewManager()
	chest := &asset.Object{Name: "TreasureChest", NetView: true}
	other := &asset.Object{Name: "TreasureChest", NetView: true}

	assert.True(t, m.Track(chest, "Ruin_Tower"))
	assert.False(t, m.Track(other, "Crypt"))
	assert.False(t, m.Track(nil, "Crypt"))

	companions := m.Companions()
	require.Len(t, companions, 1)
	assert.Same(t, chest, companions[0].Object)
	assert.Equal(t, "Ruin_Tower", companions[0].ParentName)
}

func TestFlushInto_DoubleTrackAddsOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	chest := &asset.Object{Name: "TreasureChest", NetView: true}
	torch := &asset.Object{Name: "Torch"}
	tower := &asset.Object{Name: "Ruin_Tower", Children: []*asset.Object{chest, torch}}
	crypt := &asset.Object{Name: "Crypt", Children: []*asset.Object{chest}}

	m := NewManager()
	m.TrackChildren(tower, tower.Name)
	m.TrackChildren(crypt, crypt.Name)

	finished := 0
	m.OnFinishedRegistering(func() { finished++ })

	scene := &host.Scene{}
	m.FlushInto(ctx, scene)

	require.Len(t, scene.Prefabs, 1)
	assert.Same(t, chest, scene.Prefabs[0])
	assert.Equal(t, []*asset.Object{chest}, m.RegisteredMissing)
	assert.Equal(t, 1, finished)
	assert.Contains(t, buf.String(), "prefab=TreasureChest parent=Ruin_Tower")

	m.FlushInto(ctx, scene)
	assert.Len(t, scene.Prefabs, 1)
	assert.Len(t, m.RegisteredMissing, 1)
	assert.Equal(t, 2, finished)
}

func TestFlushInto_ExplicitPrefabs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	existing := &asset.Object{Name: "Skeleton", NetView: true}
	scene := &host.Scene{Prefabs: []*asset.Object{existing}}

	c := asset.NewContainer("ruins")
	c.Add(&asset.Object{Name: "Ruin_Tower", NetView: true})
	c.Add(&asset.Object{Name: "Decoration"})

	m := NewManager()
	m.Register(nil)
	m.Register(&asset.Object{Name: "Skeleton", NetView: true})
	assert.True(t, m.RegisterFrom(c, "Ruin_Tower"))
	assert.True(t, m.RegisterFrom(c, "Decoration"))
	assert.False(t, m.RegisterFrom(c, "Ghost"))
	assert.False(t, m.RegisterFrom(nil, "Ruin_Tower"))

	m.FlushInto(ctx, scene)

	names := make([]string, 0, len(scene.Prefabs))
	for _, p := range scene.Prefabs {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Skeleton", "Ruin_Tower"}, names)
	assert.Contains(t, buf.String(), "Prefab already exists.")
	assert.Empty(t, m.RegisteredMissing)
}
