package assetbundle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/locationmanager/internal/asset"
)

func TestGetContainer_LookupOrder(t *testing.T) {
	hostCopy := asset.NewContainer("ruins")
	packageCopy := asset.NewContainer("ruins")
	onlyProvided := asset.NewContainer("crypts")

	var open []*asset.Container
	m := NewManager(func() []*asset.Container { return open })
	m.Provide(packageCopy)
	m.Provide(onlyProvided)
	m.Provide(nil)

	open = []*asset.Container{hostCopy}
	c, err := m.GetContainer("ruins")
	require.NoError(t, err)
	assert.Same(t, hostCopy, c, "host-loaded containers win over provided ones")

	open = nil
	c, err = m.GetContainer("ruins")
	require.NoError(t, err)
	assert.Same(t, hostCopy, c, "cached result reused")

	c, err = m.GetContainer("crypts")
	require.NoError(t, err)
	assert.Same(t, onlyProvided, c)

	_, err = m.GetContainer("missing")
	assert.True(t, errors.Is(err, ErrContainerNotFound))
}

func TestLoadAsset(t *testing.T) {
	c := asset.NewContainer("ruins")
	tower := &asset.Object{Name: "Ruin_Tower"}
	c.Add(tower)

	m := NewManager(nil)
	m.Provide(c)

	got, err := m.LoadAsset("ruins", "Ruin_Tower")
	require.NoError(t, err)
	assert.Same(t, tower, got)

	_, err = m.LoadAsset("ruins", "Crypt")
	assert.True(t, errors.Is(err, ErrAssetNotFound))

	_, err = m.LoadAsset("nope", "Crypt")
	assert.True(t, errors.Is(err, ErrContainerNotFound))
}
