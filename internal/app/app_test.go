package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/locationmanager/internal/manifest"
	"github.com/vk/locationmanager/internal/testutil"
	"github.com/vk/locationmanager/modules/crypts"
	"github.com/vk/locationmanager/modules/ruins"
)

const hostManifest = `
host {
  generators = ["Crypt_Generator"]

  bundle "core" {
    prefab "Skeleton" {
      net_view  = true
      character = true
    }
  }

  icon "Icon 0" {}
  spawner "graveyard" {}
}
`

const towerManifest = `
package "com.example.towers" {
  name = "Towers"

  container "towers" {
    prefab "Watch_Tower" {
      location {
        exterior_radius = 12
      }
      child "Watch_Horn" {
        net_view = true
      }
    }
  }

  location "towers" "Watch_Tower" {
    biomes   = ["Plains"]
    quantity = 3
    icon     = "Fire"
  }

  localize "location_watch_tower" {
    English = "Watch Tower"
  }
}
`

func TestRun_ManifestPackage(t *testing.T) {
	result := testutil.RunApp(t, map[string]string{
		"packages/towers.hcl": towerManifest,
		"host/host.hcl":       hostManifest,
	}, testutil.Options{PackagesPath: "packages", HostPath: "host"})
	require.NoError(t, result.Err)
	require.NotNil(t, result.Report)

	require.Len(t, result.Report.Packages, 1)
	pkg := result.Report.Packages[0]
	assert.Equal(t, "com.example.towers", pkg.GUID)
	assert.Equal(t, []string{"Watch_Tower"}, pkg.Locations)
	assert.Equal(t, []string{"Watch_Tower"}, pkg.Grafted)

	enabled, quantity := testutil.RequireLocation(t, result, "Watch_Tower")
	assert.True(t, enabled)
	assert.Equal(t, 3, quantity)

	host := result.Report.Host
	assert.Empty(t, host.Errors)
	assert.Contains(t, host.Scene, "Watch_Horn")
	assert.Equal(t, []string{"Watch_Tower"}, host.MinimapIcons)
	require.Len(t, host.Spawners, 1)
	assert.Equal(t, "Skeleton", host.Spawners[0].Creature)
}

func TestRun_SettingsDisableLocation(t *testing.T) {
	result := testutil.RunApp(t, map[string]string{
		"packages/towers.hcl":                towerManifest,
		"settings/com.example.towers.hcl":    "section \"Watch_Tower\" {\n  Enabled = \"Off\"\n}\n",
		"settings/com.example.elsewhere.hcl": "section \"Watch_Tower\" {\n  Enabled = \"On\"\n}\n",
	}, testutil.Options{PackagesPath: "packages", SettingsPath: "settings"})
	require.NoError(t, result.Err)

	enabled, _ := testutil.RequireLocation(t, result, "Watch_Tower")
	assert.False(t, enabled)
	assert.Empty(t, result.Report.Host.Instances)
}

func TestRun_Examples(t *testing.T) {
	result := testutil.RunApp(t, map[string]string{
		"host/host.hcl": hostManifest,
	}, testutil.Options{HostPath: "host", WithExamples: true, Seed: 7})
	require.NoError(t, result.Err)

	var guids []string
	for _, p := range result.Report.Packages {
		guids = append(guids, p.GUID)
	}
	assert.Equal(t, []string{ruins.GUID, crypts.GUID}, guids)

	host := result.Report.Host
	assert.Empty(t, host.Errors)
	require.Len(t, host.Dungeons, 1)
	assert.Equal(t, crypts.Generator, host.Dungeons[0].Generator)
	assert.Equal(t, []string{"Crypt_Hall", "Crypt_Corridor", "Crypt_Stairs"}, host.Dungeons[0].Rooms)
	assert.Contains(t, host.Scene, "Ruin_Chest")
	assert.Contains(t, host.Scene, "Crypt_Sarcophagus")
	assert.Equal(t, "Ruin_Wraith", host.Spawners[0].Creature)
}

func TestRun_DuplicatePackage(t *testing.T) {
	result := testutil.RunApp(t, nil, testutil.Options{WithExamples: true}, &ruins.Module{})
	require.ErrorIs(t, result.Err, manifest.ErrDuplicatePackage)
	assert.Contains(t, result.Err.Error(), ruins.GUID)
}

func TestNewApp_InvalidManifestPanics(t *testing.T) {
	result := testutil.RunApp(t, map[string]string{
		"packages/broken.hcl": `package "a" {`,
	}, testutil.Options{PackagesPath: "packages"})
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "application startup panicked")
	assert.Contains(t, result.Err.Error(), "failed to parse HCL file")
}

func TestRun_MissingRoomWarns(t *testing.T) {
	result := testutil.RunApp(t, map[string]string{
		"packages/crypt.hcl": `
package "com.example.vaults" {
  container "vaults" {
    prefab "Vault_Rooms" {
      room_list = true
    }
    prefab "Vault_Generator" {}
    prefab "Vault_Hall" {}
  }
  dungeon "vaults" "Vault_Rooms" "Vault_Generator" {
    rooms = ["Vault_Hall", "Vault_Gone"]
  }
}
`,
	}, testutil.Options{PackagesPath: "packages"})
	require.NoError(t, result.Err)
	testutil.AssertWarned(t, result, "Room not found.", "room", "Vault_Gone", "container", "vaults")
	assert.NotEmpty(t, result.Report.Warnings)
}
