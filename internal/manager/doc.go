// Package manager attaches a content package to a running host. A Manager
// owns the package's catalog, its pending resources and companions, and the
// handlers it installs on the host's lifecycle hooks:
//
//	Startup               bind per-location settings
//	StreamingReady        graft pending resources into the loader tables
//	LocalizationLoad      apply the package's localized keys
//	SceneAwake            register queued prefabs and missing companions
//	SetupLocations        add location records with valid references
//	LocationAwake         track custom instances and spawn their interiors
//	DungeonDBAwake        add room-list prefabs
//	GenerateHashList      add room data by hash
//	DungeonSpawn          restrict a custom generator to its own rooms
//	MinimapAwake          add custom location icons
//	CreatureSpawnerAwake  fill empty spawners with a random creature
package manager
