package host

import (
	"github.com/vk/locationmanager/internal/hooks"
	"github.com/vk/locationmanager/internal/streaming"
)

// Hooks is the fixed set of host methods handlers can attach to.
type Hooks struct {
	Startup              *hooks.Point[*Startup]
	StreamingReady       *hooks.Point[*streaming.Tables]
	LocalizationLoad     *hooks.Point[*LocalizationLoad]
	SceneAwake           *hooks.Point[*Scene]
	SetupLocations       *hooks.Point[*ZoneSystem]
	LocationAwake        *hooks.Point[*LocationInstance]
	DungeonDBAwake       *hooks.Point[*DungeonDB]
	GenerateHashList     *hooks.Point[*DungeonDB]
	DungeonSpawn         *hooks.Point[*DungeonGenerator]
	MinimapAwake         *hooks.Point[*Minimap]
	CreatureSpawnerAwake *hooks.Point[*CreatureSpawner]
}

// NewHooks creates the hook set with no handlers attached.
func NewHooks() *Hooks {
	return &Hooks{
		Startup:              hooks.NewPoint[*Startup]("Startup.Awake"),
		StreamingReady:       hooks.NewPoint[*streaming.Tables]("AssetBundleLoader.OnInitCompleted"),
		LocalizationLoad:     hooks.NewPoint[*LocalizationLoad]("Localization.LoadCSV"),
		SceneAwake:           hooks.NewPoint[*Scene]("Scene.Awake"),
		SetupLocations:       hooks.NewPoint[*ZoneSystem]("ZoneSystem.SetupLocations"),
		LocationAwake:        hooks.NewPoint[*LocationInstance]("Location.Awake"),
		DungeonDBAwake:       hooks.NewPoint[*DungeonDB]("DungeonDB.Awake"),
		GenerateHashList:     hooks.NewPoint[*DungeonDB]("DungeonDB.GenerateHashList"),
		DungeonSpawn:         hooks.NewPoint[*DungeonGenerator]("DungeonGenerator.SetupAvailableRooms"),
		MinimapAwake:         hooks.NewPoint[*Minimap]("Minimap.Awake"),
		CreatureSpawnerAwake: hooks.NewPoint[*CreatureSpawner]("CreatureSpawner.Awake"),
	}
}
