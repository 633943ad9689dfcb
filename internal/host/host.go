package host

import (
	"github.com/vk/locationmanager/internal/asset"
	"github.com/vk/locationmanager/internal/settings"
	"github.com/vk/locationmanager/internal/streaming"
)

// PackageInfo identifies a content package.
type PackageInfo struct {
	GUID    string
	Name    string
	Version string
}

// Host is the running host as seen by the engine.
type Host interface {
	Hooks() *Hooks
	// Streaming returns the loader tables, or nil before the streaming
	// subsystem exists.
	Streaming() *streaming.Tables
	// Scene returns the live scene, or nil before it has woken up.
	Scene() *Scene
	// Minimap returns the live minimap, or nil before it has woken up.
	Minimap() *Minimap
	Localization() *Localization
	// LoadedContainers lists the containers the host already has open.
	LoadedContainers() []*asset.Container
	// Settings returns the settings store of the given package.
	Settings(info PackageInfo) *settings.Store
}
