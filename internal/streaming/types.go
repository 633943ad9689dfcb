package streaming

import (
	"github.com/vk/locationmanager/internal/asset"
	"github.com/vk/locationmanager/internal/assetid"
)

// Bundle is a named deferred-load unit.
type Bundle struct {
	Name string
	Path string
	// Dependencies is the self-inclusive dependency closure as indices into
	// the bundle array, sorted ascending without duplicates.
	Dependencies []int
	// DependencyNames are the declared direct dependencies.
	DependencyNames []string

	refs   int
	loaded bool
}

// NewBundle creates a bundle with no dependency information.
func NewBundle(name, path string) *Bundle {
	return &Bundle{Name: name, Path: path}
}

// HoldReference pins the bundle so eviction passes leave it alone.
func (b *Bundle) HoldReference() { b.refs++ }

// ReleaseReference drops one hold taken by HoldReference.
func (b *Bundle) ReleaseReference() {
	if b.refs > 0 {
		b.refs--
	}
}

// References reports the number of holds on the bundle.
func (b *Bundle) References() int { return b.refs }

// Loaded reports whether the bundle has been loaded by a resource request.
func (b *Bundle) Loaded() bool { return b.loaded }

// Location tells the streaming subsystem where a resource lives.
type Location struct {
	Bundle string
	Path   string
}

// Loader is a resource-loader entry.
type Loader struct {
	ID          assetid.ID
	Location    Location
	BundleIndex int
	// Asset is the resolved payload; when set, the host does not read the
	// resource from disk.
	Asset *asset.Object

	refs int
}

// NewLoader creates a loader entry for id at location.
func NewLoader(id assetid.ID, location Location) *Loader {
	return &Loader{ID: id, Location: location}
}

// HoldReference pins the loaded payload.
func (l *Loader) HoldReference() { l.refs++ }

// References reports the number of holds on the loader.
func (l *Loader) References() int { return l.refs }

// Reference is a soft reference to a streamed resource, resolved lazily by ID.
type Reference struct {
	ID assetid.ID
}

// NewReference returns a reference to id, or the zero reference when id is invalid.
func NewReference(id assetid.ID) Reference {
	if !id.IsValid() {
		return Reference{}
	}
	return Reference{ID: id}
}

// IsValid reports whether the reference points at a resource.
func (r Reference) IsValid() bool { return r.ID.IsValid() }
