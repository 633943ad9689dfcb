package streaming

import (
	"errors"
	"fmt"

	"github.com/vk/locationmanager/internal/asset"
	"github.com/vk/locationmanager/internal/assetid"
)

var (
	// ErrResourceNotFound indicates a reference with no loader entry.
	ErrResourceNotFound = errors.New("resource has no loader entry")
	// ErrPayloadMissing indicates a loader entry with nothing to load.
	ErrPayloadMissing = errors.New("resource payload is not available")
)

// Tables is the host-owned loader state.
type Tables struct {
	Bundles     []*Bundle
	Loaders     []*Loader
	BundleIndex map[string]int
	LoaderIndex map[assetid.ID]int

	initialized bool
}

// NewTables creates empty, uninitialized tables.
func NewTables() *Tables {
	return &Tables{
		BundleIndex: make(map[string]int),
		LoaderIndex: make(map[assetid.ID]int),
	}
}

// Initialized reports whether the host finished setting up the tables.
func (t *Tables) Initialized() bool { return t != nil && t.initialized }

// MarkInitialized flags the tables as ready for use.
func (t *Tables) MarkInitialized() { t.initialized = true }

// AppendBundle appends b and records its index under its name.
func (t *Tables) AppendBundle(b *Bundle) int {
	idx := len(t.Bundles)
	t.Bundles = append(t.Bundles, b)
	t.BundleIndex[b.Name] = idx
	return idx
}

// SetBundle overwrites the bundle slot at idx. The slot must already exist.
func (t *Tables) SetBundle(idx int, b *Bundle) {
	if idx < 0 || idx >= len(t.Bundles) {
		panic(fmt.Sprintf("streaming: bundle index %d out of range [0,%d)", idx, len(t.Bundles)))
	}
	t.Bundles[idx] = b
}

// AppendLoader appends l and records its index under its ID.
func (t *Tables) AppendLoader(l *Loader) int {
	idx := len(t.Loaders)
	t.Loaders = append(t.Loaders, l)
	t.LoaderIndex[l.ID] = idx
	return idx
}

// HasBundle reports whether a bundle called name exists.
func (t *Tables) HasBundle(name string) bool {
	_, ok := t.BundleIndex[name]
	return ok
}

// FindLoader returns the first loader in array order carrying id.
func (t *Tables) FindLoader(id assetid.ID) (*Loader, bool) {
	for _, l := range t.Loaders {
		if l.ID == id {
			return l, true
		}
	}
	return nil, false
}

// Load resolves ref the way the host does on first use: every bundle in the
// owning bundle's closure is marked loaded and the loader's payload returned.
func (t *Tables) Load(ref Reference) (*asset.Object, error) {
	idx, ok := t.LoaderIndex[ref.ID]
	if !ok || !ref.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, ref.ID)
	}
	l := t.Loaders[idx]
	if l.BundleIndex >= 0 && l.BundleIndex < len(t.Bundles) {
		for _, dep := range t.Bundles[l.BundleIndex].Dependencies {
			t.Bundles[dep].loaded = true
		}
	}
	if l.Asset == nil {
		return nil, fmt.Errorf("%w: %s", ErrPayloadMissing, l.Location.Path)
	}
	return l.Asset, nil
}

// Validate checks the structural invariants: every closure is sorted
// ascending, duplicate-free, in bounds and contains its own bundle; both maps
// point at entries carrying the mapped key.
func (t *Tables) Validate() error {
	var errs []error
	for i, b := range t.Bundles {
		if b == nil {
			errs = append(errs, fmt.Errorf("bundle %d is nil", i))
			continue
		}
		self := false
		for j, dep := range b.Dependencies {
			if dep < 0 || dep >= len(t.Bundles) {
				errs = append(errs, fmt.Errorf("bundle %q: dependency index %d out of range", b.Name, dep))
			}
			if j > 0 && b.Dependencies[j-1] >= dep {
				errs = append(errs, fmt.Errorf("bundle %q: dependencies not strictly ascending at %d", b.Name, j))
			}
			if dep == i {
				self = true
			}
		}
		if !self {
			errs = append(errs, fmt.Errorf("bundle %q: closure does not include itself (%d)", b.Name, i))
		}
	}
	for name, idx := range t.BundleIndex {
		if idx < 0 || idx >= len(t.Bundles) || t.Bundles[idx].Name != name {
			errs = append(errs, fmt.Errorf("bundle index for %q points at %d", name, idx))
		}
	}
	for id, idx := range t.LoaderIndex {
		if idx < 0 || idx >= len(t.Loaders) || t.Loaders[idx].ID != id {
			errs = append(errs, fmt.Errorf("loader index for %s points at %d", id, idx))
		}
	}
	return errors.Join(errs...)
}
