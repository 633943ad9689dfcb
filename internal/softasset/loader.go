package softasset

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/vk/locationmanager/internal/asset"
	"github.com/vk/locationmanager/internal/assetid"
	"github.com/vk/locationmanager/internal/ctxlog"
	"github.com/vk/locationmanager/internal/host"
	"github.com/vk/locationmanager/internal/streaming"
)

// BundlePrefix starts the name of every synthetic bundle.
const BundlePrefix = "LocationManager_"

// ErrNotReady indicates the streaming tables do not exist yet or are not
// initialized. Nothing was grafted.
var ErrNotReady = errors.New("asset bundle loader is not ready")

// Ref is a resource waiting to be grafted.
type Ref struct {
	Source     host.PackageInfo
	Asset      *asset.Object
	OriginalID assetid.ID
}

// Loader holds the resources of one package and grafts them on demand.
type Loader struct {
	source  host.PackageInfo
	pending map[assetid.ID]Ref
	order   []assetid.ID
	ids     map[string]assetid.ID
}

// New creates a loader for resources shipped by source.
func New(source host.PackageInfo) *Loader {
	return &Loader{
		source:  source,
		pending: make(map[assetid.ID]Ref),
		ids:     make(map[string]assetid.ID),
	}
}

// Add queues obj and returns its ID. Adding another object with the same
// name returns the same ID and replaces the queued payload.
func (l *Loader) Add(obj *asset.Object) assetid.ID {
	if obj == nil {
		return assetid.ID{}
	}
	id := assetid.Generate(obj.Name)
	if _, exists := l.pending[id]; !exists {
		l.order = append(l.order, id)
	}
	l.pending[id] = Ref{Source: l.source, Asset: obj, OriginalID: id}
	return id
}

// Pending returns the queued resources in insertion order.
func (l *Loader) Pending() []Ref {
	out := make([]Ref, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.pending[id])
	}
	return out
}

// Graft merges every queued resource into t. It returns ErrNotReady, without
// touching t, when t is nil or not initialized. Resources whose synthetic
// bundle already exists are skipped, so repeated calls are harmless.
func (l *Loader) Graft(ctx context.Context, t *streaming.Tables) error {
	logger := ctxlog.FromContext(ctx)
	if !t.Initialized() {
		logger.Warn("Asset bundle loader is not ready.", "package", l.source.GUID)
		return ErrNotReady
	}

	grafted := 0
	for _, id := range l.order {
		if l.graftOne(t, id, l.pending[id]) {
			grafted++
		}
	}
	logger.Debug("Grafted package resources.", "package", l.source.GUID, "grafted", grafted, "pending", len(l.order))
	return nil
}

func (l *Loader) graftOne(t *streaming.Tables, id assetid.ID, ref Ref) bool {
	name := ref.Asset.Name
	bundleName := BundlePrefix + name
	bundlePath := fmt.Sprintf("%s/Bundles/%s", ref.Source.GUID, bundleName)
	assetPath := fmt.Sprintf("%s/Prefabs/%s", ref.Source.GUID, name)

	if t.HasBundle(bundleName) {
		return false
	}

	bundle := streaming.NewBundle(bundleName, bundlePath)
	bundle.HoldReference()
	idx := t.AppendBundle(bundle)

	original := 0
	if prev, ok := t.FindLoader(id); ok {
		original = prev.BundleIndex
	}
	if id.IsValid() && original > 0 && original < idx {
		bundle.Dependencies = rehome(t.Bundles[original].Dependencies, original, idx)
	} else {
		bundle.Dependencies = []int{idx}
	}
	t.SetBundle(idx, bundle)

	loader := streaming.NewLoader(id, streaming.Location{Bundle: bundleName, Path: assetPath})
	loader.BundleIndex = idx
	loader.Asset = ref.Asset
	loader.HoldReference()
	t.AppendLoader(loader)

	l.ids[name] = id
	return true
}

// rehome returns closure with from replaced by to, sorted ascending and
// without duplicates.
func rehome(closure []int, from, to int) []int {
	out := make([]int, 0, len(closure)+1)
	for _, i := range closure {
		if i != from {
			out = append(out, i)
		}
	}
	out = append(out, to)
	sort.Ints(out)

	n := 0
	for i, v := range out {
		if i == 0 || v != out[n-1] {
			out[n] = v
			n++
		}
	}
	return out[:n]
}

// Reference returns a soft reference to id, or the zero reference when id is
// invalid.
func (l *Loader) Reference(id assetid.ID) streaming.Reference {
	return streaming.NewReference(id)
}

// ReferenceByName returns a soft reference to a grafted resource. It reports
// false for names that have not been grafted.
func (l *Loader) ReferenceByName(name string) (streaming.Reference, bool) {
	id, ok := l.ids[name]
	if !ok {
		return streaming.Reference{}, false
	}
	return streaming.NewReference(id), true
}

// Grafted lists the names grafted so far, sorted.
func (l *Loader) Grafted() []string {
	names := make([]string, 0, len(l.ids))
	for n := range l.ids {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
