package streaming

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vk/locationmanager/internal/asset"
	"github.com/vk/locationmanager/internal/assetid"
	"github.com/vk/locationmanager/internal/dag"
)

var (
	// ErrDuplicateBundle indicates two declarations with the same name.
	ErrDuplicateBundle = errors.New("duplicate bundle declaration")
	// ErrUnknownDependency indicates a dependency on an undeclared bundle.
	ErrUnknownDependency = errors.New("unknown bundle dependency")
)

// Declaration describes one of the host's own bundles.
type Declaration struct {
	Name      string
	Path      string
	DependsOn []string
	Assets    []*asset.Object
}

// Build lays out host tables from bundle declarations. Bundles are placed in
// dependency order, so a bundle's dependencies always sit at lower indices,
// and each closure is computed transitively. The returned tables are not yet
// initialized.
func Build(decls []Declaration) (*Tables, error) {
	g := dag.New()
	byName := make(map[string]Declaration, len(decls))
	for _, d := range decls {
		if _, exists := byName[d.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateBundle, d.Name)
		}
		byName[d.Name] = d
		g.AddNode(d.Name)
	}
	for _, d := range decls {
		for _, dep := range d.DependsOn {
			if !g.HasNode(dep) {
				return nil, fmt.Errorf("%w: %s depends on %s", ErrUnknownDependency, d.Name, dep)
			}
			if err := g.AddEdge(dep, d.Name); err != nil {
				return nil, fmt.Errorf("bundle %s: %w", d.Name, err)
			}
		}
	}

	order, err := g.TopologicalOrder()
	if err != nil {
		return nil, fmt.Errorf("host bundles: %w", err)
	}

	t := NewTables()
	for _, name := range order {
		d := byName[name]
		b := NewBundle(d.Name, d.Path)
		b.DependencyNames = append([]string(nil), d.DependsOn...)
		t.AppendBundle(b)
	}

	for _, name := range order {
		closure, err := g.Closure(name)
		if err != nil {
			return nil, err
		}
		deps := make([]int, 0, len(closure))
		for _, dep := range closure {
			deps = append(deps, t.BundleIndex[dep])
		}
		sort.Ints(deps)
		t.Bundles[t.BundleIndex[name]].Dependencies = deps
	}

	for _, name := range order {
		d := byName[name]
		idx := t.BundleIndex[name]
		for _, obj := range d.Assets {
			if obj == nil {
				continue
			}
			l := NewLoader(assetid.Generate(obj.Name), Location{Bundle: d.Name, Path: d.Path + "/" + obj.Name})
			l.BundleIndex = idx
			l.Asset = obj
			t.AppendLoader(l)
		}
	}
	return t, nil
}
