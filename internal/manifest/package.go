package manifest

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/locationmanager/internal/asset"
	"github.com/vk/locationmanager/internal/ctxlog"
	"github.com/vk/locationmanager/internal/host"
	"github.com/vk/locationmanager/internal/manager"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Package is a content package declared in a manifest.
type Package struct {
	info       host.PackageInfo
	block      *packageBlock
	containers []*asset.Container
}

var _ manager.Package = (*Package)(nil)

func translatePackage(pb *packageBlock) (*Package, error) {
	if pb.GUID == "" {
		return nil, fmt.Errorf("package guid must not be empty")
	}
	p := &Package{
		info:  host.PackageInfo{GUID: pb.GUID, Name: pb.Name, Version: pb.Version},
		block: pb,
	}
	if p.info.Name == "" {
		p.info.Name = pb.GUID
	}
	for _, cb := range pb.Containers {
		c, err := buildContainer(cb)
		if err != nil {
			return nil, err
		}
		p.containers = append(p.containers, c)
	}
	return p, nil
}

// Info returns the package identity.
func (p *Package) Info() host.PackageInfo { return p.info }

// Containers returns the containers the package ships.
func (p *Package) Containers() []*asset.Container { return p.containers }

// Register provides the package's containers to m and registers every
// declared location, dungeon, prefab and key.
func (p *Package) Register(ctx context.Context, m *manager.Manager) error {
	logger := ctxlog.FromContext(ctx).With("package", p.info.GUID)

	for _, c := range p.containers {
		m.Bundles.Provide(c)
	}

	for _, lb := range p.block.Locations {
		loc, err := m.Catalog.NewLocationFromContainer(lb.Container, lb.Name)
		if err != nil {
			return err
		}
		if err := applyLocation(loc, lb); err != nil {
			return fmt.Errorf("location %s: %w", lb.Name, err)
		}
	}

	for _, db := range p.block.Dungeons {
		d, err := m.Catalog.NewDungeonFromContainer(db.Container, db.Prefab, db.Generator)
		if err != nil {
			return err
		}
		// Missing rooms are warned about and skipped.
		if len(db.Rooms) > 0 {
			_ = d.Rooms.Add(db.Container, db.Rooms[0], db.Rooms[1:]...)
		}
	}

	for _, rb := range p.block.Prefabs {
		if err := m.RegisterPrefabFrom(rb.Container, rb.Name); err != nil {
			return err
		}
	}

	for _, lb := range p.block.Localize {
		if err := applyKey(m, lb); err != nil {
			return fmt.Errorf("localize %s: %w", lb.Key, err)
		}
	}

	m.RandomCreatures = append(m.RandomCreatures, p.block.RandomCreatures...)

	logger.Debug("Registered manifest package.",
		"locations", len(p.block.Locations),
		"dungeons", len(p.block.Dungeons),
		"prefabs", len(p.block.Prefabs),
		"keys", len(p.block.Localize),
	)
	return nil
}

// applyKey adds one localized key. Attribute names are languages, except
// alias which points the key at another key.
func applyKey(m *manager.Manager, lb *localizeBlock) error {
	attrs, diags := lb.Remain.JustAttributes()
	if diags.HasErrors() {
		return diags
	}
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	key := m.Localize(lb.Key)
	for _, name := range names {
		v, err := attrString(attrs[name])
		if err != nil {
			return err
		}
		if name == "alias" {
			key.Alias(v)
			continue
		}
		key.Add(name, v)
	}
	return nil
}

func attrString(attr *hcl.Attribute) (string, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("attribute %s: %w", attr.Name, err)
	}
	if str.IsNull() || !str.IsKnown() {
		return "", fmt.Errorf("attribute %s must be a string", attr.Name)
	}
	return str.AsString(), nil
}
