package manifest

import (
	"fmt"

	"github.com/vk/locationmanager/internal/asset"
	"github.com/vk/locationmanager/internal/content"
	"github.com/vk/locationmanager/internal/host"
)

// buildContainer turns a container block into a container, resolving
// interior references against the container's own prefabs.
func buildContainer(cb *containerBlock) (*asset.Container, error) {
	c := asset.NewContainer(cb.Name)
	prefabs, err := buildPrefabs(cb.Prefabs)
	if err != nil {
		return nil, fmt.Errorf("container %s: %w", cb.Name, err)
	}
	for _, p := range prefabs {
		c.Add(p)
	}
	return c, nil
}

// buildPrefabs builds a list of sibling prefab trees. A location's interior
// must name one of the siblings.
func buildPrefabs(blocks []*prefabBlock) ([]*asset.Object, error) {
	out := make([]*asset.Object, 0, len(blocks))
	byName := make(map[string]*asset.Object, len(blocks))
	for _, pb := range blocks {
		obj := buildPrefab(pb)
		out = append(out, obj)
		byName[obj.Name] = obj
	}
	for _, pb := range blocks {
		if pb.Location == nil || pb.Location.Interior == "" {
			continue
		}
		interior, ok := byName[pb.Location.Interior]
		if !ok {
			return nil, fmt.Errorf("prefab %s: interior %q not found", pb.Name, pb.Location.Interior)
		}
		comp := byName[pb.Name].Location
		comp.HasInterior = true
		comp.InteriorPrefab = interior
	}
	return out, nil
}

func buildPrefab(pb *prefabBlock) *asset.Object {
	obj := &asset.Object{
		Name:        pb.Name,
		NetView:     pb.NetView,
		Character:   pb.Character,
		RoomList:    pb.RoomList,
		Environment: pb.Environment,
	}
	if pb.Location != nil {
		obj.Location = &asset.LocationComponent{
			ClearArea:      pb.Location.ClearArea,
			ExteriorRadius: pb.Location.ExteriorRadius,
			InteriorRadius: pb.Location.InteriorRadius,
		}
	}
	for _, child := range pb.Children {
		obj.Children = append(obj.Children, buildPrefab(child))
	}
	return obj
}

func setRange(dst *content.MinMax, v []float32, attr string) error {
	if v == nil {
		return nil
	}
	if len(v) != 2 {
		return fmt.Errorf("%s must be [min, max], got %d values", attr, len(v))
	}
	if v[0] > v[1] {
		return fmt.Errorf("%s: min %v is greater than max %v", attr, v[0], v[1])
	}
	dst.Min, dst.Max = v[0], v[1]
	return nil
}

var biomeAreas = map[string]host.BiomeArea{
	"Edge":       host.AreaEdge,
	"Median":     host.AreaMedian,
	"Center":     host.AreaCenter,
	"Everything": host.AreaEverything,
}

// applyLocation copies the manifest settings of lb onto loc.
func applyLocation(loc *content.Location, lb *locationBlock) error {
	for _, name := range lb.Biomes {
		b, ok := host.ParseBiome(name)
		if !ok {
			return fmt.Errorf("unknown biome %q", name)
		}
		loc.Biome |= b
	}
	if lb.BiomeArea != "" {
		area, ok := biomeAreas[lb.BiomeArea]
		if !ok {
			return fmt.Errorf("unknown biome area %q", lb.BiomeArea)
		}
		loc.BiomeArea = area
	}

	p := &loc.Placement
	p.Quantity = lb.Quantity
	p.Prioritized = lb.Prioritized
	p.CenterFirst = lb.CenterFirst
	p.Unique = lb.Unique
	p.RandomRotation = lb.RandomRotation
	p.SlopeRotation = lb.SlopeRotation
	p.SnapToWater = lb.SnapToWater
	p.InForest = lb.InForest
	loc.Group = content.GroupSettings{Name: lb.Group, MaxName: lb.GroupMax}

	for _, r := range []struct {
		dst  *content.MinMax
		v    []float32
		attr string
	}{
		{&p.Distance, lb.Distance, "distance"},
		{&p.Altitude, lb.Altitude, "altitude"},
		{&p.TerrainDeltaCheck, lb.TerrainDelta, "terrain_delta"},
		{&p.ForestThreshold, lb.Forest, "forest_threshold"},
		{&p.DistanceFromSimilar, lb.FromSimilar, "distance_from_similar"},
	} {
		if err := setRange(r.dst, r.v, r.attr); err != nil {
			return err
		}
	}

	if lb.Icon != "" {
		icon, err := content.ParseLocationIcon(lb.Icon)
		if err != nil {
			return err
		}
		loc.Icon.InGameIcon = icon
	}
	loc.Icon.Always = lb.IconAlways
	loc.Icon.Enabled = lb.IconPlaced

	if ib := lb.Interior; ib != nil {
		env := &loc.InteriorEnvironment
		env.Enabled = ib.Enabled
		env.Environment = ib.Environment
		if ib.Altitude != nil {
			env.Altitude = *ib.Altitude
		}
		if ib.Scale != nil {
			if len(ib.Scale) != 3 {
				return fmt.Errorf("interior scale must be [x, y, z], got %d values", len(ib.Scale))
			}
			env.Scale = asset.Vec3{X: ib.Scale[0], Y: ib.Scale[1], Z: ib.Scale[2]}
		}
	}

	if vb := lb.Vegetation; vb != nil {
		v := &p.VegetationCheck
		v.Check = vb.Check
		v.CheckDistance = vb.CheckDistance
		v.BetterThanAverage = vb.BetterThanAverage
		if vb.Layers != nil {
			v.Layers = *vb.Layers
		}
		if err := setRange(&v.Radius, vb.Radius, "vegetation radius"); err != nil {
			return err
		}
	}
	return nil
}
