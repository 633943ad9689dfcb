package manifest

import (
	"fmt"

	"github.com/vk/locationmanager/internal/host"
	"github.com/vk/locationmanager/internal/simhost"
	"github.com/vk/locationmanager/internal/streaming"
)

func translateHost(hb *hostBlock) (*simhost.Config, error) {
	cfg := &simhost.Config{
		Language:           hb.Language,
		Translations:       hb.Translations,
		Generators:         hb.Generators,
		DeferStreamingInit: hb.DeferStreamingInit,
		ZoneSize:           hb.ZoneSize,
	}

	for _, bb := range hb.Bundles {
		assets, err := buildPrefabs(bb.Prefabs)
		if err != nil {
			return nil, fmt.Errorf("bundle %s: %w", bb.Name, err)
		}
		path := bb.Path
		if path == "" {
			path = "Bundles/" + bb.Name
		}
		cfg.Bundles = append(cfg.Bundles, streaming.Declaration{
			Name:      bb.Name,
			Path:      path,
			DependsOn: bb.DependsOn,
			Assets:    assets,
		})
	}

	for _, cb := range hb.Containers {
		c, err := buildContainer(cb)
		if err != nil {
			return nil, err
		}
		cfg.Containers = append(cfg.Containers, c)
	}

	for _, ib := range hb.Icons {
		cfg.Icons = append(cfg.Icons, host.SpriteData{Name: ib.Name, Icon: sprite(ib)})
	}
	for _, ib := range hb.LocationIcons {
		cfg.LocationIcons = append(cfg.LocationIcons, host.LocationSpriteData{Name: ib.Name, Icon: sprite(ib)})
	}
	for _, sb := range hb.Spawners {
		cfg.Spawners = append(cfg.Spawners, simhost.SpawnerFixture{Name: sb.Name, Creature: sb.Creature})
	}
	return cfg, nil
}

// sprite names the sprite after the icon unless one is given.
func sprite(ib *iconBlock) *host.Sprite {
	name := ib.Sprite
	if name == "" {
		name = ib.Name
	}
	return &host.Sprite{Name: name}
}
