package simhost

// Report summarizes the host state after a run.
type Report struct {
	Language     string            `yaml:"language"`
	Bundles      []BundleReport    `yaml:"bundles"`
	Loaders      int               `yaml:"loaders"`
	Scene        []string          `yaml:"scene"`
	Locations    []LocationReport  `yaml:"locations"`
	Instances    []InstanceReport  `yaml:"instances,omitempty"`
	RoomLists    []string          `yaml:"room_lists,omitempty"`
	Rooms        int               `yaml:"rooms"`
	Dungeons     []DungeonReport   `yaml:"dungeons,omitempty"`
	Spawners     []SpawnerReport   `yaml:"spawners,omitempty"`
	MinimapIcons []string          `yaml:"minimap_icons,omitempty"`
	Translations map[string]string `yaml:"translations,omitempty"`
	Errors       []string          `yaml:"errors,omitempty"`
}

// BundleReport is one entry of the bundle array.
type BundleReport struct {
	Name         string `yaml:"name"`
	Path         string `yaml:"path"`
	Dependencies []int  `yaml:"dependencies,flow"`
	Loaded       bool   `yaml:"loaded"`
}

// LocationReport is one placement record.
type LocationReport struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Biome    int    `yaml:"biome"`
	Quantity int    `yaml:"quantity"`
}

// InstanceReport is one woken location instance.
type InstanceReport struct {
	Name        string  `yaml:"name"`
	HostHandled bool    `yaml:"host_handled"`
	Interior    string  `yaml:"interior,omitempty"`
	Environment string  `yaml:"environment,omitempty"`
	InteriorY   float32 `yaml:"interior_y,omitempty"`
}

// DungeonReport lists the rooms a generator ended up with.
type DungeonReport struct {
	Generator string   `yaml:"generator"`
	Rooms     []string `yaml:"rooms"`
}

// SpawnerReport is one woken spawner.
type SpawnerReport struct {
	Name     string `yaml:"name"`
	Creature string `yaml:"creature,omitempty"`
}
