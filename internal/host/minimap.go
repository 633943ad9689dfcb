package host

// Sprite is an icon image.
type Sprite struct {
	Name string
}

// SpriteData is a pin-type icon.
type SpriteData struct {
	Name string
	Icon *Sprite
}

// LocationSpriteData is an icon shown for a named location.
type LocationSpriteData struct {
	Name string
	Icon *Sprite
}

// Minimap is the host's map UI.
type Minimap struct {
	Icons         []SpriteData
	LocationIcons []LocationSpriteData
}
