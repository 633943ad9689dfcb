package content

import (
	"fmt"

	"github.com/vk/locationmanager/internal/host"
)

// LocationIcon names one of the host's built-in map icons.
type LocationIcon int

const (
	IconNone LocationIcon = iota
	IconStartTemple
	IconHaldor
	IconHildir
	IconBogWitch
	IconFire
	IconHouse
	IconHammer
	IconPin
	IconPortal
	IconDeath
	IconBed
	IconShout
	IconBoss
	IconPlayer
	IconEvent
	IconEventArea
	IconPing
	IconQuestionMark
)

var iconNames = [...]struct {
	name     string
	internal string
}{
	IconNone:         {"None", "None"},
	IconStartTemple:  {"StartTemple", "StartTemple"},
	IconHaldor:       {"Haldor", "Vendor_BlackForest"},
	IconHildir:       {"Hildir", "Hildir_camp"},
	IconBogWitch:     {"BogWitch", "BogWitch_Camp"},
	IconFire:         {"Fire", "Icon 0"},
	IconHouse:        {"House", "Icon 1"},
	IconHammer:       {"Hammer", "Icon 2"},
	IconPin:          {"Pin", "Icon 3"},
	IconPortal:       {"Portal", "Icon 4"},
	IconDeath:        {"Death", "Death"},
	IconBed:          {"Bed", "Bed"},
	IconShout:        {"Shout", "Shout"},
	IconBoss:         {"Boss", "Boss"},
	IconPlayer:       {"Player", "Player"},
	IconEvent:        {"Event", "RandomEvent"},
	IconEventArea:    {"EventArea", "EventArea"},
	IconPing:         {"Ping", "Ping"},
	IconQuestionMark: {"QuestionMark", "Hildir1"},
}

// String returns the icon's public name.
func (i LocationIcon) String() string {
	if i < 0 || int(i) >= len(iconNames) {
		return fmt.Sprintf("LocationIcon(%d)", int(i))
	}
	return iconNames[i].name
}

// InternalName returns the name the host files the icon's sprite under.
func (i LocationIcon) InternalName() string {
	if i < 0 || int(i) >= len(iconNames) {
		return i.String()
	}
	return iconNames[i].internal
}

// ParseLocationIcon returns the icon with the given public name.
func ParseLocationIcon(name string) (LocationIcon, error) {
	for i, n := range iconNames {
		if n.name == name {
			return LocationIcon(i), nil
		}
	}
	return IconNone, fmt.Errorf("unknown location icon %q", name)
}

// IconSettings controls how a location shows on the map.
type IconSettings struct {
	Always  bool
	Enabled bool
	// Icon is a custom sprite; it takes precedence over InGameIcon.
	Icon       *host.Sprite
	InGameIcon LocationIcon
}

// Sprite resolves the icon against options, the host's built-in sprites by
// internal name. It returns nil when there is no icon to show.
func (s IconSettings) Sprite(options map[string]*host.Sprite) *host.Sprite {
	if s.Icon != nil {
		return s.Icon
	}
	if s.InGameIcon == IconNone {
		return nil
	}
	return options[s.InGameIcon.InternalName()]
}
