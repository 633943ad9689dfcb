package settings

import (
	"fmt"
	"strings"
)

// Toggle is an on/off switch. The zero value is On.
type Toggle int

const (
	On Toggle = iota
	Off
)

// String implements fmt.Stringer.
func (t Toggle) String() string {
	switch t {
	case On:
		return "On"
	case Off:
		return "Off"
	default:
		return fmt.Sprintf("Toggle(%d)", int(t))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Toggle) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Matching is
// case-insensitive.
func (t *Toggle) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "on":
		*t = On
	case "off":
		*t = Off
	default:
		return fmt.Errorf("invalid toggle %q: must be On or Off", string(text))
	}
	return nil
}
