package lang

import (
	"fmt"
	"strings"
)

// Color is one of the eight drawable colors. The zero value is White,
// the painter's starting color.
type Color uint8

// Colors in cycle order. The C command advances along this sequence
// and wraps from Yellow back to White.
const (
	White Color = iota
	Black
	Blue
	Green
	Cyan
	Red
	Magenta
	Yellow
)

const colorCount = 8

// Next returns the color that follows c in the cycle.
func (c Color) Next() Color {
	return (c + 1) % colorCount
}

// String returns the canonical name of the color.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	case Blue:
		return "Blue"
	case Green:
		return "Green"
	case Cyan:
		return "Cyan"
	case Red:
		return "Red"
	case Magenta:
		return "Magenta"
	case Yellow:
		return "Yellow"
	default:
		return "Unknown"
	}
}

// ParseColor parses a case-insensitive color name.
// An unknown name is an error, never a fallback color.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(s) {
	case "white":
		return White, nil
	case "black":
		return Black, nil
	case "blue":
		return Blue, nil
	case "green":
		return Green, nil
	case "cyan":
		return Cyan, nil
	case "red":
		return Red, nil
	case "magenta":
		return Magenta, nil
	case "yellow":
		return Yellow, nil
	default:
		return White, fmt.Errorf("lang: invalid color %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler so colors render as
// names in YAML presets.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(c.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so colors parse
// from names in YAML presets and flag values.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
