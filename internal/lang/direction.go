package lang

import (
	"fmt"
	"strings"
)

// Direction is one of the eight compass headings the painter can face.
// The zero value is Up, the painter's starting heading.
type Direction uint8

// Headings in rotation order. The R command advances 45 degrees
// clockwise along this sequence and wraps from UpLeft back to Up.
const (
	Up Direction = iota
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft
)

const directionCount = 8

// Next returns the heading 45 degrees clockwise of d.
func (d Direction) Next() Direction {
	return (d + 1) % directionCount
}

// Delta returns the unit displacement for one forward move.
// Y grows downward, matching raster coordinates.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case UpRight:
		return 1, -1
	case Right:
		return 1, 0
	case DownRight:
		return 1, 1
	case Down:
		return 0, 1
	case DownLeft:
		return -1, 1
	case Left:
		return -1, 0
	case UpLeft:
		return -1, -1
	default:
		return 0, 0
	}
}

// String returns the canonical name of the heading.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case UpRight:
		return "UpRight"
	case Right:
		return "Right"
	case DownRight:
		return "DownRight"
	case Down:
		return "Down"
	case DownLeft:
		return "DownLeft"
	case Left:
		return "Left"
	case UpLeft:
		return "UpLeft"
	default:
		return "Unknown"
	}
}

// ParseDirection parses a case-insensitive heading name.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "up":
		return Up, nil
	case "upright":
		return UpRight, nil
	case "right":
		return Right, nil
	case "downright":
		return DownRight, nil
	case "down":
		return Down, nil
	case "downleft":
		return DownLeft, nil
	case "left":
		return Left, nil
	case "upleft":
		return UpLeft, nil
	default:
		return Up, fmt.Errorf("lang: invalid direction %q", s)
	}
}
