package selector

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownDirection = errors.New("unknown landing direction")

// Direction is one of the four landing directions an indicator can show.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

var Directions = []Direction{North, East, South, West}

var DirectionStringMap = map[Direction]string{
	North: "North",
	East:  "East",
	South: "South",
	West:  "West",
}

func (d Direction) String() string {
	if s, ok := DirectionStringMap[d]; ok {
		return s
	}
	return "ERROR"
}

func (d Direction) ShortString() string {
	return d.String()[:1]
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "N", "NORTH":
		return North, nil
	case "E", "EAST":
		return East, nil
	case "S", "SOUTH":
		return South, nil
	case "W", "WEST":
		return West, nil
	}
	return North, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}
