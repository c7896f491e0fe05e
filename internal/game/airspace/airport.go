package airspace

import (
	"errors"
	"fmt"
	"math"
)

var ErrDuplicateRunway = errors.New("duplicate runway")

// Runway is one landing direction of the complex. Heading is in radians
// on the East-North plane (0 = east, π/2 = north).
type Runway struct {
	Name    string
	Heading float64
}

// Airport holds its runways in declaration order. Selection walks them in
// that order, so ties resolve the same way on every run.
type Airport struct {
	ID      string
	Name    string
	Runways []Runway
	Default string
}

const DEFAULT_RUNWAY = "NS"

func DefaultRunways() []Runway {
	return []Runway{
		{Name: "NS", Heading: 3 * math.Pi / 2},
		{Name: "SN", Heading: math.Pi / 2},
		{Name: "WE", Heading: 0},
		{Name: "EW", Heading: math.Pi},
	}
}

func NewAirport(airportID, name string, runways []Runway) (*Airport, error) {
	if len(runways) == 0 {
		return nil, fmt.Errorf("airport %s has no runways", airportID)
	}

	airport := &Airport{
		ID:      airportID,
		Name:    name,
		Runways: make([]Runway, 0, len(runways)),
		Default: runways[0].Name,
	}

	seen := make(map[string]bool, len(runways))
	for _, rwy := range runways {
		if seen[rwy.Name] {
			return nil, fmt.Errorf("%w: %s at %s", ErrDuplicateRunway, rwy.Name, airportID)
		}
		seen[rwy.Name] = true
		airport.Runways = append(airport.Runways, rwy)
	}
	return airport, nil
}

// ReverseLabel spells a runway name backwards: "NS" becomes "SN".
func ReverseLabel(name string) string {
	r := []rune(name)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// NewDefaultAirport is the four-runway cross layout with NS as the calm
// wind runway.
func NewDefaultAirport() *Airport {
	ap, _ := NewAirport("XRW", "Crossed Runways", DefaultRunways())
	ap.Default = DEFAULT_RUNWAY
	return ap
}

// SetDefault picks the runway reported when there is no wind.
func (ap *Airport) SetDefault(name string) error {
	if _, ok := ap.Runway(name); !ok {
		return fmt.Errorf("runway %s not found at %s", name, ap.ID)
	}
	ap.Default = name
	return nil
}

func (ap *Airport) Runway(name string) (Runway, bool) {
	for _, rwy := range ap.Runways {
		if rwy.Name == name {
			return rwy, true
		}
	}
	return Runway{}, false
}
