package airspace

import (
	"math"

	"atc-runway-simulator/pkg/types"
)

// Strip is a runway centerline in screen pixels (Y grows downward).
type Strip struct {
	Runway Runway
	From   types.Vec2
	To     types.Vec2
	Width  float64
}

// Airspace places an airport's runways on a square screen.
type Airspace struct {
	Airport *Airport
	Center  types.Vec2
	Strips  []Strip
}

func NewAirspace(airport *Airport, screenWidth, screenHeight int) *Airspace {
	as := &Airspace{
		Airport: airport,
		Center:  types.NewVec2(float64(screenWidth)/2, float64(screenHeight)/2),
	}

	// Strips span 500 of every 600 pixels and are 50 wide.
	short := math.Min(float64(screenWidth), float64(screenHeight))
	halfLen := short * 500 / 600 / 2
	width := short * 50 / 600

	for _, rwy := range airport.Runways {
		dx := math.Cos(rwy.Heading) * halfLen
		dy := -math.Sin(rwy.Heading) * halfLen
		as.Strips = append(as.Strips, Strip{
			Runway: rwy,
			From:   types.NewVec2(as.Center.X-dx, as.Center.Y-dy),
			To:     types.NewVec2(as.Center.X+dx, as.Center.Y+dy),
			Width:  width,
		})
	}
	return as
}

// Strip returns the strip drawn for a reported label. Labels are stored
// names reversed, so both spellings are tried.
func (as *Airspace) Strip(label string) (Strip, bool) {
	for _, s := range as.Strips {
		if s.Runway.Name == label || s.Runway.Name == ReverseLabel(label) {
			return s, true
		}
	}
	return Strip{}, false
}
