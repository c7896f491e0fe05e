package selector

import (
	"math"

	"atc-runway-simulator/internal/game/wind"
)

// LandingDirectionDegrees maps the direction the wind blows from, in
// degrees, straight to a landing direction. Buckets are 90° wide, closed
// at the lower edge, starting at 45°.
func LandingDirectionDegrees(windDeg float64) Direction {
	d := math.Mod(windDeg, 360)
	if d < 0 {
		d += 360
	}

	switch {
	case d >= 45 && d < 135:
		return South
	case d >= 135 && d < 225:
		return West
	case d >= 225 && d < 315:
		return North
	default:
		return East
	}
}

// LandingQuadrant buckets a landing heading in radians, [0, 2π).
func LandingQuadrant(landing float64) Direction {
	switch {
	case landing >= math.Pi/4 && landing < 3*math.Pi/4:
		return North
	case landing >= 3*math.Pi/4 && landing < 5*math.Pi/4:
		return West
	case landing >= 5*math.Pi/4 && landing < 7*math.Pi/4:
		return South
	default:
		return East
	}
}

// ReciprocalHeading is the heading an aircraft lands on to face into a
// wind blowing along windRad.
func ReciprocalHeading(windRad float64) float64 {
	return normalizeRadians(windRad + math.Pi)
}

// LandingDirectionRadians turns the wind direction around by π and
// buckets the result.
func LandingDirectionRadians(windRad float64) Direction {
	return LandingQuadrant(ReciprocalHeading(windRad))
}

func normalizeRadians(a float64) float64 {
	a = math.Mod(a, wind.TWO_PI)
	if a < 0 {
		a += wind.TWO_PI
	}
	if a >= wind.TWO_PI {
		a = 0
	}
	return a
}

// WindOriginQuadrant applies LandingDirectionDegrees to a wind vector.
type WindOriginQuadrant struct{}

func (WindOriginQuadrant) Name() string { return POLICY_WIND_ORIGIN }

func (WindOriginQuadrant) Select(w wind.Vector) (Selection, error) {
	deg, ok := w.DirectionDegrees()
	if !ok {
		return Selection{}, ErrCalmWind
	}
	d := LandingDirectionDegrees(deg)
	return Selection{Label: d.String(), Direction: d}, nil
}

// ReciprocalQuadrant applies LandingDirectionRadians to a wind vector.
type ReciprocalQuadrant struct{}

func (ReciprocalQuadrant) Name() string { return POLICY_RECIPROCAL }

func (ReciprocalQuadrant) Select(w wind.Vector) (Selection, error) {
	rad, ok := w.DirectionRadians()
	if !ok {
		return Selection{}, ErrCalmWind
	}
	d := LandingDirectionRadians(rad)
	return Selection{Label: d.String(), Direction: d}, nil
}
