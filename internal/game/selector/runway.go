package selector

import (
	"math"

	"atc-runway-simulator/internal/game/airspace"
	"atc-runway-simulator/internal/game/wind"
)

// RunwayScore is one runway's wind components for a unit wind.
type RunwayScore struct {
	Runway    airspace.Runway
	Delta     float64 // wind direction minus heading, folded into [-π, π]
	Headwind  float64
	Crosswind float64
}

// AngleDifference returns (direction - heading) mod 2π folded into [-π, π].
func AngleDifference(direction, heading float64) float64 {
	diff := math.Mod(direction-heading, wind.TWO_PI)
	if diff < 0 {
		diff += wind.TWO_PI
	}
	if diff > math.Pi {
		diff -= wind.TWO_PI
	}
	return diff
}

// Score evaluates every runway of the airport, in declaration order.
func Score(ap *airspace.Airport, direction float64) []RunwayScore {
	scores := make([]RunwayScore, 0, len(ap.Runways))
	for _, rwy := range ap.Runways {
		diff := AngleDifference(direction, rwy.Heading)
		scores = append(scores, RunwayScore{
			Runway:    rwy,
			Delta:     diff,
			Headwind:  math.Abs(math.Cos(diff)),
			Crosswind: math.Abs(math.Sin(diff)),
		})
	}
	return scores
}

// OptimalRunway picks the runway with the largest headwind, then the
// smallest crosswind, and reports its name reversed. With no wind (ok is
// false) the airport's default runway is returned as stored.
func OptimalRunway(ap *airspace.Airport, direction float64, ok bool) string {
	if !ok {
		return ap.Default
	}
	return airspace.ReverseLabel(ap.Runways[bestRunway(ap, direction)].Name)
}

// bestRunway returns the index of the winning runway. Equal scores keep
// the earlier runway.
func bestRunway(ap *airspace.Airport, direction float64) int {
	best := -1
	bestHeadwind := math.Inf(-1)
	lowestCrosswind := math.Inf(1)
	for i, s := range Score(ap, direction) {
		if s.Headwind > bestHeadwind || (s.Headwind == bestHeadwind && s.Crosswind < lowestCrosswind) {
			best = i
			bestHeadwind = s.Headwind
			lowestCrosswind = s.Crosswind
		}
	}
	return best
}

// RunwayOptimizer is the continuous multi-runway policy.
type RunwayOptimizer struct {
	Airport *airspace.Airport
}

func NewRunwayOptimizer(ap *airspace.Airport) *RunwayOptimizer {
	return &RunwayOptimizer{Airport: ap}
}

func (ro *RunwayOptimizer) Name() string { return POLICY_RUNWAY }

// Select never fails. The reported label runs opposite to the stored
// heading, so the indicator shows heading+π; the calm wind default is
// reported as stored and shows its own heading.
func (ro *RunwayOptimizer) Select(w wind.Vector) (Selection, error) {
	dir, ok := w.DirectionRadians()
	label := OptimalRunway(ro.Airport, dir, ok)
	if !ok {
		rwy, _ := ro.Airport.Runway(label)
		return Selection{
			Label:     label,
			Direction: LandingQuadrant(rwy.Heading),
			Fallback:  true,
		}, nil
	}

	// Names are unique, so the reversed label finds the winner again.
	rwy, _ := ro.Airport.Runway(airspace.ReverseLabel(label))
	return Selection{
		Label:     label,
		Direction: LandingQuadrant(ReciprocalHeading(rwy.Heading)),
	}, nil
}
