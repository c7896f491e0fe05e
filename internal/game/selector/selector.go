// Package selector turns a wind vector into a runway or landing direction.
//
// RunwayOptimizer scores every runway by headwind and crosswind.
// WindOriginQuadrant maps the wind's origin in degrees straight to a
// quadrant. ReciprocalQuadrant buckets the reciprocal of the wind
// direction in radians. The two quadrant policies do not agree with each
// other and are kept apart.
package selector

import (
	"errors"
	"fmt"

	"atc-runway-simulator/internal/game/airspace"
	"atc-runway-simulator/internal/game/wind"
)

const (
	POLICY_RUNWAY      = "runway"
	POLICY_WIND_ORIGIN = "wind-origin"
	POLICY_RECIPROCAL  = "reciprocal"
)

var Policies = []string{POLICY_RUNWAY, POLICY_WIND_ORIGIN, POLICY_RECIPROCAL}

var (
	// ErrCalmWind is returned by the quadrant policies, which have no
	// answer when the wind direction is undefined.
	ErrCalmWind      = errors.New("calm wind: direction undefined")
	ErrUnknownPolicy = errors.New("unknown selection policy")
)

type Selection struct {
	Label     string
	Direction Direction
	// Fallback is set when the calm wind default was used.
	Fallback bool
}

type Selector interface {
	Name() string
	Select(w wind.Vector) (Selection, error)
}

// New returns the named policy. The airport is only used by the runway
// policy.
func New(policy string, ap *airspace.Airport) (Selector, error) {
	switch policy {
	case POLICY_RUNWAY:
		if ap == nil {
			ap = airspace.NewDefaultAirport()
		}
		return NewRunwayOptimizer(ap), nil
	case POLICY_WIND_ORIGIN:
		return WindOriginQuadrant{}, nil
	case POLICY_RECIPROCAL:
		return ReciprocalQuadrant{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
}

// AssignAll gives every plane in the list the same selection.
func AssignAll(planes []string, sel Selection) map[string]Selection {
	assigned := make(map[string]Selection, len(planes))
	for _, p := range planes {
		assigned[p] = sel
	}
	return assigned
}
