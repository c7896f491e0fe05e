package selector

import (
	"errors"
	"math"
	"testing"

	"atc-runway-simulator/internal/game/wind"
)

func TestLandingDirectionDegrees(t *testing.T) {
	tests := []struct {
		deg  float64
		want Direction
	}{
		{0, East},
		{44.9, East},
		{45.0, South},
		{90, South},
		{134.9, South},
		{135.0, West},
		{224.9, West},
		{225.0, North},
		{314.9, North},
		{315.0, East},
		{359.9, East},
		// normalised into [0, 360) first
		{360, East},
		{405, South},
		{-90, North},
	}

	for _, tt := range tests {
		if got := LandingDirectionDegrees(tt.deg); got != tt.want {
			t.Errorf("LandingDirectionDegrees(%v): expected %s, got %s", tt.deg, tt.want, got)
		}
	}
}

func TestLandingQuadrantBoundaries(t *testing.T) {
	const eps = 1e-9
	tests := []struct {
		name    string
		landing float64
		want    Direction
	}{
		{"zero", 0, East},
		{"below π/4", math.Pi/4 - eps, East},
		{"π/4", math.Pi / 4, North},
		{"above π/4", math.Pi/4 + eps, North},
		{"below 3π/4", 3*math.Pi/4 - eps, North},
		{"3π/4", 3 * math.Pi / 4, West},
		{"π", math.Pi, West},
		{"below 5π/4", 5*math.Pi/4 - eps, West},
		{"5π/4", 5 * math.Pi / 4, South},
		{"below 7π/4", 7*math.Pi/4 - eps, South},
		{"7π/4", 7 * math.Pi / 4, East},
		{"below 2π", 2*math.Pi - eps, East},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LandingQuadrant(tt.landing); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestLandingDirectionRadians(t *testing.T) {
	tests := []struct {
		name string
		wind float64
		want Direction
	}{
		// (π + π) mod 2π = 0
		{"wind π lands east", math.Pi, East},
		{"wind 0 lands west", 0, West},
		{"wind π/2 lands south", math.Pi / 2, South},
		{"wind 3π/2 lands north", 3 * math.Pi / 2, North},
		{"just past π/4", math.Pi/4 + 0.01, South},
		{"just before π/4", math.Pi/4 - 0.01, West},
		{"just past 3π/4", 3*math.Pi/4 + 0.01, East},
		{"just before 7π/4", 7*math.Pi/4 - 0.01, North},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LandingDirectionRadians(tt.wind); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}

	if got := ReciprocalHeading(math.Pi); got != 0 {
		t.Errorf("Expected reciprocal of π to be 0, got %v", got)
	}
}

func TestQuadrantPoliciesDisagree(t *testing.T) {
	// The same eastbound wind lands east under one policy and west under
	// the other.
	w := wind.NewVector(1, 0)

	origin, err := WindOriginQuadrant{}.Select(w)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if origin.Direction != East || origin.Label != "East" {
		t.Errorf("Expected East from wind-origin policy, got %+v", origin)
	}

	recip, err := ReciprocalQuadrant{}.Select(w)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if recip.Direction != West || recip.Label != "West" {
		t.Errorf("Expected West from reciprocal policy, got %+v", recip)
	}

	north := wind.NewVector(0, 3)
	if sel, _ := (WindOriginQuadrant{}).Select(north); sel.Direction != South {
		t.Errorf("Expected South from wind-origin policy, got %s", sel.Direction)
	}
	if sel, _ := (ReciprocalQuadrant{}).Select(north); sel.Direction != South {
		t.Errorf("Expected South from reciprocal policy, got %s", sel.Direction)
	}
}

func TestQuadrantPoliciesRejectCalmWind(t *testing.T) {
	for _, sel := range []Selector{WindOriginQuadrant{}, ReciprocalQuadrant{}} {
		if _, err := sel.Select(wind.Vector{}); !errors.Is(err, ErrCalmWind) {
			t.Errorf("%s: expected ErrCalmWind, got %v", sel.Name(), err)
		}
	}
}
