package selector

import (
	"math"
	"testing"

	"atc-runway-simulator/internal/game/airspace"
	"atc-runway-simulator/internal/game/wind"
)

func TestOptimalRunwayCalmWind(t *testing.T) {
	ap := airspace.NewDefaultAirport()
	for _, dir := range []float64{0, 1, math.Pi, 6} {
		if got := OptimalRunway(ap, dir, false); got != "NS" {
			t.Errorf("Expected default runway NS, got %s", got)
		}
	}

	sel, err := NewRunwayOptimizer(ap).Select(wind.Vector{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sel.Label != "NS" || !sel.Fallback {
		t.Errorf("Expected fallback NS, got %+v", sel)
	}
	if sel.Direction != South {
		t.Errorf("Expected NS to show South, got %s", sel.Direction)
	}
}

func TestOptimalRunwayAxisWinds(t *testing.T) {
	ap := airspace.NewDefaultAirport()
	tests := []struct {
		name  string
		w     wind.Vector
		label string
		dir   Direction
	}{
		{"wind toward east", wind.NewVector(1, 0), "EW", West},
		{"wind toward north", wind.NewVector(0, 1), "NS", South},
		{"wind toward west", wind.NewVector(-1, 0), "WE", East},
		{"wind toward south", wind.NewVector(0, -1), "SN", North},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := NewRunwayOptimizer(ap).Select(tt.w)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if sel.Label != tt.label {
				t.Errorf("Expected %s, got %s", tt.label, sel.Label)
			}
			if sel.Direction != tt.dir {
				t.Errorf("Expected direction %s, got %s", tt.dir, sel.Direction)
			}
			if sel.Fallback {
				t.Error("Expected no fallback with wind present")
			}

			dir, _ := tt.w.DirectionRadians()
			if got := OptimalRunway(ap, dir, true); got != sel.Label {
				t.Errorf("OptimalRunway disagrees with Select: %s vs %s", got, sel.Label)
			}
		})
	}
}

func TestOptimalRunwayScaleInvariant(t *testing.T) {
	ap := airspace.NewDefaultAirport()
	src := wind.NewUniformSource(wind.DEFAULT_COMPONENT_LIMIT, 2024)

	for i := 0; i < 500; i++ {
		w := src.Sample()
		dir, ok := w.DirectionRadians()
		if !ok {
			continue
		}
		base := OptimalRunway(ap, dir, ok)

		// Powers of two scale exactly, so the chosen runway is identical.
		for _, k := range []float64{0.5, 2, 4, 1024} {
			scaled := wind.NewVector(w.X*k, w.Y*k)
			sdir, _ := scaled.DirectionRadians()
			if got := OptimalRunway(ap, sdir, true); got != base {
				t.Fatalf("Wind %+v scaled by %f: expected %s, got %s", w, k, base, got)
			}
		}

		// Other factors may round differently, but stay on the same axis.
		scaled := wind.NewVector(w.X*3.7, w.Y*3.7)
		sdir, _ := scaled.DirectionRadians()
		if got := OptimalRunway(ap, sdir, true); !sameAxis(got, base) {
			t.Fatalf("Wind %+v scaled by 3.7: expected %s axis, got %s", w, base, got)
		}
	}
}

func sameAxis(a, b string) bool {
	return a == b || a == airspace.ReverseLabel(b)
}

func TestOptimalRunwayTieBreak(t *testing.T) {
	ap := airspace.NewDefaultAirport()
	bisector := math.Pi / 4

	first := OptimalRunway(ap, bisector, true)
	for i := 0; i < 100; i++ {
		if got := OptimalRunway(ap, bisector, true); got != first {
			t.Fatalf("Call %d returned %s, first call returned %s", i, got, first)
		}
	}

	scores := Score(ap, bisector)
	maxHeadwind := math.Inf(-1)
	for _, s := range scores {
		maxHeadwind = math.Max(maxHeadwind, s.Headwind)
	}
	minCrosswind := math.Inf(1)
	for _, s := range scores {
		if s.Headwind == maxHeadwind {
			minCrosswind = math.Min(minCrosswind, s.Crosswind)
		}
	}

	var winner RunwayScore
	for _, s := range scores {
		if airspace.ReverseLabel(s.Runway.Name) == first {
			winner = s
		}
	}
	if winner.Headwind != maxHeadwind {
		t.Errorf("Expected winner headwind %v, got %v", maxHeadwind, winner.Headwind)
	}
	if winner.Crosswind != minCrosswind {
		t.Errorf("Expected winner crosswind %v, got %v", minCrosswind, winner.Crosswind)
	}
}

func TestOptimalRunwayPrefersLowerCrosswind(t *testing.T) {
	// Opposite runways have the same headwind; the one aligned exactly
	// with the wind has zero crosswind and wins even when declared last.
	ap, err := airspace.NewAirport("TIE", "Tie", []airspace.Runway{
		{Name: "CD", Heading: math.Pi},
		{Name: "AB", Heading: 0},
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	scores := Score(ap, 0)
	if scores[0].Headwind != scores[1].Headwind {
		t.Fatalf("Expected equal headwind, got %v and %v", scores[0].Headwind, scores[1].Headwind)
	}
	if !(scores[1].Crosswind < scores[0].Crosswind) {
		t.Fatalf("Expected AB to have less crosswind: %v vs %v", scores[1].Crosswind, scores[0].Crosswind)
	}

	if got := OptimalRunway(ap, 0, true); got != "BA" {
		t.Errorf("Expected BA, got %s", got)
	}
}

func TestAngleDifference(t *testing.T) {
	tests := []struct {
		direction, heading, want float64
	}{
		{0, 0, 0},
		{math.Pi / 2, 0, math.Pi / 2},
		{0, math.Pi / 2, -math.Pi / 2},
		{0.1, 2*math.Pi - 0.1, 0.2},
		{2*math.Pi - 0.1, 0.1, -0.2},
	}

	for _, tt := range tests {
		got := AngleDifference(tt.direction, tt.heading)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("AngleDifference(%f, %f): expected %f, got %f", tt.direction, tt.heading, tt.want, got)
		}
		if got < -math.Pi || got > math.Pi {
			t.Errorf("AngleDifference(%f, %f) = %f outside [-π, π]", tt.direction, tt.heading, got)
		}
	}
}
