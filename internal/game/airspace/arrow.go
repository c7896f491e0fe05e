package airspace

import (
	"math"

	"atc-runway-simulator/internal/game/wind"
	"atc-runway-simulator/pkg/types"
)

const (
	ARROW_SCALE      = 30.0
	ARROW_WIDTH      = 2.0
	ARROWHEAD_LENGTH = 10.0
	ARROWHEAD_SPREAD = math.Pi / 6
)

// Arrow is a wind arrow in screen pixels: a shaft from Tail to Tip and two
// wings drawn back from the tip.
type Arrow struct {
	Tail  types.Vec2
	Tip   types.Vec2
	Wings [2]types.Vec2
}

// WindArrow places the arrow for w at center. The vector is divided by its
// larger component, so the shaft is between scale and scale*√2 pixels long
// whatever the wind speed. Screen Y grows downward, so north points up. A
// calm wind has no arrow.
func WindArrow(w wind.Vector, center types.Vec2, scale float64) (Arrow, bool) {
	if w.IsCalm() {
		return Arrow{}, false
	}
	if scale <= 0 {
		scale = ARROW_SCALE
	}

	norm := math.Max(math.Abs(w.X), math.Abs(w.Y))
	dx := w.X / norm * scale
	dy := -w.Y / norm * scale
	tip := center.Add(types.NewVec2(dx, dy))

	angle := math.Atan2(dy, dx)
	a := Arrow{Tail: center, Tip: tip}
	for i, side := range []float64{-1, 1} {
		back := angle + math.Pi + side*ARROWHEAD_SPREAD
		a.Wings[i] = tip.Add(types.NewVec2(math.Cos(back), math.Sin(back)).Scale(ARROWHEAD_LENGTH))
	}
	return a, true
}
