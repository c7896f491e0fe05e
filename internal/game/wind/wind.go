package wind

import (
	"fmt"
	"math"
	"strings"
)

const TWO_PI = 2 * math.Pi

// Vector is the wind velocity on the East-North axes. The zero value is
// a calm wind.
type Vector struct {
	X float64
	Y float64
}

func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

func (w Vector) Speed() float64 {
	return math.Sqrt(w.X*w.X + w.Y*w.Y)
}

// IsCalm reports whether the direction is undefined.
func (w Vector) IsCalm() bool {
	return w.X == 0 && w.Y == 0
}

// DirectionRadians returns the angle of the vector in [0, 2π). ok is false
// for a calm wind.
func (w Vector) DirectionRadians() (dir float64, ok bool) {
	if w.IsCalm() {
		return 0, false
	}
	dir = math.Atan2(w.Y, w.X)
	if dir < 0 {
		dir += TWO_PI
	}
	// atan2 of a tiny negative Y rounds to 2π after the shift.
	if dir >= TWO_PI {
		dir = 0
	}
	return dir, true
}

// DirectionDegrees is DirectionRadians in degrees, [0, 360).
func (w Vector) DirectionDegrees() (float64, bool) {
	dir, ok := w.DirectionRadians()
	if !ok {
		return 0, false
	}
	deg := dir * 180 / math.Pi
	if deg >= 360 {
		deg = 0
	}
	return deg, true
}

// Update replaces both components at once.
func (w *Vector) Update(x, y float64) {
	*w = Vector{X: x, Y: y}
}

func (w Vector) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Wind Speed: %.2f units\n", w.Speed())
	if deg, ok := w.DirectionDegrees(); ok {
		fmt.Fprintf(&sb, "Wind Direction: %.2f°", deg)
	} else {
		sb.WriteString("Wind Direction: Undefined (no wind)")
	}
	return sb.String()
}
