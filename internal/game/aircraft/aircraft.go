package aircraft

import (
	"fmt"

	"atc-runway-simulator/internal/game/wind"
	"atc-runway-simulator/pkg/types"
)

// Arrival is one aircraft waiting for a landing direction. Wind is the
// sample rolled when the arrival was created, nil when the queue was
// filled without wind.
type Arrival struct {
	ID   types.AircraftID
	Wind *wind.Vector
}

func NewArrival(id types.AircraftID, w *wind.Vector) Arrival {
	if w != nil {
		snapshot := *w
		w = &snapshot
	}
	return Arrival{ID: id, Wind: w}
}

func ArrivalID(n int) types.AircraftID {
	return types.AircraftID(fmt.Sprintf("plane%d", n))
}

func (a Arrival) String() string {
	if a.Wind == nil {
		return string(a.ID)
	}
	return fmt.Sprintf("%s wind (%.2f, %.2f)", a.ID, a.Wind.X, a.Wind.Y)
}
