package simulation

import (
	"fmt"
	"sync"
	"time"

	"atc-runway-simulator/internal/game/aircraft"
	"atc-runway-simulator/internal/game/selector"
	"atc-runway-simulator/internal/game/wind"
	"atc-runway-simulator/pkg/types"

	"github.com/labstack/gommon/log"
)

type ControllerState int

const (
	IDLE ControllerState = iota
	PROCESSING
)

var StateStringMap = map[ControllerState]string{
	IDLE:       "IDLE",
	PROCESSING: "PROCESSING",
}

const NO_ARRIVALS_MESSAGE = "No incoming planes in queue."

// Assignment is the result of one processing cycle.
type Assignment struct {
	Callsign  types.AircraftID
	Label     string
	Direction selector.Direction
	Wind      wind.Vector
	Policy    string
	Fallback  bool
	Timestamp time.Time
}

func (a Assignment) String() string {
	return fmt.Sprintf("Plane %s: Assigned Runway %s", a.Callsign, a.Label)
}

// Simulation feeds one arrival at a time through the selector. Every
// exported method takes the same lock, so a processing cycle is never
// observed half done.
type Simulation struct {
	mu sync.Mutex

	queue    *aircraft.Queue
	selector selector.Selector
	wind     wind.Vector
	state    ControllerState
	status   string

	Processed     int
	AssignmentLog []Assignment
	maxLogSize    int

	now func() time.Time
}

func NewSimulation(queue *aircraft.Queue, sel selector.Selector) *Simulation {
	if queue == nil {
		queue = aircraft.NewQueue(nil)
	}
	return &Simulation{
		queue:      queue,
		selector:   sel,
		state:      IDLE,
		maxLogSize: 50,
		now:        time.Now,
	}
}

// ProcessNext runs one cycle. With nothing queued it stays idle, sets the
// status to NO_ARRIVALS_MESSAGE and returns (nil, nil). The dequeued
// arrival is consumed even when the selector fails.
func (s *Simulation) ProcessNext() (*Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	arrival, ok := s.queue.Dequeue()
	if !ok {
		s.status = NO_ARRIVALS_MESSAGE
		log.Debugf("Trigger with empty queue, staying %s", StateStringMap[s.state])
		return nil, nil
	}

	s.state = PROCESSING
	defer func() { s.state = IDLE }()

	if arrival.Wind != nil {
		s.wind.Update(arrival.Wind.X, arrival.Wind.Y)
	}

	sel, err := s.selector.Select(s.wind)
	if err != nil {
		s.status = fmt.Sprintf("Plane %s: no assignment (%v)", arrival.ID, err)
		log.Warnf("ASSIGN: %s under %s policy failed: %v", arrival.ID, s.selector.Name(), err)
		return nil, fmt.Errorf("assigning %s: %w", arrival.ID, err)
	}
	if sel.Fallback {
		log.Infof("No wind detected for %s. Defaulting to primary runway %s.", arrival.ID, sel.Label)
	}

	result := Assignment{
		Callsign:  arrival.ID,
		Label:     sel.Label,
		Direction: sel.Direction,
		Wind:      s.wind,
		Policy:    s.selector.Name(),
		Fallback:  sel.Fallback,
		Timestamp: s.now(),
	}
	s.Processed++
	s.status = result.String()
	s.addToLog(result)

	log.Printf("%s", WindText(s.wind))
	log.Printf("%s", s.status)
	return &result, nil
}

// SetWind replaces the current wind. Arrivals without a wind sample of
// their own are assigned against it.
func (s *Simulation) SetWind(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wind.Update(x, y)
	log.Infof("Wind set to (%.2f, %.2f)", x, y)
}

func (s *Simulation) Wind() wind.Vector {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wind
}

func (s *Simulation) SetSelector(sel selector.Selector) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selector = sel
	log.Infof("Selection policy set to %s", sel.Name())
}

func (s *Simulation) Selector() selector.Selector {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selector
}

func (s *Simulation) Enqueue(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue.Enqueue(n)
}

func (s *Simulation) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Len()
}

// Next is the arrival the next cycle will serve, without removing it.
func (s *Simulation) Next() (aircraft.Arrival, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Peek()
}

func (s *Simulation) State() ControllerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Status is the text of the last cycle: an assignment, an error, or
// NO_ARRIVALS_MESSAGE.
func (s *Simulation) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func WindText(w wind.Vector) string {
	return fmt.Sprintf("Global Wind: (%.2f, %.2f)", w.X, w.Y)
}
