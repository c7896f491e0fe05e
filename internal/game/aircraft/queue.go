package aircraft

import (
	"atc-runway-simulator/internal/game/wind"

	"github.com/labstack/gommon/log"
)

// Queue serves arrivals in the order they were added. It is not safe for
// concurrent use; the simulation serializes access.
type Queue struct {
	arrivals []Arrival
	source   wind.Source
	nextID   int
}

// NewQueue returns an empty queue. With a nil source, arrivals carry no
// wind of their own.
func NewQueue(source wind.Source) *Queue {
	return &Queue{source: source, nextID: 1}
}

// Enqueue adds n arrivals, labelled plane1, plane2, ... and continuing
// from the last label issued. Each gets its own wind sample now.
func (q *Queue) Enqueue(n int) {
	for i := 0; i < n; i++ {
		var w *wind.Vector
		if q.source != nil {
			sample := q.source.Sample()
			w = &sample
		}
		q.arrivals = append(q.arrivals, NewArrival(ArrivalID(q.nextID), w))
		q.nextID++
	}
	log.Debugf("Queued %d arrivals, %d waiting", n, len(q.arrivals))
}

// Dequeue removes the head of the queue. ok is false when nothing is
// waiting.
func (q *Queue) Dequeue() (a Arrival, ok bool) {
	if len(q.arrivals) == 0 {
		return Arrival{}, false
	}
	a = q.arrivals[0]
	q.arrivals[0] = Arrival{}
	q.arrivals = q.arrivals[1:]
	return a, true
}

func (q *Queue) Peek() (Arrival, bool) {
	if len(q.arrivals) == 0 {
		return Arrival{}, false
	}
	return q.arrivals[0], true
}

func (q *Queue) Len() int {
	return len(q.arrivals)
}

// Populate fills q with count arrivals at startup.
func Populate(q *Queue, count int) {
	q.Enqueue(count)
	log.Infof("Populated arrival queue with %d aircraft", count)
}
