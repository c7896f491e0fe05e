// Package trigger advances a controller on a fixed cadence instead of a
// key press.
package trigger

import (
	"context"
	"errors"
	"time"

	"atc-runway-simulator/internal/game/simulation"

	"github.com/labstack/gommon/log"
	"golang.org/x/time/rate"
)

// Stepper is the one call a trigger makes per tick.
type Stepper interface {
	ProcessNext() (*simulation.Assignment, error)
	Pending() int
}

type TimerConfig struct {
	// Interval between ticks
	Interval time.Duration

	// StopWhenEmpty ends Run once the queue is drained instead of
	// ticking idle
	StopWhenEmpty bool
}

// Timer paces ProcessNext calls with a rate limiter, one call per token.
type Timer struct {
	cfg     TimerConfig
	limiter *rate.Limiter
	emit    func(simulation.Assignment)
}

func NewTimer(cfg TimerConfig, emit func(simulation.Assignment)) *Timer {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	return &Timer{
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Every(cfg.Interval), 1),
		emit:    emit,
	}
}

// Run ticks until ctx is done or, with StopWhenEmpty, the queue drains.
// Selector failures are logged and do not stop the timer. Cancellation
// only lands between cycles.
func (t *Timer) Run(ctx context.Context, s Stepper) error {
	for {
		if t.cfg.StopWhenEmpty && s.Pending() == 0 {
			return nil
		}
		if err := t.limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				if errors.Is(ctx.Err(), context.Canceled) {
					return nil
				}
				return ctx.Err()
			}
			return err
		}

		result, err := s.ProcessNext()
		if err != nil {
			log.Warnf("Timed trigger: %v", err)
			continue
		}
		if result != nil && t.emit != nil {
			t.emit(*result)
		}
	}
}
