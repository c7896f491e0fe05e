// Package actuator latches a landing direction onto one of four lamps.
package actuator

import (
	"errors"
	"fmt"
	"sync"

	"atc-runway-simulator/internal/game/selector"

	"github.com/labstack/gommon/log"
)

var (
	ErrPanelClosed = errors.New("led panel is closed")
	ErrNoPin       = errors.New("no pin for direction")
)

// Driver switches individual output pins.
type Driver interface {
	Set(pin int, on bool) error
	Close() error
}

// DefaultPins is the BCM GPIO wiring of the four lamps on a Raspberry Pi header.
var DefaultPins = map[selector.Direction]int{
	selector.North: 17,
	selector.East:  27,
	selector.South: 22,
	selector.West:  23,
}

// Panel keeps at most one of its four lamps lit.
type Panel struct {
	mu     sync.Mutex
	driver Driver
	pins   map[selector.Direction]int
	active *selector.Direction
	closed bool
}

// NewPanel switches every lamp off before returning.
func NewPanel(driver Driver, pins map[selector.Direction]int) (*Panel, error) {
	for _, d := range selector.Directions {
		if _, ok := pins[d]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrNoPin, d)
		}
	}
	p := &Panel{driver: driver, pins: pins}
	if err := p.allOff(); err != nil {
		return nil, fmt.Errorf("failed to reset led panel: %w", err)
	}
	return p, nil
}

func (p *Panel) allOff() error {
	for _, d := range selector.Directions {
		if err := p.driver.Set(p.pins[d], false); err != nil {
			return fmt.Errorf("pin %d (%s): %w", p.pins[d], d, err)
		}
	}
	p.active = nil
	return nil
}

// Show turns every lamp off, then lights the one for d.
func (p *Panel) Show(d selector.Direction) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPanelClosed
	}
	pin, ok := p.pins[d]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoPin, d)
	}
	if err := p.allOff(); err != nil {
		return err
	}
	if err := p.driver.Set(pin, true); err != nil {
		return fmt.Errorf("pin %d (%s): %w", pin, d, err)
	}
	p.active = &d
	log.Debugf("LED for %s is ON.", d)
	return nil
}

// Active returns the lit direction, if any.
func (p *Panel) Active() (selector.Direction, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active == nil {
		return selector.North, false
	}
	return *p.active, true
}

// Close switches everything off and releases the driver. It is safe to
// call more than once.
func (p *Panel) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	offErr := p.allOff()
	closeErr := p.driver.Close()
	return errors.Join(offErr, closeErr)
}
