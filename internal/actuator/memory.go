package actuator

import (
	"sort"
	"sync"
)

// MemoryDriver records pin states instead of touching hardware. It backs
// the dry-run mode and the tests.
type MemoryDriver struct {
	mu     sync.Mutex
	pins   map[int]bool
	writes int
	closed bool
}

func NewMemoryDriver() *MemoryDriver {
	return &MemoryDriver{pins: make(map[int]bool)}
}

func (m *MemoryDriver) Set(pin int, on bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pins[pin] = on
	m.writes++
	return nil
}

func (m *MemoryDriver) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// On lists the pins currently high, in ascending order.
func (m *MemoryDriver) On() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	var on []int
	for pin, high := range m.pins {
		if high {
			on = append(on, pin)
		}
	}
	sort.Ints(on)
	return on
}

func (m *MemoryDriver) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
