package actuator

import (
	"fmt"

	"atc-runway-simulator/internal/game/selector"

	"golang.org/x/exp/io/i2c"
)

const (
	DefaultBus     = "/dev/i2c-1"
	DefaultAddress = 0x20
)

// ExpanderPins wires the lamps to the first four outputs of an 8-bit
// expander.
var ExpanderPins = map[selector.Direction]int{
	selector.North: 0,
	selector.East:  1,
	selector.South: 2,
	selector.West:  3,
}

// I2CExpander drives an 8-bit quasi-bidirectional port expander (PCF8574
// and friends): one byte write sets all eight outputs. The output state is
// kept locally since the chip has no output register to read back.
type I2CExpander struct {
	device *i2c.Device
	state  byte
}

func OpenI2CExpander(bus string, address int) (*I2CExpander, error) {
	device, err := i2c.Open(&i2c.Devfs{Dev: bus}, address)
	if err != nil {
		return nil, fmt.Errorf("failed to open i2c device %s@0x%02x: %w", bus, address, err)
	}
	return &I2CExpander{device: device}, nil
}

func (e *I2CExpander) Set(pin int, on bool) error {
	if pin < 0 || pin > 7 {
		return fmt.Errorf("expander pin %d out of range 0-7", pin)
	}
	next := e.state
	if on {
		next |= 1 << pin
	} else {
		next &^= 1 << pin
	}
	if err := e.device.Write([]byte{next}); err != nil {
		return fmt.Errorf("i2c write: %w", err)
	}
	e.state = next
	return nil
}

func (e *I2CExpander) Close() error {
	return e.device.Close()
}
