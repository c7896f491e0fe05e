package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"atc-runway-simulator/internal/game/airspace"
	"atc-runway-simulator/internal/game/selector"
	"atc-runway-simulator/internal/logging"
)

// Config represents the complete application configuration.
type Config struct {
	Simulation SimulationConfig `json:"simulation"`
	Runways    []RunwayConfig   `json:"runways"`
	LED        LEDConfig        `json:"led"`
	Display    DisplayConfig    `json:"display"`
	Log        LogConfig        `json:"log"`
}

// SimulationConfig controls the arrival queue and the selection policy.
type SimulationConfig struct {
	// Arrivals is how many aircraft are queued at startup (default: 10)
	Arrivals int `json:"arrivals"`

	// AttachWind rolls a wind sample for every arrival when it is queued.
	// When false, arrivals use the wind entered by the operator.
	AttachWind bool `json:"attach_wind"`

	// WindLimit bounds each wind component to [-WindLimit, WindLimit]
	WindLimit float64 `json:"wind_limit"`

	// Seed for the wind generator. 0 seeds from the clock.
	Seed int64 `json:"seed"`

	// Policy is one of "runway", "wind-origin", "reciprocal"
	Policy string `json:"policy"`

	// DefaultRunway is reported when there is no wind (runway policy only)
	DefaultRunway string `json:"default_runway"`

	// LogSize is how many assignments are kept for display
	LogSize int `json:"log_size"`

	// AutoTriggerSeconds is the timed trigger interval; 0 means manual only
	AutoTriggerSeconds float64 `json:"auto_trigger_seconds"`
}

// RunwayConfig is one runway of the complex.
type RunwayConfig struct {
	// Name is the stored identifier; assignments report it reversed
	Name string `json:"name"`

	// HeadingDeg is measured counter-clockwise from east, in degrees
	HeadingDeg float64 `json:"heading_deg"`
}

// LEDConfig describes the four-lamp indicator.
type LEDConfig struct {
	// Driver is "none", "memory" or "i2c"
	Driver string `json:"driver"`

	// Bus is the i2c device node (default: /dev/i2c-1)
	Bus string `json:"bus"`

	// Address is the expander's 7-bit address (default: 0x20)
	Address int `json:"address"`

	// Pins maps North/East/South/West to output numbers
	Pins map[string]int `json:"pins"`

	// HoldSeconds keeps the lamp lit before cleanup in one-shot mode
	HoldSeconds float64 `json:"hold_seconds"`
}

// DisplayConfig is used by the graphical client.
type DisplayConfig struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	ArrowScale float64 `json:"arrow_scale"`
}

// LogConfig selects log verbosity and an optional rotating log file.
type LogConfig struct {
	// Level is one of debug, info, warn, error, off
	Level string `json:"level"`

	// Dir enables a rotating log file in this directory when set
	Dir string `json:"dir"`

	// MaxSizeMB is the size at which the log file rotates
	MaxSizeMB int `json:"max_size_mb"`
}

// Load reads configuration from a JSON file.
// If the file doesn't exist, returns a default configuration.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cfg.applyEnvironmentOverrides()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid config from environment: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Fields missing from the file keep their defaults. json merges into
	// a non-nil map, so the pin table is replaced as a whole instead.
	cfg := DefaultConfig()
	defaultPins := cfg.LED.Pins
	cfg.LED.Pins = nil
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.LED.Pins == nil {
		cfg.LED.Pins = defaultPins
	}

	cfg.applyEnvironmentOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to a JSON file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Arrivals:      10,
			AttachWind:    true,
			WindLimit:     5.0,
			Policy:        selector.POLICY_RUNWAY,
			DefaultRunway: airspace.DEFAULT_RUNWAY,
			LogSize:       50,
		},
		Runways: []RunwayConfig{
			{Name: "NS", HeadingDeg: 270},
			{Name: "SN", HeadingDeg: 90},
			{Name: "WE", HeadingDeg: 0},
			{Name: "EW", HeadingDeg: 180},
		},
		LED: LEDConfig{
			Driver:  "none",
			Bus:     "/dev/i2c-1",
			Address: 0x20,
			Pins: map[string]int{
				"North": 0,
				"East":  1,
				"South": 2,
				"West":  3,
			},
			HoldSeconds: 5,
		},
		Display: DisplayConfig{
			Width:      600,
			Height:     600,
			ArrowScale: 30,
		},
		Log: LogConfig{
			Level:     "info",
			MaxSizeMB: 16,
		},
	}
}

// Validate checks the fields that would otherwise fail deep inside a run.
func (c *Config) Validate() error {
	var errs []error

	if _, err := selector.New(c.Simulation.Policy, nil); err != nil {
		errs = append(errs, err)
	}
	if c.Simulation.Arrivals < 0 {
		errs = append(errs, fmt.Errorf("arrivals must not be negative, got %d", c.Simulation.Arrivals))
	}
	if c.Simulation.WindLimit <= 0 {
		errs = append(errs, fmt.Errorf("wind_limit must be positive, got %f", c.Simulation.WindLimit))
	}

	if _, err := c.Airport(); err != nil {
		errs = append(errs, err)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.LED.DirectionPins(); err != nil {
		errs = append(errs, err)
	}
	switch c.LED.Driver {
	case "none", "memory", "i2c":
	default:
		errs = append(errs, fmt.Errorf("unknown led driver %q", c.LED.Driver))
	}

	return errors.Join(errs...)
}

// Airport builds the runway complex, converting headings to radians.
func (c *Config) Airport() (*airspace.Airport, error) {
	runways := make([]airspace.Runway, 0, len(c.Runways))
	for _, r := range c.Runways {
		runways = append(runways, airspace.Runway{
			Name:    r.Name,
			Heading: r.HeadingDeg * math.Pi / 180,
		})
	}
	ap, err := airspace.NewAirport("CFG", "Configured", runways)
	if err != nil {
		return nil, err
	}
	if c.Simulation.DefaultRunway != "" {
		if err := ap.SetDefault(c.Simulation.DefaultRunway); err != nil {
			return nil, err
		}
	}
	return ap, nil
}

// DirectionPins resolves the pin table. Every direction needs its own pin
// and may be named only once ("N" and "North" together are rejected).
func (c *LEDConfig) DirectionPins() (map[selector.Direction]int, error) {
	pins := make(map[selector.Direction]int, len(c.Pins))
	used := make(map[int]string)
	named := make(map[selector.Direction]string)
	for name, pin := range c.Pins {
		d, err := selector.ParseDirection(name)
		if err != nil {
			return nil, err
		}
		if other, ok := named[d]; ok {
			return nil, fmt.Errorf("%s is named twice in the pin table (%s and %s)", d, other, name)
		}
		named[d] = name
		if other, ok := used[pin]; ok {
			return nil, fmt.Errorf("pin %d used by both %s and %s", pin, other, name)
		}
		used[pin] = name
		pins[d] = pin
	}
	for _, d := range selector.Directions {
		if _, ok := pins[d]; !ok {
			return nil, fmt.Errorf("no led pin for %s", d)
		}
	}
	return pins, nil
}

func (c *SimulationConfig) AutoTriggerInterval() time.Duration {
	return time.Duration(c.AutoTriggerSeconds * float64(time.Second))
}

func (c *LEDConfig) Hold() time.Duration {
	return time.Duration(c.HoldSeconds * float64(time.Second))
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if policy := os.Getenv("RUNWAY_SIM_POLICY"); policy != "" {
		c.Simulation.Policy = policy
	}
	if seed := os.Getenv("RUNWAY_SIM_SEED"); seed != "" {
		if s, err := strconv.ParseInt(seed, 10, 64); err == nil {
			c.Simulation.Seed = s
		}
	}
	if level := os.Getenv("RUNWAY_SIM_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if bus := os.Getenv("RUNWAY_SIM_I2C_BUS"); bus != "" {
		c.LED.Bus = bus
	}
}
