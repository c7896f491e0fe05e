package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"atc-runway-simulator/internal/game/selector"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Simulation.Arrivals != 10 {
		t.Errorf("Expected 10 arrivals, got %d", cfg.Simulation.Arrivals)
	}
	if cfg.Simulation.Policy != selector.POLICY_RUNWAY {
		t.Errorf("Expected runway policy, got %s", cfg.Simulation.Policy)
	}
	if cfg.LED.Hold() != 5*time.Second {
		t.Errorf("Expected 5s hold, got %v", cfg.LED.Hold())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Display.ArrowScale != 30 {
		t.Errorf("Expected default arrow scale 30, got %f", cfg.Display.ArrowScale)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := DefaultConfig()
	cfg.Simulation.Policy = selector.POLICY_RECIPROCAL
	cfg.Simulation.Seed = 42
	cfg.LED.Driver = "memory"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	if loaded.Simulation.Policy != selector.POLICY_RECIPROCAL {
		t.Errorf("Expected reciprocal policy, got %s", loaded.Simulation.Policy)
	}
	if loaded.Simulation.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", loaded.Simulation.Seed)
	}
	if loaded.LED.Driver != "memory" {
		t.Errorf("Expected memory driver, got %s", loaded.LED.Driver)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"simulation": {"policy": "wind-origin"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Simulation.Policy != selector.POLICY_WIND_ORIGIN {
		t.Errorf("Expected wind-origin policy, got %s", cfg.Simulation.Policy)
	}
	if len(cfg.Runways) != 4 {
		t.Errorf("Expected the default runways, got %d", len(cfg.Runways))
	}
	if cfg.Simulation.WindLimit != 5.0 {
		t.Errorf("Expected default wind limit, got %f", cfg.Simulation.WindLimit)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad json", `{"simulation": `},
		{"unknown policy", `{"simulation": {"policy": "coin-flip"}}`},
		{"unknown default runway", `{"simulation": {"default_runway": "XX"}}`},
		{"duplicate runway", `{"runways": [{"name": "NS", "heading_deg": 270}, {"name": "NS", "heading_deg": 90}]}`},
		{"shared pin", `{"led": {"pins": {"North": 1, "East": 1, "South": 2, "West": 3}}}`},
		{"unknown driver", `{"led": {"driver": "gpio"}}`},
		{"direction named twice", `{"led": {"pins": {"North": 1, "N": 2, "East": 3, "South": 4, "West": 5}}}`},
		{"unknown log level", `{"log": {"level": "chatty"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tt.body), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestLoadShortPinNamesReplaceDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"led": {"pins": {"N": 17, "E": 27, "S": 22, "W": 23}}}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	// Map iteration order varies between runs, so a merged table would
	// show up as a flaky pin here.
	for i := 0; i < 50; i++ {
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(cfg.LED.Pins) != 4 {
			t.Fatalf("Expected 4 pin entries, got %v", cfg.LED.Pins)
		}
		pins, err := cfg.LED.DirectionPins()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if pins[selector.North] != 17 || pins[selector.West] != 23 {
			t.Fatalf("Expected North on 17 and West on 23, got %v", pins)
		}
	}
}

func TestLoadWithoutPinsKeepsDefaultPins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"led": {"driver": "memory"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.LED.Pins["East"] != 1 || len(cfg.LED.Pins) != 4 {
		t.Errorf("Expected the default pins, got %v", cfg.LED.Pins)
	}
}

func TestLoadMissingFileRejectsBadEnvironment(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"RUNWAY_SIM_POLICY", "coin-flip"},
		{"RUNWAY_SIM_LOG_LEVEL", "chatty"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
				t.Errorf("Expected an error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("RUNWAY_SIM_POLICY", selector.POLICY_WIND_ORIGIN)
	t.Setenv("RUNWAY_SIM_SEED", "7")
	t.Setenv("RUNWAY_SIM_LOG_LEVEL", "debug")
	t.Setenv("RUNWAY_SIM_I2C_BUS", "/dev/i2c-3")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Simulation.Policy != selector.POLICY_WIND_ORIGIN {
		t.Errorf("Expected wind-origin policy, got %s", cfg.Simulation.Policy)
	}
	if cfg.Simulation.Seed != 7 {
		t.Errorf("Expected seed 7, got %d", cfg.Simulation.Seed)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Expected debug level, got %s", cfg.Log.Level)
	}
	if cfg.LED.Bus != "/dev/i2c-3" {
		t.Errorf("Expected bus override, got %s", cfg.LED.Bus)
	}
}

func TestAirportHeadings(t *testing.T) {
	cfg := DefaultConfig()
	ap, err := cfg.Airport()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := map[string]float64{
		"NS": 3 * math.Pi / 2,
		"SN": math.Pi / 2,
		"WE": 0,
		"EW": math.Pi,
	}
	for name, heading := range expected {
		rwy, ok := ap.Runway(name)
		if !ok {
			t.Errorf("Expected runway %s", name)
			continue
		}
		if math.Abs(rwy.Heading-heading) > 1e-9 {
			t.Errorf("Runway %s: expected heading %f, got %f", name, heading, rwy.Heading)
		}
	}
	if ap.Default != "NS" {
		t.Errorf("Expected default NS, got %s", ap.Default)
	}
}

func TestDirectionPins(t *testing.T) {
	cfg := DefaultConfig()
	pins, err := cfg.LED.DirectionPins()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if pins[selector.West] != 3 {
		t.Errorf("Expected West on pin 3, got %d", pins[selector.West])
	}

	cfg.LED.Pins["W"] = 9
	if _, err := cfg.LED.DirectionPins(); err == nil {
		t.Error("Expected an error for West named twice")
	}
	delete(cfg.LED.Pins, "W")

	delete(cfg.LED.Pins, "East")
	if _, err := cfg.LED.DirectionPins(); err == nil {
		t.Error("Expected an error for a missing direction")
	}
}
