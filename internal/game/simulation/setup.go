package simulation

import (
	"atc-runway-simulator/internal/game/aircraft"
	"atc-runway-simulator/internal/game/airspace"
	"atc-runway-simulator/internal/game/selector"
	"atc-runway-simulator/internal/game/wind"
	"atc-runway-simulator/pkg/config"
)

// NewFromConfig builds the airport, the selection policy and a populated
// queue from cfg. The airport is returned so callers can switch policies
// later against the same runways.
func NewFromConfig(cfg *config.Config) (*Simulation, *airspace.Airport, error) {
	ap, err := cfg.Airport()
	if err != nil {
		return nil, nil, err
	}
	sel, err := selector.New(cfg.Simulation.Policy, ap)
	if err != nil {
		return nil, nil, err
	}

	var source wind.Source
	if cfg.Simulation.AttachWind {
		if cfg.Simulation.Seed != 0 {
			source = wind.NewUniformSource(cfg.Simulation.WindLimit, cfg.Simulation.Seed)
		} else {
			source = wind.NewTimeSeededSource(cfg.Simulation.WindLimit)
		}
	}
	queue := aircraft.NewQueue(source)
	aircraft.Populate(queue, cfg.Simulation.Arrivals)

	sim := NewSimulation(queue, sel)
	sim.SetMaxLogSize(cfg.Simulation.LogSize)
	return sim, ap, nil
}
