package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/gasbreed/config"
)

// Atmospheric drift applied every ChangeFrequency steps.
const (
	N2Drift  = 0.01 // nitrogen added
	CO2Drift = 0.01 // carbon dioxide removed
)

// Params are the inputs of one breeding run.
type Params struct {
	Length          int     // steps to run
	StartPop        int     // organisms seeded before the first step
	Mutation        float64 // mutation probability of the seed organisms
	StartN2         float64 // initial nitrogen concentration
	StartCO2        float64 // initial carbon dioxide concentration
	ChangeFrequency int     // drift the atmosphere when step % ChangeFrequency == 0
}

// ParamsFromConfig extracts run parameters from the simulation config.
func ParamsFromConfig(c config.SimulationConfig) Params {
	return Params{
		Length:          c.Length,
		StartPop:        c.StartPop,
		Mutation:        c.Mutation,
		StartN2:         c.StartN2,
		StartCO2:        c.StartCO2,
		ChangeFrequency: c.ChangeFrequency,
	}
}

// Validate checks the parameters against the driver's input contract.
func (p Params) Validate() error {
	switch {
	case p.Length < 1:
		return fmt.Errorf("%w: length %d must be positive", ErrInvalidArgument, p.Length)
	case p.StartPop < 0:
		return fmt.Errorf("%w: start population %d is negative", ErrInvalidArgument, p.StartPop)
	case !inUnit(p.Mutation):
		return fmt.Errorf("%w: mutation probability %v outside [0, 1]", ErrInvalidArgument, p.Mutation)
	case p.ChangeFrequency < 1:
		return fmt.Errorf("%w: change frequency %d must be positive", ErrInvalidArgument, p.ChangeFrequency)
	}
	// gas bounds are checked by NewEnvironment
	return nil
}

// stepHook observes the environment after each step, before the atmosphere drifts.
type stepHook func(step, births int, env *Environment) error

// SimulateBreeding runs the breeding simulation and returns the population
// size after each step. Any error aborts the run and no sizes are returned.
func SimulateBreeding(p Params, rng *rand.Rand) ([]int, error) {
	return simulate(p, rng, nil)
}

func simulate(p Params, rng *rand.Rand, hook stepHook) ([]int, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	env, err := NewEnvironment(p.StartN2, p.StartCO2)
	if err != nil {
		return nil, err
	}
	if err := env.IntroducePopulation(p.StartPop, p.Mutation); err != nil {
		return nil, err
	}

	sizes := make([]int, 0, p.Length)
	for i := 0; i < p.Length; i++ {
		births, err := env.TimeStep(rng)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}

		size, err := env.PopulationSize()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		sizes = append(sizes, size)

		if hook != nil {
			if err := hook(i, births, env); err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
		}

		if i%p.ChangeFrequency == 0 {
			if err := drift(env); err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			slog.Debug("atmosphere drift", "step", i, "n2", env.N2(), "co2", env.CO2())
		}
	}

	return sizes, nil
}

// drift raises nitrogen and lowers carbon dioxide by the fixed drift amounts.
func drift(env *Environment) error {
	if err := env.IncreaseN2(N2Drift); err != nil {
		return err
	}
	return env.DecreaseCO2(CO2Drift)
}
