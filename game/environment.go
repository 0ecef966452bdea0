package game

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/pthm-cable/gasbreed/components"
	"github.com/pthm-cable/gasbreed/systems"
)

var (
	// ErrInvalidArgument reports a gas change or parameter outside its bounds.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState reports an operation that needs a population in the
	// wrong population state.
	ErrInvalidState = errors.New("invalid state")
)

// Environment holds the atmosphere and the population living in it.
// N2 and CO2 each stay in [0, 1] and share a budget: N2 + CO2 <= 1.
type Environment struct {
	n2  float64
	co2 float64

	// nil until IntroducePopulation
	population *systems.Population
}

// NewEnvironment creates an environment with the given gas readings.
func NewEnvironment(n2, co2 float64) (*Environment, error) {
	if !inUnit(n2) || !inUnit(co2) || n2+co2 > 1 {
		return nil, fmt.Errorf("%w: gas readings n2=%v co2=%v outside atmosphere bounds", ErrInvalidArgument, n2, co2)
	}
	return &Environment{n2: n2, co2: co2}, nil
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}

func badDelta(d float64) bool {
	return math.IsNaN(d) || d < 0
}

// N2 returns the current nitrogen concentration.
func (e *Environment) N2() float64 { return e.n2 }

// CO2 returns the current carbon dioxide concentration.
func (e *Environment) CO2() float64 { return e.co2 }

// IncreaseN2 raises nitrogen by d. The bound is checked on the value that
// would be stored, so the budget holds exactly after rounding.
func (e *Environment) IncreaseN2(d float64) error {
	n2 := e.n2 + d
	if badDelta(d) || n2+e.co2 > 1 {
		return fmt.Errorf("%w: increase n2 by %v (n2=%v co2=%v)", ErrInvalidArgument, d, e.n2, e.co2)
	}
	e.n2 = n2
	return nil
}

// IncreaseCO2 raises carbon dioxide by d.
func (e *Environment) IncreaseCO2(d float64) error {
	co2 := e.co2 + d
	if badDelta(d) || e.n2+co2 > 1 {
		return fmt.Errorf("%w: increase co2 by %v (n2=%v co2=%v)", ErrInvalidArgument, d, e.n2, e.co2)
	}
	e.co2 = co2
	return nil
}

// DecreaseN2 lowers nitrogen by d.
func (e *Environment) DecreaseN2(d float64) error {
	n2 := e.n2 - d
	if badDelta(d) || n2 < 0 {
		return fmt.Errorf("%w: decrease n2 by %v (n2=%v)", ErrInvalidArgument, d, e.n2)
	}
	e.n2 = n2
	return nil
}

// DecreaseCO2 lowers carbon dioxide by d.
func (e *Environment) DecreaseCO2(d float64) error {
	co2 := e.co2 - d
	if badDelta(d) || co2 < 0 {
		return fmt.Errorf("%w: decrease co2 by %v (co2=%v)", ErrInvalidArgument, d, e.co2)
	}
	e.co2 = co2
	return nil
}

// IntroducePopulation seeds size organisms whose thresholds are the current
// readings. It may be called once per environment.
func (e *Environment) IntroducePopulation(size int, mutation float64) error {
	if e.population != nil {
		return fmt.Errorf("%w: population already introduced", ErrInvalidState)
	}
	if size < 0 {
		return fmt.Errorf("%w: population size %d", ErrInvalidArgument, size)
	}
	if !inUnit(mutation) {
		return fmt.Errorf("%w: mutation probability %v", ErrInvalidArgument, mutation)
	}

	seed := components.Organism{
		MinN2:        e.n2,
		MaxCO2:       e.co2,
		MutationProb: mutation,
	}
	e.population = systems.NewPopulation(seed, size)
	return nil
}

// HasPopulation reports whether a population has been introduced.
func (e *Environment) HasPopulation() bool {
	return e.population != nil
}

// Population returns the introduced population.
func (e *Environment) Population() (*systems.Population, error) {
	if e.population == nil {
		return nil, fmt.Errorf("%w: no population introduced", ErrInvalidState)
	}
	return e.population, nil
}

// TimeStep breeds the population once under the current readings and returns
// the number of births.
func (e *Environment) TimeStep(rng *rand.Rand) (int, error) {
	pop, err := e.Population()
	if err != nil {
		return 0, err
	}
	return pop.Step(e.n2, e.co2, rng)
}

// PopulationSize returns the number of organisms.
func (e *Environment) PopulationSize() (int, error) {
	pop, err := e.Population()
	if err != nil {
		return 0, err
	}
	return pop.Size(), nil
}
