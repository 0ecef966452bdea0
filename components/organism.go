package components

import (
	"errors"
	"math/rand"
)

// Mutation step applied to both thresholds of a mutated offspring.
const MutationStep = 0.1

// ErrDegenerateThreshold is returned by Breed when an organism tolerates no CO2
// at all. The CO2 margin is undefined in that case.
var ErrDegenerateThreshold = errors.New("organism max_co2 is zero")

// Organism holds the heritable tolerances of one individual.
// Values are fixed for the organism's lifetime.
type Organism struct {
	MinN2        float64 `csv:"min_n2" yaml:"min_n2"`               // lowest N2 concentration it breeds in
	MaxCO2       float64 `csv:"max_co2" yaml:"max_co2"`             // highest CO2 concentration it tolerates
	MutationProb float64 `csv:"mutation_prob" yaml:"mutation_prob"` // chance an offspring is mutated
}

// Margins returns how far the readings sit inside the organism's tolerances.
// A negative margin means the organism cannot breed.
func (o Organism) Margins(n2, co2 float64) (n2Margin, co2Margin float64, err error) {
	if o.MaxCO2 == 0 {
		return 0, 0, ErrDegenerateThreshold
	}
	n2Margin = n2 - o.MinN2
	co2Margin = (o.MaxCO2 - co2) / o.MaxCO2
	return n2Margin, co2Margin, nil
}

// ReproductionProb returns the chance of a successful breed under the readings.
// Zero when either margin is negative.
func (o Organism) ReproductionProb(n2, co2 float64) (float64, error) {
	n2Margin, co2Margin, err := o.Margins(n2, co2)
	if err != nil {
		return 0, err
	}
	if n2Margin < 0 || co2Margin < 0 {
		return 0, nil
	}
	return n2Margin * co2Margin, nil
}

// Breed attempts to produce one offspring under the current gas readings.
// It draws from rng at most twice: once for reproduction and, on success,
// once more for mutation. Organisms outside their tolerances consume no draws.
func (o Organism) Breed(n2, co2 float64, rng *rand.Rand) (Organism, bool, error) {
	n2Margin, co2Margin, err := o.Margins(n2, co2)
	if err != nil {
		return Organism{}, false, err
	}
	if n2Margin < 0 || co2Margin < 0 {
		return Organism{}, false, nil
	}

	if !(rng.Float64() < n2Margin*co2Margin) {
		return Organism{}, false, nil
	}

	child := o
	if rng.Float64() < o.MutationProb {
		child = o.Mutated()
	}
	return child, true, nil
}

// Mutated returns the mutated form of o. Each threshold shift is skipped
// independently when it would leave [0, 1]; the mutation probability flips.
func (o Organism) Mutated() Organism {
	m := o
	if o.MinN2-MutationStep >= 0 {
		m.MinN2 -= MutationStep
	}
	if o.MaxCO2+MutationStep <= 1 {
		m.MaxCO2 += MutationStep
	}
	m.MutationProb = 1 - o.MutationProb
	return m
}
