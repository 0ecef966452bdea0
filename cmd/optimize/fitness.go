package main

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/pthm-cable/gasbreed/config"
	"github.com/pthm-cable/gasbreed/game"
)

// failedRunFitness is assigned to parameter sets whose run aborts, e.g. when
// the atmosphere drift leaves its bounds.
const failedRunFitness = 1e6

// FitnessEvaluator runs simulations and scores how close their final
// population lands to a target size.
type FitnessEvaluator struct {
	params *ParamVector
	base   config.SimulationConfig
	seeds  []int64
	target int

	lastFinal float64 // mean final size from the most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, base config.SimulationConfig, seeds []int64, target int) *FitnessEvaluator {
	return &FitnessEvaluator{
		params: params,
		base:   base,
		seeds:  seeds,
		target: target,
	}
}

// LastFinal returns the mean final population from the most recent evaluation.
func (fe *FitnessEvaluator) LastFinal() float64 {
	return fe.lastFinal
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
// Fitness is the mean squared log-distance between final and target size.
// Seeds run one after another.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.base
	fe.params.ApplyToConfig(&cfg, x)
	params := game.ParamsFromConfig(cfg)

	var total, finals float64
	for _, seed := range fe.seeds {
		sizes, err := game.SimulateBreeding(params, rand.New(rand.NewSource(seed)))
		if err != nil {
			slog.Debug("run failed", "seed", seed, "mutation", cfg.Mutation, "change_frequency", cfg.ChangeFrequency, "error", err)
			fe.lastFinal = 0
			return failedRunFitness
		}
		final := float64(sizes[len(sizes)-1])
		finals += final
		total += fitnessFor(final, fe.target)
	}

	n := float64(len(fe.seeds))
	fe.lastFinal = finals / n
	return total / n
}

// fitnessFor scores one final population size against the target.
func fitnessFor(final float64, target int) float64 {
	d := math.Log1p(final) - math.Log1p(float64(target))
	return d * d
}
