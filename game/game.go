package game

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/pthm-cable/gasbreed/telemetry"
)

// Options configures a full simulation run.
type Options struct {
	Params Params
	Seed   int64 // RNG seed (0 = time-based)

	LogStats bool                     // log every step via slog
	Output   *telemetry.OutputManager // nil disables CSV output

	// StepCallback is invoked after every step, if set.
	StepCallback func(telemetry.StepStats)
}

// Result holds everything a run produced.
type Result struct {
	Seed    int64
	Sizes   []int
	Steps   []telemetry.StepStats
	Summary telemetry.Summary
}

// Run executes one simulation with telemetry attached. It consumes randomness
// exactly like SimulateBreeding with the same seed, so Sizes match.
func Run(opts Options) (*Result, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	collector := telemetry.NewCollector(opts.Params.StartPop, opts.Params.Length)
	hook := func(step, births int, env *Environment) error {
		pop, err := env.Population()
		if err != nil {
			return err
		}
		stats := collector.Record(step, births, env.N2(), env.CO2(), pop.Traits())
		flushStep(opts, stats)
		return nil
	}

	sizes, err := simulate(opts.Params, rng, hook)
	if err != nil {
		return nil, err
	}

	summary := collector.Summary()
	if err := opts.Output.WriteSummary(summary); err != nil {
		slog.Error("failed to write summary", "error", err)
	}

	return &Result{
		Seed:    seed,
		Sizes:   sizes,
		Steps:   collector.Records(),
		Summary: summary,
	}, nil
}
