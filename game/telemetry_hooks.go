package game

import (
	"log/slog"

	"github.com/pthm-cable/gasbreed/telemetry"
)

// flushStep hands a finished step's stats to every configured sink.
func flushStep(opts Options, stats telemetry.StepStats) {
	if opts.StepCallback != nil {
		opts.StepCallback(stats)
	}

	if opts.LogStats {
		stats.LogStats()
	}

	// Write to CSV if output manager is enabled
	if err := opts.Output.WriteStep(stats); err != nil {
		slog.Error("failed to write step", "step", stats.Step, "error", err)
	}
}
