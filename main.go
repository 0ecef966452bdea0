package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gasbreed/config"
	"github.com/pthm-cable/gasbreed/game"
	"github.com/pthm-cable/gasbreed/telemetry"
	"github.com/pthm-cable/gasbreed/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output per-step stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = config seed, then time-based)")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = cfg.Simulation.Seed
	}
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	cfg.Simulation.Seed = rngSeed

	opts := game.Options{
		Params:   game.ParamsFromConfig(cfg.Simulation),
		Seed:     rngSeed,
		LogStats: *logStats || cfg.Telemetry.LogStats,
	}

	result, err := runOnce(opts, cfg, *outputDir)
	if err != nil {
		slog.Error("simulation failed", "seed", opts.Seed, "error", err)
		os.Exit(1)
	}

	if *headless {
		return
	}

	// Graphical mode
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), ui.ChartTitle)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	view := ui.NewChartView(int32(cfg.Screen.Width), int32(cfg.Screen.Height))
	view.SetData(ui.ChartData{Sizes: result.Sizes, Seed: result.Seed})

	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		action := view.Draw()
		rl.EndDrawing()

		switch action {
		case ui.ActionRerun:
		case ui.ActionNewSeed:
			opts.Seed = time.Now().UnixNano()
		default:
			continue
		}

		// Reruns never overwrite the output directory.
		result, err = runOnce(opts, cfg, "")
		if err != nil {
			slog.Error("simulation failed", "seed", opts.Seed, "error", err)
			continue
		}
		view.SetData(ui.ChartData{Sizes: result.Sizes, Seed: result.Seed})
	}
}

// runOnce runs a simulation, writing output to outputDir when it is set.
func runOnce(opts game.Options, cfg *config.Config, outputDir string) (*game.Result, error) {
	om, err := telemetry.NewOutputManager(outputDir)
	if err != nil {
		return nil, err
	}
	defer om.Close()

	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}
	opts.Output = om

	slog.Info("starting simulation",
		"seed", opts.Seed,
		"length", opts.Params.Length,
		"start_pop", opts.Params.StartPop,
		"mutation", opts.Params.Mutation,
		"start_n2", opts.Params.StartN2,
		"start_co2", opts.Params.StartCO2,
		"change_frequency", opts.Params.ChangeFrequency,
	)

	result, err := game.Run(opts)
	if err != nil {
		return nil, err
	}

	slog.Info("simulation complete", "summary", result.Summary)
	return result, nil
}
