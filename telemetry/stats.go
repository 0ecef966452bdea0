package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// StepStats holds the state of one simulation step, recorded after breeding.
type StepStats struct {
	Step       int     `csv:"step"`
	Population int     `csv:"population"`
	Births     int     `csv:"births"`
	N2         float64 `csv:"n2"`
	CO2        float64 `csv:"co2"`

	// Threshold distribution across the population
	MinN2Mean        float64 `csv:"min_n2_mean"`
	MinN2Lowest      float64 `csv:"min_n2_lowest"`
	MaxCO2Mean       float64 `csv:"max_co2_mean"`
	MaxCO2Highest    float64 `csv:"max_co2_highest"`
	MutationProbMean float64 `csv:"mutation_prob_mean"`
}

// TraitStats summarises one threshold column.
type TraitStats struct {
	Mean, Std float64
	Min, Max  float64
	Median    float64
}

// ComputeTraitStats calculates mean, std, extremes and median of values.
// Returns zeros for an empty slice.
func ComputeTraitStats(values []float64) TraitStats {
	if len(values) == 0 {
		return TraitStats{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var ts TraitStats
	if len(sorted) > 1 {
		ts.Mean, ts.Std = stat.MeanStdDev(sorted, nil)
	} else {
		ts.Mean = sorted[0]
	}
	ts.Min = floats.Min(sorted)
	ts.Max = floats.Max(sorted)
	ts.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	return ts
}

// LogValue implements slog.LogValuer for structured logging.
func (s StepStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("step", s.Step),
		slog.Int("population", s.Population),
		slog.Int("births", s.Births),
		slog.Float64("n2", s.N2),
		slog.Float64("co2", s.CO2),
		slog.Float64("min_n2_mean", s.MinN2Mean),
		slog.Float64("min_n2_lowest", s.MinN2Lowest),
		slog.Float64("max_co2_mean", s.MaxCO2Mean),
		slog.Float64("max_co2_highest", s.MaxCO2Highest),
		slog.Float64("mutation_prob_mean", s.MutationProbMean),
	)
}

// LogStats logs the step stats using slog.
func (s StepStats) LogStats() {
	slog.Info("step", "stats", s)
}

// Summary describes a whole run.
type Summary struct {
	Steps       int     `csv:"steps"`
	StartSize   int     `csv:"start_size"`
	FinalSize   int     `csv:"final_size"`
	TotalBirths int     `csv:"total_births"`
	PeakBirths  int     `csv:"peak_births"`
	BirthsMean  float64 `csv:"births_mean"`
	BirthsStd   float64 `csv:"births_std"`

	// FinalSize / StartSize; 0 when the run started empty
	GrowthFactor float64 `csv:"growth_factor"`

	// First step with at least one birth, -1 if none
	FirstBirthStep int `csv:"first_birth_step"`
}

// Summarize builds a Summary from the per-step records of one run.
func Summarize(startSize int, records []StepStats) Summary {
	s := Summary{
		Steps:          len(records),
		StartSize:      startSize,
		FinalSize:      startSize,
		FirstBirthStep: -1,
	}
	if len(records) == 0 {
		return s
	}

	births := make([]float64, len(records))
	for i, r := range records {
		births[i] = float64(r.Births)
		s.TotalBirths += r.Births
		if s.FirstBirthStep < 0 && r.Births > 0 {
			s.FirstBirthStep = r.Step
		}
	}

	s.FinalSize = records[len(records)-1].Population
	s.PeakBirths = int(floats.Max(births))
	if len(births) > 1 {
		s.BirthsMean, s.BirthsStd = stat.MeanStdDev(births, nil)
	} else {
		s.BirthsMean = births[0]
	}
	if startSize > 0 {
		s.GrowthFactor = float64(s.FinalSize) / float64(startSize)
	}

	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("steps", s.Steps),
		slog.Int("start_size", s.StartSize),
		slog.Int("final_size", s.FinalSize),
		slog.Int("total_births", s.TotalBirths),
		slog.Int("peak_births", s.PeakBirths),
		slog.Float64("births_mean", s.BirthsMean),
		slog.Float64("births_std", s.BirthsStd),
		slog.Float64("growth_factor", s.GrowthFactor),
		slog.Int("first_birth_step", s.FirstBirthStep),
	)
}
