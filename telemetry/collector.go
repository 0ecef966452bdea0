package telemetry

import "github.com/pthm-cable/gasbreed/systems"

// Collector records one StepStats per simulation step.
type Collector struct {
	startSize int
	records   []StepStats
}

// NewCollector creates a collector for a run that starts with startSize organisms.
// length is a capacity hint.
func NewCollector(startSize, length int) *Collector {
	if length < 0 {
		length = 0
	}
	return &Collector{
		startSize: startSize,
		records:   make([]StepStats, 0, length),
	}
}

// Record builds the stats for a finished step and appends them.
// n2 and co2 are the readings the step bred under.
func (c *Collector) Record(step, births int, n2, co2 float64, traits systems.Traits) StepStats {
	minN2 := ComputeTraitStats(traits.MinN2)
	maxCO2 := ComputeTraitStats(traits.MaxCO2)
	mutation := ComputeTraitStats(traits.MutationProb)

	stats := StepStats{
		Step:             step,
		Population:       len(traits.MinN2),
		Births:           births,
		N2:               n2,
		CO2:              co2,
		MinN2Mean:        minN2.Mean,
		MinN2Lowest:      minN2.Min,
		MaxCO2Mean:       maxCO2.Mean,
		MaxCO2Highest:    maxCO2.Max,
		MutationProbMean: mutation.Mean,
	}
	c.records = append(c.records, stats)
	return stats
}

// Records returns every recorded step in order.
func (c *Collector) Records() []StepStats {
	return c.records
}

// Sizes returns the population size after each recorded step.
func (c *Collector) Sizes() []int {
	sizes := make([]int, len(c.records))
	for i, r := range c.records {
		sizes[i] = r.Population
	}
	return sizes
}

// Summary summarises the recorded steps.
func (c *Collector) Summary() Summary {
	return Summarize(c.startSize, c.records)
}
