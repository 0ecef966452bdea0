package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/gasbreed/config"
)

func baseSimulation(t *testing.T) config.SimulationConfig {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	return cfg.Simulation
}

func TestNormalizeRoundTrip(t *testing.T) {
	pv := NewParamVector(baseSimulation(t))
	raw := pv.DefaultVector()

	back := pv.Denormalize(pv.Normalize(raw))
	for i := range raw {
		if math.Abs(back[i]-raw[i]) > 1e-9 {
			t.Errorf("%s: round trip %v -> %v", pv.Specs[i].Name, raw[i], back[i])
		}
	}
}

func TestClamp(t *testing.T) {
	pv := NewParamVector(baseSimulation(t))

	got := pv.Clamp([]float64{1.7, 12.6})
	if got[0] != 1 || got[1] != 13 {
		t.Errorf("Clamp = %v, want [1 13]", got)
	}
	got = pv.Clamp([]float64{-0.2, -4})
	if got[0] != 0 || got[1] != 1 {
		t.Errorf("Clamp = %v, want [0 1]", got)
	}
}

func TestApplyToConfig(t *testing.T) {
	base := baseSimulation(t)
	pv := NewParamVector(base)

	cfg := base
	pv.ApplyToConfig(&cfg, []float64{0.25, 7.4})
	if cfg.Mutation != 0.25 || cfg.ChangeFrequency != 7 {
		t.Errorf("applied mutation=%v change_frequency=%d, want 0.25 and 7", cfg.Mutation, cfg.ChangeFrequency)
	}
	if cfg.StartPop != base.StartPop || cfg.Length != base.Length {
		t.Error("ApplyToConfig touched parameters outside the vector")
	}
}

func TestFitnessFor(t *testing.T) {
	if f := fitnessFor(500, 500); f != 0 {
		t.Errorf("fitnessFor(target) = %v, want 0", f)
	}
	if fitnessFor(50, 500) <= fitnessFor(400, 500) {
		t.Error("a closer final size should score better")
	}
}

func TestEvaluate(t *testing.T) {
	base := baseSimulation(t)
	base.Length = 30
	pv := NewParamVector(base)
	fe := NewFitnessEvaluator(pv, base, []int64{1, 2}, 50)

	f := fe.Evaluate(pv.DefaultVector())
	if math.IsNaN(f) || f < 0 || f >= failedRunFitness {
		t.Errorf("Evaluate = %v, want a finite non-negative score", f)
	}
	if fe.LastFinal() < float64(base.StartPop) {
		t.Errorf("LastFinal = %v, below the seed population", fe.LastFinal())
	}
}

func TestEvaluateFailedRun(t *testing.T) {
	base := baseSimulation(t)
	base.StartCO2 = 0
	pv := NewParamVector(base)
	fe := NewFitnessEvaluator(pv, base, []int64{1}, 50)

	if f := fe.Evaluate(pv.DefaultVector()); f != failedRunFitness {
		t.Errorf("Evaluate = %v, want %v for a failing run", f, failedRunFitness)
	}
}
