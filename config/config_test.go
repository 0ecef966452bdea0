package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := SimulationConfig{
		Length:          100,
		StartPop:        10,
		Mutation:        0.5,
		StartN2:         0.2,
		StartCO2:        0.5,
		ChangeFrequency: 5,
	}
	if cfg.Simulation != want {
		t.Errorf("defaults = %+v, want %+v", cfg.Simulation, want)
	}
	if cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0 {
		t.Errorf("screen defaults not set: %+v", cfg.Screen)
	}
}

func TestLoadMergesOverrides(t *testing.T) {
	path := writeFile(t, "simulation:\n  length: 50\n  seed: 7\ntelemetry:\n  log_stats: true\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Simulation.Length != 50 || cfg.Simulation.Seed != 7 {
		t.Errorf("overrides not applied: %+v", cfg.Simulation)
	}
	if cfg.Simulation.StartPop != 10 || cfg.Simulation.StartCO2 != 0.5 {
		t.Errorf("defaults lost on merge: %+v", cfg.Simulation)
	}
	if !cfg.Telemetry.LogStats {
		t.Error("telemetry.log_stats override not applied")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"mutation out of range", "simulation:\n  mutation: 2\n", "simulation.mutation"},
		{"gas over budget", "simulation:\n  start_n2: 0.6\n", "start_n2 + start_co2"},
		{"zero length", "simulation:\n  length: 0\n", "simulation.length"},
		{"zero change frequency", "simulation:\n  change_frequency: 0\n", "simulation.change_frequency"},
		{"bad yaml", "simulation: [\n", "parsing config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Simulation.StartPop = -1
	cfg.Simulation.Mutation = -0.5

	err = cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, field := range []string{"start_pop", "mutation"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err, field)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cp := cfg.Clone()
	cp.Simulation.Mutation = 0.9

	if cfg.Simulation.Mutation != 0.5 {
		t.Errorf("modifying clone changed original: %v", cfg.Simulation.Mutation)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Simulation.Length = 42
	cfg.Simulation.Seed = 99

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load written file: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip = %+v, want %+v", loaded, cfg)
	}
}

func TestCfgAfterInit(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if Cfg().Simulation.Length != 100 {
		t.Errorf("Cfg().Simulation.Length = %d, want 100", Cfg().Simulation.Length)
	}
}
