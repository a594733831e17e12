package app

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"torus-life/pkg/core"
	"torus-life/pkg/sims/life"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "life.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Load(flag.NewFlagSet("test", flag.ContinueOnError), nil); err != nil {
		t.Fatal(err)
	}
	if *cfg != *NewConfig() {
		t.Fatalf("cfg=%+v, want defaults", *cfg)
	}
}

func TestLoadFileThenFlags(t *testing.T) {
	path := writeConfig(t, `
tps: 30
seed: 7
grid:
  width: 32
  height: 16
  pattern: random
`)
	cfg := NewConfig()
	args := []string{"-config", path, "-h", "20"}
	if err := cfg.Load(flag.NewFlagSet("test", flag.ContinueOnError), args); err != nil {
		t.Fatal(err)
	}
	if cfg.TPS != 30 || cfg.Seed != 7 || cfg.Width != 32 || cfg.Pattern != "random" {
		t.Fatalf("file values not applied: %+v", *cfg)
	}
	if cfg.Height != 20 {
		t.Fatalf("height=%d, explicit flag should win over file", cfg.Height)
	}
	if cfg.Scale != 8 || cfg.Sim != "life" {
		t.Fatalf("unset keys should keep defaults: %+v", *cfg)
	}
}

func TestLoadFileAppliesExplicitZero(t *testing.T) {
	path := writeConfig(t, "seed: 0\ngrid:\n  pattern: empty\n")
	cfg := NewConfig()
	if err := cfg.LoadFile(path); err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 0 || cfg.Pattern != "empty" {
		t.Fatalf("cfg=%+v, want seed 0 and empty pattern", *cfg)
	}
	if cfg.TPS != 10 || cfg.Width != 64 {
		t.Fatalf("absent keys changed: %+v", *cfg)
	}
}

func TestLoadFileErrors(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err=%v, want not-exist", err)
	}
	path := writeConfig(t, "grid: [unbalanced")
	if err := cfg.LoadFile(path); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestNewSim(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height = 10, 6
	sim, err := cfg.NewSim()
	if err != nil {
		t.Fatal(err)
	}
	if got := sim.Size(); got != (core.Size{W: 10, H: 6}) {
		t.Fatalf("size=%+v", got)
	}

	cfg.Width = 0
	if _, err := cfg.NewSim(); !errors.Is(err, life.ErrInvalidDimensions) {
		t.Fatalf("err=%v, want ErrInvalidDimensions", err)
	}

	cfg.Sim = "nope"
	if _, err := cfg.NewSim(); !errors.Is(err, ErrUnknownSim) {
		t.Fatalf("err=%v, want ErrUnknownSim", err)
	}
}
