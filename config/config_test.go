package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/plinko/board"
	"github.com/lixenwraith/plinko/physics"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultBuildsStockBoard(t *testing.T) {
	cfg := Default()
	b, err := cfg.NewBoard()
	if err != nil {
		t.Fatalf("default board: %v", err)
	}
	if b.PegCount() != 78 || b.BinCount() != 12 || b.Width() != 800 {
		t.Errorf("unexpected stock board: pegs=%d bins=%d width=%v", b.PegCount(), b.BinCount(), b.Width())
	}

	p, err := cfg.Profile()
	if err != nil {
		t.Fatalf("default profile: %v", err)
	}
	if *p != physics.DefaultProfile {
		t.Errorf("profile: got %+v, want %+v", *p, physics.DefaultProfile)
	}

	w, err := cfg.Wager()
	if err != nil || w.String() != "10" {
		t.Errorf("wager: got %s, %v", w, err)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "plinko.yaml", `
board:
  rows: 3
physics:
  collision_policy: first
game:
  wager: "2.50"
  seed: 99
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Board.Rows != 3 {
		t.Errorf("rows: got %d", cfg.Board.Rows)
	}
	if cfg.Board.BinCount != 12 || len(cfg.Board.Multipliers) != 12 {
		t.Error("omitted keys should keep defaults")
	}
	if cfg.Game.Seed != 99 {
		t.Errorf("seed: got %d", cfg.Game.Seed)
	}

	b, err := cfg.NewBoard()
	if err != nil {
		t.Fatal(err)
	}
	if b.PegCount() != 6 {
		t.Errorf("pegs: got %d, want 6", b.PegCount())
	}
	p, err := cfg.Profile()
	if err != nil {
		t.Fatal(err)
	}
	if p.Policy != physics.ResolveFirst {
		t.Errorf("policy: got %v", p.Policy)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	path := writeFile(t, t.TempDir(), "bad.yaml", "board: [not, a, map")
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestMismatchedMultipliersIsConfigError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "plinko.yaml", `
board:
  bin_count: 3
  multipliers: [1, 2]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	_, err = cfg.NewBoard()
	var ce *board.ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestUnknownKeyIsError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "plinko.yaml", "board:\n  spacingx: 30\n")
	if _, err := Load(path); err == nil {
		t.Error("expected error for misspelled key")
	}
}

func TestEmptyFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "plinko.yaml", "")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Board.Rows != Default().Board.Rows {
		t.Errorf("rows: got %d", cfg.Board.Rows)
	}
}

func TestNonFiniteGeometryIsConfigError(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{"nan spacing", "board:\n  spacing_x: .nan\n", "spacing_x"},
		{"infinite spacing", "board:\n  spacing_y: .inf\n", "spacing_y"},
		{"nan origin", "board:\n  origin_x: .nan\n", "origin_x"},
		{"negative infinite origin", "board:\n  origin_y: -.inf\n", "origin_y"},
		{"infinite height", "board:\n  height: .inf\n", "height"},
		{"infinite width", "board:\n  width: .inf\n", "bin_width"},
		{"nan peg radius", "board:\n  peg_radius: .nan\n", "peg_radius"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, t.TempDir(), "plinko.yaml", tt.yaml))
			if err != nil {
				t.Fatal(err)
			}
			_, err = cfg.NewBoard()
			var ce *board.ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if ce.Field != tt.field {
				t.Errorf("field: got %q, want %q", ce.Field, tt.field)
			}
		})
	}
}

func TestNonFinitePhysicsIsError(t *testing.T) {
	for _, yml := range []string{
		"physics:\n  gravity: .inf\n",
		"physics:\n  gravity: .nan\n",
		"physics:\n  nudge: .inf\n",
		"physics:\n  ball_radius: .nan\n",
	} {
		cfg, err := Load(writeFile(t, t.TempDir(), "plinko.yaml", yml))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := cfg.Profile(); err == nil {
			t.Errorf("%q: expected physics error", yml)
		}
	}

	cfg := Default()
	cfg.Physics.Gravity = math.Inf(1)
	if _, err := cfg.Profile(); err == nil {
		t.Error("expected error for infinite gravity")
	}
}

func TestProfileErrors(t *testing.T) {
	cfg := Default()
	cfg.Physics.CollisionPolicy = "sometimes"
	if _, err := cfg.Profile(); err == nil {
		t.Error("expected unknown policy error")
	}

	cfg = Default()
	cfg.Physics.Dampening = 1.5
	if _, err := cfg.Profile(); err == nil {
		t.Error("expected dampening range error")
	}
}

func TestWagerErrors(t *testing.T) {
	for _, w := range []string{"", "abc", "-1"} {
		cfg := Default()
		cfg.Game.Wager = w
		if _, err := cfg.Wager(); err == nil {
			t.Errorf("wager %q: expected error", w)
		}
	}
}

func TestFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "plinko.yaml", "game:\n  wager: \"5\"\n")

	// .env is read from the working directory
	t.Chdir(dir)
	writeFile(t, dir, ".env", "PLINKO_SEED=7\n")

	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvWager, "3.25")
	t.Setenv(EnvDebug, "true")
	t.Setenv(EnvAudio, "false")
	t.Cleanup(func() { os.Unsetenv(EnvSeed) })

	cfg, err := FromEnvironment("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Game.Wager != "3.25" {
		t.Errorf("wager override: got %q", cfg.Game.Wager)
	}
	if cfg.Game.Seed != 7 {
		t.Errorf(".env seed: got %d", cfg.Game.Seed)
	}
	if !cfg.Debug || cfg.Audio.Enabled {
		t.Errorf("bool overrides: debug=%v audio=%v", cfg.Debug, cfg.Audio.Enabled)
	}
}

func TestFromEnvironmentBadValue(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvSeed, "not-a-number")
	if _, err := FromEnvironment(""); err == nil {
		t.Error("expected seed parse error")
	}
}
