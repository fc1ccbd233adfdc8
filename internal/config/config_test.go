package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/trex-runner/internal/world"
)

func TestDefaultRunnerConfigMatchesWorldDefaults(t *testing.T) {
	cfg := DefaultRunnerConfig()
	if got, want := cfg.World.Settings(), world.DefaultSettings(); got != want {
		t.Errorf("World.Settings() = %+v, expected %+v", got, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner() error = %v", err)
	}
	if cfg != DefaultRunnerConfig() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultRunnerConfig())
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("world:\n  max_height: 6\ntiming:\n  tick_rate: 40\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() error = %v", err)
	}
	if cfg.World.MaxHeight != 6 {
		t.Errorf("MaxHeight = %d, expected 6", cfg.World.MaxHeight)
	}
	if cfg.Timing.TickRate != 40 {
		t.Errorf("TickRate = %d, expected 40", cfg.Timing.TickRate)
	}
	// Unset fields keep their defaults.
	if cfg.World.Obstacle != (RangeConfig{Min: 100, Max: 200}) {
		t.Errorf("Obstacle = %+v, expected default", cfg.World.Obstacle)
	}
}

func TestLoadRunnerLocalDirectory(t *testing.T) {
	dir := isolate(t)
	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("world:\n  runner_x: 5\n")
	if err := os.WriteFile(filepath.Join(dir, "configs", FileName), data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner() error = %v", err)
	}
	if cfg.World.RunnerX != 5 {
		t.Errorf("RunnerX = %d, expected 5", cfg.World.RunnerX)
	}
}

func TestLoadRunnerErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadRunner(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadRunner(missing) should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRunner(bad); err == nil {
		t.Error("LoadRunner(malformed) should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("world:\n  grain:\n    min: 0\n    max: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRunner(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadRunner(invalid) = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*RunnerConfig)
		ok     bool
	}{
		{"defaults", func(*RunnerConfig) {}, true},
		{"zero max height", func(c *RunnerConfig) { c.World.MaxHeight = 0 }, false},
		{"negative runner x", func(c *RunnerConfig) { c.World.RunnerX = -1 }, false},
		{"stone min below marker width", func(c *RunnerConfig) { c.World.TopStone = RangeConfig{Min: 2, Max: 10} }, false},
		{"stone min at marker width", func(c *RunnerConfig) { c.World.BottomStone = RangeConfig{Min: 3, Max: 4} }, true},
		{"empty range", func(c *RunnerConfig) { c.World.Obstacle = RangeConfig{Min: 100, Max: 100} }, false},
		{"inverted range", func(c *RunnerConfig) { c.World.Grain = RangeConfig{Min: 20, Max: 10} }, false},
		{"zero grain min", func(c *RunnerConfig) { c.World.Grain = RangeConfig{Min: 0, Max: 10} }, false},
		{"zero stone min", func(c *RunnerConfig) { c.World.TopStone = RangeConfig{Min: 0, Max: 10} }, false},
		{"zero obstacle min", func(c *RunnerConfig) { c.World.Obstacle = RangeConfig{Min: 0, Max: 200} }, false},
		{"grain min of one", func(c *RunnerConfig) { c.World.Grain = RangeConfig{Min: 1, Max: 2} }, true},
		{"zero tick rate", func(c *RunnerConfig) { c.Timing.TickRate = 0 }, false},
		{"initial level above one", func(c *RunnerConfig) { c.Difficulty.InitialLevel = 1.5 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestCheckViewport(t *testing.T) {
	wc := DefaultRunnerConfig().World
	need := wc.MinViewport()

	if err := wc.CheckViewport(world.Viewport{Width: 80, Height: 24}); err != nil {
		t.Errorf("CheckViewport(80x24) = %v, expected nil", err)
	}
	if err := wc.CheckViewport(need); err != nil {
		t.Errorf("CheckViewport(%dx%d) = %v, expected nil", need.Width, need.Height, err)
	}

	small := []world.Viewport{
		{Width: need.Width - 1, Height: need.Height},
		{Width: need.Width, Height: need.Height - 1},
	}
	for _, vp := range small {
		if err := wc.CheckViewport(vp); !errors.Is(err, ErrViewportTooSmall) {
			t.Errorf("CheckViewport(%dx%d) = %v, expected ErrViewportTooSmall", vp.Width, vp.Height, err)
		}
	}
}

func TestMinViewportFitsJumpArc(t *testing.T) {
	wc := DefaultRunnerConfig().World
	vp := wc.MinViewport()

	// Head row at the apex must stay below the score line on row 0.
	apex := vp.Height - world.TopLineOffset - 1 - wc.MaxHeight
	if apex < 1 {
		t.Errorf("apex row = %d, expected >= 1", apex)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s := world.DefaultSettings()
	s.MaxHeight = 7
	s.Grain = world.Range{Min: 4, Max: 9}

	data, err := EncodeSettings(s)
	if err != nil {
		t.Fatalf("EncodeSettings() error = %v", err)
	}
	got, err := DecodeSettings(data)
	if err != nil {
		t.Fatalf("DecodeSettings() error = %v", err)
	}
	if got != s {
		t.Errorf("DecodeSettings() = %+v, expected %+v", got, s)
	}

	if _, err := DecodeSettings([]byte("max_height: 0\n")); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("DecodeSettings(invalid) = %v, expected ErrInvalidConfig", err)
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) = %v, expected nil", s, err)
		}
	}
	if _, err := ParsePreset("brutal"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ParsePreset(brutal) = %v, expected ErrInvalidConfig", err)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultRunnerConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset = %+v", cfg.Difficulty)
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	before := cfg
	ApplyPreset(&cfg, "")
	if cfg != before {
		t.Error("empty preset should leave the config untouched")
	}
}

// isolate points HOME and the working directory at a fresh temp dir so the
// search path only sees files the test creates.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}
