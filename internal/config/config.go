// Package config provides YAML-based configuration loading and difficulty
// management for the runner.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/trex-runner/internal/world"
)

var (
	// ErrInvalidConfig is returned when a configuration value is out of range.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrViewportTooSmall is returned when the terminal cannot fit the world.
	ErrViewportTooSmall = errors.New("config: terminal too small")
)

// RunnerConfig contains all configuration for the runner.
type RunnerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the simulation tunables.
type WorldConfig struct {
	MaxHeight   int         `yaml:"max_height"`
	RunnerX     int         `yaml:"runner_x"`
	TopStone    RangeConfig `yaml:"top_stone"`
	BottomStone RangeConfig `yaml:"bottom_stone"`
	Grain       RangeConfig `yaml:"grain"`
	Obstacle    RangeConfig `yaml:"obstacle"`
}

// RangeConfig is a half-open [min, max) tick interval.
type RangeConfig struct {
	Min uint `yaml:"min"`
	Max uint `yaml:"max"`
}

// TimingConfig defines the frontend cadence.
type TimingConfig struct {
	TickRate int `yaml:"tick_rate"` // Base ticks per second
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to the tick rate multiplier at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. An empty string keeps the
// configured difficulty and returns "".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

func (r RangeConfig) toRange() world.Range {
	return world.Range{Min: r.Min, Max: r.Max}
}

func fromRange(r world.Range) RangeConfig {
	return RangeConfig{Min: r.Min, Max: r.Max}
}

// Settings converts the world section to simulation settings.
func (w WorldConfig) Settings() world.Settings {
	return world.Settings{
		MaxHeight:   w.MaxHeight,
		RunnerX:     w.RunnerX,
		TopStone:    w.TopStone.toRange(),
		BottomStone: w.BottomStone.toRange(),
		Grain:       w.Grain.toRange(),
		Obstacle:    w.Obstacle.toRange(),
	}
}

// WorldConfigFrom converts simulation settings back to their YAML form.
func WorldConfigFrom(s world.Settings) WorldConfig {
	return WorldConfig{
		MaxHeight:   s.MaxHeight,
		RunnerX:     s.RunnerX,
		TopStone:    fromRange(s.TopStone),
		BottomStone: fromRange(s.BottomStone),
		Grain:       fromRange(s.Grain),
		Obstacle:    fromRange(s.Obstacle),
	}
}

// Validate checks every value the simulation relies on.
func (c RunnerConfig) Validate() error {
	if err := c.World.Validate(); err != nil {
		return err
	}
	if c.Timing.TickRate <= 0 {
		return fmt.Errorf("%w: timing.tick_rate must be positive, got %d", ErrInvalidConfig, c.Timing.TickRate)
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		return fmt.Errorf("%w: difficulty.initial_level must be within [0, 1], got %g", ErrInvalidConfig, c.Difficulty.InitialLevel)
	}
	return nil
}

// Validate checks the world section.
func (w WorldConfig) Validate() error {
	if w.MaxHeight < 1 {
		return fmt.Errorf("%w: world.max_height must be at least 1, got %d", ErrInvalidConfig, w.MaxHeight)
	}
	if w.RunnerX < 0 {
		return fmt.Errorf("%w: world.runner_x must not be negative, got %d", ErrInvalidConfig, w.RunnerX)
	}

	ranges := []struct {
		name string
		r    RangeConfig
	}{
		{"top_stone", w.TopStone},
		{"bottom_stone", w.BottomStone},
		{"grain", w.Grain},
		{"obstacle", w.Obstacle},
	}
	for _, rc := range ranges {
		if !rc.r.toRange().Valid() {
			return fmt.Errorf("%w: world.%s must satisfy 0 < min < max, got [%d,%d)",
				ErrInvalidConfig, rc.name, rc.r.Min, rc.r.Max)
		}
	}

	// Stones are three cells wide, so their countdown must reach 2 before 0.
	for _, rc := range ranges[:2] {
		if rc.r.Min < stoneWidth {
			return fmt.Errorf("%w: world.%s min must be at least %d, got %d",
				ErrInvalidConfig, rc.name, stoneWidth, rc.r.Min)
		}
	}
	return nil
}

// stoneWidth is the number of cells a stone marker spans.
const stoneWidth = 3

// MinViewport returns the smallest terminal that fits the runner's full arc,
// the tallest obstacle, and the score line.
func (w WorldConfig) MinViewport() world.Viewport {
	return world.Viewport{
		Width:  w.RunnerX + 2*len("Score: 00000"),
		Height: w.MaxHeight + world.TopLineOffset + 3,
	}
}

// CheckViewport reports ErrViewportTooSmall if vp cannot fit the world.
func (w WorldConfig) CheckViewport(vp world.Viewport) error {
	need := w.MinViewport()
	if vp.Width < need.Width || vp.Height < need.Height {
		return fmt.Errorf("%w: need at least %dx%d, have %dx%d",
			ErrViewportTooSmall, need.Width, need.Height, vp.Width, vp.Height)
	}
	return nil
}
