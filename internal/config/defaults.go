package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/trex-runner/internal/world"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfigFrom(world.DefaultSettings()),
		Timing: TimingConfig{
			TickRate: 20,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRunnerYAML
}

// Marshal renders cfg as YAML.
func Marshal(cfg RunnerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// EncodeSettings renders world settings as YAML for the run journal.
func EncodeSettings(s world.Settings) ([]byte, error) {
	data, err := yaml.Marshal(WorldConfigFrom(s))
	if err != nil {
		return nil, fmt.Errorf("config: encode settings: %w", err)
	}
	return data, nil
}

// DecodeSettings parses and validates world settings written by EncodeSettings.
func DecodeSettings(data []byte) (world.Settings, error) {
	var wc WorldConfig
	if err := yaml.Unmarshal(data, &wc); err != nil {
		return world.Settings{}, fmt.Errorf("config: decode settings: %w", err)
	}
	if err := wc.Validate(); err != nil {
		return world.Settings{}, err
	}
	return wc.Settings(), nil
}
