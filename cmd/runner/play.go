package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trex-runner/internal/config"
	"github.com/vovakirdan/trex-runner/internal/core"
	"github.com/vovakirdan/trex-runner/internal/games/runner"
	"github.com/vovakirdan/trex-runner/internal/platform"
	"github.com/vovakirdan/trex-runner/internal/registry"
	"github.com/vovakirdan/trex-runner/internal/world"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start the runner. The world is laid out for the terminal size at start.

Controls:
  Space/Up/W - Start, then jump
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit
  Ctrl+S     - Save a screenshot (tui backend)

Difficulty options:
  easy   - Start at the base tick rate, speeds up as the score grows
  normal - Start 30% of the way to max speed
  hard   - Start 70% of the way to max speed
  fixed  - No progression, stays at the base tick rate

Examples:
  runner play
  runner play --difficulty hard
  runner play --seed 42
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, logFile, err := newLogger()
	if err != nil {
		fail("%v", err)
	}
	defer logFile.Close()

	width, height := terminalSize()
	if err := cfg.World.CheckViewport(world.Viewport{Width: width, Height: height}); err != nil {
		if errors.Is(err, config.ErrViewportTooSmall) {
			logger.Error("terminal too small", "width", width, "height", height)
		}
		fail("%v", err)
	}

	game, err := registry.Create(runner.ID, registry.Options{Settings: cfg.World.Settings()})
	if err != nil {
		fail("creating game: %v", err)
	}

	difficulty := config.NewDifficultyManager(cfg.Difficulty)
	logger.Info("starting runner",
		"size", fmt.Sprintf("%dx%d", width, height),
		"tick_rate", cfg.Timing.TickRate,
		"progression", difficulty.IsEnabled())

	store := openStore(logger)
	player, closeSound := openSound(logger)

	runErr := runFrontend(platform.Options{
		Game:  game,
		Store: store,
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Timing.TickRate,
			Seed:     flagSeed,
		},
		World:      cfg.World,
		Difficulty: difficulty,
		Sound:      player,
		Logger:     logger,
	})

	// Release resources before potential exit
	closeSound()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game exited with error", "err", runErr)
		fail("running game: %v", runErr)
	}
	logger.Info("runner closed")
}
