package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/trex-runner/internal/config"
	"github.com/vovakirdan/trex-runner/internal/core"
	"github.com/vovakirdan/trex-runner/internal/platform"
	"github.com/vovakirdan/trex-runner/internal/registry"
	"github.com/vovakirdan/trex-runner/internal/storage"
	"github.com/vovakirdan/trex-runner/internal/world"
)

var flagHeadless bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Replay a journaled run",
	Long: `Play back a run from the journal exactly as it happened.

With --headless the run is simulated without drawing and the outcome is
compared with the journal entry.

Examples:
  runner replay 12
  runner replay 12 --headless`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Simulate without a terminal and verify the outcome")
}

func runReplay(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fail("invalid run ID %q", args[0])
	}

	logger, logFile, err := newLogger()
	if err != nil {
		fail("%v", err)
	}
	defer logFile.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening run journal: %v", err)
	}
	run, err := store.Run(id)
	store.Close()
	if errors.Is(err, storage.ErrRunNotFound) {
		fail("no run with ID %d. Run 'runner runs' to list the journal.", id)
	}
	if err != nil {
		fail("%v", err)
	}

	if flagHeadless {
		if err := verifyRun(run); err != nil {
			fail("%v", err)
		}
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	if err := playback(run, cfg, logger); err != nil {
		fail("%v", err)
	}
}

// verifyRun replays run without a terminal and checks it ends as journaled.
func verifyRun(run storage.Run) error {
	out := world.Replay(run.Recording)
	fmt.Printf("Run %d: seed %d, %dx%d, %d jumps\n",
		run.ID, run.Recording.Seed, run.Recording.Viewport.Width, run.Recording.Viewport.Height, len(run.Recording.Jumps))
	fmt.Printf("  journaled: %d ticks, crashed=%v\n", run.Recording.Ticks, run.Crashed)
	fmt.Printf("  replayed:  %d ticks, crashed=%v\n", out.Ticks, out.Crashed)

	if out.Ticks != run.Recording.Ticks || out.Crashed != run.Crashed {
		return fmt.Errorf("replay diverged from the journal")
	}
	fmt.Println("  verified")
	return nil
}

// playback draws a journaled run on the selected backend.
func playback(run storage.Run, cfg config.RunnerConfig, logger *log.Logger) error {
	rec := run.Recording
	width, height := terminalSize()
	if width < rec.Viewport.Width || height < rec.Viewport.Height {
		return fmt.Errorf("%w: run %d needs %dx%d, have %dx%d",
			config.ErrViewportTooSmall, run.ID, rec.Viewport.Width, rec.Viewport.Height, width, height)
	}

	gameID := run.GameID
	if !registry.Exists(gameID) {
		return fmt.Errorf("run %d was recorded by unknown game %q", run.ID, gameID)
	}
	game, err := registry.Create(gameID, registry.Options{Settings: rec.Settings, Replay: &rec})
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	player, closeSound := openSound(logger)
	defer closeSound()

	logger.Info("replaying run", "id", run.ID, "seed", rec.Seed, "ticks", rec.Ticks)
	return runFrontend(platform.Options{
		Game: game,
		Config: core.RuntimeConfig{
			ScreenW:  rec.Viewport.Width,
			ScreenH:  rec.Viewport.Height,
			TickRate: cfg.Timing.TickRate,
			Seed:     rec.Seed,
		},
		World:  config.WorldConfigFrom(rec.Settings),
		Sound:  player,
		Logger: logger,
	})
}
