package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/trex-runner/internal/config"
	"github.com/vovakirdan/trex-runner/internal/platform"
	"github.com/vovakirdan/trex-runner/internal/platform/audio"
	"github.com/vovakirdan/trex-runner/internal/platform/rawterm"
	"github.com/vovakirdan/trex-runner/internal/platform/sound"
	"github.com/vovakirdan/trex-runner/internal/platform/tui"
	"github.com/vovakirdan/trex-runner/internal/storage"
)

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// loadConfig reads the config file and applies the CLI overrides.
func loadConfig() (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	return cfg, cfg.Validate()
}

// newLogger opens the log file. The terminal belongs to the game, so
// nothing is logged to stdout or stderr while playing.
func newLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	path := expandHome(flagLogFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
		Level:           level,
	})
	return logger, f, nil
}

// terminalSize returns the current terminal size, or 80x24 if unknown.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// openStore opens the journal. The game still works without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		logger.Warn("run journal unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// openSound returns the speaker when --sound is set and audio is available.
func openSound(logger *log.Logger) (sound.Player, func()) {
	if !flagSound {
		return sound.Silent{}, func() {}
	}
	sp, err := audio.NewSpeaker()
	if err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
		return sound.Silent{}, func() {}
	}
	return sp, sp.Close
}

// runFrontend plays the session on the selected backend.
func runFrontend(opts platform.Options) error {
	switch flagBackend {
	case "tui", "":
		return tui.Run(opts)
	case "tcell":
		return rawterm.Run(opts)
	default:
		return fmt.Errorf("unknown backend %q (want tui or tcell)", flagBackend)
	}
}
