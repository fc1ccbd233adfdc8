// runner is an endless side-scrolling runner for the terminal.
//
// Usage:
//
//	runner                   - Play (same as "runner play")
//	runner play              - Play a run
//	runner runs              - Browse the run journal and pick a run to replay
//	runner replay <id>       - Replay a journaled run
//	runner config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Override the base tick rate from the config
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set journal path (default: ~/.runner/runs.db)
//	--config <path>     - Use a custom config YAML
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the runner to register it
	_ "github.com/vovakirdan/trex-runner/internal/games/runner"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagBackend    string
	flagSound      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "T-Rex Runner - jump the cacti in your terminal",
	Long: `T-Rex Runner is an endless side-scroller played in the terminal.
Jump over the cactus clusters for as long as you can.

Available commands:
  play     - Play a run (default)
  runs     - Browse journaled runs and replay them
  replay   - Replay a journaled run by ID
  config   - Print the effective configuration

Examples:
  runner
  runner play --difficulty hard
  runner play --backend tcell --sound
  runner runs
  runner replay 12 --headless`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Base tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/runs.db", "Path to run journal database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.runner/runner.log", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "tui", "Terminal backend: tui (Bubble Tea) or tcell")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound cues")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}
