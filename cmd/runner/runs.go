package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/trex-runner/internal/platform/tui"
	"github.com/vovakirdan/trex-runner/internal/storage"
)

var (
	flagRunsList  bool
	flagRunsClear bool
	flagRunsLimit int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse the run journal",
	Long: `Browse journaled runs. Select a run and press Enter to replay it,
or press D to delete it.

Examples:
  runner runs
  runner runs --list
  runner runs --clear`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagRunsList, "list", false, "Print the journal instead of opening the browser")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete every journaled run")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs to print with --list")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening run journal: %v", err)
	}

	switch {
	case flagRunsClear:
		err := store.ClearRuns()
		store.Close()
		if err != nil {
			fail("%v", err)
		}
		fmt.Println("Run journal cleared.")
		return

	case flagRunsList:
		err := printRuns(store, flagRunsLimit)
		store.Close()
		if err != nil {
			fail("%v", err)
		}
		return
	}

	width, height := terminalSize()
	run, ok, err := tui.RunBrowser(store, width, height)
	store.Close()
	if err != nil {
		fail("%v", err)
	}
	if !ok {
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	logger, logFile, err := newLogger()
	if err != nil {
		fail("%v", err)
	}
	defer logFile.Close()

	if err := playback(run, cfg, logger); err != nil {
		fail("%v", err)
	}
}

// printRuns writes the most recent runs as a plain table.
func printRuns(store *storage.Store, limit int) error {
	runs, err := store.RecentRuns(limit)
	if err != nil {
		return err
	}

	total, err := store.CountRuns()
	if err != nil {
		return err
	}

	fmt.Printf("Run Journal (%d runs)\n", total)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' and finish a run to journal it.")
		return nil
	}

	// Print header
	fmt.Printf("  %-6s  %-16s  %-8s  %-6s  %-8s  %s\n", "ID", "Date", "Ticks", "Jumps", "Size", "Seed")
	fmt.Printf("  %-6s  %-16s  %-8s  %-6s  %-8s  %s\n", "--", "----", "-----", "-----", "----", "----")

	for _, r := range runs {
		size := fmt.Sprintf("%dx%d", r.Recording.Viewport.Width, r.Recording.Viewport.Height)
		fmt.Printf("  %-6d  %-16s  %-8d  %-6d  %-8s  %d\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.Recording.Ticks, len(r.Recording.Jumps), size, r.Recording.Seed)
	}
	return nil
}
