package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/globegif/internal/platform/tui"
	"github.com/vovakirdan/globegif/internal/storage"
)

var (
	flagHistoryPlain bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse past renders",
	Long: `Show previously rendered animations from the history database.

Examples:
  globegif history
  globegif history --plain
  globegif history --clear`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print a plain table instead of the interactive browser")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded renders")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearHistory(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared.")
		return
	}

	if flagHistoryPlain {
		printHistory(store)
		return
	}

	if err := tui.RunHistory(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing history: %v\n", err)
		os.Exit(1)
	}
}

// printHistory writes the render history as a plain text table.
func printHistory(store *storage.Store) {
	entries, err := store.RecentRenders(20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No renders recorded yet.")
		fmt.Println()
		fmt.Println("Run 'globegif render' to create the first one.")
		return
	}

	// Print header
	fmt.Printf("  %-17s  %-24s  %-10s  %-7s  %s\n", "When", "Output", "Size", "Frames", "Took")
	fmt.Printf("  %-17s  %-24s  %-10s  %-7s  %s\n", "----", "------", "----", "------", "----")

	// Print entries
	for _, e := range entries {
		fmt.Printf("  %-17s  %-24s  %-10s  %-7d  %s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			e.Output,
			fmt.Sprintf("%dx%d", e.Width, e.Height),
			e.Frames,
			(time.Duration(e.DurationMS) * time.Millisecond).String(),
		)
	}

	stats, err := store.GetStats()
	if err == nil && stats.Renders > 0 {
		fmt.Println()
		fmt.Printf("Total: %d renders, %d frames\n", stats.Renders, stats.TotalFrames)
	}
}
