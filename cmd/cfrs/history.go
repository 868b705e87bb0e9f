package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cfrs-studio/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent renders",
	Long: `Display recent render runs recorded in the history database.

Examples:
  cfrs history
  cfrs history --limit 25
  cfrs history --clear`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of entries to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all history entries")
}

func runHistory(cmd *cobra.Command, args []string) {
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

	entries, err := store.RecentRenders(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No renders recorded yet.")
		fmt.Println()
		fmt.Println("Run 'cfrs render out.png --demo ring' to record the first one!")
		return
	}

	fmt.Println("Recent renders:")
	fmt.Println()
	fmt.Printf("  %-16s  %-9s  %7s  %6s  %-19s  %s\n", "Output", "Canvas", "Steps", "Frames", "Date", "Program")
	fmt.Printf("  %-16s  %-9s  %7s  %6s  %-19s  %s\n", "------", "------", "-----", "------", "----", "-------")

	for _, e := range entries {
		program := e.Program
		if len(program) > 32 {
			program = program[:29] + "..."
		}
		canvas := fmt.Sprintf("%dx%d", e.Width, e.Height)
		dateStr := e.CreatedAt.Format("2006-01-02 15:04:05")
		fmt.Printf("  %-16s  %-9s  %7d  %6d  %-19s  %s\n",
			e.Output, canvas, e.Steps, e.Frames, dateStr, program)
	}
}
