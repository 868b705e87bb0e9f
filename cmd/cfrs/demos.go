package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cfrs-studio/internal/demos"
)

var demosCmd = &cobra.Command{
	Use:   "demos [id]",
	Short: "List built-in demo programs",
	Long: `Show the demo programs that ship with cfrs.

With an id argument, print that demo's program source so it can be
edited or piped elsewhere.

Examples:
  cfrs demos
  cfrs demos spiral
  cfrs render out.gif --demo spiral`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDemos,
}

func runDemos(cmd *cobra.Command, args []string) {
	if len(args) == 1 {
		d, err := demos.Get(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: unknown demo %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'cfrs demos' to see available demos.")
			os.Exit(1)
		}
		fmt.Println(d.Source)
		return
	}

	all := demos.List()
	if len(all) == 0 {
		fmt.Println("No demos available.")
		return
	}

	fmt.Println("Built-in demos:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, d := range all {
		if len(d.ID) > maxIDLen {
			maxIDLen = len(d.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, d := range all {
		fmt.Printf("  %-*s  %s\n", maxIDLen, d.ID, d.Title)
	}

	fmt.Println()
	fmt.Println("Run 'cfrs render out.png --demo <id>' or 'cfrs watch <id>'.")
}
