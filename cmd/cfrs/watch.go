package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cfrs-studio/internal/config"
	"github.com/vovakirdan/cfrs-studio/internal/demos"
	"github.com/vovakirdan/cfrs-studio/internal/lang"
	"github.com/vovakirdan/cfrs-studio/internal/platform/tui"
)

var (
	flagWatchWidth      int
	flagWatchHeight     int
	flagWatchBackground string
	flagWatchPreset     string
)

var watchCmd = &cobra.Command{
	Use:   "watch [program|demo-id]",
	Short: "Watch a program draw in the terminal",
	Long: `Run a program with live terminal playback.

The argument is either a program string or the id of a built-in demo.
Without an argument an interactive playground opens where programs can
be typed and run directly.

Unless set by flags or a preset, the canvas is sized to the terminal.

Controls:
  Space/P    - Pause/resume
  R          - Restart
  +/-        - Speed up / slow down
  Q/Ctrl+C   - Quit

Examples:
  cfrs watch spiral
  cfrs watch "[[[[[[FFFFFFFFRS]]]]]]"
  cfrs watch --width 48 --height 24 drift
  cfrs watch`,
	Args: cobra.MaximumNArgs(1),
	Run:  runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&flagWatchWidth, "width", 0, "Canvas width in cells (default: fit terminal)")
	watchCmd.Flags().IntVar(&flagWatchHeight, "height", 0, "Canvas height in cells (default: fit terminal)")
	watchCmd.Flags().StringVarP(&flagWatchBackground, "background", "b", "", "Background color name")
	watchCmd.Flags().StringVar(&flagWatchPreset, "preset", "", "Path to render preset YAML")
}

func runWatch(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagWatchPreset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Fit the canvas to the terminal unless dimensions were pinned by
	// flag or preset: two columns per cell, a few rows for the footer.
	if !cmd.Flags().Changed("width") && !cmd.Flags().Changed("height") && flagWatchPreset == "" {
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			cfg.Canvas.Width = max(w/2, 8)
			cfg.Canvas.Height = max(h-4, 8)
		}
	}
	if cmd.Flags().Changed("width") {
		cfg.Canvas.Width = flagWatchWidth
	}
	if cmd.Flags().Changed("height") {
		cfg.Canvas.Height = flagWatchHeight
	}
	if cmd.Flags().Changed("background") {
		bg, err := lang.ParseColor(flagWatchBackground)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg.Background = bg
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// No argument: open the interactive playground.
	if len(args) == 0 {
		if err := tui.RunPlayground(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running playground: %v\n", err)
			os.Exit(1)
		}
		return
	}

	title, program := "watch", args[0]
	if d, err := demos.Get(args[0]); err == nil {
		title, program = d.Title, d.Source
	}

	if err := tui.Run(title, program, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running playback: %v\n", err)
		os.Exit(1)
	}
}
