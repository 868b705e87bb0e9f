package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cfrs-studio/internal/config"
	"github.com/vovakirdan/cfrs-studio/internal/demos"
	"github.com/vovakirdan/cfrs-studio/internal/export"
	"github.com/vovakirdan/cfrs-studio/internal/lang"
	"github.com/vovakirdan/cfrs-studio/internal/storage"
)

var (
	flagWidth      int
	flagHeight     int
	flagBackground string
	flagInterval   int
	flagScale      int
	flagPreset     string
	flagDemo       string
)

var renderCmd = &cobra.Command{
	Use:   "render <output> [program]",
	Short: "Render a program to an image file",
	Long: `Run a program against a fresh canvas and write the result.

The output format follows the file extension: .png and .jpg/.jpeg
write a still image of the finished canvas; .gif writes an animation
with one frame per interval of accumulated pause (S) time, 20ms per
pause.

Examples:
  cfrs render out.png "[[[[[[FFFFFFFFRR]]]]]]"
  cfrs render out.png --demo ring
  cfrs render anim.gif --interval 40 --demo spiral
  cfrs render big.png --scale 4 "CF[FR]"
  cfrs render out.png --preset ./poster.yaml "FFRRFF"`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runRender,
}

func init() {
	renderCmd.Flags().IntVar(&flagWidth, "width", 256, "Canvas width in pixels")
	renderCmd.Flags().IntVar(&flagHeight, "height", 256, "Canvas height in pixels")
	renderCmd.Flags().StringVarP(&flagBackground, "background", "b", "black", "Background color name")
	renderCmd.Flags().IntVar(&flagInterval, "interval", 100, "Animation frame interval in milliseconds")
	renderCmd.Flags().IntVar(&flagScale, "scale", 1, "Integer upscale factor for still images")
	renderCmd.Flags().StringVar(&flagPreset, "preset", "", "Path to render preset YAML")
	renderCmd.Flags().StringVar(&flagDemo, "demo", "", "Render a built-in demo instead of a program argument")
}

// renderSettings merges the preset file with explicitly set flags.
func renderSettings(cmd *cobra.Command) (config.Render, error) {
	cfg, err := config.Load(flagPreset)
	if err != nil {
		return cfg, err
	}

	// Flags given on the command line win over the preset.
	if cmd.Flags().Changed("width") {
		cfg.Canvas.Width = flagWidth
	}
	if cmd.Flags().Changed("height") {
		cfg.Canvas.Height = flagHeight
	}
	if cmd.Flags().Changed("interval") {
		cfg.IntervalMS = flagInterval
	}
	if cmd.Flags().Changed("scale") {
		cfg.Scale = flagScale
	}
	if cmd.Flags().Changed("background") {
		bg, err := lang.ParseColor(flagBackground)
		if err != nil {
			return cfg, err
		}
		cfg.Background = bg
	}

	return cfg, cfg.Validate()
}

// renderProgram resolves the program source from --demo or the
// positional argument.
func renderProgram(args []string) (string, error) {
	if flagDemo != "" {
		d, err := demos.Get(flagDemo)
		if err != nil {
			return "", fmt.Errorf("unknown demo %q, run 'cfrs demos' to see available demos", flagDemo)
		}
		return d.Source, nil
	}
	if len(args) < 2 {
		return "", errors.New("provide a program argument or --demo")
	}
	return args[1], nil
}

func runRender(cmd *cobra.Command, args []string) {
	output := args[0]

	program, err := renderProgram(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := renderSettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	buf := lang.NewBuffer(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Background)
	exec := lang.NewExecutor(program, buf)

	start := time.Now()
	frames := 0

	if export.Animated(output) {
		rec := export.NewRecorder(cfg.Interval())
		if err := runAnimated(exec, rec); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if cfg.Scale > 1 {
			logger.Warn("scale applies to still images only; GIF frames keep canvas resolution")
		}
		if err := rec.SaveGIF(output); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		frames = rec.Len()
	} else {
		// A malformed program aborts before anything is written.
		if err := exec.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := export.Save(buf, output, cfg.Scale); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	elapsed := time.Since(start)
	logger.Info("render complete",
		"output", output,
		"canvas", fmt.Sprintf("%dx%d", cfg.Canvas.Width, cfg.Canvas.Height),
		"steps", exec.Steps(),
		"frames", frames,
		"elapsed", elapsed,
	)

	recordRender(storage.RenderEntry{
		Program:    program,
		Output:     output,
		Width:      cfg.Canvas.Width,
		Height:     cfg.Canvas.Height,
		Steps:      int64(exec.Steps()),
		Frames:     frames,
		DurationMS: elapsed.Milliseconds(),
	})
}

// runAnimated drives the executor to completion, feeding every pause
// signal to the recorder.
func runAnimated(exec *lang.Executor, rec *export.Recorder) error {
	for {
		pause, err := exec.Step()
		if errors.Is(err, lang.ErrEndOfProgram) {
			return nil
		}
		if err != nil {
			return err
		}
		if pause {
			rec.Pause(exec.Buffer())
		}
	}
}

// recordRender saves a history entry. History is best-effort: a broken
// database logs a warning and the render still succeeds.
func recordRender(entry storage.RenderEntry) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		return
	}
	defer store.Close()

	if _, err := store.SaveRender(entry); err != nil {
		logger.Warn("could not record render", "error", err)
	}
}
