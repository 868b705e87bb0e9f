// cfrs renders CFRS[] programs: tiny command strings that drive a
// painter across a pixel canvas.
//
// Usage:
//
//	cfrs render <output> <program>   - Render a program to PNG/JPEG/GIF
//	cfrs watch [program|demo]        - Watch a program draw in the terminal
//	cfrs demos [id]                  - List built-in demo programs
//	cfrs history                     - Show recent renders
//	cfrs serve                       - Start the SSH playground server
//
// Global flags:
//
//	--db <path>  - Set history database path (default: ~/.cfrs/history.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Global flags
var flagDBPath string

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "cfrs",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cfrs",
	Short: "cfrs - Paint pixel art with tiny looping programs",
	Long: `cfrs interprets CFRS[] programs: command strings built from
C (cycle color), F (move forward and draw), R (rotate 45 degrees),
S (pause, sampling an animation frame) and [..] loops that run their
body exactly twice. The painter walks a toroidal pixel canvas; the
result exports as a still image or an animated GIF.

Available commands:
  render   - Run a program and write PNG/JPEG/GIF output
  watch    - Watch a program draw live in the terminal
  demos    - Show built-in demo programs
  history  - View recent renders
  serve    - Start SSH playground server

Examples:
  cfrs render out.png "[[[[[[FFFFFFFFRR]]]]]]"
  cfrs render anim.gif --demo spiral
  cfrs watch spiral
  cfrs serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cfrs/history.db", "Path to render history database")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(demosCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}
