// Package config provides YAML-based render presets: canvas size,
// background color, animation interval, and export scaling.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/cfrs-studio/internal/lang"
)

// Render holds every knob a render run needs. The on-disk preset
// shape lives in the loader, which parses color names into lang.Color.
type Render struct {
	Canvas     Canvas
	Background lang.Color
	IntervalMS int
	Scale      int
}

// Canvas defines the pixel dimensions of the drawing surface.
type Canvas struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Default returns the canonical render settings: a 256x256 black
// canvas, one animation frame per 100ms, no upscaling.
func Default() Render {
	return Render{
		Canvas:     Canvas{Width: 256, Height: 256},
		Background: lang.Black,
		IntervalMS: 100,
		Scale:      1,
	}
}

// Interval returns the animation sampling interval as a duration.
func (r Render) Interval() time.Duration {
	return time.Duration(r.IntervalMS) * time.Millisecond
}

// Validate checks that the settings describe a usable render.
func (r Render) Validate() error {
	if r.Canvas.Width <= 0 || r.Canvas.Height <= 0 {
		return fmt.Errorf("config: canvas must have positive dimensions, got %dx%d",
			r.Canvas.Width, r.Canvas.Height)
	}
	if r.IntervalMS <= 0 {
		return fmt.Errorf("config: interval must be positive, got %dms", r.IntervalMS)
	}
	if r.Scale < 1 {
		return fmt.Errorf("config: scale must be at least 1, got %d", r.Scale)
	}
	return nil
}
