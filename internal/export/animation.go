package export

import (
	"fmt"
	"image"
	"image/gif"
	"io"
	"os"
	"time"

	"github.com/vovakirdan/cfrs-studio/internal/lang"
)

// PauseQuantum is the virtual time attributed to one S command.
const PauseQuantum = 20 * time.Millisecond

// Recorder accumulates virtual time across pause signals and snapshots
// a GIF frame whenever the accumulated time crosses the configured
// interval. The remainder carries over instead of resetting, so frame
// timing stays accurate across many pauses.
type Recorder struct {
	interval time.Duration
	elapsed  time.Duration
	frames   []*image.Paletted
}

// NewRecorder creates a recorder that samples one frame per interval
// of accumulated pause time.
func NewRecorder(interval time.Duration) *Recorder {
	return &Recorder{interval: interval}
}

// Pause advances virtual time by one quantum and snapshots the canvas
// if the interval threshold was crossed. Call it once per pause signal
// from the executor.
func (r *Recorder) Pause(buf *lang.Buffer) {
	r.elapsed += PauseQuantum
	if r.elapsed >= r.interval {
		r.elapsed -= r.interval
		r.frames = append(r.frames, Paletted(buf))
	}
}

// Len returns the number of captured frames.
func (r *Recorder) Len() int {
	return len(r.frames)
}

// SaveGIF writes the captured frames as a looping GIF animation.
func (r *Recorder) SaveGIF(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: cannot create %s: %w", path, err)
	}
	defer f.Close()

	if err := r.EncodeGIF(f); err != nil {
		return err
	}

	return f.Close()
}

// EncodeGIF writes the captured frames to w. The per-frame delay is
// the sampling interval; the animation loops forever.
func (r *Recorder) EncodeGIF(w io.Writer) error {
	if len(r.frames) == 0 {
		return fmt.Errorf("export: no frames captured; the program needs S commands to sample animation frames")
	}

	delay := int(r.interval / (10 * time.Millisecond)) // GIF delays are in 1/100s
	anim := &gif.GIF{
		Image:     r.frames,
		Delay:     make([]int, len(r.frames)),
		LoopCount: 0,
	}
	for i := range anim.Delay {
		anim.Delay[i] = delay
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("export: gif encode: %w", err)
	}
	return nil
}
