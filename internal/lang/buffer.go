// Package lang implements the CFRS[] command language: a fixed-size
// pixel canvas, a single painter cursor, and the step-by-step program
// executor. It contains no external dependencies so the interpreter
// stays pure and testable; rendering and persistence live elsewhere.
package lang

import "errors"

// ErrOutOfBounds is returned by Buffer.Get and Buffer.Set for
// coordinates outside the canvas.
var ErrOutOfBounds = errors.New("lang: coordinate out of bounds")

// Buffer is the pixel canvas. Cells are stored in row-major order:
// index = y*W + x. The cell slice always has length W*H and is never
// resized after creation.
type Buffer struct {
	W     int
	H     int
	Cells []Color
}

// NewBuffer creates a canvas with every cell set to fill.
// Width and height must be positive; callers validate dimensions
// before construction.
func NewBuffer(w, h int, fill Color) *Buffer {
	b := &Buffer{
		W:     w,
		H:     h,
		Cells: make([]Color, w*h),
	}
	b.Fill(fill)
	return b
}

func (b *Buffer) index(x, y int) int {
	return y*b.W + x
}

// InBounds reports whether (x, y) is on the canvas.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Get returns the color at (x, y).
func (b *Buffer) Get(x, y int) (Color, error) {
	if !b.InBounds(x, y) {
		return White, ErrOutOfBounds
	}
	return b.Cells[b.index(x, y)], nil
}

// Set writes a color at (x, y).
func (b *Buffer) Set(x, y int, c Color) error {
	if !b.InBounds(x, y) {
		return ErrOutOfBounds
	}
	b.Cells[b.index(x, y)] = c
	return nil
}

// Fill sets every cell to the given color.
func (b *Buffer) Fill(c Color) {
	for i := range b.Cells {
		b.Cells[i] = c
	}
}

// Clone returns a deep copy of the buffer. Animation snapshots clone
// the canvas so later steps do not mutate captured frames.
func (b *Buffer) Clone() *Buffer {
	cells := make([]Color, len(b.Cells))
	copy(cells, b.Cells)
	return &Buffer{W: b.W, H: b.H, Cells: cells}
}

// Equal reports whether two buffers have the same dimensions and contents.
func (b *Buffer) Equal(other *Buffer) bool {
	if b.W != other.W || b.H != other.H {
		return false
	}
	for i, c := range b.Cells {
		if c != other.Cells[i] {
			return false
		}
	}
	return true
}

// Count returns the number of cells holding the given color.
func (b *Buffer) Count(c Color) int {
	n := 0
	for _, cell := range b.Cells {
		if cell == c {
			n++
		}
	}
	return n
}
