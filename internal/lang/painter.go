package lang

// Painter is the movable drawing cursor. It holds a heading, a current
// color, and a position that always stays on the canvas: movement wraps
// around the edges, so no bounds check is needed at draw time.
type Painter struct {
	Direction Direction
	Color     Color
	X         int
	Y         int
}

// NewPainter creates a painter centered on the given canvas, facing Up
// and drawing White. The center cell is ((w-1)/2, (h-1)/2), which for
// even dimensions picks the upper-left of the four middle cells.
func NewPainter(buf *Buffer) Painter {
	return Painter{
		Direction: Up,
		Color:     White,
		X:         (buf.W - 1) / 2,
		Y:         (buf.H - 1) / 2,
	}
}

// ChangeColor advances the current color one step along the color cycle.
func (p *Painter) ChangeColor() {
	p.Color = p.Color.Next()
}

// Rotate turns the painter 45 degrees clockwise.
func (p *Painter) Rotate() {
	p.Direction = p.Direction.Next()
}

// MoveForwardAndDraw moves one cell in the current heading and writes
// the current color at the new position. The canvas is a torus: walking
// off one edge reenters from the opposite edge.
func (p *Painter) MoveForwardAndDraw(buf *Buffer) {
	dx, dy := p.Direction.Delta()
	p.X = (p.X + dx + buf.W) % buf.W
	p.Y = (p.Y + dy + buf.H) % buf.H
	buf.Set(p.X, p.Y, p.Color)
}
