package lang

import "testing"

func TestNewPainterStartsCentered(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		x, y int
	}{
		{"odd dimensions", 5, 5, 2, 2},
		{"even dimensions", 4, 4, 1, 1},
		{"original default", 256, 256, 127, 127},
		{"mixed", 10, 7, 4, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPainter(NewBuffer(tc.w, tc.h, Black))
			if p.X != tc.x || p.Y != tc.y {
				t.Errorf("start = (%d, %d), expected (%d, %d)", p.X, p.Y, tc.x, tc.y)
			}
			if p.Direction != Up {
				t.Errorf("start direction = %v, expected Up", p.Direction)
			}
			if p.Color != White {
				t.Errorf("start color = %v, expected White", p.Color)
			}
		})
	}
}

func TestPainterWrapAround(t *testing.T) {
	const w, h = 8, 6

	tests := []struct {
		name         string
		dir          Direction
		x, y         int
		wantX, wantY int
	}{
		{"left edge wraps", Left, 0, 3, w - 1, 3},
		{"right edge wraps", Right, w - 1, 3, 0, 3},
		{"top edge wraps", Up, 4, 0, 4, h - 1},
		{"bottom edge wraps", Down, 4, h - 1, 4, 0},
		{"corner wraps both axes", UpLeft, 0, 0, w - 1, h - 1},
		{"opposite corner", DownRight, w - 1, h - 1, 0, 0},
		{"diagonal wraps one axis", UpRight, 3, 0, 4, h - 1},
		{"interior move", DownLeft, 4, 3, 3, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := NewBuffer(w, h, Black)
			p := Painter{Direction: tc.dir, Color: Red, X: tc.x, Y: tc.y}

			p.MoveForwardAndDraw(buf)

			if p.X != tc.wantX || p.Y != tc.wantY {
				t.Errorf("moved to (%d, %d), expected (%d, %d)", p.X, p.Y, tc.wantX, tc.wantY)
			}

			c, err := buf.Get(tc.wantX, tc.wantY)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if c != Red {
				t.Errorf("cell at destination = %v, expected Red", c)
			}
		})
	}
}

func TestPainterDrawsCurrentColor(t *testing.T) {
	buf := NewBuffer(8, 8, Black)
	p := NewPainter(buf)

	p.ChangeColor() // White -> Black
	p.ChangeColor() // Black -> Blue
	p.MoveForwardAndDraw(buf)

	c, _ := buf.Get(p.X, p.Y)
	if c != Blue {
		t.Errorf("drawn color = %v, expected Blue", c)
	}
}

func TestPainterRotateFullCircle(t *testing.T) {
	buf := NewBuffer(9, 9, Black)
	p := NewPainter(buf)

	// Eight moves with a rotate between each trace a ring and return home.
	startX, startY := p.X, p.Y
	for i := 0; i < 8; i++ {
		p.MoveForwardAndDraw(buf)
		p.Rotate()
	}

	if p.X != startX || p.Y != startY {
		t.Errorf("after full circle at (%d, %d), expected (%d, %d)", p.X, p.Y, startX, startY)
	}
	if p.Direction != Up {
		t.Errorf("after 8 rotations direction = %v, expected Up", p.Direction)
	}
}
