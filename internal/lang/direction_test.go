package lang

import "testing"

func TestDirectionCycleOrder(t *testing.T) {
	want := []Direction{Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft}

	d := Up
	for i, expected := range want {
		if d != expected {
			t.Errorf("step %d: got %v, expected %v", i, d, expected)
		}
		d = d.Next()
	}
}

func TestDirectionCycleClosed(t *testing.T) {
	for start := Up; start <= UpLeft; start++ {
		d := start
		for i := 0; i < 8; i++ {
			d = d.Next()
		}
		if d != start {
			t.Errorf("cycle from %v not closed: ended at %v", start, d)
		}
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{Up, 0, -1},
		{UpRight, 1, -1},
		{Right, 1, 0},
		{DownRight, 1, 1},
		{Down, 0, 1},
		{DownLeft, -1, 1},
		{Left, -1, 0},
		{UpLeft, -1, -1},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			dx, dy := tc.dir.Delta()
			if dx != tc.dx || dy != tc.dy {
				t.Errorf("Delta() = (%d, %d), expected (%d, %d)", dx, dy, tc.dx, tc.dy)
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input   string
		want    Direction
		wantErr bool
	}{
		{"up", Up, false},
		{"UPRIGHT", UpRight, false},
		{"DownLeft", DownLeft, false},
		{"north", Up, true},
		{"", Up, true},
	}

	for _, tc := range tests {
		d, err := ParseDirection(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDirection(%q) expected error, got %v", tc.input, d)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDirection(%q) failed: %v", tc.input, err)
			continue
		}
		if d != tc.want {
			t.Errorf("ParseDirection(%q) = %v, expected %v", tc.input, d, tc.want)
		}
	}
}
