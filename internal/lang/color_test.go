package lang

import "testing"

func TestColorCycleOrder(t *testing.T) {
	want := []Color{White, Black, Blue, Green, Cyan, Red, Magenta, Yellow}

	c := White
	for i, expected := range want {
		if c != expected {
			t.Errorf("step %d: got %v, expected %v", i, c, expected)
		}
		c = c.Next()
	}
}

func TestColorCycleClosed(t *testing.T) {
	// Eight advances from any color return to the same color.
	for start := White; start <= Yellow; start++ {
		c := start
		for i := 0; i < 8; i++ {
			c = c.Next()
		}
		if c != start {
			t.Errorf("cycle from %v not closed: ended at %v", start, c)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{"lowercase", "magenta", Magenta, false},
		{"uppercase", "CYAN", Cyan, false},
		{"mixed case", "Yellow", Yellow, false},
		{"white", "white", White, false},
		{"unknown name", "orange", White, true},
		{"empty", "", White, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := ParseColor(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseColor(%q) expected error, got %v", tc.input, c)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tc.input, err)
			}
			if c != tc.want {
				t.Errorf("ParseColor(%q) = %v, expected %v", tc.input, c, tc.want)
			}
		})
	}
}

func TestColorTextRoundTrip(t *testing.T) {
	for c := White; c <= Yellow; c++ {
		text, err := c.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) failed: %v", c, err)
		}

		var back Color
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) failed: %v", text, err)
		}
		if back != c {
			t.Errorf("round trip for %v gave %v", c, back)
		}
	}
}
