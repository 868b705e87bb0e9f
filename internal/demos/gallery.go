package demos

// The gallery leans on the two-pass loop rule: n nested brackets run
// their body 2^n times, so a short program can cover a lot of canvas.
// S commands pace the animation sampling.

func init() {
	Register(Demo{
		ID:     "ring",
		Title:  "Ring Walk",
		Source: "[[[[[[FFFFFFFFRS]]]]]]",
	})
	Register(Demo{
		ID:     "spiral",
		Title:  "Color Spiral",
		Source: "[[[[[[[CFFFFFFFFFFFFRS]]]]]]]",
	})
	Register(Demo{
		ID:     "burst",
		Title:  "Eight-Way Burst",
		Source: "[[[CFFFFFFFFFFFFFFFFSRRRRFFFFFFFFFFFFFFFFS]]]",
	})
	Register(Demo{
		ID:     "weave",
		Title:  "Diagonal Weave",
		Source: "R[[[[[[[[FFFFCS]]]]]]]]",
	})
	Register(Demo{
		ID:     "drift",
		Title:  "Torus Drift",
		Source: "RR[[[[[[[[[FFFSC]]]]]]]]]",
	})
}
