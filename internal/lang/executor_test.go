package lang

import (
	"errors"
	"testing"
)

func TestExecutorSingleMove(t *testing.T) {
	// On a 4x4 canvas the painter starts at (1, 1) facing Up with White.
	buf := NewBuffer(4, 4, Black)
	e := NewExecutor("F", buf)

	if err := e.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	x, y := e.Position()
	if x != 1 || y != 0 {
		t.Errorf("position = (%d, %d), expected (1, 0)", x, y)
	}

	c, _ := buf.Get(1, 0)
	if c != White {
		t.Errorf("drawn color = %v, expected White", c)
	}
}

func TestExecutorColorThenMove(t *testing.T) {
	buf := NewBuffer(4, 4, Cyan)
	e := NewExecutor("C F", buf)

	if err := e.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	// C advances White -> Black before the move draws.
	c, _ := buf.Get(1, 0)
	if c != Black {
		t.Errorf("drawn color = %v, expected Black", c)
	}
}

func TestExecutorLoopRunsBodyTwice(t *testing.T) {
	buf := NewBuffer(16, 16, Black)
	e := NewExecutor("[F]", buf)

	if err := e.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	// The loop body executes exactly twice: two cells drawn, not one,
	// not an endless column.
	if n := buf.Count(White); n != 2 {
		t.Errorf("drew %d cells, expected 2", n)
	}
}

func TestExecutorNestedLoops(t *testing.T) {
	buf := NewBuffer(16, 16, Black)
	e := NewExecutor("[[F]]", buf)

	if err := e.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	// Each nesting level doubles the body: 2^2 = 4 moves straight up.
	if n := buf.Count(White); n != 4 {
		t.Errorf("drew %d cells, expected 4", n)
	}

	x, y := e.Position()
	if x != 7 || y != 3 {
		t.Errorf("position = (%d, %d), expected (7, 3)", x, y)
	}
}

func TestExecutorUnmatchedBracket(t *testing.T) {
	buf := NewBuffer(8, 8, Black)
	e := NewExecutor("]", buf)

	err := e.Run()
	if !errors.Is(err, ErrUnmatchedBracket) {
		t.Fatalf("Run() error = %v, expected ErrUnmatchedBracket", err)
	}

	// Nothing was drawn before the failure.
	if n := buf.Count(Black); n != 64 {
		t.Errorf("canvas modified before failure: %d untouched cells", n)
	}
}

func TestExecutorUnmatchedBracketAfterDraw(t *testing.T) {
	buf := NewBuffer(8, 8, Black)
	e := NewExecutor("F]", buf)

	if err := e.Run(); !errors.Is(err, ErrUnmatchedBracket) {
		t.Fatalf("Run() error = %v, expected ErrUnmatchedBracket", err)
	}
}

func TestExecutorPauseSignal(t *testing.T) {
	buf := NewBuffer(8, 8, Black)
	e := NewExecutor("SFS", buf)

	pauses := 0
	for {
		pause, err := e.Step()
		if errors.Is(err, ErrEndOfProgram) {
			break
		}
		if err != nil {
			t.Fatalf("Step() failed: %v", err)
		}
		if pause {
			pauses++
		}
	}

	if pauses != 2 {
		t.Errorf("got %d pause signals, expected 2", pauses)
	}
}

func TestExecutorPauseInsideLoop(t *testing.T) {
	// S follows the same two-pass loop rule as every other command.
	buf := NewBuffer(8, 8, Black)
	e := NewExecutor("[S]", buf)

	pauses := 0
	for {
		pause, err := e.Step()
		if errors.Is(err, ErrEndOfProgram) {
			break
		}
		if err != nil {
			t.Fatalf("Step() failed: %v", err)
		}
		if pause {
			pauses++
		}
	}

	if pauses != 2 {
		t.Errorf("got %d pause signals, expected 2", pauses)
	}
}

func TestExecutorIgnoresUnknownCharacters(t *testing.T) {
	buf := NewBuffer(4, 4, Black)
	e := NewExecutor("x F\nz!F", buf)

	if err := e.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if n := buf.Count(White); n != 2 {
		t.Errorf("drew %d cells, expected 2", n)
	}
}

func TestExecutorLiteralPipe(t *testing.T) {
	// A literal | starts in the fired state: first visit re-arms it and
	// falls through, so a lone | is a usable no-op.
	buf := NewBuffer(8, 8, Black)
	e := NewExecutor("|", buf)

	if err := e.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
}

func TestExecutorStepAfterEnd(t *testing.T) {
	buf := NewBuffer(4, 4, Black)
	e := NewExecutor("F", buf)

	if err := e.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !e.Done() {
		t.Error("Done() = false after Run()")
	}

	if _, err := e.Step(); !errors.Is(err, ErrEndOfProgram) {
		t.Errorf("Step() after end error = %v, expected ErrEndOfProgram", err)
	}
}

func TestExecutorDeterminism(t *testing.T) {
	const program = "[CFRS[FFRR]]CF[FR]S"

	run := func() *Buffer {
		buf := NewBuffer(32, 32, Black)
		e := NewExecutor(program, buf)
		if err := e.Run(); err != nil {
			t.Fatalf("Run() failed: %v", err)
		}
		return buf
	}

	first := run()
	second := run()

	if !first.Equal(second) {
		t.Error("identical programs produced different canvases")
	}
}

func TestExecutorStepCount(t *testing.T) {
	buf := NewBuffer(8, 8, Black)
	e := NewExecutor("[F]", buf)

	if err := e.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	// [ F ] F | : five transitions total for one loop.
	if e.Steps() != 5 {
		t.Errorf("Steps() = %d, expected 5", e.Steps())
	}
}
