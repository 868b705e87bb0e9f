package lang

import "errors"

var (
	// ErrEndOfProgram signals that the cursor has moved past the last
	// command. Run treats it as normal completion.
	ErrEndOfProgram = errors.New("lang: end of program")

	// ErrUnmatchedBracket is returned when a close bracket fires with
	// no open bracket on the stack. The program is malformed and the
	// run must abort.
	ErrUnmatchedBracket = errors.New("lang: unmatched closing bracket")
)

// bracketState tracks whether a close bracket has already jumped back
// on the current pass through its loop body.
type bracketState uint8

const (
	// bracketArmed: the next visit pops the loop stack and jumps back.
	bracketArmed bracketState = iota
	// bracketFired: the jump already happened; the next visit re-arms
	// the bracket and falls through, ending the loop.
	bracketFired
)

// Executor interprets a CFRS[] program against one canvas and one
// painter. It owns both for the lifetime of a run; there is exactly one
// writer and no concurrent readers.
//
// A [...] block executes its body exactly twice: the close bracket pops
// its start index and jumps back once, then lets the cursor fall
// through on the second pass. The per-bracket armed/fired flag lives in
// a side table keyed by bracket position; the program string is never
// mutated. A literal | in the source is a close bracket that starts in
// the fired state, so it re-arms and falls through on first visit.
type Executor struct {
	program  []byte
	index    int
	starts   []int
	brackets map[int]bracketState
	painter  Painter
	buffer   *Buffer
	steps    uint64
}

// NewExecutor creates an executor for the given program and canvas.
// The painter starts at the canvas center.
func NewExecutor(program string, buf *Buffer) *Executor {
	return &Executor{
		program:  []byte(program),
		brackets: make(map[int]bracketState),
		painter:  NewPainter(buf),
		buffer:   buf,
	}
}

// stateAt returns the current state of the close bracket at position i.
func (e *Executor) stateAt(i int) bracketState {
	if s, ok := e.brackets[i]; ok {
		return s
	}
	if e.program[i] == '|' {
		return bracketFired
	}
	return bracketArmed
}

// Step executes exactly one command. It returns true when the command
// was S, asking the caller to pause before the next step (animation
// collaborators sample a frame here). Step returns ErrEndOfProgram once
// the cursor passes the last command and ErrUnmatchedBracket on a close
// bracket with no open loop.
func (e *Executor) Step() (pause bool, err error) {
	if e.index >= len(e.program) {
		return false, ErrEndOfProgram
	}

	c := e.program[e.index]
	switch c {
	case 'C':
		e.painter.ChangeColor()
	case 'F':
		e.painter.MoveForwardAndDraw(e.buffer)
	case 'R':
		e.painter.Rotate()
	case 'S':
		pause = true
	case '[':
		e.starts = append(e.starts, e.index+1)
	case ']', '|':
		switch e.stateAt(e.index) {
		case bracketArmed:
			if len(e.starts) == 0 {
				return false, ErrUnmatchedBracket
			}
			start := e.starts[len(e.starts)-1]
			e.starts = e.starts[:len(e.starts)-1]
			e.brackets[e.index] = bracketFired
			e.index = start
			e.steps++
			return pause, nil
		case bracketFired:
			e.brackets[e.index] = bracketArmed
		}
	default:
		// Anything else is a no-op; whitespace and comments pass through.
	}

	e.index++
	e.steps++
	return pause, nil
}

// Run drives Step until the program ends. ErrEndOfProgram is consumed
// as normal completion; any other error aborts the run and is returned.
func (e *Executor) Run() error {
	for {
		if _, err := e.Step(); err != nil {
			if errors.Is(err, ErrEndOfProgram) {
				return nil
			}
			return err
		}
	}
}

// Position returns the painter's current coordinates.
func (e *Executor) Position() (x, y int) {
	return e.painter.X, e.painter.Y
}

// Painter returns a copy of the painter state.
func (e *Executor) Painter() Painter {
	return e.painter
}

// Buffer returns the canvas the executor draws into.
func (e *Executor) Buffer() *Buffer {
	return e.buffer
}

// Index returns the cursor position within the program.
func (e *Executor) Index() int {
	return e.index
}

// Len returns the program length in commands.
func (e *Executor) Len() int {
	return len(e.program)
}

// Steps returns the number of commands executed so far.
func (e *Executor) Steps() uint64 {
	return e.steps
}

// Done reports whether the cursor has passed the last command.
func (e *Executor) Done() bool {
	return e.index >= len(e.program)
}
