package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cfrs-studio/internal/config"
	"github.com/vovakirdan/cfrs-studio/internal/lang"
)

const (
	defaultStepsPerTick = 64
	maxStepsPerTick     = 4096
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// Model is the Bubble Tea model for watching a program draw.
type Model struct {
	title   string
	program string
	cfg     config.Render

	exec   *lang.Executor
	paused bool
	done   bool
	err    error

	stepsPerTick int
	keys         KeyMap
	help         help.Model

	// backToEditor is set when the playground should return to its
	// program editor instead of quitting.
	backToEditor bool
	embedded     bool // running inside the playground, esc goes back
	quitting     bool
}

// NewModel creates a playback model for the given program.
func NewModel(title, program string, cfg config.Render) Model {
	buf := lang.NewBuffer(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Background)
	return Model{
		title:        title,
		program:      program,
		cfg:          cfg,
		exec:         lang.NewExecutor(program, buf),
		stepsPerTick: defaultStepsPerTick,
		keys:         DefaultKeyMap(),
		help:         help.New(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.embedded {
			m.backToEditor = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused

	case key.Matches(msg, m.keys.Restart):
		buf := lang.NewBuffer(m.cfg.Canvas.Width, m.cfg.Canvas.Height, m.cfg.Background)
		m.exec = lang.NewExecutor(m.program, buf)
		m.done = false
		m.err = nil
		m.paused = false

	case key.Matches(msg, m.keys.Faster):
		if m.stepsPerTick < maxStepsPerTick {
			m.stepsPerTick *= 2
		}

	case key.Matches(msg, m.keys.Slower):
		if m.stepsPerTick > 1 {
			m.stepsPerTick /= 2
		}
	}

	return m, nil
}

// handleTick advances the interpreter. Each tick runs up to the step
// budget but stops early at an S command, which is worth one tick of
// real time.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused || m.done || m.err != nil {
		return m, tickCmd()
	}

	for i := 0; i < m.stepsPerTick; i++ {
		pause, err := m.exec.Step()
		if errors.Is(err, lang.ErrEndOfProgram) {
			m.done = true
			break
		}
		if err != nil {
			m.err = err
			break
		}
		if pause {
			break
		}
	}

	return m, tickCmd()
}

// View renders the canvas with a status footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	p := m.exec.Painter()
	status := fmt.Sprintf("step %d  cursor %d/%d  painter (%d, %d) %s %s  x%d",
		m.exec.Steps(), m.exec.Index(), m.exec.Len(),
		p.X, p.Y, p.Color, p.Direction, m.stepsPerTick)

	var state string
	switch {
	case m.err != nil:
		state = errStyle.Render(m.err.Error())
	case m.done:
		state = doneStyle.Render("done")
	case m.paused:
		state = statusStyle.Render("paused")
	default:
		state = statusStyle.Render("running")
	}

	return titleStyle.Render(m.title) + "\n" +
		RenderBuffer(m.exec.Buffer()) + "\n" +
		statusStyle.Render(status) + "  " + state + "\n" +
		m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given playback model.
func Run(title, program string, cfg config.Render) error {
	p := tea.NewProgram(
		NewModel(title, program, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
