package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cfrs-studio/internal/config"
	"github.com/vovakirdan/cfrs-studio/internal/demos"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// PlaygroundModel is the Bubble Tea model for the interactive
// playground: an editor line for typing a program, and an embedded
// playback view once the user runs it.
type PlaygroundModel struct {
	input    textinput.Model
	cfg      config.Render
	playback *Model
	quitting bool
}

// NewPlaygroundModel creates a playground with an empty editor.
func NewPlaygroundModel(cfg config.Render) PlaygroundModel {
	ti := textinput.New()
	ti.Placeholder = "[[[[[[FFFFFFFFRS]]]]]]"
	ti.Prompt = promptStyle.Render("program> ")
	ti.CharLimit = 512
	ti.Focus()

	return PlaygroundModel{
		input: ti,
		cfg:   cfg,
	}
}

// Init focuses the editor.
func (m PlaygroundModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update routes messages to the editor or the embedded playback.
func (m PlaygroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Playback mode: forward everything to the inner model.
	if m.playback != nil {
		inner, cmd := m.playback.Update(msg)
		pb := inner.(Model)

		if pb.backToEditor {
			m.playback = nil
			m.input.Focus()
			return m, textinput.Blink
		}
		if pb.quitting {
			m.quitting = true
			return m, tea.Quit
		}

		m.playback = &pb
		return m, cmd
	}

	// Editor mode.
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			program := strings.TrimSpace(m.input.Value())
			if program == "" {
				return m, nil
			}
			title := "playground"
			// A demo ID runs the registered program instead.
			if d, err := demos.Get(program); err == nil {
				title, program = d.Title, d.Source
			}
			pb := NewModel(title, program, m.cfg)
			pb.embedded = true
			m.playback = &pb
			return m, pb.Init()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// RunPlayground starts the Bubble Tea program with a playground model.
func RunPlayground(cfg config.Render) error {
	p := tea.NewProgram(
		NewPlaygroundModel(cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// View renders the editor or the embedded playback.
func (m PlaygroundModel) View() string {
	if m.quitting {
		return ""
	}
	if m.playback != nil {
		return m.playback.View()
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("cfrs playground"))
	sb.WriteString("\n\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")
	sb.WriteString(hintStyle.Render("commands: C color  F forward  R rotate  S pause  [..] loop twice"))
	sb.WriteString("\n")
	sb.WriteString(hintStyle.Render("type a program or a demo id, enter to run, esc to quit"))

	if ds := demos.List(); len(ds) > 0 {
		ids := make([]string, 0, len(ds))
		for _, d := range ds {
			ids = append(ids, d.ID)
		}
		sb.WriteString("\n")
		sb.WriteString(hintStyle.Render("demos: " + strings.Join(ids, ", ")))
	}

	return sb.String()
}
