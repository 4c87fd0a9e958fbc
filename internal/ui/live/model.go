package live

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"statadvisor/internal/session"
)

// Model renders a session as an interactive terminal UI using Bubble Tea.
type Model struct {
	session *session.Controller
	view    session.View
	cursor  int
	status  string
	err     error
	keys    keyMap
	help    help.Model
	noColor bool
}

// Options configures the live UI model.
type Options struct {
	NoColor bool
}

// NewModel constructs a live UI model for a session.
func NewModel(c *session.Controller, opts Options) Model {
	m := Model{
		session: c,
		keys:    defaultKeyMap(),
		help:    help.New(),
		noColor: opts.NoColor,
	}
	m.refresh()
	return m
}

// Init has no startup work; the first question is already loaded.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = typed.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	done := m.view.State == session.StateDone
	keys := m.keys.forView(done, m.view.Question.GuidanceAvailable)
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Reset):
		m.session.Reset()
		m.status = resetMessage
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.view.Question.Options)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, keys.Submit):
		m.status = ""
		if err := m.session.Submit(m.selected()); err != nil {
			m.status = statusForError(err)
		}
	case key.Matches(msg, keys.Redo):
		m.status = ""
		if err := m.session.Redo(); err != nil {
			m.status = statusForError(err)
		}
	default:
		return m, nil
	}
	if !m.refresh() {
		return m, tea.Quit
	}
	return m, nil
}

// View renders the live UI.
func (m Model) View() string {
	if m.err != nil {
		return stylize("Error: "+m.err.Error(), m.noColor, colorError) + "\n"
	}
	done := m.view.State == session.StateDone
	parts := []string{renderHeader(m.view, m.noColor)}
	if done {
		parts = append(parts, renderResult(m.view.Result, m.noColor))
	} else {
		parts = append(parts, renderQuestion(m.view.Question, m.cursor, m.noColor))
		if m.view.Guidance != "" {
			parts = append(parts, renderGuidance(m.view.Guidance, m.noColor))
		}
	}
	parts = append(parts, renderAnswers(m.session.Answers(), m.noColor))
	if m.status != "" {
		parts = append(parts, stylize(m.status, m.noColor, colorStatus))
	}
	parts = append(parts, m.help.View(m.keys.forView(done, m.view.Question.GuidanceAvailable)))
	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

// Err returns the error that stopped the UI, if any.
func (m Model) Err() error {
	return m.err
}

// selected returns the token under the cursor.
func (m Model) selected() string {
	options := m.view.Question.Options
	if m.cursor < 0 || m.cursor >= len(options) {
		return ""
	}
	return options[m.cursor].Value
}

// refresh reloads the view, resetting the cursor when the question changes.
func (m *Model) refresh() bool {
	previous := m.view.Question.ID
	view, err := m.session.View()
	if err != nil {
		m.err = err
		return false
	}
	m.view = view
	if view.State == session.StateDone || view.Question.ID != previous {
		m.cursor = 0
	}
	return true
}

func statusForError(err error) string {
	switch {
	case errors.Is(err, session.ErrNoSelection):
		return noSelectionMessage
	case errors.Is(err, session.ErrRedoNotAllowed):
		return "Esta pregunta no se puede rehacer."
	default:
		return err.Error()
	}
}

// Run starts the live UI on the given streams and blocks until it exits.
// The alternate screen is cleared on exit; callers print the outcome.
func Run(ctx context.Context, c *session.Controller, in io.Reader, out io.Writer, opts Options) error {
	program := tea.NewProgram(
		NewModel(c, opts),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	final, err := program.Run()
	if err != nil {
		return err
	}
	if model, ok := final.(Model); ok && model.err != nil {
		return model.err
	}
	return nil
}
