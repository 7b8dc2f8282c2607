// Package dialog is a blocking ok/cancel style dialog for upload results.
package dialog

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/glue/app"
	"github.com/CrestNiraj12/glue/tui/common"
)

// Action is what the user picked.
type Action int

const (
	ActionDismiss Action = iota
	ActionOpen
)

type choice struct {
	label  string
	action Action
}

// Model shows one message and a row of actions.
type Model struct {
	message string
	isError bool
	choices []choice
	cursor  int
	width   int
	keys    common.KeyMap
	chosen  Action
}

// New creates a dialog. Successful uploads offer "Go to URL".
func New(message string, isError bool) Model {
	choices := []choice{{label: "OK", action: ActionDismiss}}
	if !isError {
		choices = []choice{
			{label: "Go to URL", action: ActionOpen},
			{label: "Cancel", action: ActionDismiss},
		}
	}
	return Model{
		message: message,
		isError: isError,
		choices: choices,
		keys:    common.DefaultKeyMap(),
	}
}

// Chosen returns the selected action after the program exits.
func (m Model) Chosen() Action {
	return m.chosen
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Cancel):
			m.chosen = ActionDismiss
			return m, tea.Quit
		case key.Matches(msg, m.keys.Open) && !m.isError:
			m.chosen = ActionOpen
			return m, tea.Quit
		case key.Matches(msg, m.keys.Left):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Right):
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Confirm):
			m.chosen = m.choices[m.cursor].action
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	if m.isError {
		b.WriteString(common.ErrorStyle.Render("Glue error"))
		b.WriteString("\n\n")
		b.WriteString(m.message)
	} else {
		b.WriteString(common.SuccessStyle.Render(notifyTitle))
		b.WriteString("\n\n")
		b.WriteString(common.URLStyle.Render(m.message))
	}
	b.WriteString("\n\n")

	for i, c := range m.choices {
		style := common.ActionInactiveStyle
		if i == m.cursor {
			style = common.ActionActiveStyle
		}
		b.WriteString(style.Render("[ " + c.label + " ]"))
	}

	frame := common.DialogStyle
	if m.isError {
		frame = common.ErrorDialogStyle
	}
	if m.width > 4 {
		frame = frame.MaxWidth(m.width)
	}
	return frame.Render(b.String()) + "\n"
}

const notifyTitle = "Pasted to Glue"

// Notifier implements app.Notifier by running the dialog on a terminal.
type Notifier struct {
	browser app.Browser
	in      io.Reader
	out     io.Writer
}

// NewNotifier creates a dialog Notifier. Accepting "Go to URL" opens the
// snippet with browser.
func NewNotifier(browser app.Browser, in io.Reader, out io.Writer) *Notifier {
	return &Notifier{browser: browser, in: in, out: out}
}

// Notify blocks until the user dismisses the dialog.
func (n *Notifier) Notify(message string, isError bool) error {
	p := tea.NewProgram(New(message, isError), tea.WithInput(n.in), tea.WithOutput(n.out))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("dialog: %w", err)
	}
	m, ok := final.(Model)
	if !ok || m.Chosen() != ActionOpen {
		return nil
	}
	return n.browser.Open(message)
}
