package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/glue/domain"
	"github.com/CrestNiraj12/glue/tui/common"
	"github.com/CrestNiraj12/glue/tui/compose"
)

// Uploader sends snippet parts. Implemented by *app.Glue.
type Uploader interface {
	Upload(ctx context.Context, parts []string, filename string) domain.UploadResult
}

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Uploader Uploader
	Editor   compose.Editor
	Parts    []string // Nil means compose first
	Filename string
	Inline   bool // Compose in a textarea instead of $EDITOR
}

type activeView int

const (
	composeView activeView = iota
	uploadView
	doneView
)

// uploadedMsg carries the upload result back into the program.
type uploadedMsg struct {
	Result domain.UploadResult
}

// App is the root Bubble Tea model. It composes (if needed), uploads with a
// spinner and quits; main performs delivery after the program exits.
type App struct {
	deps      Deps
	active    activeView
	compose   compose.Model
	spinner   spinner.Model
	keys      common.KeyMap
	width     int
	result    domain.UploadResult
	cancelled bool
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = common.SuccessStyle

	a := App{
		deps:    deps,
		active:  uploadView,
		spinner: s,
		keys:    common.DefaultKeyMap(),
	}
	if deps.Parts == nil {
		a.active = composeView
		if deps.Inline {
			a.compose = compose.NewInline()
		} else {
			a.compose = compose.NewEditor(deps.Editor)
		}
	}
	return a
}

// Result is the upload outcome once the program has exited.
func (a App) Result() domain.UploadResult {
	return a.result
}

// Cancelled reports whether the user quit before an upload finished.
func (a App) Cancelled() bool {
	return a.cancelled
}

// Init starts composing or the upload right away.
func (a App) Init() tea.Cmd {
	if a.active == composeView {
		return a.compose.Init()
	}
	return tea.Batch(a.spinner.Tick, a.upload(a.deps.Parts))
}

func (a App) upload(parts []string) tea.Cmd {
	uploader, filename := a.deps.Uploader, a.deps.Filename
	return func() tea.Msg {
		return uploadedMsg{Result: uploader.Upload(context.Background(), parts, filename)}
	}
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width

	case tea.KeyMsg:
		// The composer owns "q", so only ctrl+c abandons it.
		if (a.active == uploadView && key.Matches(msg, a.keys.Quit)) ||
			(a.active == composeView && msg.Type == tea.KeyCtrlC) {
			a.cancelled = true
			a.active = doneView
			return a, tea.Quit
		}

	case compose.DoneMsg:
		if msg.Err != nil {
			a.result = domain.UploadResult{Err: msg.Err}
			a.active = doneView
			return a, tea.Quit
		}
		if msg.Content == "" {
			a.cancelled = true
			a.active = doneView
			return a, tea.Quit
		}
		a.active = uploadView
		return a, tea.Batch(a.spinner.Tick, a.upload([]string{msg.Content}))

	case uploadedMsg:
		a.result = msg.Result
		a.active = doneView
		return a, tea.Quit

	case spinner.TickMsg:
		if a.active != uploadView {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	if a.active == composeView {
		updated, cmd := a.compose.Update(msg)
		a.compose = updated
		return a, cmd
	}
	return a, nil
}

// View renders the active sub-model.
func (a App) View() string {
	switch a.active {
	case composeView:
		return a.compose.View()
	case uploadView:
		label := "Pasting to Glue"
		if a.deps.Filename != "" {
			label += " " + common.FilenameStyle.Render(a.deps.Filename)
		}
		line := fmt.Sprintf("%s %s...", a.spinner.View(), label)
		return line + "\n" + common.StatusBarStyle.Render("q: cancel") + "\n"
	}
	return ""
}
