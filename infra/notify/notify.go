// Package notify implements the ways Glue reports an upload outcome:
// desktop notifications, a one-line status message and the selection
// between them and the interactive dialog.
package notify

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/CrestNiraj12/glue/app"
	"github.com/CrestNiraj12/glue/infra/browser"
	"github.com/CrestNiraj12/glue/infra/config"
	"github.com/CrestNiraj12/glue/tui/common"
)

// Title is used for every notification.
const Title = "Pasted to Glue"

// --- Desktop ---

// Desktop sends notifications through terminal-notifier (macOS) or
// notify-send (freedesktop). Arguments never pass through a shell.
type Desktop struct {
	bin   string
	sound bool
	run   func(name string, args ...string) error
}

// LookupDesktop finds a notification utility on PATH. ok is false when none
// is installed.
func LookupDesktop(sound bool) (d *Desktop, ok bool) {
	return lookupDesktop(runtime.GOOS, exec.LookPath, sound)
}

func lookupDesktop(goos string, lookPath func(string) (string, error), sound bool) (*Desktop, bool) {
	candidates := []string{"notify-send"}
	if goos == "darwin" {
		candidates = []string{"terminal-notifier"}
	}
	for _, name := range candidates {
		path, err := lookPath(name)
		if err != nil || path == "" {
			continue
		}
		return &Desktop{
			bin:   path,
			sound: sound,
			run: func(name string, args ...string) error {
				return exec.Command(name, args...).Run()
			},
		}, true
	}
	return nil, false
}

// Notify shows message. Success notifications open the URL when clicked
// where the utility supports it.
func (d *Desktop) Notify(message string, isError bool) error {
	if err := d.run(d.bin, d.args(message, isError)...); err != nil {
		return fmt.Errorf("desktop notification: %w", err)
	}
	return nil
}

func (d *Desktop) args(message string, isError bool) []string {
	message = ansi.Strip(message)
	if isTerminalNotifier(d.bin) {
		args := []string{"-title", Title, "-message", message}
		if d.sound {
			args = append(args, "-sound", "default")
		}
		if !isError && browser.IsSafeExternalURL(message) {
			args = append(args, "-open", message)
		}
		return args
	}

	args := []string{"--app-name", "Glue"}
	if isError {
		args = append(args, "--urgency", "critical")
	}
	return append(args, Title, message)
}

func isTerminalNotifier(bin string) bool {
	return filepath.Base(bin) == "terminal-notifier"
}

// --- Status line ---

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6DA95"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ED8796")).Bold(true)
)

// StatusLine prints a single transient-style line, truncated to Width cells.
// Multi-line messages such as wrapped transport errors are collapsed.
type StatusLine struct {
	Out   io.Writer
	Width int // 0 disables truncation
}

// Notify writes the message line.
func (s StatusLine) Notify(message string, isError bool) error {
	line := Title + ": " + message
	style := statusStyle
	if isError {
		line = "Glue: " + message
		style = errorStyle
	}
	_, err := fmt.Fprintln(s.Out, style.Render(common.FitLine(line, s.Width)))
	return err
}

// --- Selection ---

// ErrUnavailable is returned when a forced notifier cannot be used here.
var ErrUnavailable = errors.New("notifier unavailable")

// Selection pairs the quiet and attention-grabbing channels.
type Selection struct {
	Status app.Notifier
	Popup  app.Notifier
}

// Select resolves the configured notifier mode. desktop is nil when no
// utility is installed; dialog is nil when not attached to a terminal.
func Select(mode string, status, desktop, dialog app.Notifier) (Selection, error) {
	switch mode {
	case config.NotifierStatus:
		return Selection{Status: status, Popup: status}, nil
	case config.NotifierDesktop:
		if desktop == nil {
			return Selection{}, fmt.Errorf("desktop: %w: install terminal-notifier or notify-send", ErrUnavailable)
		}
		return Selection{Status: desktop, Popup: desktop}, nil
	case config.NotifierDialog:
		if dialog == nil {
			return Selection{}, fmt.Errorf("dialog: %w: not attached to a terminal", ErrUnavailable)
		}
		return Selection{Status: dialog, Popup: dialog}, nil
	case config.NotifierAuto, "":
		popup := status
		switch {
		case desktop != nil:
			popup = desktop
		case dialog != nil:
			popup = dialog
		}
		return Selection{Status: status, Popup: popup}, nil
	default:
		return Selection{}, fmt.Errorf("unknown notifier %q", mode)
	}
}
