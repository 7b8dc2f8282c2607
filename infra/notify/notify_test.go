package notify

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrestNiraj12/glue/app"
)

func fakeLookPath(found map[string]string) func(string) (string, error) {
	return func(name string) (string, error) {
		if p, ok := found[name]; ok {
			return p, nil
		}
		return "", errors.New("not found")
	}
}

func TestLookupDesktop_PerPlatform(t *testing.T) {
	found := fakeLookPath(map[string]string{
		"terminal-notifier": "/opt/homebrew/bin/terminal-notifier",
		"notify-send":       "/usr/bin/notify-send",
	})

	d, ok := lookupDesktop("darwin", found, false)
	require.True(t, ok)
	assert.Equal(t, "/opt/homebrew/bin/terminal-notifier", d.bin)

	d, ok = lookupDesktop("linux", found, false)
	require.True(t, ok)
	assert.Equal(t, "/usr/bin/notify-send", d.bin)

	_, ok = lookupDesktop("linux", fakeLookPath(nil), false)
	assert.False(t, ok)
}

func TestDesktop_TerminalNotifierArgs(t *testing.T) {
	var got []string
	d := &Desktop{bin: "/usr/local/bin/terminal-notifier", sound: true, run: func(name string, args ...string) error {
		got = append([]string{name}, args...)
		return nil
	}}

	require.NoError(t, d.Notify("https://glue.example/s/1", false))
	assert.Equal(t, []string{
		"/usr/local/bin/terminal-notifier",
		"-title", Title,
		"-message", "https://glue.example/s/1",
		"-sound", "default",
		"-open", "https://glue.example/s/1",
	}, got)

	require.NoError(t, d.Notify("it's broken; rm -rf /", true))
	assert.NotContains(t, got, "-open")
	assert.Contains(t, got, "it's broken; rm -rf /", "message must be a single argv entry")
}

func TestDesktop_NotifySendArgs(t *testing.T) {
	var got []string
	d := &Desktop{bin: "/usr/bin/notify-send", sound: true, run: func(name string, args ...string) error {
		got = args
		return errors.New("dbus unavailable")
	}}

	err := d.Notify("boom", true)
	assert.ErrorContains(t, err, "dbus unavailable")
	assert.Equal(t, []string{"--app-name", "Glue", "--urgency", "critical", Title, "boom"}, got)
}

func TestStatusLine_FormatsAndTruncates(t *testing.T) {
	var buf bytes.Buffer
	s := StatusLine{Out: &buf}

	require.NoError(t, s.Notify("https://glue.example/s/1", false))
	assert.Contains(t, ansi.Strip(buf.String()), "Pasted to Glue: https://glue.example/s/1")

	buf.Reset()
	require.NoError(t, StatusLine{Out: &buf, Width: 12}.Notify(strings.Repeat("x", 50), true))
	line := strings.TrimSpace(ansi.Strip(buf.String()))
	assert.Equal(t, 12, ansi.StringWidth(line))
	assert.True(t, strings.HasPrefix(line, "Glue: "))
}

func TestStatusLine_CollapsesMultiLineErrors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, StatusLine{Out: &buf}.Notify("Post \"https://glue.example\":\n  dial tcp: refused", true))

	out := ansi.Strip(buf.String())
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Equal(t, "Glue: Post \"https://glue.example\": dial tcp: refused\n", out)
}

type named string

func (n named) Notify(string, bool) error { return nil }

func TestSelect(t *testing.T) {
	status, desktop, dialog := named("status"), named("desktop"), named("dialog")

	tests := []struct {
		name       string
		mode       string
		desktop    app.Notifier
		dialog     app.Notifier
		wantStatus app.Notifier
		wantPopup  app.Notifier
		wantErr    bool
	}{
		{name: "auto prefers desktop", mode: "auto", desktop: desktop, dialog: dialog, wantStatus: status, wantPopup: desktop},
		{name: "auto falls back to dialog", mode: "auto", dialog: dialog, wantStatus: status, wantPopup: dialog},
		{name: "auto headless uses status", mode: "", wantStatus: status, wantPopup: status},
		{name: "forced status", mode: "status", desktop: desktop, dialog: dialog, wantStatus: status, wantPopup: status},
		{name: "forced dialog", mode: "dialog", desktop: desktop, dialog: dialog, wantStatus: dialog, wantPopup: dialog},
		{name: "forced desktop", mode: "desktop", desktop: desktop, wantStatus: desktop, wantPopup: desktop},
		{name: "forced desktop missing", mode: "desktop", dialog: dialog, wantErr: true},
		{name: "forced dialog headless", mode: "dialog", desktop: desktop, wantErr: true},
		{name: "unknown", mode: "pigeon", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sel, err := Select(tc.mode, status, tc.desktop, tc.dialog)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, sel.Status)
			assert.Equal(t, tc.wantPopup, sel.Popup)
		})
	}
}
