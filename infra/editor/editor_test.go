package editor

import (
	"context"
	"os"
	"strings"
	"testing"
)

func TestCmd_UsesEditorAndWritesTemplate(t *testing.T) {
	t.Setenv("EDITOR", "cat")
	e := NewEnvEditor()

	cmd, path, err := e.Cmd("hello")
	if err != nil {
		t.Fatalf("cmd failed: %v", err)
	}
	defer os.Remove(path)
	if cmd.Args[0] != "cat" || cmd.Args[len(cmd.Args)-1] != path {
		t.Fatalf("unexpected command args: %v", cmd.Args)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read temp file failed: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "Glue: write or paste") || !strings.HasSuffix(text, "hello") {
		t.Fatalf("unexpected template content: %q", text)
	}
}

func TestCmd_FallsBackToVi(t *testing.T) {
	t.Setenv("EDITOR", "")
	cmd, path, err := NewEnvEditor().Cmd("")
	if err != nil {
		t.Fatalf("cmd failed: %v", err)
	}
	defer os.Remove(path)
	if cmd.Args[0] != "vi" {
		t.Fatalf("expected vi fallback, got %q", cmd.Args[0])
	}
}

func TestReadContent_StripsInstructionAndDeletesFile(t *testing.T) {
	e := NewEnvEditor()
	f, err := os.CreateTemp("", "glue-test-*.txt")
	if err != nil {
		t.Fatalf("create temp failed: %v", err)
	}
	path := f.Name()
	_, _ = f.WriteString(template + "line1\nline2\n")
	_ = f.Close()

	content, err := e.ReadContent(path)
	if err != nil {
		t.Fatalf("read content failed: %v", err)
	}
	if content != "line1\nline2" {
		t.Fatalf("unexpected content: %q", content)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected temp file to be deleted")
	}
}

func writeTemp(t *testing.T, body string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "glue-test-*.txt")
	if err != nil {
		t.Fatalf("create temp failed: %v", err)
	}
	if _, err := f.WriteString(body); err != nil {
		t.Fatalf("write temp failed: %v", err)
	}
	_ = f.Close()
	return f.Name()
}

func TestReadContent_KeepsCommentsWithoutHeader(t *testing.T) {
	path := writeTemp(t, "<div>\n<!-- nav -->\n<nav/></div>\n")

	content, err := NewEnvEditor().ReadContent(path)
	if err != nil {
		t.Fatalf("read content failed: %v", err)
	}
	if content != "<div>\n<!-- nav -->\n<nav/></div>" {
		t.Fatalf("comment must not cut the snippet: %q", content)
	}
}

func TestReadContent_KeepsIndentation(t *testing.T) {
	path := writeTemp(t, template+"    while (i-->0) {}\n\n")

	content, err := NewEnvEditor().ReadContent(path)
	if err != nil {
		t.Fatalf("read content failed: %v", err)
	}
	if content != "    while (i-->0) {}\n" {
		t.Fatalf("unexpected content: %q", content)
	}
}

func TestReadContent_WhitespaceOnlyCancels(t *testing.T) {
	for _, body := range []string{"", template, template + "  \n\t\n", " \n"} {
		content, err := NewEnvEditor().ReadContent(writeTemp(t, body))
		if err != nil {
			t.Fatalf("read content failed: %v", err)
		}
		if content != "" {
			t.Fatalf("expected cancel for %q, got %q", body, content)
		}
	}
}

func TestCompose_UnchangedTemplateIsEmpty(t *testing.T) {
	// "true" exits 0 without touching the file.
	t.Setenv("EDITOR", "true")

	content, err := NewEnvEditor().Compose(context.Background())
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	if content != "" {
		t.Fatalf("expected empty content, got %q", content)
	}
}

func TestCompose_CanceledContext(t *testing.T) {
	t.Setenv("EDITOR", "true")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewEnvEditor().Compose(ctx); err == nil {
		t.Fatalf("expected context error")
	}
}
