package editor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// EnvEditor prepares an external editor command using $EDITOR (fallback: "vi").
// Under Bubble Tea, callers run the returned *exec.Cmd with tea.ExecProcess so
// the terminal leaves raw mode; Compose runs it directly for plain mode.
type EnvEditor struct{}

// NewEnvEditor creates an EnvEditor.
func NewEnvEditor() *EnvEditor {
	return &EnvEditor{}
}

const instructionComment = `<!--
Glue: write or paste your snippet below.

- SAVE and EXIT to upload (e.g., :wq in vi).
- Emptying the file or making NO CHANGES will cancel.
-->
`

// template is what the temp file starts with: the header and a blank line.
const template = instructionComment + "\n"

// Cmd prepares an *exec.Cmd for the editor and a temp file path.
// It writes the provided content (and an instruction comment) to the temp file.
func (e *EnvEditor) Cmd(content string) (*exec.Cmd, string, error) {
	editorCmd := os.Getenv("EDITOR")
	if editorCmd == "" {
		editorCmd = "vi"
	}

	tmpFile, err := os.CreateTemp("", "glue-*.txt")
	if err != nil {
		return nil, "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer tmpFile.Close()

	if _, err := tmpFile.WriteString(template + content); err != nil {
		os.Remove(tmpPath)
		return nil, "", fmt.Errorf("writing to temp file: %w", err)
	}

	cmd := exec.Command(editorCmd, "+", tmpPath)
	return cmd, tmpPath, nil
}

// ReadContent reads the temp file and removes it. The instruction comment is
// dropped only when the file still starts with it. Whitespace-only content
// reads as "" (cancelled); otherwise the text is kept as written, minus the
// final newline most editors append.
func (e *EnvEditor) ReadContent(path string) (string, error) {
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading temp file: %w", err)
	}

	content := string(data)
	if rest, ok := strings.CutPrefix(content, instructionComment); ok {
		content = strings.TrimPrefix(rest, "\n")
	}
	if strings.TrimSpace(content) == "" {
		return "", nil
	}
	return strings.TrimSuffix(content, "\n"), nil
}

// Compose runs the editor attached to the current terminal and returns the
// snippet text. An empty result means the user cancelled.
func (e *EnvEditor) Compose(ctx context.Context) (string, error) {
	cmd, path, err := e.Cmd("")
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		os.Remove(path)
		return "", err
	}
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if err := cmd.Run(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("editor: %w", err)
	}
	return e.ReadContent(path)
}
