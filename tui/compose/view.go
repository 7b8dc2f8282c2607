package compose

import (
	"fmt"
	"strings"

	"github.com/CrestNiraj12/glue/tui/common"
)

// View renders the compose view based on the active mode.
func (m Model) View() string {
	switch m.mode {
	case editorMode:
		return m.status + "\n"

	case inlineMode:
		var b strings.Builder
		b.WriteString(common.AppTitleStyle.Render("📋 Glue"))
		b.WriteString("  New Snippet\n\n")
		b.WriteString(m.textarea.View())
		b.WriteString("\n")
		b.WriteString(common.StatusBarStyle.Render(
			fmt.Sprintf("  ctrl+d: upload • esc: cancel • %d chars", len([]rune(m.textarea.Value()))),
		))
		return b.String()
	}

	return ""
}
