package common

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// FitLine collapses s to a single line and truncates it to width cells.
// A width of zero or less leaves the length untouched.
func FitLine(s string, width int) string {
	s = strings.Join(strings.Fields(ansi.Strip(s)), " ")
	if width <= 0 {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
