// Package selection turns a document plus selected regions into the ordered
// text parts of a snippet.
package selection

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Region is a selected span in rune offsets, End exclusive.
type Region struct {
	Begin int
	End   int
}

// Empty reports whether the region selects nothing.
func (r Region) Empty() bool {
	return r.Begin == r.End
}

// ParseRegion parses "begin:end". Reversed bounds are swapped, matching a
// selection dragged backwards.
func ParseRegion(s string) (Region, error) {
	b, e, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Region{}, fmt.Errorf("invalid region %q: want begin:end", s)
	}
	begin, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil || begin < 0 {
		return Region{}, fmt.Errorf("invalid region begin %q", b)
	}
	end, err := strconv.Atoi(strings.TrimSpace(e))
	if err != nil || end < 0 {
		return Region{}, fmt.Errorf("invalid region end %q", e)
	}
	if end < begin {
		begin, end = end, begin
	}
	return Region{Begin: begin, End: end}, nil
}

// Parts returns the text of every non-empty region in order. If no region
// selects anything, the whole document is returned as the only part.
func Parts(text string, regions []Region) []string {
	runes := []rune(text)
	parts := make([]string, 0, len(regions))
	for _, r := range regions {
		begin, end := clamp(r.Begin, len(runes)), clamp(r.End, len(runes))
		if begin >= end {
			continue
		}
		parts = append(parts, string(runes[begin:end]))
	}
	if len(parts) > 0 {
		return parts
	}
	return []string{text}
}

// Filename returns the base name of path, or "" for unnamed input.
func Filename(path string) string {
	if path == "" || path == "-" {
		return ""
	}
	return filepath.Base(path)
}

func clamp(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}
