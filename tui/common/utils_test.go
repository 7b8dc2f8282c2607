package common

import "testing"

func TestFitLine(t *testing.T) {
	if got := FitLine("dial tcp:\n  connection\trefused", 0); got != "dial tcp: connection refused" {
		t.Fatalf("unexpected collapse result: %q", got)
	}
	if got := FitLine("abcdefghij", 5); got != "abcd…" {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if got := FitLine("\x1b[31mred\x1b[0m", 10); got != "red" {
		t.Fatalf("escapes must be stripped: %q", got)
	}
}
