// Package snapshot provides assertion helpers for rendered TUI output:
// ANSI stripping, normalized substring checks, and dimension measurement.
package snapshot

import (
	"regexp"
	"strings"
	"testing"
)

var (
	ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
	oscRegex  = regexp.MustCompile(`\x1b\]8;;[^\x1b]*\x1b\\`)
)

// AssertContains checks that actual output contains the expected substring
func AssertContains(t *testing.T, actual, substr string) {
	t.Helper()
	normalized := Normalize(actual)
	if !strings.Contains(normalized, substr) {
		t.Errorf("Output does not contain expected substring.\nExpected to contain: %q\nActual:\n%s", substr, normalized)
	}
}

// AssertNotContains checks that actual output does NOT contain the substring
func AssertNotContains(t *testing.T, actual, substr string) {
	t.Helper()
	normalized := Normalize(actual)
	if strings.Contains(normalized, substr) {
		t.Errorf("Output unexpectedly contains substring: %q\nActual:\n%s", substr, normalized)
	}
}

// Normalize strips ANSI codes and normalizes whitespace for comparison
func Normalize(s string) string {
	s = StripANSI(s)

	// Normalize line endings
	s = strings.ReplaceAll(s, "\r\n", "\n")

	// Remove trailing whitespace from each line
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	return strings.Join(lines, "\n")
}

// StripANSI removes all ANSI escape codes from a string
func StripANSI(s string) string {
	s = ansiRegex.ReplaceAllString(s, "")

	// Also strip OSC 8 hyperlink sequences
	return oscRegex.ReplaceAllString(s, "")
}

// Lines returns the line count of the rendered output (useful for height tests)
func Lines(s string) int {
	return len(strings.Split(StripANSI(s), "\n"))
}

// Width returns the maximum line width of the rendered output
func Width(s string) int {
	stripped := StripANSI(s)
	lines := strings.Split(stripped, "\n")
	maxWidth := 0
	for _, line := range lines {
		if len(line) > maxWidth {
			maxWidth = len(line)
		}
	}
	return maxWidth
}
