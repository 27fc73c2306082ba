// File: argx.go
// Title: Argument Counting
// Description: Counts and splits comma-separated argument lists. Commas are
//              counted literally, also inside quotes; a comma that must not
//              separate arguments has to be escaped, for example as \x2c.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation

package argx

import (
	"strings"
)

// Separator is the only argument separator.
const Separator = ","

// CountArgs returns 0 for the empty string and the number of commas plus
// one otherwise. Whitespace-only input is one (blank) argument.
func CountArgs(text string) int {
	if text == "" {
		return 0
	}
	return strings.Count(text, Separator) + 1
}

// SplitArgs returns the comma-separated arguments of text with surrounding
// whitespace trimmed. The empty string yields nil. The result always has
// CountArgs(text) elements.
func SplitArgs(text string) []string {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, Separator)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// Count returns the number of arguments it was called with.
func Count(args ...string) int {
	return len(args)
}
