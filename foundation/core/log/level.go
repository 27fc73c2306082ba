// File: level.go
// Title: Log Level Definitions
// Description: Defines the log levels and a single name table from which
//              printing, parsing and config validation are derived.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with log levels
// - 2026-10-12 v0.2.0: Removed the audit level
// - 2026-10-17 v0.3.0: Names, short forms and aliases from one table

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// levelNames is indexed by Level
var levelNames = [...]struct {
	long, short string
}{
	LevelTrace: {"trace", "TRC"},
	LevelDebug: {"debug", "DBG"},
	LevelInfo:  {"info", "INF"},
	LevelWarn:  {"warn", "WRN"},
	LevelError: {"error", "ERR"},
	LevelFatal: {"fatal", "FTL"},
}

// spelled-out names accepted besides the long and short forms
var levelAliases = map[string]Level{
	"information": LevelInfo,
	"warning":     LevelWarn,
}

func (l Level) known() bool {
	return l >= LevelTrace && int(l) < len(levelNames)
}

// String returns the lower-case name, e.g. "warn"
func (l Level) String() string {
	if !l.known() {
		return "unknown"
	}
	return levelNames[l].long
}

// ShortString returns the three letter tag used by the text formatter
func (l Level) ShortString() string {
	if !l.known() {
		return "???"
	}
	return levelNames[l].short
}

// ShouldLog reports whether l passes the threshold minLevel
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel accepts the long name, the short tag or an alias in any case.
// Unknown input yields LevelInfo and a *ParseError.
func ParseLevel(level string) (Level, error) {
	s := strings.ToLower(strings.TrimSpace(level))
	for i, n := range levelNames {
		if s == n.long || s == strings.ToLower(n.short) {
			return Level(i), nil
		}
	}
	if l, ok := levelAliases[s]; ok {
		return l, nil
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError reports an unparsable level or format name
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// LevelNames returns the long names in ascending order
func LevelNames() []string {
	names := make([]string, len(levelNames))
	for i, n := range levelNames {
		names[i] = n.long
	}
	return names
}

// DefaultLevel is the threshold of a logger built without configuration
func DefaultLevel() Level {
	return LevelInfo
}
