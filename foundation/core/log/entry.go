// File: entry.go
// Title: Log Entry Structure
// Description: The record handed from the logger to a formatter, and the
//              Fields map carrying structured data.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-12 v0.2.0: Dropped user context, kept correlation IDs
// - 2026-10-17 v0.3.0: Removed field helpers without callers

package log

import (
	"time"
)

// Entry is one log record. Formatters must not retain it.
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string

	RequestID     string
	CorrelationID string

	Fields   Fields
	Error    error
	Duration time.Duration // zero when the entry is not timed
	Caller   *CallerInfo   // nil unless caller reporting is on
}

// CallerInfo locates the logging call site
type CallerInfo struct {
	Function string
	File     string
	Line     int
}

// Fields are key-value pairs attached to an entry
type Fields map[string]interface{}

// Field returns a Fields holding one pair
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Clone returns a shallow copy; nil stays nil
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// NewEntry returns an entry stamped with the current time
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}

// WithCaller records the call site and returns e
func (e *Entry) WithCaller(function, file string, line int) *Entry {
	e.Caller = &CallerInfo{Function: function, File: file, Line: line}
	return e
}
