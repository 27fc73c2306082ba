// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so callers can decide
//              how loudly a failure is reported.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-12 v0.2.0: Severity mapping for the reduced code set

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error such as invalid user input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects one operation
	SeverityMedium

	// SeverityHigh indicates an error that stops the current command
	SeverityHigh

	// SeverityCritical indicates an error that makes the process unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeEnvironmentError, CodeInternal:
		return SeverityCritical

	case CodePermissionDenied, CodeWatchFailed, CodeMissingConfig, CodeInvalidConfig, CodeConfigError:
		return SeverityHigh

	case CodeTimeout, CodeCanceled, CodeOperationFailed:
		return SeverityMedium

	case CodeInvalidInput, CodeNotFound, CodeInvalidPath, CodeValidationFailed,
		CodeInvalidFormat, CodeValueOutOfRange:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
