// File: example_test.go
// Title: Error Module Examples
// Description: Example usage patterns for the foundation error type.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive examples
// - 2026-10-12 v0.2.0: Examples for file system and step lookup errors

package error

import (
	"fmt"
	"io/fs"
)

func ExampleNew() {
	err := New("unknown transform step").
		WithCode(CodeInvalidInput).
		WithDetail("step", "upper")

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())
	fmt.Println("Severity:", err.Severity())

	// Output:
	// Error: unknown transform step
	// Code: INVALID_INPUT
	// Severity: low
}

func ExampleWrap() {
	err := Wrap(fs.ErrPermission, "cannot read root").
		WithCode(CodePermissionDenied).
		WithOperation("filex.scan")

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())
	fmt.Println("Exit:", err.Code().ExitCode())

	// Output:
	// Error: cannot read root: permission denied
	// Code: PERMISSION_DENIED
	// Exit: 4
}
