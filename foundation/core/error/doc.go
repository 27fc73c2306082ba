// Package error provides structured error handling for the fixstr foundation.
//
// Package: error
// Title: Foundation Error Handling
// Description: Structured errors with codes, severities, details and the
//              failing operation. Used by the finder, the configuration
//              layer and the CLI to turn failures into exit codes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-12 v0.2.0: Reduced code set for fixstr
//
// Usage:
//
//	err := error.New("root directory not readable").
//		WithCode(error.CodePermissionDenied).
//		WithDetail("path", root)
//
//	wrapped := error.Wrap(err, "find failed").WithOperation("filex.scan")
//
//	if error.HasCode(wrapped, error.CodePermissionDenied) {
//		// ...
//	}
package error
