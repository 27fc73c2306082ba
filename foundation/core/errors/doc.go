// Package errors provides the standard error constructors for the foundation
// modules.
//
// Package: errors
// Title: Standard Error Handling API for the Foundation
// Description: Common error patterns for fixstr, argx, filex and the
//              configuration layer. Every constructor records the module and
//              operation as details so that callers and log output can tell
//              where a failure came from without parsing messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-12 v0.2.0: Reduced to the modules of fixstr
//
// Usage:
//
//	if i < 0 || i >= n {
//		return 0, errors.OutOfRange(errors.ModuleFixstr, "at", i, 0, n-1)
//	}
//
//	if err := os.Stat(root); err != nil {
//		return errors.FromFS(errors.ModuleFilex, "scan", root, err)
//	}
package errors
