// ============================================================================
// fixstr - Fixed-length string toolkit
// ============================================================================
//
// Package:     logging
// Description: Run identifiers and logger propagation through contexts
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package logging

import (
	"context"

	"github.com/google/uuid"

	mdwlog "github.com/msto63/fixstr/foundation/core/log"
)

type contextKey struct{}

// NewRunID returns a fresh identifier for one command invocation
func NewRunID() string {
	return uuid.NewString()
}

// WithLogger stores logger in ctx
func WithLogger(ctx context.Context, logger *mdwlog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or a logger that discards
// everything
func FromContext(ctx context.Context) *mdwlog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*mdwlog.Logger); ok && logger != nil {
		return logger
	}
	return mdwlog.NewNop()
}
