// Copyright (c) 2026 Ladle. All rights reserved.
// Author: an.lequoc.vn@gmail.com

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/lequocan/ladle/internal/platform/ctxkey"
	"github.com/lequocan/ladle/internal/platform/sec"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Identity & Access

// WithChef returns a new context with the provided chef identity attached.
func WithChef(ctx context.Context, chef *sec.Identity) context.Context {
	return context.WithValue(ctx, ctxkey.KeyChef, chef)
}

// GetChef retrieves the [*sec.Identity] from the [context.Context].
// It returns nil for anonymous requests.
func GetChef(ctx context.Context) *sec.Identity {
	chef, ok := ctx.Value(ctxkey.KeyChef).(*sec.Identity)
	if !ok {
		return nil
	}
	return chef
}
