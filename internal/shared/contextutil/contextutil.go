// Package contextutil carries request-scoped identity and logging through
// context.Context so layers below the handlers never import gin.
package contextutil

import (
	"context"

	"go.uber.org/zap"
)

// contextKey is a private type so keys never collide with other packages.
type contextKey string

const (
	requestIDKey contextKey = "request_id"
	userIDKey    contextKey = "user_id"
	loggerKey    contextKey = "logger"
)

func stringValue(ctx context.Context, key contextKey) string {
	v, _ := ctx.Value(key).(string)
	return v
}

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	return stringValue(ctx, requestIDKey)
}

func WithUserID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, userIDKey, uid)
}

func GetUserID(ctx context.Context) string {
	return stringValue(ctx, userIDKey)
}

// WithLogger stores a request-scoped zap logger in the context.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request-scoped logger, falling back to defaultLogger
// and finally to a nop logger so callers never get nil.
func GetLogger(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}
	if defaultLogger != nil {
		return defaultLogger
	}
	return zap.NewNop()
}

// Metadata bundles the tracing identifiers for manual logging.
type Metadata struct {
	RequestID string
	UserID    string
}

func ExtractMetadata(ctx context.Context) Metadata {
	return Metadata{
		RequestID: GetRequestID(ctx),
		UserID:    GetUserID(ctx),
	}
}
