package logging

import (
	"context"

	"go.uber.org/zap"
)

type (
	ctxLoggerKey  struct{}
	ctxTraceIDKey struct{}
)

// WithLogger returns a copy of ctx carrying logger. The Log* helpers and
// LoggerFromContext pick it up.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	if logger == nil {
		return ctx
	}
	return contextWithLogger(ctx, logger)
}

// LoggerFromContext returns the request-scoped logger if present, otherwise falls back to the global logger.
func LoggerFromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return Logger()
	}
	if l, ok := ctx.Value(ctxLoggerKey{}).(*zap.Logger); ok && l != nil {
		return l
	}
	return Logger()
}

// TraceIDFromContext returns the correlation identifier (trace or request ID) if present.
func TraceIDFromContext(ctx context.Context) *string {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxTraceIDKey{}).(*string); ok && v != nil && *v != "" {
		return v
	}
	return nil
}

// LogDebug writes a debug message using the context logger.
func LogDebug(ctx context.Context, msg string, fields ...zap.Field) {
	LoggerFromContext(ctx).Debug(msg, fields...)
}

// LogInfo writes an informational message using the request-aware logger.
func LogInfo(ctx context.Context, msg string, fields ...zap.Field) {
	LoggerFromContext(ctx).Info(msg, fields...)
}

// LogWarn writes a warning message using the request-aware logger.
func LogWarn(ctx context.Context, msg string, fields ...zap.Field) {
	LoggerFromContext(ctx).Warn(msg, fields...)
}

// LogError writes an error message and appends the error field when provided.
func LogError(ctx context.Context, msg string, err error, fields ...zap.Field) {
	logger := LoggerFromContext(ctx)
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	logger.Error(msg, fields...)
}

// LogFatal logs with fatal severity and terminates the process.
func LogFatal(ctx context.Context, msg string, err error, fields ...zap.Field) {
	logger := LoggerFromContext(ctx)
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	logger.Fatal(msg, fields...)
}

func contextWithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

func contextWithTraceID(ctx context.Context, traceID string) context.Context {
	if traceID == "" {
		return ctx
	}
	if ctx == nil {
		ctx = context.Background()
	}
	traceCopy := traceID
	return context.WithValue(ctx, ctxTraceIDKey{}, &traceCopy)
}
