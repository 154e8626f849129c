// Package logging wires zap into the rest of the engine. The root logger
// writes to stdout with a console encoder; pass loggers through contexts so
// subsystems stay decoupled from logger construction.
package logging

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerKeyType string

const loggerKey = loggerKeyType("logger")

var rootLogger *zap.Logger

func init() {
	level := zapcore.InfoLevel
	if os.Getenv("TABLEAU_DEBUG") != "" {
		level = zapcore.DebugLevel
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)
	rootLogger = zap.New(core)
}

// From returns the logger of the current context, falling back to the root
// logger when none has been attached.
func From(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return l
	}
	return rootLogger
}

// Context attaches logger to ctx so downstream calls pick it up via From.
func Context(ctx context.Context, logger *zap.Logger) context.Context {
	if logger == nil {
		logger = rootLogger
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// SubFrom returns a named child of the context logger and a context carrying it.
func SubFrom(ctx context.Context, name string) (*zap.Logger, context.Context) {
	logger := From(ctx).Named(name)
	return logger, Context(ctx, logger)
}

// Root returns the process-wide logger.
func Root() *zap.Logger {
	return rootLogger
}
