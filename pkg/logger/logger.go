// Package logger provides context-aware structured logging on top of
// logrus: a global fallback entry plus helpers to carry a decorated entry
// through a context.
package logger

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	// G is a shorthand alias for GetLogger.
	G = GetLogger
	// L is the global fallback entry used when a context carries no logger.
	L = logrus.NewEntry(newLogger())
)

type loggerKey struct{}

// WithLogger attaches an entry to the context so downstream calls to
// GetLogger pick up its fields.
func WithLogger(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, loggerKey{}, entry.WithContext(ctx))
}

// GetLogger returns the entry stored in the context, or the global
// fallback with the context attached.
func GetLogger(ctx context.Context) *logrus.Entry {
	if entry, ok := ctx.Value(loggerKey{}).(*logrus.Entry); ok {
		return entry
	}
	return L.WithContext(ctx)
}

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.Formatter = &logrus.TextFormatter{
		TimestampFormat: time.RFC3339Nano,
		FullTimestamp:   true,
	}
	return l
}

// SetLogLevel adjusts the global logger's level.
func SetLogLevel(level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	L.Logger.SetLevel(parsed)
	return nil
}

// SetJSONFormat switches the global logger to JSON output for log
// collectors.
func SetJSONFormat() {
	L.Logger.Formatter = &logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
	}
}
