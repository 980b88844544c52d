// Package logging defines a minimal structured-logging interface used across
// the client. Implementations wrap slog (default) and zap.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key-value pairs, e.g.:
//
//	log.Info(ctx, "group joined", "group_id", id)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}

const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

// New builds a Logger for the named backend writing to w at the given level
// ("debug", "info", "warn", "error").
func New(backend string, level string, w io.Writer) (Logger, error) {
	var (
		l   Logger
		err error
	)
	switch strings.ToLower(backend) {
	case "", BackendSlog:
		l, err = newSlogText(w, level)
	case BackendZap:
		l, err = NewZapLogger(w, level)
	default:
		err = fmt.Errorf("unknown log backend %q", backend)
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewSlogLogger(slog.New(slog.DiscardHandler))
}
