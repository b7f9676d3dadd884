// SPDX-License-Identifier: MIT

// Package logging provides the structured logger shared by varigraph's
// packages and CLI.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps slog.Logger with varigraph field names.
type Logger struct {
	*slog.Logger
}

// New creates a Logger with the given handler.
// A nil handler writes text at info level to stderr.
func New(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewText creates a Logger writing human-readable text to w.
func NewText(w io.Writer, level slog.Level) *Logger {
	return New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSON creates a Logger writing one JSON object per record to w.
func NewJSON(w io.Writer, level slog.Level) *Logger {
	return New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Noop creates a Logger that discards everything.
func Noop() *Logger {
	return New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(1000)}))
}

// ParseLevel maps debug, info, warn or error (any case) to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("logging: level %q: %w", s, err)
	}

	return lvl, nil
}

// WithRunID tags every record with the extraction or command run id.
func (l *Logger) WithRunID(id string) *Logger {
	return &Logger{Logger: l.Logger.With("run_id", id)}
}

// WithSample tags every record with the sample name.
func (l *Logger) WithSample(sample string) *Logger {
	return &Logger{Logger: l.Logger.With("sample", sample)}
}

// WithFile tags every record with an input or output path.
func (l *Logger) WithFile(path string) *Logger {
	return &Logger{Logger: l.Logger.With("file", path)}
}

// LogExtraction logs the outcome of a sample extraction.
func (l *Logger) LogExtraction(ctx context.Context, candidates, nodesRemoved, pathsRemoved int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "sample extraction failed",
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "sample extraction completed",
		"candidates", candidates,
		"nodes_removed", nodesRemoved,
		"paths_removed", pathsRemoved,
	)
}

// LogSkippedRecord logs a variant record excluded from genotype resolution.
func (l *Logger) LogSkippedRecord(ctx context.Context, chrom string, pos int64, reason string) {
	l.DebugContext(ctx, "variant record skipped",
		"chrom", chrom,
		"pos", pos,
		"reason", reason,
	)
}

// LogOperation logs one graph operation applied by the mod command.
func (l *Logger) LogOperation(ctx context.Context, op string, changed int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "graph operation failed",
			"op", op,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "graph operation applied",
		"op", op,
		"changed", changed,
	)
}
