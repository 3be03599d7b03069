// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger used
// throughout the toolkit.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on
// *Logger. All output goes to stderr: stdout is reserved for the JSON
// results the commands print.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label (e.g.
// "jira-cli") at the given level ("debug", "info", "warn", ...).
//
// An unknown level falls back to warn so a typo in JIRA_CLI_LOG_LEVEL
// degrades to quiet output rather than failing the command. Every entry
// carries a "role" field and a timestamp; output is JSON on stderr.
func NewLogger(role, level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}

	logger := zerolog.New(os.Stderr).Level(lvl).With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
