// Package main provides the cambalache CLI for expanding a JSON template
// against a word list.
package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/c05m4r/cambalache/internal/config"
	"github.com/c05m4r/cambalache/internal/output"
	"github.com/c05m4r/cambalache/internal/template"
)

// Exit codes. Fatal error classes keep distinct codes so callers can tell a
// bad configuration from a bad output path.
const (
	exitFailure = 1
	exitConfig  = 2
	exitLoad    = 3
	exitWrite   = 4
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps the error taxonomy to process exit codes.
func exitCode(err error) int {
	var cfgErr *config.ConfigError
	var loadErr *template.LoadError
	var writeErr *output.WriteError

	switch {
	case errors.As(err, &cfgErr):
		return exitConfig
	case errors.As(err, &loadErr):
		return exitLoad
	case errors.As(err, &writeErr):
		return exitWrite
	default:
		return exitFailure
	}
}
