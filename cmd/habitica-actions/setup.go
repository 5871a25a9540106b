package main

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/habitica-actions/internal/errors"
	"github.com/KirkDiggler/habitica-actions/internal/tracing"
)

var (
	configPath   string
	logLevel     string
	logFormat    string
	traceEnabled bool

	shutdownTracing tracing.ShutdownFunc
)

func setup(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(cmd.ErrOrStderr(), logLevel, logFormat)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	if traceEnabled {
		shutdownTracing, err = tracing.Init("habitica-actions", version, cmd.OutOrStdout())
		if err != nil {
			return errors.Wrap(err, "failed to initialize tracing")
		}
	}
	return nil
}

func teardown(_ *cobra.Command, _ []string) {
	if shutdownTracing == nil {
		return
	}
	if err := shutdownTracing(context.Background()); err != nil {
		slog.Warn("failed to flush traces", "error", err)
	}
	shutdownTracing = nil
}

// newLogger builds the process logger from the --log-level and --log-format
// flags
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.InvalidArgumentf("invalid log level %q", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, errors.InvalidArgumentf("invalid log format %q", format)
	}
}
