package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/habitica-actions/internal/clients/habitica"
	"github.com/KirkDiggler/habitica-actions/internal/config"
	"github.com/KirkDiggler/habitica-actions/internal/errors"
	"github.com/KirkDiggler/habitica-actions/internal/orchestrators/actions"
	"github.com/KirkDiggler/habitica-actions/internal/pkg/clock"
	"github.com/KirkDiggler/habitica-actions/internal/pkg/idgen"
	"github.com/KirkDiggler/habitica-actions/internal/runner"
)

// newRunner wires the client, the orchestrator and the runner from cfg
func newRunner(cfg config.Config, logger *slog.Logger) (*runner.Runner, error) {
	client, err := habitica.New(&habitica.Config{
		BaseURL:     cfg.BaseURL,
		UserID:      cfg.User.ID,
		APIKey:      cfg.User.Key,
		ClientID:    cfg.ClientHeader(),
		HTTPTimeout: cfg.HTTPTimeout,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create habitica client")
	}

	orchestrator, err := actions.NewOrchestrator(&actions.Config{
		Client:     client,
		UserID:     cfg.User.ID,
		Thresholds: cfg.Thresholds,
		Logger:     logger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create actions orchestrator")
	}

	return runner.New(&runner.Config{
		Actions:     orchestrator,
		Spells:      cfg.Spells,
		IDGenerator: idgen.NewUUID("run"),
		Clock:       clock.New(),
		Logger:      logger,
	})
}

// executeActions loads the configuration and runs names in order. With no
// names the configured action list is used.
func executeActions(cmd *cobra.Command, names []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if len(names) == 0 {
		names = cfg.Actions
	}

	r, err := newRunner(cfg, slog.Default())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			slog.Warn("Received shutdown signal, cancelling run")
			cancel()
		case <-ctx.Done():
		}
	}()

	_, err = r.Run(ctx, names)
	return err
}
