// Package runner executes named actions one after another on behalf of the
// CLI
package runner

import (
	"context"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/habitica-actions/internal/config"
	"github.com/KirkDiggler/habitica-actions/internal/errors"
	"github.com/KirkDiggler/habitica-actions/internal/orchestrators/actions"
	"github.com/KirkDiggler/habitica-actions/internal/pkg/clock"
	"github.com/KirkDiggler/habitica-actions/internal/pkg/idgen"
	"github.com/KirkDiggler/habitica-actions/internal/tracing"
)

// Config holds the dependencies for the runner
type Config struct {
	Actions actions.Service
	// Spells resolves the spell behind earthquake, tools-of-trade and cast:<id>
	Spells      []config.Spell
	IDGenerator idgen.Generator
	Clock       clock.Clock
	Logger      *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Actions == nil {
		vb.RequiredField("Actions")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// Result is the outcome of one action of a run
type Result struct {
	Action   string
	Messages []string
	Err      error
}

// RunOutput describes a finished run
type RunOutput struct {
	RunID   string
	Results []Result
}

// Runner runs actions by name
type Runner struct {
	actions actions.Service
	spells  map[string]config.Spell
	idGen   idgen.Generator
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a runner with the provided dependencies
func New(cfg *Config) (*Runner, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	spells := make(map[string]config.Spell, len(cfg.Spells))
	for _, s := range cfg.Spells {
		spells[s.ID] = s
	}

	return &Runner{
		actions: cfg.Actions,
		spells:  spells,
		idGen:   cfg.IDGenerator,
		clock:   cfg.Clock,
		logger:  logger,
	}, nil
}

type step func(ctx context.Context) ([]string, error)

// resolve maps an action name to the call that performs it
func (r *Runner) resolve(name string) (step, error) {
	switch name {
	case config.ActionArmoire:
		return func(ctx context.Context) ([]string, error) {
			out, err := r.actions.BuyArmoire(ctx, &actions.BuyArmoireInput{})
			if err != nil {
				return nil, err
			}
			return out.Messages, nil
		}, nil
	case config.ActionHatch:
		return func(ctx context.Context) ([]string, error) {
			out, err := r.actions.HatchPets(ctx, &actions.HatchPetsInput{})
			if err != nil {
				return nil, err
			}
			return out.Messages, nil
		}, nil
	case config.ActionFeed:
		return func(ctx context.Context) ([]string, error) {
			out, err := r.actions.FeedPets(ctx, &actions.FeedPetsInput{})
			if err != nil {
				return nil, err
			}
			return out.Messages, nil
		}, nil
	case config.ActionJoinQuest:
		return func(ctx context.Context) ([]string, error) {
			out, err := r.actions.JoinQuest(ctx, &actions.JoinQuestInput{})
			if err != nil {
				return nil, err
			}
			return out.Messages, nil
		}, nil
	case config.ActionHealthPotion:
		return func(ctx context.Context) ([]string, error) {
			out, err := r.actions.HealthPotion(ctx, &actions.HealthPotionInput{})
			if err != nil {
				return nil, err
			}
			return out.Messages, nil
		}, nil
	case config.ActionEarthquake:
		return r.cast(config.SpellEarthquake)
	case config.ActionToolsOfTrade:
		return r.cast(config.SpellToolsOfTrade)
	}

	if id, ok := strings.CutPrefix(name, config.CastActionPrefix); ok {
		return r.cast(id)
	}
	return nil, errors.InvalidArgumentf("unknown action %q", name)
}

func (r *Runner) cast(spellID string) (step, error) {
	spell, ok := r.spells[spellID]
	if !ok {
		return nil, errors.InvalidArgumentf("spell %q is not configured", spellID)
	}
	return func(ctx context.Context) ([]string, error) {
		out, err := r.actions.CastSpell(ctx, &actions.CastSpellInput{Spell: spell})
		if err != nil {
			return nil, err
		}
		return out.Messages, nil
	}, nil
}

// Run executes the named actions in order. Every name is resolved before the
// first action starts. A failing action does not stop the ones after it; the
// returned error wraps the first failure.
func (r *Runner) Run(ctx context.Context, names []string) (output *RunOutput, err error) {
	if len(names) == 0 {
		return nil, errors.InvalidArgument("at least one action is required")
	}

	steps := make([]step, len(names))
	for i, name := range names {
		s, err := r.resolve(name)
		if err != nil {
			return nil, err
		}
		steps[i] = s
	}

	runID := r.idGen.Generate()
	logger := r.logger.With("run_id", runID)

	ctx, span := tracing.StartSpan(ctx, "run", trace.SpanKindInternal)
	defer func() { tracing.EndSpan(span, err) }()
	span.SetAttributes(map[string]string{
		"run.id":      runID,
		"run.actions": strings.Join(names, ","),
	})

	start := r.clock.Now()
	logger.InfoContext(ctx, "Run started", "actions", names)

	output = &RunOutput{RunID: runID}
	var firstErr error
	failed := 0

	for i, name := range names {
		messages, stepErr := r.runStep(ctx, name, steps[i])
		output.Results = append(output.Results, Result{Action: name, Messages: messages, Err: stepErr})
		if stepErr == nil {
			continue
		}

		failed++
		if firstErr == nil {
			firstErr = stepErr
		}
		logger.ErrorContext(ctx, "Action failed",
			"action", name,
			"code", errors.GetCode(stepErr),
			"error", stepErr,
		)
	}

	logger.InfoContext(ctx, "Run finished",
		"duration", r.clock.Now().Sub(start),
		"failed", failed,
	)

	if firstErr != nil {
		return output, errors.Wrapf(firstErr, "%d of %d actions failed", failed, len(names))
	}
	return output, nil
}

func (r *Runner) runStep(ctx context.Context, name string, s step) (messages []string, err error) {
	ctx, span := tracing.StartSpan(ctx, "action "+name, trace.SpanKindInternal)
	defer func() { tracing.EndSpan(span, err) }()

	return s(ctx)
}
