package operation

import (
	"context"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/skelrc/pkg/config"
	"github.com/walteh/skelrc/pkg/execx"
	"github.com/walteh/skelrc/pkg/log"
	"github.com/walteh/skelrc/pkg/prompt"
	"github.com/walteh/skelrc/pkg/status"
)

// 🎯 Operation is one stage of the initialisation pipeline
type Operation interface {
	// Name identifies the stage in logs
	Name() string
	// Execute runs the stage to completion
	Execute(ctx context.Context) error
}

// 🔧 Options contains everything the pipeline stages share
type Options struct {
	// Root is the skeleton directory being personalised
	Root string
	// Manifest is the loaded skeleton manifest (or the defaults)
	Manifest *config.Manifest
	// Runner executes the external tools
	Runner execx.CommandRunner
	// Prompter collects the operator's answers
	Prompter prompt.Prompter
}

// 🎮 Initialiser is the one-shot pipeline over a skeleton tree.
// It carries the data the stages hand to each other: the collected answers,
// the resolved setup assets, and the rewrite outcome.
type Initialiser struct {
	opts    Options
	answers prompt.Answers
	assets  []string
	removed int
	summary *status.Summary
}

// 🏭 New creates an Initialiser with the given options
func New(opts Options) (*Initialiser, error) {
	if opts.Root == "" {
		return nil, errors.Errorf("root is required")
	}
	if opts.Manifest == nil {
		return nil, errors.Errorf("manifest is required")
	}
	if opts.Runner == nil {
		return nil, errors.Errorf("runner is required")
	}
	if opts.Prompter == nil {
		return nil, errors.Errorf("prompter is required")
	}

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, errors.Errorf("resolving root: %w", err)
	}
	opts.Root = root

	return &Initialiser{opts: opts}, nil
}

// 🏃 Run executes the whole pipeline: preflight, collect, rewrite, hooks,
// self-removal, bootstrap, then the closing messages. Failures up to and
// including the rewrite abort the run; every later stage warns and continues.
func (in *Initialiser) Run(ctx context.Context) error {
	runner := NewRunner(zerolog.Ctx(ctx))

	err := runner.Run(ctx,
		&preflightStage{in},
		&collectStage{in},
		&rewriteStage{in},
		&hooksStage{in},
		&removalStage{in},
		&bootstrapStage{in},
	)
	if err != nil {
		return err
	}

	in.finale(ctx)
	return nil
}

// 🏁 finale prints the closing lines of a completed run
func (in *Initialiser) finale(ctx context.Context) {
	logger := log.FromContext(ctx)
	if in.removed > 0 {
		logger.Info("The setup script has been removed.")
	}
	logger.Done("Project initialized successfully.")
}

// Summary returns the rewrite outcome of the last run.
func (in *Initialiser) Summary() *status.Summary {
	return in.summary
}
