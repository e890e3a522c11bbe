// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/skelrc/pkg/forge"
	"github.com/walteh/skelrc/pkg/hooks"
	"github.com/walteh/skelrc/pkg/log"
	"github.com/walteh/skelrc/pkg/preflight"
	"github.com/walteh/skelrc/pkg/prompt"
	"github.com/walteh/skelrc/pkg/rewrite"
	"github.com/walteh/skelrc/pkg/setup"
)

// ✅ preflightStage hard-gates the run on the required environment tool.
// Its error message is the installation hint and must reach the console
// verbatim, so nothing above it wraps stage errors.
type preflightStage struct{ in *Initialiser }

func (s *preflightStage) Name() string { return "preflight" }

func (s *preflightStage) Execute(ctx context.Context) error {
	path, err := preflight.CheckTool(ctx, s.in.opts.Runner, s.in.opts.Manifest)
	if err != nil {
		return err
	}
	zerolog.Ctx(ctx).Debug().Str("tool", s.in.opts.Manifest.Tool.Name).Str("path", path).Msg("required tool present")
	return nil
}

// 💬 collectStage gathers the project name, description, and version
type collectStage struct{ in *Initialiser }

func (s *collectStage) Name() string { return "collect" }

func (s *collectStage) Execute(ctx context.Context) error {
	answers, err := prompt.Collect(ctx, s.in.opts.Prompter, s.in.opts.Manifest.Scheme.DefaultVersion)
	if err != nil {
		return errors.Errorf("collecting project details: %w", err)
	}
	s.in.answers = answers
	return nil
}

// 🔄 rewriteStage personalises the tree. It resolves the setup assets first
// so they are protected from rewriting, and keeps them for the removal stage.
type rewriteStage struct{ in *Initialiser }

func (s *rewriteStage) Name() string { return "rewrite" }

func (s *rewriteStage) Execute(ctx context.Context) error {
	opts := s.in.opts

	table, err := opts.Manifest.Table(s.in.answers.Name, s.in.answers.Description, s.in.answers.Version)
	if err != nil {
		return errors.Errorf("building replacement table: %w", err)
	}

	s.in.assets = setup.Assets(ctx, opts.Manifest, opts.Root)

	rw, err := rewrite.New(rewrite.Options{
		Root:      opts.Root,
		Table:     table,
		Exclude:   opts.Manifest.Exclude,
		Protected: s.in.assets,
	})
	if err != nil {
		return errors.Errorf("creating rewriter: %w", err)
	}

	summary, err := rw.Run(ctx)
	if err != nil {
		return errors.Errorf("rewriting skeleton: %w", err)
	}
	s.in.summary = summary
	log.FromContext(ctx).RewriteSummary(summary)
	return nil
}

// 🪝 hooksStage installs commit-hook tooling; always advisory
type hooksStage struct{ in *Initialiser }

func (s *hooksStage) Name() string { return "hooks" }

func (s *hooksStage) Execute(ctx context.Context) error {
	hooks.Install(ctx, s.in.opts.Runner, s.in.opts.Manifest, s.in.opts.Root)
	return nil
}

// 🗑️ removalStage deletes the setup assets resolved during the rewrite
type removalStage struct{ in *Initialiser }

func (s *removalStage) Name() string { return "self-removal" }

func (s *removalStage) Execute(ctx context.Context) error {
	s.in.removed = setup.Remove(ctx, s.in.opts.Root, s.in.assets)
	return nil
}

// 🚀 bootstrapStage creates the local repository and the GitHub remote
type bootstrapStage struct{ in *Initialiser }

func (s *bootstrapStage) Name() string { return "bootstrap" }

func (s *bootstrapStage) Execute(ctx context.Context) error {
	forge.Bootstrap(ctx, s.in.opts.Runner, s.in.opts.Prompter, s.in.opts.Manifest, s.in.opts.Root, s.in.answers.Name)
	return nil
}
