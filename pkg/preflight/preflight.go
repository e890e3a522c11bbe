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

// Package preflight checks the external tools the pipeline depends on.
//
// Only the environment manager is a hard gate: when it is missing the run
// stops before any filesystem mutation. git, gh, and gh authentication are
// consulted later and only decide whether repository bootstrapping happens.
package preflight

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/skelrc/pkg/config"
	"github.com/walteh/skelrc/pkg/execx"
)

// 🚦 CheckTool verifies the required environment manager is on PATH.
// The returned error carries the user-facing installation hint.
func CheckTool(ctx context.Context, cr execx.CommandRunner, m *config.Manifest) (string, error) {
	path, err := cr.LookPath(m.Tool.Name)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("tool", m.Tool.Name).Msg("required tool not found")
		return "", errors.Errorf("%s is not installed. Please, install it from: %s",
			m.Tool.Name, m.Tool.InstallHint)
	}
	return path, nil
}

// 🔍 CheckGit verifies git is installed and returns its version line
func CheckGit(ctx context.Context, cr execx.CommandRunner) (string, error) {
	result, err := cr.Run(ctx, "git", []string{"--version"}, execx.RunOpts{})
	if err != nil || result.ExitCode != 0 {
		return "", errors.New("Git is not installed. Please install Git to initialize the repository.")
	}
	return strings.TrimSpace(result.Stdout), nil
}

// 🔍 CheckGh verifies the GitHub CLI is installed and returns its version line
func CheckGh(ctx context.Context, cr execx.CommandRunner) (string, error) {
	result, err := cr.Run(ctx, "gh", []string{"--version"}, execx.RunOpts{})
	if err != nil || result.ExitCode != 0 {
		return "", errors.New("GitHub CLI (gh) is not installed. Please install it from: https://cli.github.com/")
	}

	// gh --version outputs multiple lines; take the first
	lines := strings.Split(result.Stdout, "\n")
	return strings.TrimSpace(lines[0]), nil
}

// 🔑 CheckGhAuth verifies the GitHub CLI is authenticated
func CheckGhAuth(ctx context.Context, cr execx.CommandRunner) error {
	result, err := cr.Run(ctx, "gh", []string{"auth", "status"}, execx.RunOpts{})
	if err != nil || result.ExitCode != 0 {
		return errors.New("You are not authenticated with GitHub. Please run 'gh auth login' first.")
	}
	return nil
}
