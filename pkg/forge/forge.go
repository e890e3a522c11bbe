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

// Package forge bootstraps version control for the personalised skeleton: a
// local git repository with an initial commit, and a remote GitHub repository
// created and pushed through the gh CLI.
package forge

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/skelrc/pkg/config"
	"github.com/walteh/skelrc/pkg/execx"
	"github.com/walteh/skelrc/pkg/log"
	"github.com/walteh/skelrc/pkg/preflight"
	"github.com/walteh/skelrc/pkg/prompt"
)

// 🚀 Bootstrap initialises a local repository and creates+pushes the remote.
// Personalisation is already done by the time this runs, so every failure
// here is advisory: it prints guidance and returns, and never rolls back
// prior steps. A remote is only ever created on top of at least one commit.
func Bootstrap(ctx context.Context, cr execx.CommandRunner, p prompt.Prompter, m *config.Manifest, root, projectName string) {
	logger := log.FromContext(ctx)
	zlog := zerolog.Ctx(ctx)

	if _, err := preflight.CheckGit(ctx, cr); err != nil {
		logger.Warning(err.Error())
		return
	}

	remoteWanted := m.RemoteEnabled()
	if remoteWanted {
		if _, err := preflight.CheckGh(ctx, cr); err != nil {
			logger.Warning(err.Error())
			return
		}
		if err := preflight.CheckGhAuth(ctx, cr); err != nil {
			logger.Warning(err.Error())
			return
		}
	}

	if !ensureLocalRepo(ctx, cr, m, root) {
		return
	}

	if !remoteWanted {
		zlog.Debug().Msg("remote creation disabled by manifest")
		return
	}

	createRemote(ctx, cr, p, root, projectName)
}

// 🏗️ ensureLocalRepo makes sure the root is a git repository with at least
// one commit. Returns false when that could not be achieved, in which case a
// remote must not be created.
func ensureLocalRepo(ctx context.Context, cr execx.CommandRunner, m *config.Manifest, root string) bool {
	logger := log.FromContext(ctx)

	committed := false
	if _, err := os.Stat(filepath.Join(root, ".git")); err == nil {
		logger.Info("Git repository already initialized.")
		committed = hasCommits(ctx, cr, root)
	} else {
		res, err := cr.Run(ctx, "git", []string{"init"}, execx.RunOpts{Dir: root, Stream: true})
		if err == nil && res.ExitCode != 0 {
			err = errors.Errorf("exit status %d", res.ExitCode)
		}
		if err != nil {
			logger.Warningf("Failed to initialize repository: %v", err)
			return false
		}
		logger.Info("Initialized empty Git repository.")
	}

	if committed {
		return true
	}

	res, err := cr.Run(ctx, "git", []string{"add", "."}, execx.RunOpts{Dir: root, Stream: true})
	if err == nil && res.ExitCode != 0 {
		err = errors.Errorf("exit status %d", res.ExitCode)
	}
	if err != nil {
		logger.Warningf("Failed to stage files: %v", err)
		return false
	}
	logger.Info("Added files to staging area.")

	res, err = cr.Run(ctx, "git", []string{"commit", "-m", m.CommitMessage}, execx.RunOpts{Dir: root, Stream: true})
	if err != nil || res.ExitCode != 0 {
		logger.Warning("No changes to commit or commit failed.")
		return false
	}
	logger.Info("Created initial commit.")
	return true
}

// 🔍 hasCommits reports whether HEAD resolves to a commit
func hasCommits(ctx context.Context, cr execx.CommandRunner, root string) bool {
	res, err := cr.Run(ctx, "git", []string{"rev-parse", "--verify", "HEAD"}, execx.RunOpts{Dir: root})
	return err == nil && res.ExitCode == 0
}

// ☁️ createRemote prompts for visibility, then creates and pushes the
// repository under the collected project name.
func createRemote(ctx context.Context, cr execx.CommandRunner, p prompt.Prompter, root, projectName string) {
	logger := log.FromContext(ctx)

	public, err := p.YesNo("Make the repository public? (y/n) [y]: ", true)
	if err != nil {
		logger.Warningf("Failed to read visibility: %v", err)
		return
	}
	visibility := "--private"
	if public {
		visibility = "--public"
	}

	args := []string{"repo", "create", projectName, visibility, "--source=.", "--push"}
	res, err := cr.Run(ctx, "gh", args, execx.RunOpts{Dir: root, Stream: true})
	if err == nil && res.ExitCode != 0 {
		err = errors.Errorf("exit status %d", res.ExitCode)
	}
	if err != nil {
		logger.Warningf("Failed to create GitHub repository: %v", err)
		return
	}

	logger.Successf("Created and pushed to GitHub repository: %s", projectName)
}
