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

// Package hooks installs commit-hook tooling into the personalised skeleton.
package hooks

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/walteh/skelrc/pkg/config"
	"github.com/walteh/skelrc/pkg/execx"
	"github.com/walteh/skelrc/pkg/log"
)

// 🪝 Install runs the configured hook commands through the environment tool.
// Installation is advisory: a failing command is reported as a warning and
// the remaining commands still run. Nothing here can abort the run.
func Install(ctx context.Context, cr execx.CommandRunner, m *config.Manifest, root string) {
	logger := log.FromContext(ctx)
	zlog := zerolog.Ctx(ctx)

	if !m.HooksEnabled() {
		zlog.Debug().Msg("commit hooks disabled by manifest")
		return
	}

	for _, args := range m.HookCommands() {
		display := m.Tool.Name + " " + strings.Join(args, " ")

		res, err := cr.Run(ctx, m.Tool.Name, args, execx.RunOpts{Dir: root})
		if err != nil {
			logger.Warningf("Hook command failed: %s: %v", display, err)
			continue
		}
		if res.ExitCode != 0 {
			logger.Warningf("Hook command failed: %s (exit %d)", display, res.ExitCode)
			zlog.Debug().Str("cmd", display).Int("exit", res.ExitCode).Str("stderr", res.Stderr).Msg("hook command output")
			continue
		}
		zlog.Debug().Str("cmd", display).Msg("hook command succeeded")
	}
}
