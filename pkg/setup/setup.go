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

// Package setup resolves and removes the initialiser's own files. The tool is
// designed for exactly one use per skeleton: once the tree is personalised,
// the manifest, the configured setup files, and the binary itself (when it
// lives inside the skeleton) have no business surviving into the project.
package setup

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/walteh/skelrc/pkg/config"
	"github.com/walteh/skelrc/pkg/log"
)

// 🔎 Assets resolves the root-relative paths of the initialiser's own files:
// the loaded manifest, every configured setup file, and the running
// executable when it sits inside the root. These paths are protected from
// rewriting and removed after personalisation. Order is stable and
// duplicates collapse.
func Assets(ctx context.Context, m *config.Manifest, root string) []string {
	zlog := zerolog.Ctx(ctx)

	var assets []string
	seen := make(map[string]struct{})
	add := func(rel string) {
		rel = path.Clean(filepath.ToSlash(rel))
		if rel == "" || rel == "." || strings.HasPrefix(rel, "../") {
			return
		}
		if _, ok := seen[rel]; ok {
			return
		}
		seen[rel] = struct{}{}
		assets = append(assets, rel)
	}

	if loc := m.Location(); loc != "" {
		if rel, ok := relTo(root, loc); ok {
			add(rel)
		}
	}

	for _, f := range m.SetupFiles {
		if filepath.IsAbs(f) {
			if rel, ok := relTo(root, f); ok {
				add(rel)
			}
			continue
		}
		add(f)
	}

	if exe, err := os.Executable(); err == nil {
		if rel, ok := relTo(root, exe); ok {
			zlog.Debug().Str("exe", rel).Msg("running from inside the skeleton")
			add(rel)
		}
	} else {
		zlog.Debug().Err(err).Msg("cannot resolve running executable")
	}

	return assets
}

// 🗑️ Remove deletes the given root-relative assets from disk and returns how
// many were actually removed. An already-absent asset is not an error; any
// other failure is reported as a warning and the remaining assets are still
// removed.
func Remove(ctx context.Context, root string, assets []string) int {
	logger := log.FromContext(ctx)
	zlog := zerolog.Ctx(ctx)

	removed := 0
	for _, rel := range assets {
		p := filepath.Join(root, filepath.FromSlash(rel))
		err := os.Remove(p)
		switch {
		case err == nil:
			removed++
			zlog.Debug().Str("path", rel).Msg("removed setup asset")
		case os.IsNotExist(err):
			zlog.Debug().Str("path", rel).Msg("setup asset already absent")
		default:
			logger.Warningf("Could not remove %s: %v", rel, err)
		}
	}
	return removed
}

// relTo returns p relative to root when p sits inside root.
func relTo(root, p string) (string, bool) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", false
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(absRoot, abs)
	if err != nil {
		return "", false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}
