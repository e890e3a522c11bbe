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

package rewrite

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/skelrc/pkg/config"
	"github.com/walteh/skelrc/pkg/log"
	"github.com/walteh/skelrc/pkg/status"
	"github.com/walteh/skelrc/pkg/text"
)

// 📦 Options configures a single rewrite pass
type Options struct {
	Root      string             // Absolute path of the skeleton root
	Table     []text.Replacement // Token substitutions to apply
	Exclude   config.Exclude     // Extra prune names and skip patterns
	Protected []string           // Root-relative paths that are never rewritten
}

// 🔄 Rewriter applies a replacement table to every text file under a root.
// Directories are pruned before descent, so nothing inside a hidden or cache
// directory is ever opened. Files are written back only when their content
// actually changed, preserving the original file mode.
type Rewriter struct {
	root      string
	replacer  *text.Replacer
	exclude   config.Exclude
	protected map[string]struct{}
}

// 🏭 New creates a Rewriter for the given options
func New(opts Options) (*Rewriter, error) {
	if opts.Root == "" {
		return nil, errors.New("root is required")
	}

	replacer, err := text.NewReplacer(opts.Table)
	if err != nil {
		return nil, errors.Errorf("building replacement table: %w", err)
	}

	protected := make(map[string]struct{}, len(opts.Protected))
	for _, p := range opts.Protected {
		protected[path.Clean(filepath.ToSlash(p))] = struct{}{}
	}

	return &Rewriter{
		root:      opts.Root,
		replacer:  replacer,
		exclude:   opts.Exclude,
		protected: protected,
	}, nil
}

// 🏃 Run walks the tree once and applies the table to every eligible file.
// Per-file read and write failures are recorded in the summary and the walk
// continues; only a failure to walk the root itself aborts the pass.
func (r *Rewriter) Run(ctx context.Context) (*status.Summary, error) {
	logger := log.FromContext(ctx)
	zlog := zerolog.Ctx(ctx)

	zlog.Debug().Str("root", r.root).Msg("starting rewrite pass")

	summary := &status.Summary{}

	walkErr := filepath.WalkDir(r.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == r.root {
				return errors.Errorf("walking %s: %w", r.root, err)
			}
			info := status.FileInfo{Path: r.relPath(p), Status: status.StatusError, Error: err}
			summary.Track(info)
			logger.FileChange(info)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if p == r.root {
				return nil
			}
			if r.prunedDir(d.Name()) {
				zlog.Debug().Str("dir", r.relPath(p)).Msg("pruning directory")
				return fs.SkipDir
			}
			return nil
		}

		info := r.visitFile(ctx, p, d)
		summary.Track(info)
		logger.FileChange(info)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	zlog.Debug().Str("summary", summary.String()).Msg("rewrite pass finished")
	return summary, nil
}

// 📄 visitFile rewrites a single file and reports the outcome
func (r *Rewriter) visitFile(ctx context.Context, p string, d fs.DirEntry) status.FileInfo {
	rel := r.relPath(p)

	if _, ok := r.protected[rel]; ok {
		return status.FileInfo{Path: rel, Status: status.StatusSkippedExcluded}
	}
	if r.shouldIgnore(ctx, rel) {
		return status.FileInfo{Path: rel, Status: status.StatusSkippedExcluded}
	}

	content, err := os.ReadFile(p)
	if err != nil {
		return status.FileInfo{Path: rel, Status: status.StatusError, Error: errors.Errorf("reading file: %w", err)}
	}

	if isBinary(content) {
		return status.FileInfo{Path: rel, Status: status.StatusSkippedBinary}
	}

	result := r.replacer.Replace(content)
	if !result.WasModified {
		return status.FileInfo{Path: rel, Status: status.StatusUnchanged, Replacements: result.ReplacementCount}
	}

	mode := fs.FileMode(0o644)
	if fi, err := d.Info(); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := os.WriteFile(p, result.ModifiedContent, mode); err != nil {
		return status.FileInfo{Path: rel, Status: status.StatusError, Error: errors.Errorf("writing file: %w", err)}
	}

	return status.FileInfo{Path: rel, Status: status.StatusRewritten, Replacements: result.ReplacementCount}
}

// 🔍 shouldIgnore checks if a file matches an exclusion pattern
func (r *Rewriter) shouldIgnore(ctx context.Context, rel string) bool {
	if len(r.exclude.Globs) == 0 {
		return false
	}

	zlog := zerolog.Ctx(ctx)
	for _, pattern := range r.exclude.Globs {
		matched, err := doublestar.Match(pattern, rel)
		if err != nil {
			zlog.Debug().Str("pattern", pattern).Str("path", rel).Err(err).Msg("error matching pattern")
			continue
		}
		if matched {
			zlog.Debug().Str("file", rel).Str("pattern", pattern).Msg("file excluded by pattern")
			return true
		}
	}

	return false
}

// 🚫 prunedDir checks if a directory should be skipped entirely
func (r *Rewriter) prunedDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	if name == "__pycache__" {
		return true
	}
	for _, d := range r.exclude.Dirs {
		if name == d {
			return true
		}
	}
	return false
}

// 📍 relPath returns p relative to the root, in slash form
func (r *Rewriter) relPath(p string) string {
	rel, err := filepath.Rel(r.root, p)
	if err != nil {
		return filepath.ToSlash(p)
	}
	return filepath.ToSlash(rel)
}

// isBinary reports whether content cannot be treated as UTF-8 text.
// A NUL byte is decodable UTF-8, but no real text file carries one.
func isBinary(content []byte) bool {
	if bytes.IndexByte(content, 0x00) >= 0 {
		return true
	}
	return !utf8.Valid(content)
}
