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

package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/skelrc/pkg/status"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("info message")
				logger.Warning("warning message")
				logger.Error("error message")
				logger.Success("success message")
			},
			wantLogs: []string{
				"ℹ️  info message",
				"⚠️  warning message",
				"❌ error message",
				"✅ success message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Infof("info %s", "test")
				logger.Warningf("warning %s", "test")
				logger.Errorf("error %s", "test")
				logger.Successf("success %s", "test")
			},
			wantLogs: []string{
				"ℹ️  info test",
				"⚠️  warning test",
				"❌ error test",
				"✅ success test",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("initialising project skeleton")
			},
			wantLogs: []string{
				"skelrc • initialising project skeleton",
			},
		},
		{
			name: "log_newline",
			op: func(t *testing.T, logger *Logger) {
				logger.Info("first")
				logger.LogNewline()
				logger.Info("second")
			},
			wantLogs: []string{
				"ℹ️  first",
				"",
				"ℹ️  second",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create buffer for console output
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.InfoLevel)

			// Perform operation
			tt.op(t, logger)

			// Check output
			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	// Create logger
	logger := New(io.Discard, zerolog.InfoLevel)

	// Add to context
	ctx := context.Background()
	ctx = NewContext(ctx, logger)

	// Get from context
	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	// Check panic on missing logger
	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}

func TestFileChange(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	t.Run("rewritten_files_are_shown", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := New(buf, zerolog.InfoLevel)

		logger.FileChange(status.FileInfo{Path: "pyproject.toml", Status: status.StatusRewritten, Replacements: 3})

		assert.Contains(t, buf.String(), "Updated pyproject.toml", "rewritten file line should be printed")
	})

	t.Run("failures_are_shown", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := New(buf, zerolog.InfoLevel)

		logger.FileChange(status.FileInfo{
			Path:   "locked.txt",
			Status: status.StatusError,
			Error:  errors.New("permission denied"),
		})

		assert.Contains(t, buf.String(), "Failed locked.txt", "failed file line should be printed")
		assert.Contains(t, buf.String(), "permission denied", "failure reason should be printed")
	})

	t.Run("skips_are_silent_without_debug", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := New(buf, zerolog.InfoLevel)

		logger.FileChange(status.FileInfo{Path: "logo.png", Status: status.StatusSkippedBinary})

		assert.NotContains(t, buf.String(), "logo.png", "binary skips should not be printed by default")
	})

	t.Run("skips_are_shown_with_debug", func(t *testing.T) {
		pterm.EnableDebugMessages()
		defer pterm.DisableDebugMessages()

		buf := &bytes.Buffer{}
		logger := New(buf, zerolog.DebugLevel)

		logger.FileChange(status.FileInfo{Path: "logo.png", Status: status.StatusSkippedBinary})

		assert.Contains(t, buf.String(), "Skipped logo.png (binary)", "binary skips should be printed with debug enabled")
	})
}

func TestRewriteSummary(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	buf := &bytes.Buffer{}
	logger := New(buf, zerolog.InfoLevel)

	var s status.Summary
	s.Track(status.FileInfo{Path: "pyproject.toml", Status: status.StatusRewritten})
	s.Track(status.FileInfo{Path: "LICENSE", Status: status.StatusUnchanged})

	logger.RewriteSummary(&s)

	assert.Contains(t, buf.String(), "1 updated, 1 unchanged, 0 skipped, 0 failed", "summary line should be printed")
}

func TestDone(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	buf := &bytes.Buffer{}
	logger := New(buf, zerolog.InfoLevel)

	logger.Done("Project initialized successfully.")

	assert.Contains(t, buf.String(), "Project initialized successfully.", "done banner should be printed")
}
