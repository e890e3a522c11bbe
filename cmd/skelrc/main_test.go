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

package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRootFlags overrides the package-level flag values for one test
// and restores them afterwards.
func setRootFlags(t *testing.T, config, root string) {
	t.Helper()
	prevConfig, prevDir := configFile, dir
	configFile, dir = config, root
	t.Cleanup(func() {
		configFile, dir = prevConfig, prevDir
	})
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	zlog := zerolog.New(os.Stderr).Level(zerolog.WarnLevel)
	return zlog.WithContext(context.Background())
}

func TestNewRootOpts(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(t *testing.T) (config string, root string)
		wantTool    string
		wantErr     bool
		errContains string
	}{
		{
			name: "probes_manifest_in_root",
			setup: func(t *testing.T) (string, string) {
				tmpDir := t.TempDir()
				manifest := "tool:\n  name: rye\n  install_hint: https://rye.astral.sh/\n"
				err := os.WriteFile(filepath.Join(tmpDir, ".skelrc.yaml"), []byte(manifest), 0o644)
				require.NoError(t, err, "writing manifest")
				return "", tmpDir
			},
			wantTool: "rye",
		},
		{
			name: "explicit_config_wins_over_probing",
			setup: func(t *testing.T) (string, string) {
				tmpDir := t.TempDir()
				probed := "tool:\n  name: rye\n"
				err := os.WriteFile(filepath.Join(tmpDir, ".skelrc.yaml"), []byte(probed), 0o644)
				require.NoError(t, err, "writing probed manifest")

				explicit := filepath.Join(tmpDir, "custom.yaml")
				err = os.WriteFile(explicit, []byte("tool:\n  name: poetry\n"), 0o644)
				require.NoError(t, err, "writing explicit manifest")
				return explicit, tmpDir
			},
			wantTool: "poetry",
		},
		{
			name: "skeleton_without_manifest_gets_defaults",
			setup: func(t *testing.T) (string, string) {
				return "", t.TempDir()
			},
			wantTool: "uv",
		},
		{
			name: "broken_manifest_fails",
			setup: func(t *testing.T) (string, string) {
				tmpDir := t.TempDir()
				err := os.WriteFile(filepath.Join(tmpDir, ".skelrc.yaml"), []byte("tool: [broken\n"), 0o644)
				require.NoError(t, err, "writing manifest")
				return "", tmpDir
			},
			wantErr:     true,
			errContains: "loading manifest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, root := tt.setup(t)
			setRootFlags(t, config, root)

			ro, err := newRootOpts(testContext(t))
			if tt.wantErr {
				require.Error(t, err, "newRootOpts should fail")
				assert.Contains(t, err.Error(), tt.errContains, "error should name the failing step")
				return
			}

			require.NoError(t, err, "newRootOpts should succeed")
			assert.Equal(t, tt.wantTool, ro.Manifest.Tool.Name, "manifest tool mismatch")
			assert.True(t, filepath.IsAbs(ro.Root), "root should be absolute")
			assert.NotNil(t, ro.Runner, "runner should be set")
			assert.NotNil(t, ro.Prompter, "prompter should be set")
		})
	}
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	for _, flag := range []string{"config", "dir", "defaults", "debug"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %s should be registered", flag)
	}

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "doctor", "doctor subcommand should be registered")
	assert.Contains(t, names, "version", "version subcommand should be registered")
}

func TestVersionCommand(t *testing.T) {
	cmd := newVersionCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)

	err := cmd.Execute()
	require.NoError(t, err, "version command should succeed")

	assert.Contains(t, buf.String(), "skelrc version info:", "output should carry the banner")
	assert.Contains(t, buf.String(), runtime.Version(), "output should carry the Go version")
}

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()

	assert.Equal(t, runtime.Version(), info.GoVersion, "go version mismatch")
	assert.Equal(t, fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH), info.Platform, "platform mismatch")
	assert.NotEmpty(t, info.Version, "version should never be empty")
}
