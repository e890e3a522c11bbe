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

package preflight

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/skelrc/pkg/config"
	"github.com/walteh/skelrc/pkg/execx"
	"github.com/walteh/skelrc/pkg/testutils"
)

func testContext() context.Context {
	return zerolog.New(os.Stderr).WithContext(context.Background())
}

func TestCheckTool(t *testing.T) {
	t.Run("tool_present", func(t *testing.T) {
		cr := testutils.NewScriptedRunner()

		path, err := CheckTool(testContext(), cr, config.Default())
		require.NoError(t, err, "CheckTool should succeed when the tool is on PATH")
		assert.Equal(t, "/usr/bin/uv", path, "path should match")
	})

	t.Run("tool_missing", func(t *testing.T) {
		cr := testutils.NewScriptedRunner()
		cr.Missing("uv")

		_, err := CheckTool(testContext(), cr, config.Default())
		require.Error(t, err, "CheckTool should fail when the tool is missing")
		assert.Equal(t,
			"uv is not installed. Please, install it from: "+config.DefaultInstallHint,
			err.Error(), "error should carry the installation hint")
	})

	t.Run("manifest_overrides_tool", func(t *testing.T) {
		cr := testutils.NewScriptedRunner()
		cr.Missing("rye")

		m := config.Default()
		m.Tool.Name = "rye"
		m.Tool.InstallHint = "https://rye.astral.sh"

		_, err := CheckTool(testContext(), cr, m)
		require.Error(t, err, "CheckTool should fail when the tool is missing")
		assert.Equal(t,
			"rye is not installed. Please, install it from: https://rye.astral.sh",
			err.Error(), "error should name the configured tool and hint")
	})
}

func TestCheckGit(t *testing.T) {
	t.Run("git_present", func(t *testing.T) {
		cr := testutils.NewScriptedRunner()
		cr.On("git", []string{"--version"}, execx.CmdResult{Stdout: "git version 2.43.0\n"})

		version, err := CheckGit(testContext(), cr)
		require.NoError(t, err, "CheckGit should succeed")
		assert.Equal(t, "git version 2.43.0", version, "version should be trimmed")
	})

	t.Run("git_missing", func(t *testing.T) {
		cr := testutils.NewScriptedRunner()

		_, err := CheckGit(testContext(), cr)
		require.Error(t, err, "CheckGit should fail")
		assert.Equal(t,
			"Git is not installed. Please install Git to initialize the repository.",
			err.Error(), "error should carry the guidance message")
	})
}

func TestCheckGh(t *testing.T) {
	t.Run("gh_present", func(t *testing.T) {
		cr := testutils.NewScriptedRunner()
		cr.On("gh", []string{"--version"}, execx.CmdResult{
			Stdout: "gh version 2.40.0 (2024-01-09)\nhttps://github.com/cli/cli/releases/tag/v2.40.0\n",
		})

		version, err := CheckGh(testContext(), cr)
		require.NoError(t, err, "CheckGh should succeed")
		assert.Equal(t, "gh version 2.40.0 (2024-01-09)", version, "version should be the first line")
	})

	t.Run("gh_missing", func(t *testing.T) {
		cr := testutils.NewScriptedRunner()

		_, err := CheckGh(testContext(), cr)
		require.Error(t, err, "CheckGh should fail")
		assert.Equal(t,
			"GitHub CLI (gh) is not installed. Please install it from: https://cli.github.com/",
			err.Error(), "error should carry the installation hint")
	})
}

func TestCheckGhAuth(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		cr := testutils.NewScriptedRunner()
		cr.On("gh", []string{"auth", "status"}, execx.CmdResult{ExitCode: 0})

		err := CheckGhAuth(testContext(), cr)
		require.NoError(t, err, "CheckGhAuth should succeed")
	})

	t.Run("not_authenticated", func(t *testing.T) {
		cr := testutils.NewScriptedRunner()
		cr.On("gh", []string{"auth", "status"}, execx.CmdResult{ExitCode: 1})

		err := CheckGhAuth(testContext(), cr)
		require.Error(t, err, "CheckGhAuth should fail")
		assert.Equal(t,
			"You are not authenticated with GitHub. Please run 'gh auth login' first.",
			err.Error(), "error should carry the login guidance")
	})
}

func TestDiagnose(t *testing.T) {
	t.Run("everything_present", func(t *testing.T) {
		cr := testutils.NewScriptedRunner()
		cr.On("git", []string{"--version"}, execx.CmdResult{Stdout: "git version 2.43.0\n"})
		cr.On("gh", []string{"--version"}, execx.CmdResult{Stdout: "gh version 2.40.0\n"})
		cr.On("gh", []string{"auth", "status"}, execx.CmdResult{ExitCode: 0})

		report := Diagnose(testContext(), cr, config.Default(), "/work/demo")

		assert.True(t, report.Healthy(), "report should be healthy")
		assert.True(t, report.ToolPresent, "tool should be present")
		assert.Equal(t, "/usr/bin/uv", report.ToolPath, "tool path should match")
		assert.True(t, report.GitPresent, "git should be present")
		assert.Equal(t, "git version 2.43.0", report.GitVersion, "git version should match")
		assert.True(t, report.GhPresent, "gh should be present")
		assert.True(t, report.GhAuthenticated, "gh should be authenticated")
		assert.Equal(t, "<defaults>", report.ManifestPath, "manifest path should show defaults")
	})

	t.Run("nothing_present", func(t *testing.T) {
		cr := testutils.NewScriptedRunner()
		cr.Missing("uv")

		report := Diagnose(testContext(), cr, config.Default(), "/work/demo")

		assert.False(t, report.Healthy(), "report should be unhealthy")
		assert.False(t, report.ToolPresent, "tool should be absent")
		assert.False(t, report.GitPresent, "git should be absent")
		assert.False(t, report.GhPresent, "gh should be absent")
		assert.False(t, report.GhAuthenticated, "gh auth should be false when gh is absent")
	})
}

func TestReport_Write(t *testing.T) {
	report := Report{
		Root:            "/work/demo",
		ManifestPath:    "<defaults>",
		SchemeKind:      "literal",
		Tool:            "uv",
		ToolPresent:     true,
		ToolPath:        "/usr/bin/uv",
		GitPresent:      true,
		GitVersion:      "git version 2.43.0",
		GhPresent:       false,
		GhAuthenticated: false,
		HooksEnabled:    true,
		RemoteEnabled:   true,
	}

	buf := &bytes.Buffer{}
	report.Write(buf)

	want := "root: /work/demo\n" +
		"manifest: <defaults>\n" +
		"scheme: literal\n" +
		"tool: uv\n" +
		"tool_present: true\n" +
		"tool_path: /usr/bin/uv\n" +
		"git_present: true\n" +
		"git_version: git version 2.43.0\n" +
		"gh_present: false\n" +
		"gh_version: \n" +
		"gh_authenticated: false\n" +
		"hooks_enabled: true\n" +
		"remote_enabled: true\n"
	assert.Equal(t, want, buf.String(), "report output should be stable")
}
