package commands

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/skelrc/cmd/skelrc/opts"
	"github.com/walteh/skelrc/pkg/config"
	"github.com/walteh/skelrc/pkg/execx"
	"github.com/walteh/skelrc/pkg/prompt"
	"github.com/walteh/skelrc/pkg/testutils"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	zlog := zerolog.New(os.Stderr).Level(zerolog.WarnLevel)
	return zlog.WithContext(context.Background())
}

func newDoctorOpts(t *testing.T, cr *testutils.ScriptedRunner) *opts.RootOpts {
	t.Helper()
	return &opts.RootOpts{
		Root:     t.TempDir(),
		Manifest: config.Default(),
		Runner:   cr,
		Prompter: prompt.New(bytes.NewReader(nil), bytes.NewBuffer(nil), true),
	}
}

func TestDoctorCmd(t *testing.T) {
	t.Run("healthy_environment_succeeds", func(t *testing.T) {
		cr := testutils.NewScriptedRunner()
		cr.On("git", []string{"--version"}, execx.CmdResult{Stdout: "git version 2.43.0\n"})
		cr.On("gh", []string{"--version"}, execx.CmdResult{Stdout: "gh version 2.40.0 (2024-01-01)\nhttps://github.com/cli/cli/releases/tag/v2.40.0\n"})
		cr.On("gh", []string{"auth", "status"}, execx.CmdResult{ExitCode: 0})

		cmd := NewDoctorCmd(newDoctorOpts(t, cr))
		buf := &bytes.Buffer{}
		cmd.SetOut(buf)

		err := cmd.ExecuteContext(testContext(t))
		require.NoError(t, err, "doctor should succeed")

		assert.Contains(t, buf.String(), "tool_present: true", "uv should be reported present")
		assert.Contains(t, buf.String(), "git_version: git version 2.43.0", "git version should be reported")
		assert.Contains(t, buf.String(), "gh_authenticated: true", "gh auth should be reported")
	})

	t.Run("missing_tool_fails_with_exit_code", func(t *testing.T) {
		cr := testutils.NewScriptedRunner()
		cr.Missing("uv")
		cr.Missing("git")
		cr.Missing("gh")

		cmd := NewDoctorCmd(newDoctorOpts(t, cr))
		buf := &bytes.Buffer{}
		cmd.SetOut(buf)
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true

		err := cmd.ExecuteContext(testContext(t))
		require.Error(t, err, "doctor should fail when the tool is missing")
		assert.Contains(t, err.Error(), "uv is not installed", "error should name the tool")

		assert.Contains(t, buf.String(), "tool_present: false", "report should still be printed")
		assert.Contains(t, buf.String(), "git_present: false", "git absence should be reported")
	})

	t.Run("missing_git_is_reported_but_not_fatal", func(t *testing.T) {
		cr := testutils.NewScriptedRunner()
		cr.Missing("git")
		cr.Missing("gh")

		cmd := NewDoctorCmd(newDoctorOpts(t, cr))
		buf := &bytes.Buffer{}
		cmd.SetOut(buf)

		err := cmd.ExecuteContext(testContext(t))
		require.NoError(t, err, "only the environment manager gates doctor")

		assert.Contains(t, buf.String(), "tool_present: true", "uv should be reported present")
		assert.Contains(t, buf.String(), "git_present: false", "git absence should be reported")
		assert.Contains(t, buf.String(), "gh_present: false", "gh absence should be reported")
	})
}
