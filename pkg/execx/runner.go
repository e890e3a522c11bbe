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

// Package execx provides a stub-friendly interface for running external commands.
//
// Every external tool skelrc touches (uv, git, gh, pre-commit) is a black box
// reached only through its command-line surface, so the whole pipeline takes a
// CommandRunner instead of calling os/exec directly.
package execx

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📋 CmdResult holds the result of a command execution
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// 🔧 RunOpts holds optional parameters for command execution
type RunOpts struct {
	Dir    string // Working directory (optional)
	Stream bool   // Mirror output to the terminal while capturing it
}

// 🏃 CommandRunner is the interface for running external commands.
// Implementations must be safe for stubbing in tests.
type CommandRunner interface {
	// Run executes a command and returns the result.
	// Returns CmdResult with ExitCode set if the process exits (even non-zero).
	// Returns error only for execution failures (binary not found, ctx canceled, io failure).
	Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error)

	// LookPath reports where name resolves on PATH.
	LookPath(name string) (string, error)
}

// ⚙️ RealRunner is the production implementation of CommandRunner using os/exec
type RealRunner struct{}

// 🎯 NewRealRunner creates a new RealRunner
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// Run executes the command and captures stdout/stderr. With Stream set the
// output is additionally mirrored to the terminal, matching how interactive
// steps (git init, gh repo create) show their own progress.
func (r *RealRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error) {
	zerolog.Ctx(ctx).Debug().
		Str("command", name).
		Strs("args", args).
		Str("dir", opts.Dir).
		Msg("running command")

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	if opts.Stream {
		cmd.Stdout = io.MultiWriter(&stdout, os.Stdout)
		cmd.Stderr = io.MultiWriter(&stderr, os.Stderr)
	} else {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	err := cmd.Run()

	result := CmdResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		// Exit errors mean the process ran to completion; the exit code is
		// the outcome, not a failure of the runner.
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, errors.Errorf("running %s: %w", name, err)
	}

	result.ExitCode = 0
	return result, nil
}

// LookPath reports where name resolves on PATH.
func (r *RealRunner) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", errors.Errorf("looking up %s: %w", name, err)
	}
	return path, nil
}
