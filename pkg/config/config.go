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

package config

import (
	"fmt"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/skelrc/pkg/text"
)

// Canonical defaults. A skeleton with no manifest behaves exactly like the
// original Python project template these were lifted from.
const (
	DefaultToolName      = "uv"
	DefaultInstallHint   = "https://docs.astral.sh/uv/getting-started/installation/#installation-methods"
	DefaultCommitMessage = "Initial commit"
)

// 🔧 Tool identifies the environment manager the skeleton requires
type Tool struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`                 // Executable looked up on PATH (default "uv")
	InstallHint string `json:"install_hint,omitempty" yaml:"install_hint,omitempty"` // Printed when the tool is missing
}

// 🪝 Hooks configures commit-hook installation
type Hooks struct {
	Enabled  *bool      `json:"enabled,omitempty" yaml:"enabled,omitempty"`   // Nil means enabled
	Commands [][]string `json:"commands,omitempty" yaml:"commands,omitempty"` // Argv lists passed to the tool
}

// 🚫 Exclude lists paths the rewriter must never touch
type Exclude struct {
	Dirs  []string `json:"dirs,omitempty" yaml:"dirs,omitempty"`   // Directory names pruned during the walk
	Globs []string `json:"globs,omitempty" yaml:"globs,omitempty"` // Doublestar patterns matched against relative paths
}

// 🌐 Remote configures GitHub repository creation
type Remote struct {
	Enabled *bool `json:"enabled,omitempty" yaml:"enabled,omitempty"` // Nil means enabled
}

// 📚 Manifest is the optional per-skeleton configuration
type Manifest struct {
	Scheme        Scheme   `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	Tool          Tool     `json:"tool,omitempty" yaml:"tool,omitempty"`
	Hooks         Hooks    `json:"hooks,omitempty" yaml:"hooks,omitempty"`
	Exclude       Exclude  `json:"exclude,omitempty" yaml:"exclude,omitempty"`
	SetupFiles    []string `json:"setup_files,omitempty" yaml:"setup_files,omitempty"`
	CommitMessage string   `json:"commit_message,omitempty" yaml:"commit_message,omitempty"`
	Remote        Remote   `json:"remote,omitempty" yaml:"remote,omitempty"`

	location string
}

// 🎯 Default returns the manifest used when a skeleton ships none
func Default() *Manifest {
	m := &Manifest{}
	m.applyDefaults()
	return m
}

func (m *Manifest) applyDefaults() {
	m.Scheme.applyDefaults()
	if m.Tool.Name == "" {
		m.Tool.Name = DefaultToolName
	}
	if m.Tool.InstallHint == "" {
		m.Tool.InstallHint = DefaultInstallHint
	}
	if m.CommitMessage == "" {
		m.CommitMessage = DefaultCommitMessage
	}
}

// 🔍 Validate checks if the manifest is valid
func (m *Manifest) Validate() error {
	if err := m.Scheme.validate(); err != nil {
		return errors.Errorf("scheme: %w", err)
	}
	for i, cmd := range m.Hooks.Commands {
		if len(cmd) == 0 {
			return errors.Errorf("hooks.commands[%d] is empty", i)
		}
	}
	for i, f := range m.SetupFiles {
		if f == "" {
			return errors.Errorf("setup_files[%d] is empty", i)
		}
	}
	return nil
}

// 📍 Location returns the path the manifest was loaded from, or "" for defaults
func (m *Manifest) Location() string {
	return m.location
}

// 🪝 HooksEnabled reports whether commit hooks should be installed
func (m *Manifest) HooksEnabled() bool {
	return m.Hooks.Enabled == nil || *m.Hooks.Enabled
}

// 🌐 RemoteEnabled reports whether a GitHub repository should be created
func (m *Manifest) RemoteEnabled() bool {
	return m.Remote.Enabled == nil || *m.Remote.Enabled
}

// 📋 HookCommands returns the argv lists to pass to the tool after rewriting
func (m *Manifest) HookCommands() [][]string {
	if len(m.Hooks.Commands) > 0 {
		return m.Hooks.Commands
	}
	return [][]string{
		{"run", "pre-commit", "install"},
		{"run", "pre-commit", "run", "--all-files"},
	}
}

// 🔄 Table builds the replacement table for the collected answers
func (m *Manifest) Table(name, description, version string) ([]text.Replacement, error) {
	return m.Scheme.Table(name, description, version)
}

// 📝 String returns a string representation of the manifest
func (m *Manifest) String() string {
	loc := m.location
	if loc == "" {
		loc = "<defaults>"
	}
	return fmt.Sprintf("%s scheme via %s (%s)", m.Scheme.Kind, m.Tool.Name, loc)
}
