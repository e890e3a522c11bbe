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

// Package prompt collects the personalisation answers interactively.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 💬 Prompter asks the user for input
type Prompter interface {
	// Ask prints the prompt and returns the trimmed reply,
	// or fallback when the reply is empty.
	Ask(prompt, fallback string) (string, error)

	// YesNo asks a yes/no question; an empty reply means defaultYes,
	// otherwise only "y" and "yes" count as yes.
	YesNo(prompt string, defaultYes bool) (bool, error)
}

// 🖥️ CLIPrompter reads replies line-by-line from in and writes prompts to out
type CLIPrompter struct {
	in             *bufio.Reader
	out            io.Writer
	nonInteractive bool
}

// 🎯 New creates a CLIPrompter. With nonInteractive set, every prompt is
// answered by its default without touching in or out.
func New(in io.Reader, out io.Writer, nonInteractive bool) *CLIPrompter {
	return &CLIPrompter{
		in:             bufio.NewReader(in),
		out:            out,
		nonInteractive: nonInteractive,
	}
}

func (p *CLIPrompter) Ask(prompt, fallback string) (string, error) {
	if p.nonInteractive {
		return fallback, nil
	}

	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Errorf("reading input: %w", err)
	}

	// A closed stdin answers like an empty reply, so piping a partial
	// answer list still completes the run with defaults.
	reply := strings.TrimSpace(line)
	if reply == "" {
		return fallback, nil
	}
	return reply, nil
}

func (p *CLIPrompter) YesNo(prompt string, defaultYes bool) (bool, error) {
	if p.nonInteractive {
		return defaultYes, nil
	}

	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, errors.Errorf("reading input: %w", err)
	}

	reply := strings.ToLower(strings.TrimSpace(line))
	if reply == "" {
		return defaultYes, nil
	}
	return reply == "y" || reply == "yes", nil
}

// 📋 Answers holds the personalisation inputs.
// All three are used verbatim: no format validation, no uniqueness checks.
type Answers struct {
	Name        string // May be empty; substituted as-is
	Description string // Defaults to ""
	Version     string // Defaults to the scheme's default version
}

// 🎤 Collect asks for the three personalisation answers in order
func Collect(ctx context.Context, p Prompter, defaultVersion string) (Answers, error) {
	name, err := p.Ask("Enter project name: ", "")
	if err != nil {
		return Answers{}, errors.Errorf("asking for project name: %w", err)
	}

	description, err := p.Ask("Enter description [empty]: ", "")
	if err != nil {
		return Answers{}, errors.Errorf("asking for description: %w", err)
	}

	version, err := p.Ask(
		fmt.Sprintf("Enter version (e.g., 3.12) [%s]: ", defaultVersion),
		defaultVersion,
	)
	if err != nil {
		return Answers{}, errors.Errorf("asking for version: %w", err)
	}

	answers := Answers{Name: name, Description: description, Version: version}
	zerolog.Ctx(ctx).Debug().
		Str("name", answers.Name).
		Str("version", answers.Version).
		Msg("collected answers")

	return answers, nil
}
