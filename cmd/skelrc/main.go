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
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/skelrc/cmd/skelrc/commands"
	"github.com/walteh/skelrc/cmd/skelrc/opts"
	"github.com/walteh/skelrc/pkg/operation"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the root command and its subcommands. The shared
// options are filled by PersistentPreRunE once flags are parsed, so the
// subcommands see resolved values by the time their RunE fires.
func newRootCmd() *cobra.Command {
	ro := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "skelrc",
		Short: "One-shot initialiser for project skeletons",
		Long: `skelrc personalises a freshly cloned project skeleton. It checks the
required tooling, asks for the project name, description and version,
rewrites every placeholder in the tree, installs commit hooks, removes
its own setup files, and bootstraps a git repository with a GitHub remote.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context(), cmd.OutOrStdout())
			resolved, err := newRootOpts(ctx)
			if err != nil {
				return err
			}
			*ro = *resolved
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd.Context(), ro)
		},
	}

	addRootFlags(rootCmd)

	rootCmd.AddCommand(
		commands.NewDoctorCmd(ro),
		newVersionCmd(),
	)

	return rootCmd
}

// runInit drives the full pipeline against the resolved options.
func runInit(ctx context.Context, ro *opts.RootOpts) error {
	in, err := operation.New(operation.Options{
		Root:     ro.Root,
		Manifest: ro.Manifest,
		Runner:   ro.Runner,
		Prompter: ro.Prompter,
	})
	if err != nil {
		return errors.Errorf("creating initialiser: %w", err)
	}

	return in.Run(ctx)
}
