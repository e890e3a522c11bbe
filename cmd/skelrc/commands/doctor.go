package commands

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/skelrc/cmd/skelrc/opts"
	"github.com/walteh/skelrc/pkg/preflight"
)

// NewDoctorCmd creates a new doctor command
func NewDoctorCmd(ro *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Inspect the environment without touching the skeleton",
		Long: `Doctor runs every preflight check and prints the outcome.
It will:
1. Probe the environment manager the manifest requires
2. Probe git and the GitHub CLI
3. Check GitHub authentication
4. Report the manifest and scheme in effect

Nothing is modified; the command fails only when the required
environment manager is missing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			report := preflight.Diagnose(ctx, ro.Runner, ro.Manifest, ro.Root)
			report.Write(cmd.OutOrStdout())

			if !report.Healthy() {
				return errors.Errorf("%s is not installed", ro.Manifest.Tool.Name)
			}
			return nil
		},
	}

	return cmd
}
