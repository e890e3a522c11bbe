package preflight

import (
	"context"
	"fmt"
	"io"

	"github.com/walteh/skelrc/pkg/config"
	"github.com/walteh/skelrc/pkg/execx"
)

// 🩺 Report holds every doctor check outcome
type Report struct {
	Root         string
	ManifestPath string
	SchemeKind   string
	Tool         string

	ToolPresent bool
	ToolPath    string

	GitPresent bool
	GitVersion string

	GhPresent       bool
	GhVersion       string
	GhAuthenticated bool

	HooksEnabled  bool
	RemoteEnabled bool
}

// 🔬 Diagnose runs every check without mutating anything.
// Failures become report fields instead of errors.
func Diagnose(ctx context.Context, cr execx.CommandRunner, m *config.Manifest, root string) Report {
	report := Report{
		Root:          root,
		ManifestPath:  m.Location(),
		SchemeKind:    string(m.Scheme.Kind),
		Tool:          m.Tool.Name,
		HooksEnabled:  m.HooksEnabled(),
		RemoteEnabled: m.RemoteEnabled(),
	}
	if report.ManifestPath == "" {
		report.ManifestPath = "<defaults>"
	}

	if path, err := CheckTool(ctx, cr, m); err == nil {
		report.ToolPresent = true
		report.ToolPath = path
	}

	if version, err := CheckGit(ctx, cr); err == nil {
		report.GitPresent = true
		report.GitVersion = version
	}

	if version, err := CheckGh(ctx, cr); err == nil {
		report.GhPresent = true
		report.GhVersion = version
		report.GhAuthenticated = CheckGhAuth(ctx, cr) == nil
	}

	return report
}

// Write renders the stable key: value output.
func (r Report) Write(w io.Writer) {
	fmt.Fprintf(w, "root: %s\n", r.Root)
	fmt.Fprintf(w, "manifest: %s\n", r.ManifestPath)
	fmt.Fprintf(w, "scheme: %s\n", r.SchemeKind)
	fmt.Fprintf(w, "tool: %s\n", r.Tool)
	fmt.Fprintf(w, "tool_present: %s\n", boolStr(r.ToolPresent))
	fmt.Fprintf(w, "tool_path: %s\n", r.ToolPath)
	fmt.Fprintf(w, "git_present: %s\n", boolStr(r.GitPresent))
	fmt.Fprintf(w, "git_version: %s\n", r.GitVersion)
	fmt.Fprintf(w, "gh_present: %s\n", boolStr(r.GhPresent))
	fmt.Fprintf(w, "gh_version: %s\n", r.GhVersion)
	fmt.Fprintf(w, "gh_authenticated: %s\n", boolStr(r.GhAuthenticated))
	fmt.Fprintf(w, "hooks_enabled: %s\n", boolStr(r.HooksEnabled))
	fmt.Fprintf(w, "remote_enabled: %s\n", boolStr(r.RemoteEnabled))
}

// Healthy reports whether the hard gate would pass.
func (r Report) Healthy() bool {
	return r.ToolPresent
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
