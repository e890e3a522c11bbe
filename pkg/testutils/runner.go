// Package testutils provides shared test helpers: a scripted CommandRunner
// and small filesystem fixture builders.
package testutils

import (
	"context"
	"strings"

	"github.com/walteh/skelrc/pkg/execx"
)

// 📼 ScriptedRunner is a CommandRunner whose responses are scripted per call.
// Unscripted commands answer like a missing binary (exit 127), and every
// call is recorded so tests can assert on what ran and in which order.
type ScriptedRunner struct {
	responses map[string]execx.CmdResult
	errs      map[string]error
	missing   map[string]bool
	Calls     []ScriptedCall
}

// 📞 ScriptedCall records one Run invocation
type ScriptedCall struct {
	Name   string
	Args   []string
	Dir    string
	Stream bool
}

// 🎯 NewScriptedRunner creates an empty ScriptedRunner
func NewScriptedRunner() *ScriptedRunner {
	return &ScriptedRunner{
		responses: make(map[string]execx.CmdResult),
		errs:      make(map[string]error),
		missing:   make(map[string]bool),
	}
}

// 📝 On scripts the result for a command invocation
func (s *ScriptedRunner) On(name string, args []string, result execx.CmdResult) {
	s.responses[makeKey(name, args)] = result
}

// 💥 OnError scripts a runner-level failure for a command invocation
func (s *ScriptedRunner) OnError(name string, args []string, err error) {
	s.errs[makeKey(name, args)] = err
}

// 🚫 Missing makes LookPath report name as absent from PATH
func (s *ScriptedRunner) Missing(name string) {
	s.missing[name] = true
}

func makeKey(name string, args []string) string {
	return name + "|" + strings.Join(args, ",")
}

func (s *ScriptedRunner) Run(ctx context.Context, name string, args []string, opts execx.RunOpts) (execx.CmdResult, error) {
	s.Calls = append(s.Calls, ScriptedCall{Name: name, Args: args, Dir: opts.Dir, Stream: opts.Stream})

	key := makeKey(name, args)
	if err, ok := s.errs[key]; ok {
		return execx.CmdResult{}, err
	}
	if result, ok := s.responses[key]; ok {
		return result, nil
	}

	return execx.CmdResult{ExitCode: 127, Stderr: "command not found"}, nil
}

func (s *ScriptedRunner) LookPath(name string) (string, error) {
	if s.missing[name] {
		return "", &missingBinaryError{name: name}
	}
	return "/usr/bin/" + name, nil
}

// Ran reports whether a command with the given name and args was invoked.
func (s *ScriptedRunner) Ran(name string, args ...string) bool {
	key := makeKey(name, args)
	for _, call := range s.Calls {
		if makeKey(call.Name, call.Args) == key {
			return true
		}
	}
	return false
}

// RanCommand reports whether any command with the given name was invoked.
func (s *ScriptedRunner) RanCommand(name string) bool {
	for _, call := range s.Calls {
		if call.Name == name {
			return true
		}
	}
	return false
}

type missingBinaryError struct {
	name string
}

func (e *missingBinaryError) Error() string {
	return "exec: " + e.name + ": executable file not found in $PATH"
}
