package opts

import (
	"github.com/walteh/skelrc/pkg/config"
	"github.com/walteh/skelrc/pkg/execx"
	"github.com/walteh/skelrc/pkg/prompt"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Root     string
	Manifest *config.Manifest
	Runner   execx.CommandRunner
	Prompter prompt.Prompter
}
