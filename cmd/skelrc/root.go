package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/skelrc/cmd/skelrc/opts"
	"github.com/walteh/skelrc/pkg/config"
	"github.com/walteh/skelrc/pkg/execx"
	"github.com/walteh/skelrc/pkg/log"
	"github.com/walteh/skelrc/pkg/prompt"
)

var (
	// Flags
	configFile string
	dir        string
	defaults   bool
	debug      bool
)

// newRootOpts creates a new RootOpts with initialized dependencies.
// It must run after flag parsing, so main wires it through the root
// command's PersistentPreRunE instead of building options up front.
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Errorf("resolving skeleton root: %w", err)
	}

	var m *config.Manifest
	if configFile != "" {
		m, err = config.Load(ctx, configFile)
	} else {
		m, err = config.Locate(ctx, root)
	}
	if err != nil {
		return nil, errors.Errorf("loading manifest: %w", err)
	}

	return &opts.RootOpts{
		Root:     root,
		Manifest: m,
		Runner:   execx.NewRealRunner(),
		Prompter: prompt.New(os.Stdin, os.Stdout, defaults),
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "manifest path (default: probe the skeleton root)")
	cmd.PersistentFlags().StringVarP(&dir, "dir", "C", ".", "skeleton root directory")
	cmd.PersistentFlags().BoolVar(&defaults, "defaults", false, "answer every prompt with its default")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog and pterm based on flags and returns a
// context carrying the structured logger and the console logger. Structured
// records go to stderr so the console voice on stdout stays clean; the
// console logger only mirrors into zerolog when debug is enabled.
func setupLogging(ctx context.Context, console io.Writer) context.Context {
	level := zerolog.InfoLevel
	consoleLevel := zerolog.Disabled
	if debug {
		level = zerolog.DebugLevel
		consoleLevel = zerolog.DebugLevel
		pterm.EnableDebugMessages()
	}
	zerolog.SetGlobalLevel(level)

	zlog := zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).With().Timestamp().Logger().Level(level)

	ctx = zlog.WithContext(ctx)
	return log.NewContext(ctx, log.New(console, consoleLevel))
}
