// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/costflow/internal/config"
)

var (
	version = "dev" // semantic version, injected via ldflags
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the information printed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// app is the state shared by all subcommands of one invocation.
type app struct {
	cfgPath string
	verbose bool
	cfg     config.Config
	stderr  io.Writer
}

// Execute runs the costflow CLI with os.Args under ctx.
func Execute(ctx context.Context) error {
	root := newRootCmd(os.Stdout, os.Stderr)
	return root.ExecuteContext(ctx)
}

// newRootCmd builds the command tree writing reports to stdout and logs to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{cfg: config.Default(), stderr: stderr}

	root := &cobra.Command{
		Use:   "costflow",
		Short: "costflow computes minimum-cost maximum flows",
		Long: `costflow solves min-cost max-flow problems on small dense networks by
successive shortest augmenting paths, and runs standalone Bellman-Ford
shortest-path queries with negative-cycle detection.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(fmt.Sprintf("costflow %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "config file (.yaml, .yml or .toml); default: ./costflow.{yaml,yml,toml} if present")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newPathsCmd(a))
	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newRenderCmd(a))
	root.AddCommand(newServeCmd(a))

	return root
}

// init loads the config file and attaches the logger to the command context.
func (a *app) init(cmd *cobra.Command) error {
	path := a.cfgPath
	if path == "" {
		path = config.Discover(".")
	}
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	level, err := a.cfg.Level()
	if err != nil {
		return err
	}
	if a.verbose {
		level = charmlog.DebugLevel
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(a.stderr, level)
	if path != "" {
		logger.Debug("config loaded", "path", path)
	}
	cmd.SetContext(withLogger(ctx, logger))

	return nil
}
