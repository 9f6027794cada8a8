// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/costflow/core"
	"github.com/katalvlaran/costflow/flow"
	"github.com/katalvlaran/costflow/graphio"
	"github.com/katalvlaran/costflow/report"
)

// errNoInput is returned when neither arguments nor config name a graph.
var errNoInput = errors.New("no graph files given (pass paths or set files in the config)")

// stdinName is the file argument that reads the graph from standard input.
const stdinName = "-"

// overrides copies every flag the user set on cmd over the loaded config.
func (a *app) overrides(cmd *cobra.Command, source, sink *int, format *string) error {
	f := cmd.Flags()
	if f.Changed("source") {
		a.cfg.Source = *source
	}
	if sink != nil && f.Changed("sink") {
		a.cfg.Sink = *sink
	}
	if f.Changed("format") {
		a.cfg.Format = *format
	}
	if f.Changed("skip-invalid") {
		a.cfg.SkipInvalidEdges, _ = f.GetBool("skip-invalid")
	}

	return a.cfg.Validate()
}

// load reads one graph file, or standard input for "-".
func (a *app) load(cmd *cobra.Command, path string) (*graphio.Graph, *core.Network, error) {
	var (
		g   *graphio.Graph
		err error
	)
	if path == stdinName {
		g, err = graphio.Read(cmd.InOrStdin())
		if err != nil {
			return nil, nil, fmt.Errorf("read stdin: %w", err)
		}
		g.Name = "stdin"
	} else if g, err = graphio.ReadFile(path); err != nil {
		return nil, nil, err
	}

	var nopts []core.Option
	if a.cfg.SkipInvalidEdges {
		nopts = append(nopts, core.WithSkipInvalidEdges())
	}
	nw, err := g.Network(nopts...)
	if errors.Is(err, core.ErrInvalidEdgeEndpoint) || errors.Is(err, core.ErrSelfLoop) {
		return nil, nil, fmt.Errorf("%w (pass --skip-invalid to drop such edges)", err)
	}
	if err != nil {
		return nil, nil, err
	}
	if nw.Skipped() > 0 {
		loggerFromContext(cmd.Context()).Warn("skipped invalid edges", "graph", g.Name, "count", nw.Skipped())
	}

	return g, nw, nil
}

// solve runs one fresh engine over nw with the configured options.
func (a *app) solve(ctx context.Context, nw *core.Network) (*flow.Result, error) {
	opts := []flow.Option{
		flow.WithSink(a.cfg.Sink),
		flow.WithLogger(loggerFromContext(ctx)),
	}
	if a.cfg.CycleCheck {
		opts = append(opts, flow.WithCycleCheck())
	}

	return flow.MinCostMaxFlow(ctx, nw, a.cfg.Source, opts...)
}

func newSolveCmd(a *app) *cobra.Command {
	var (
		source, sink int
		format       string
	)

	cmd := &cobra.Command{
		Use:   "solve [files...]",
		Short: "Compute the min-cost max-flow of one or more graph files",
		Long: `Solve reads each graph file in order ("-" reads standard input) and
prints its augmenting paths and final edge flows. Without arguments the
files listed in the config are solved. Every file gets a fresh engine.

Graph format: whitespace-separated integers, the vertex count first, then
"from to capacity cost" quadruples. Source defaults to 0, sink to n-1.`,
		Example: `  costflow solve testdata/transport0.txt
  costflow solve --format table testdata/*.txt
  costflow generate --kind layered --layers 3 --width 2 | costflow solve -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.overrides(cmd, &source, &sink, &format); err != nil {
				return err
			}
			if cmd.Flags().Changed("cycle-check") {
				a.cfg.CycleCheck, _ = cmd.Flags().GetBool("cycle-check")
			}
			if cmd.Flags().Changed("matrices") {
				a.cfg.Matrices, _ = cmd.Flags().GetBool("matrices")
			}

			files := args
			if len(files) == 0 {
				files = a.cfg.Files
			}
			if len(files) == 0 {
				return errNoInput
			}

			return a.solveAll(cmd, cmd.OutOrStdout(), files)
		},
	}

	cmd.Flags().IntVar(&source, "source", 0, "source vertex")
	cmd.Flags().IntVar(&sink, "sink", flow.DefaultSink, "sink vertex (-1: last vertex)")
	cmd.Flags().StringVarP(&format, "format", "f", string(report.FormatText), "output format: text, table, json, yaml or dot")
	cmd.Flags().Bool("cycle-check", false, "run the negative-cycle guard after every path search")
	cmd.Flags().Bool("skip-invalid", false, "skip edges with out-of-range endpoints instead of failing")
	cmd.Flags().Bool("matrices", false, "include cost, residual and flow matrices in the text report")

	return cmd
}

// solveAll solves files in order and stops at the first failure.
func (a *app) solveAll(cmd *cobra.Command, w io.Writer, files []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	format, err := report.ParseFormat(a.cfg.Format)
	if err != nil {
		return err
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		prog := newProgress(logger)
		g, nw, err := a.load(cmd, path)
		if err != nil {
			return err
		}
		res, err := a.solve(ctx, nw)
		if err != nil {
			return fmt.Errorf("%s: %w", g.Name, err)
		}
		prog.done("solved "+g.Name, "flow", res.TotalFlow, "cost", res.TotalCost, "paths", len(res.Paths))

		if err := report.WriteSolve(w, format, g.Name, nw, res, report.TextOptions{Matrices: a.cfg.Matrices}); err != nil {
			return fmt.Errorf("%s: %w", g.Name, err)
		}
	}

	return nil
}
