// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/costflow/bellmanford"
	"github.com/katalvlaran/costflow/report"
)

func newPathsCmd(a *app) *cobra.Command {
	var (
		source int
		format string
	)

	cmd := &cobra.Command{
		Use:   "paths <file>",
		Short: "Print Bellman-Ford distances from the source over every declared edge",
		Long: `Paths treats every declared edge as an arc weighted by its cost, regardless
of capacity, and prints the shortest distance from the source to each
vertex ("INF" when unreachable). A negative cycle reachable from the
source is reported instead of distances.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.overrides(cmd, &source, nil, &format); err != nil {
				return err
			}
			f, err := report.ParseFormat(a.cfg.Format)
			if err != nil {
				return err
			}

			g, nw, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)
			res, runErr := bellmanford.ShortestPaths(nw.Arcs(), a.cfg.Source)
			if runErr != nil {
				logger.Debug("shortest paths", "graph", g.Name, "err", runErr)
			} else {
				prog.done("shortest paths "+g.Name, "source", res.Source)
			}

			return report.WritePaths(cmd.OutOrStdout(), f, g.Name, a.cfg.Source, res, runErr)
		},
	}

	cmd.Flags().IntVar(&source, "source", 0, "source vertex")
	cmd.Flags().StringVarP(&format, "format", "f", string(report.FormatText), "output format: text, table, json or yaml")
	cmd.Flags().Bool("skip-invalid", false, "skip edges with out-of-range endpoints instead of failing")

	return cmd
}
