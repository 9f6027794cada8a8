// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/costflow/builder"
	"github.com/katalvlaran/costflow/graphio"
)

// errBadRange is returned for a min > max weight range.
var errBadRange = errors.New("min must not exceed max")

type weightRange struct{ min, max int64 }

func (r weightRange) fn(name string) (builder.WeightFn, error) {
	if r.min > r.max {
		return nil, fmt.Errorf("%s range [%d, %d]: %w", name, r.min, r.max, errBadRange)
	}
	return builder.UniformWeightFn(r.min, r.max), nil
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		kind     string
		params   builder.Params
		seed     int64
		capacity weightRange
		cost     weightRange
		out      string
	)

	kinds := make([]string, 0, len(builder.Kinds()))
	for _, k := range builder.Kinds() {
		kinds = append(kinds, string(k))
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic network in the graph text format",
		Long: `Generate builds a deterministic network (same flags and seed, same output)
and writes it in the format read by solve and paths. Source is vertex 0,
sink the last vertex.

Kinds:
  path      a single chain of --vertices vertices
  parallel  --routes disjoint routes of --hops interior vertices each
  layered   --layers fully connected layers of --width vertices each
  random    forward-only random edges among --vertices with probability --p`,
		Example: `  costflow generate --kind parallel --routes 3 --hops 2
  costflow generate --kind random --vertices 10 --p 0.4 --seed 7 --out g.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			capFn, err := capacity.fn("capacity")
			if err != nil {
				return err
			}
			costFn, err := cost.fn("cost")
			if err != nil {
				return err
			}

			n, cons, err := builder.ByName(builder.Kind(strings.ToLower(kind)), params)
			if err != nil {
				return err
			}
			nw, err := builder.BuildNetwork(n, nil, []builder.BuilderOption{
				builder.WithSeed(seed),
				builder.WithCapacityFn(capFn),
				builder.WithCostFn(costFn),
			}, cons)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("generated", "kind", kind, "vertices", n, "edges", len(nw.Edges()), "seed", seed)

			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := graphio.WriteNetwork(w, nw); err != nil {
				return fmt.Errorf("write: %w", err)
			}
			if out != "" {
				loggerFromContext(cmd.Context()).Info("wrote " + out)
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&kind, "kind", "k", string(builder.KindLayered), "topology: "+strings.Join(kinds, ", "))
	flags.IntVarP(&params.Vertices, "vertices", "n", 6, "vertex count (path, random)")
	flags.IntVar(&params.Routes, "routes", 2, "route count (parallel)")
	flags.IntVar(&params.Hops, "hops", 2, "interior vertices per route (parallel)")
	flags.IntVar(&params.Layers, "layers", 2, "layer count (layered)")
	flags.IntVar(&params.Width, "width", 2, "vertices per layer (layered)")
	flags.Float64Var(&params.P, "p", 0.5, "edge probability (random)")
	flags.Int64Var(&seed, "seed", 1, "random seed")
	flags.Int64Var(&capacity.min, "min-capacity", 1, "minimum edge capacity")
	flags.Int64Var(&capacity.max, "max-capacity", 10, "maximum edge capacity")
	flags.Int64Var(&cost.min, "min-cost", 0, "minimum edge cost")
	flags.Int64Var(&cost.max, "max-cost", 9, "maximum edge cost")
	flags.StringVarP(&out, "out", "o", "", "output file (default: stdout)")

	return cmd
}
