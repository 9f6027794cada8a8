// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/costflow/internal/api"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve solve and shortest-path queries over HTTP",
		Long: `Serve starts the JSON API:

  POST /api/v1/solve
  POST /api/v1/shortest-paths
  GET  /api/v1/health

Limits (timeouts, body size, concurrency, vertex count) come from the
server section of the config. The server drains in-flight requests on
SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Server.Addr = addr
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			srv := api.NewServer(a.cfg.Server, logger)

			return api.Run(ctx, srv, logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
