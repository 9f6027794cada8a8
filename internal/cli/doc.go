// SPDX-License-Identifier: MIT

// Package cli implements the costflow command-line interface.
//
// # Commands
//
//   - solve: min-cost max-flow of one or more graph files, printed as text,
//     table, json, yaml or dot
//   - paths: standalone Bellman-Ford distances with negative-cycle detection
//   - generate: deterministic synthetic networks in the graph text format
//   - render: DOT or SVG drawing of a solved network
//   - serve: the HTTP API of package api
//
// # Configuration
//
// --config names a YAML or TOML file; without it ./costflow.yaml,
// ./costflow.yml or ./costflow.toml is used when present. Flags override
// the file.
//
// # Logging
//
// Logs go to stderr through charmbracelet/log at the configured level;
// --verbose (-v) forces debug, which includes one record per augmenting path.
// The logger travels through the command context.
package cli
