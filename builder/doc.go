// SPDX-License-Identifier: MIT

// Package builder provides deterministic flow-network fixtures for tests,
// benchmarks and the `costflow generate` command.
//
// Every topology is a Constructor applied by BuildNetwork to a fresh
// core.Network; several constructors may be composed on one network. Vertex 0
// is the source and n-1 the sink throughout.
//
//	nw, err := builder.BuildNetwork(
//	    8, nil,
//	    []builder.BuilderOption{
//	        builder.WithSeed(42),
//	        builder.WithCapacityFn(builder.UniformWeightFn(1, 9)),
//	        builder.WithCostFn(builder.UniformWeightFn(0, 5)),
//	    },
//	    builder.Layered(3, 2),
//	)
//
// Determinism: for the same seed, options and constructor order the resulting
// network is identical, cell for cell. Capacity is drawn before cost for each
// edge, and edges are emitted in the order each constructor documents.
//
// All built topologies are DAGs with non-negative default costs, so they are
// valid inputs to flow.MinCostMaxFlow as is.
package builder
