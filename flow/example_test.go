package flow_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/costflow/core"
	"github.com/katalvlaran/costflow/flow"
)

// ExampleMinCostMaxFlow solves a two-route network: the cheaper route
// 0→2→3 is saturated first, then the remaining demand takes 0→1→3.
func ExampleMinCostMaxFlow() {
	nw, _ := core.FromEdges(4, []core.Edge{
		{From: 0, To: 1, Capacity: 5, Cost: 2},
		{From: 0, To: 2, Capacity: 3, Cost: 1},
		{From: 1, To: 3, Capacity: 2, Cost: 0},
		{From: 2, To: 3, Capacity: 3, Cost: 0},
	})

	res, err := flow.MinCostMaxFlow(context.Background(), nw, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range res.Paths {
		fmt.Println(p)
	}
	fmt.Println("flow:", res.TotalFlow, "cost:", res.TotalCost, "scaled:", res.ScaledCost)
	// Output:
	// [0, 2, 3](3) $1
	// [0, 1, 3](2) $2
	// flow: 5 cost: 3 scaled: 7
}

// ExampleWithOnAugment observes the running total after every augmentation.
func ExampleWithOnAugment() {
	nw, _ := core.FromEdges(4, []core.Edge{
		{From: 0, To: 1, Capacity: 1, Cost: 1},
		{From: 1, To: 2, Capacity: 1, Cost: 1},
		{From: 2, To: 3, Capacity: 1, Cost: 1},
		{From: 0, To: 2, Capacity: 1, Cost: 3},
		{From: 1, To: 3, Capacity: 1, Cost: 3},
	})

	_, _ = flow.MinCostMaxFlow(context.Background(), nw, 0,
		flow.WithOnAugment(func(s flow.Step) {
			fmt.Printf("step %d: %v total=%d\n", s.Iteration, s.Path, s.TotalFlow)
		}),
	)
	// Output:
	// step 1: [0, 1, 2, 3](1) $3 total=1
	// step 2: [0, 2, 1, 3](1) $5 total=2
}
