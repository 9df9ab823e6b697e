// SPDX-License-Identifier: MIT
package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/vcgpath/bfs"
	"github.com/katalvlaran/vcgpath/core"
)

// ExampleBFS demonstrates BFS layering on a 3×3 grid: the visit order follows
// non-decreasing Manhattan distance from the corner.
func ExampleBFS() {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_, _ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1), 1)
			}
			if i+1 < 3 {
				_, _ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j), 1)
			}
		}
	}

	res, err := bfs.BFS(g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleReachable shows a bridge: once it is filtered out the far side is cut off.
func ExampleReachable() {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b", 1)
	bridge, _ := g.AddEdge("b", "c", 1)

	before, _ := bfs.Reachable(g, "a", "c")
	after, _ := bfs.Reachable(g, "a", "c", bfs.WithoutEdgeID(bridge))
	fmt.Println(before, after)
	// Output:
	// true false
}
