package core_test

import (
	"fmt"

	"github.com/katalvlaran/ifgnet/core"
)

// ExampleGraph builds a three-epoch network and toggles one interferogram edge.
func ExampleGraph() {
	g := core.NewGraph(core.WithWeighted())

	// Edges are named after the date pair they join.
	_, _ = g.AddEdge("2006-06-19", "2006-07-24", 0.1, core.WithID("2006-06-19,2006-07-24"))
	_, _ = g.AddEdge("2006-07-24", "2006-08-28", 0.2, core.WithID("2006-07-24,2006-08-28"))

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Has edge:", g.HasEdgeID("2006-06-19,2006-07-24"))

	_ = g.RemoveEdge("2006-06-19,2006-07-24")
	fmt.Println("After removal:", g.HasEdgeID("2006-06-19,2006-07-24"), len(g.Edges()))

	// Output:
	// Vertices: [2006-06-19 2006-07-24 2006-08-28]
	// Has edge: true
	// After removal: false 1
}
