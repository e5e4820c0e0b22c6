// Package edgelist_test provides a runnable example of importing an
// edge list and querying the resulting graph.
package edgelist_test

import (
	"fmt"
	"strings"

	"github.com/avelyra/grafo/core"
	"github.com/avelyra/grafo/dijkstra"
	"github.com/avelyra/grafo/edgelist"
)

// ExampleParse imports the triangle and runs the canonical shortest-path
// query on the imported graph.
func ExampleParse() {
	const input = "A B 1\nB C 2\nA C 5\n"

	g := core.NewGraph()
	if err := edgelist.Parse(strings.NewReader(input), g); err != nil {
		fmt.Println("error:", err)
		return
	}

	p, err := dijkstra.ShortestPath(g, "A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("order=%d size=%d cost=%d path=%v\n", g.Order(), g.Size(), p.Cost, p.Vertices)
	// Output: order=3 size=3 cost=3 path=[A B C]
}
