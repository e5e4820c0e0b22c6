// Package core_test provides runnable examples for the Graph type.
package core_test

import (
	"fmt"

	"github.com/avelyra/grafo/core"
)

// ExampleGraph demonstrates building a small undirected graph and
// reading back its basic measures.
func ExampleGraph() {
	// 1) Create an undirected graph (the default).
	g := core.NewGraph()
	// 2) Add weighted edges; vertices are auto-created.
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)

	// 3) Order is the vertex count, Size the edge count.
	fmt.Printf("order=%d size=%d\n", g.Order(), g.Size())
	// 4) Undirected insertion mirrors both directions.
	fmt.Println(g.AreAdjacent("C", "B"))
	// Output:
	// order=3 size=2
	// true
}

// ExampleGraph_String renders the adjacency structure line by line in
// insertion order.
func ExampleGraph_String() {
	g := core.NewGraph(core.WithDirected(true))
	g.AddEdge("A", "B", 4)
	g.AddEdge("A", "C", 2)

	fmt.Print(g)
	// Output:
	// A: B (weight: 4), C (weight: 2)
	// B:
	// C:
}
