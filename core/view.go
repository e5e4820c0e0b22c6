// Non-mutating text rendering of a Graph.

package core

import (
	"fmt"
	"strings"
)

// String renders the Graph as one line per vertex in insertion order:
//
//	A: B (weight: 1), C (weight: 5)
//	B: A (weight: 1)
//
// Neighbors appear in insertion order with their recorded weight, or
// "N/A" when the (from, to) pair has no weight entry. A vertex without
// neighbors renders as "A:" alone. The Graph is not mutated.
// Complexity: O(V + E)
func (g *Graph) String() string {
	var b strings.Builder
	for _, v := range g.order {
		b.WriteString(v)
		b.WriteString(":")
		for i, nbr := range g.adjacency[v] {
			if i > 0 {
				b.WriteString(",")
			}
			if w, ok := g.weights[edgeKey{v, nbr}]; ok {
				fmt.Fprintf(&b, " %s (weight: %d)", nbr, w)
			} else {
				fmt.Fprintf(&b, " %s (weight: N/A)", nbr)
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
