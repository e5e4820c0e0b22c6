package euler

import "github.com/avelyra/grafo/core"

// Classification summarizes the odd-degree census of a graph.
type Classification struct {
	// OddVertices is the number of vertices whose neighbor-list length
	// is odd, counting multi-edge entries with multiplicity.
	OddVertices int
}

// Eulerian reports whether the graph admits an Eulerian circuit under
// the odd-degree rule (no odd-degree vertices).
func (c Classification) Eulerian() bool { return c.OddVertices == 0 }

// SemiEulerian reports whether the graph admits an Eulerian path but
// not a circuit (exactly two odd-degree vertices).
func (c Classification) SemiEulerian() bool { return c.OddVertices == 2 }

// String renders the classification in plain words.
func (c Classification) String() string {
	switch {
	case c.Eulerian():
		return "Eulerian"
	case c.SemiEulerian():
		return "semi-Eulerian"
	default:
		return "neither Eulerian nor semi-Eulerian"
	}
}

// Classify counts the odd-degree vertices of g and returns the
// resulting Classification. A nil or empty graph has zero odd-degree
// vertices and therefore classifies as Eulerian.
// Complexity: O(V)
func Classify(g *core.Graph) Classification {
	var c Classification
	if g == nil {
		return c
	}
	for _, v := range g.Vertices() {
		if g.Degree(v)%2 != 0 {
			c.OddVertices++
		}
	}

	return c
}
