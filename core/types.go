// This file declares the Graph type, its construction options,
// and the DefaultEdgeWeight fallback constant.

package core

// DefaultEdgeWeight is the weight assumed for any (from, to) pair that
// has no recorded entry in the weight table. EdgeWeight falls back to
// this value; it exists so the fallback is an explicit, testable part
// of the API rather than an implicit lookup default.
const DefaultEdgeWeight int64 = 1

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithDirected sets the directedness of the Graph
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// edgeKey identifies an ordered (from, to) pair in the weight table.
type edgeKey struct {
	from string
	to   string
}

// Graph is the core in-memory graph data structure.
//
// adjacency holds neighbor IDs per vertex in insertion order; repeated
// insertions of the same pair append duplicate entries (multi-edges).
// weights holds a single weight per ordered pair, overwritten on every
// insertion. order preserves the first-seen order of vertices so that
// rendering and iteration are deterministic.
type Graph struct {
	directed bool

	adjacency map[string][]string
	order     []string
	weights   map[edgeKey]int64
}

// NewGraph creates an empty Graph. By default the Graph is undirected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[string][]string),
		weights:   make(map[edgeKey]int64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
