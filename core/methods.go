// Graph mutation and query method implementations.
//
// Mutations never fail: vertices are created idempotently and edges
// auto-create their endpoints. Queries tolerate unknown vertices by
// returning empty/zero values; only the algorithm packages treat an
// unknown vertex as an error.

package core

// AddVertex inserts a vertex with the given ID into the Graph.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) {
	if _, exists := g.adjacency[id]; exists {
		return
	}
	g.adjacency[id] = nil
	g.order = append(g.order, id)
}

// AddEdge records an edge from 'from' to 'to' with the given weight,
// auto-creating either endpoint if absent.
//
// The edge appends 'to' to 'from's neighbor list; a repeated (from, to)
// pair appends a duplicate entry (multi-edge) but overwrites the single
// weight slot for the pair. On an undirected Graph the reverse entry is
// mirrored in both the adjacency and the weight table with the same
// weight, so the two directions always form a paired unit.
//
// Weight sign and magnitude are not validated here; the shortest-path
// layer assumes non-negative weights.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) {
	g.AddVertex(from)
	g.AddVertex(to)

	g.adjacency[from] = append(g.adjacency[from], to)
	g.weights[edgeKey{from, to}] = weight

	if !g.directed {
		g.adjacency[to] = append(g.adjacency[to], from)
		g.weights[edgeKey{to, from}] = weight
	}
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adjacency[id]

	return ok
}

// Vertices returns all vertex IDs in insertion order.
// The returned slice is a copy and may be modified freely.
// Complexity: O(V)
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Order returns the number of distinct vertices in the Graph.
// Complexity: O(1)
func (g *Graph) Order() int {
	return len(g.adjacency)
}

// Size returns the total number of edges.
//
// Every undirected edge contributes two adjacency entries (one per
// direction), so for undirected Graphs the sum of neighbor-list lengths
// is halved; for directed Graphs the raw sum is the edge count.
// Complexity: O(V)
func (g *Graph) Size() int {
	var total int
	for _, nbrs := range g.adjacency {
		total += len(nbrs)
	}
	if g.directed {
		return total
	}

	return total / 2
}

// AdjacentVertices returns the neighbor IDs of v in insertion order,
// including duplicates from multi-edges. An unknown vertex yields an
// empty slice, not an error. The returned slice is a copy.
// Complexity: O(deg(v))
func (g *Graph) AdjacentVertices(v string) []string {
	nbrs := g.adjacency[v]
	out := make([]string, len(nbrs))
	copy(out, nbrs)

	return out
}

// Degree returns the neighbor-list length of v: the undirected degree,
// or the out-degree on a directed Graph. Multi-edge entries count with
// multiplicity. An unknown vertex has degree 0.
// Complexity: O(1)
func (g *Graph) Degree(v string) int {
	return len(g.adjacency[v])
}

// InDegree returns the number of adjacency entries pointing at v across
// all vertices. Meaningful for directed Graphs; on an undirected Graph
// it equals Degree(v) because every edge is mirrored. No reverse index
// is maintained, so this is a full scan.
// Complexity: O(V + E)
func (g *Graph) InDegree(v string) int {
	var in int
	for _, nbrs := range g.adjacency {
		for _, nbr := range nbrs {
			if nbr == v {
				in++
			}
		}
	}

	return in
}

// AreAdjacent reports whether v2 appears in v1's neighbor list.
// The check is directional: on a well-formed undirected Graph insertion
// mirrors both directions, so the result is effectively symmetric, but
// on a directed Graph AreAdjacent(a, b) says nothing about (b, a).
// Complexity: O(deg(v1))
func (g *Graph) AreAdjacent(v1, v2 string) bool {
	for _, nbr := range g.adjacency[v1] {
		if nbr == v2 {
			return true
		}
	}

	return false
}

// Weight returns the recorded weight for the ordered (from, to) pair
// and whether such an entry exists. No fallback is applied.
// Complexity: O(1)
func (g *Graph) Weight(from, to string) (int64, bool) {
	w, ok := g.weights[edgeKey{from, to}]

	return w, ok
}

// EdgeWeight returns the recorded weight for the ordered (from, to)
// pair, or DefaultEdgeWeight if no entry exists. This is the documented
// fallback used by the shortest-path layer wherever an adjacency entry
// has no matching weight.
// Complexity: O(1)
func (g *Graph) EdgeWeight(from, to string) int64 {
	if w, ok := g.weights[edgeKey{from, to}]; ok {
		return w
	}

	return DefaultEdgeWeight
}

// Directed reports whether the Graph records edges as one-way.
// Complexity: O(1)
func (g *Graph) Directed() bool {
	return g.directed
}

// SetDirected toggles the directedness flag for subsequent insertions.
//
// Existing edges are NOT rewritten: switching an undirected Graph to
// directed leaves all previously mirrored entries in place, and
// switching back does not symmetrize edges added while directed. The
// caller owns the consistency of data inserted across a toggle.
func (g *Graph) SetDirected(directed bool) {
	g.directed = directed
}
