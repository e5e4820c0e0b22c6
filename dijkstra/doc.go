// Package dijkstra implements Dijkstra's shortest-path algorithm on
// weighted graphs, plus path reconstruction via the predecessor map.
//
// Dijkstra computes the minimum-cost distance from a single source
// vertex to every other vertex, processing vertices in order of
// increasing distance with a min-heap priority queue and relaxing
// outgoing edges. Edge weights come from core.EdgeWeight, so an
// adjacency entry without a recorded weight contributes
// core.DefaultEdgeWeight. All weights are assumed non-negative.
//
// The heap uses the "lazy decrease-key" strategy: improving a vertex
// pushes a fresh entry rather than re-keying the old one, and stale
// entries are discarded on extraction via a settled set. With
// non-negative weights the settled set is a pure optimization — the
// observable results are identical to running without it, since a
// stale entry always fails the improvement check.
//
// Complexity:
//
//   - Time:  O((V + E) log V) — each vertex is settled at most once,
//     each edge relaxation may push one heap entry, each heap operation
//     costs O(log V).
//   - Space: O(V + E) — distance and predecessor maps plus worst-case
//     heap entries under lazy decrease-key.
//
// Errors (sentinel):
//
//   - ErrNilGraph        if the provided graph pointer is nil.
//   - ErrVertexNotFound  if a requested endpoint is absent from the graph.
//   - ErrNoPath          if no path connects the requested endpoints.
package dijkstra
