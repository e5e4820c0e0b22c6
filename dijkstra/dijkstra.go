package dijkstra

import (
	"container/heap"

	"github.com/avelyra/grafo/core"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance from source
//     (Unreachable for vertices no path leads to).
//   - prev: predecessor map; prev[v] == u means the shortest path to v
//     arrives via u. The source and unreachable vertices map to "".
//   - err:  ErrNilGraph, or ErrVertexNotFound if source is absent.
//
// Edge weights are read through g.EdgeWeight, so adjacency entries
// without a recorded weight count as core.DefaultEdgeWeight. Negative
// weights are not detected; supplying them voids the result.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, source string) (map[string]int64, map[string]string, error) {
	// 1) Validate inputs: nil graph first, then source membership.
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, ErrVertexNotFound
	}

	// 2) Initialize dist[v] = Unreachable and prev[v] = "" for all v,
	//    then pin the source at distance zero.
	vertices := g.Vertices()
	dist := make(map[string]int64, len(vertices))
	prev := make(map[string]string, len(vertices))
	for _, v := range vertices {
		dist[v] = Unreachable
		prev[v] = ""
	}
	dist[source] = 0

	// 3) Seed the min-heap with (0, source).
	pq := make(nodePQ, 0, len(vertices))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: source, dist: 0})

	// settled marks vertices whose distance is final, so stale duplicate
	// heap entries are discarded on extraction.
	settled := make(map[string]bool, len(vertices))

	// 4) Main loop: extract the closest unsettled vertex and relax its
	//    outgoing edges until the heap drains.
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id
		if settled[u] {
			continue // stale lazy-decrease-key entry
		}
		settled[u] = true

		for _, v := range g.AdjacentVertices(u) {
			candidate := item.dist + g.EdgeWeight(u, v)
			if candidate < dist[v] {
				dist[v] = candidate
				prev[v] = u
				heap.Push(&pq, &nodeItem{id: v, dist: candidate})
			}
		}
	}

	return dist, prev, nil
}

// ShortestPath runs Dijkstra from start and reconstructs the path to
// end by walking the predecessor map backward.
//
// Returns ErrVertexNotFound if start or end is absent from g, and
// ErrNoPath if end carries an Unreachable distance. When start == end
// the path is the single-element list [start] with cost zero.
//
// Complexity: O((V + E) log V) — dominated by the Dijkstra run; the
// backward walk itself is O(path length).
func ShortestPath(g *core.Graph, start, end string) (Path, error) {
	// end is validated up front so the error does not depend on
	// whichever map lookup happens to miss first.
	if g != nil && !g.HasVertex(end) {
		return Path{}, ErrVertexNotFound
	}

	dist, prev, err := Dijkstra(g, start)
	if err != nil {
		return Path{}, err
	}

	if dist[end] == Unreachable {
		return Path{}, ErrNoPath
	}

	// Walk prev from end back to start, then reverse. The source has
	// prev == "", which terminates the walk; for start == end the loop
	// never runs and only start itself is emitted.
	var reversed []string
	for at := end; at != ""; at = prev[at] {
		reversed = append(reversed, at)
	}
	path := make([]string, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		path = append(path, reversed[i])
	}

	return Path{Cost: dist[end], Vertices: path}, nil
}

// nodeItem represents a vertex and its tentative distance from the
// source, as stored in the priority queue.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, driven
// through container/heap. Improved distances push duplicate entries;
// stale ones are filtered by the settled set on extraction.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
