// This file declares the sentinel errors, the Unreachable distance
// sentinel, and the Path result type.

package dijkstra

import (
	"errors"
	"math"
)

// Unreachable is the distance reported for vertices that cannot be
// reached from the source.
const Unreachable int64 = math.MaxInt64

// Sentinel errors returned by this package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that a requested endpoint does not
	// exist in the graph. Presence is a precondition here, unlike the
	// tolerant lookups on core.Graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNoPath indicates that the destination is unreachable from the
	// start vertex.
	ErrNoPath = errors.New("dijkstra: no path between vertices")
)

// Path is the result of a shortest-path query: the total cost and the
// vertex sequence from start to end inclusive.
type Path struct {
	// Cost is the sum of edge weights along the path. Zero when start
	// and end coincide.
	Cost int64

	// Vertices lists the path from start to end. A query with
	// start == end yields the single-element list [start].
	Vertices []string
}
