// Package core provides the fundamental in-memory Graph implementation.
//
// A Graph is a mapping from vertex IDs to insertion-ordered neighbor
// lists, plus a weight table keyed by ordered (from, to) pairs.
// Vertices are auto-created on first reference; edges append to the
// neighbor list (repeated pairs yield multi-edges) while the weight for
// a pair is overwritten on every insertion (last write wins).
//
// Directedness is a graph-level flag: undirected insertion mirrors both
// the adjacency entry and the weight entry as a paired unit, directed
// insertion records only the given direction. The flag may be toggled
// after construction, but existing edges are never rewritten — see
// SetDirected for the consequences.
//
// The Graph is not safe for concurrent use. All operations run to
// completion on the caller's goroutine; callers that share a Graph
// across goroutines must add their own synchronization.
package core
