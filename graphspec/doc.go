// Package graphspec reads and writes structured graph documents.
//
// A Spec is the YAML/JSON shape of a graph: a name, a directedness
// flag, optional isolated vertices, and a list of weighted edges. It
// converts both ways — Spec.Graph builds a core.Graph, FromGraph
// captures one — and renders to Mermaid or indented JSON for
// visualization.
//
// An edge with weight 0 in a document is treated as "unspecified" and
// imported at core.DefaultEdgeWeight; the domain assumes weights ≥ 1.
package graphspec
