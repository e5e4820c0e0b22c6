// Package euler classifies a graph as Eulerian, semi-Eulerian, or
// neither by counting vertices of odd degree.
//
// The rule is the classical undirected one: zero odd-degree vertices
// admit an Eulerian circuit, exactly two admit an Eulerian path, any
// other count admits neither. Degree here is the neighbor-list length,
// counting multi-edge entries with multiplicity.
//
// Known limitations, kept deliberately: the check ignores connectivity
// (a graph of several isolated, individually even components is still
// reported Eulerian) and applies the same odd-degree rule to directed
// graphs, where the textbook criterion would compare in- and
// out-degrees per vertex. Callers that need the stricter notions must
// layer them on top.
//
// Complexity: O(V) over the vertex set.
package euler
