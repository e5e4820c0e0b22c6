// Package edgelist imports graphs from flat edge-list text.
//
// The format is one edge per line, whitespace-separated:
//
//	<source> <target> <integer weight>
//
// There is no header, no comment syntax, and no quoting — identifiers
// containing whitespace are unsupported. Blank lines are skipped; the
// first malformed line (wrong field count or non-integer weight) aborts
// the import with a *ParseError. The import is not transactional:
// edges from lines before the failure remain applied to the graph.
package edgelist
