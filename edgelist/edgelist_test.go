// Unit tests for edge-list parsing: happy-path imports, round-trips
// through the filesystem, abort-on-first-bad-line semantics, and the
// visible partial state a failed import leaves behind.
package edgelist_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelyra/grafo/core"
	"github.com/avelyra/grafo/dijkstra"
	"github.com/avelyra/grafo/edgelist"
)

func TestParse_Triangle(t *testing.T) {
	g := core.NewGraph()
	err := edgelist.Parse(strings.NewReader("A B 1\nB C 2\nA C 5\n"), g)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 3, g.Size())
	assert.Equal(t, int64(2), g.EdgeWeight("C", "B"), "undirected import mirrors weights")
}

func TestParse_SkipsBlankLines(t *testing.T) {
	g := core.NewGraph()
	err := edgelist.Parse(strings.NewReader("A B 1\n\n  \nB C 2\n"), g)
	require.NoError(t, err)

	assert.Equal(t, 2, g.Size())
}

func TestParse_WrongFieldCountAborts(t *testing.T) {
	g := core.NewGraph()
	err := edgelist.Parse(strings.NewReader("A B 1\nA B\nB C 2\n"), g)

	require.Error(t, err)
	assert.ErrorIs(t, err, edgelist.ErrBadLine)

	var perr *edgelist.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, "A B", perr.Text)
}

func TestParse_NonIntegerWeightAborts(t *testing.T) {
	g := core.NewGraph()
	err := edgelist.Parse(strings.NewReader("A B heavy\n"), g)

	assert.ErrorIs(t, err, edgelist.ErrBadWeight)
}

func TestParse_PartialStateSurvivesAbort(t *testing.T) {
	// The import is not transactional: lines before the failure remain
	// applied, lines after it are never read.
	g := core.NewGraph()
	err := edgelist.Parse(strings.NewReader("A B 1\nB C 2\nbroken\nC D 3\n"), g)

	require.Error(t, err)
	assert.True(t, g.AreAdjacent("A", "B"))
	assert.True(t, g.AreAdjacent("B", "C"))
	assert.False(t, g.HasVertex("D"), "lines after the failure must not apply")
}

func TestLoad_RoundTripShortestPath(t *testing.T) {
	// Import the triangle from a real file and reproduce the canonical
	// query: cost 3 along A→B→C.
	path := filepath.Join(t.TempDir(), "triangle.txt")
	require.NoError(t, os.WriteFile(path, []byte("A B 1\nB C 2\nA C 5\n"), 0o644))

	g := core.NewGraph()
	require.NoError(t, edgelist.Load(path, g))

	p, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.Cost)
	assert.Equal(t, []string{"A", "B", "C"}, p.Vertices)
}

func TestLoad_MissingFile(t *testing.T) {
	g := core.NewGraph()
	err := edgelist.Load(filepath.Join(t.TempDir(), "absent.txt"), g)

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_DirectedGraph(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, edgelist.Parse(strings.NewReader("A B 1\n"), g))

	assert.True(t, g.AreAdjacent("A", "B"))
	assert.False(t, g.AreAdjacent("B", "A"))
}
