package separators_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pgdr/important/graph"
	"github.com/pgdr/important/separators"
)

func path5(t *testing.T) *graph.Graph {
	g, err := graph.NewGraph(5)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))
	require.NoError(t, g.AddEdge(3, 4))

	return g
}

func diamond(t *testing.T) *graph.Graph {
	g, err := graph.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(1, 3))
	require.NoError(t, g.AddEdge(2, 3))

	return g
}

func star(t *testing.T) *graph.Graph {
	g, err := graph.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(0, 3))

	return g
}

// On a path, every interior vertex is individually a valid cut, but
// only the one closest to t is not dominated by a larger s-side
// closure, so it is the sole important separator regardless of budget.
func TestImportantSeparators_Path(t *testing.T) {
	g := path5(t)

	fam, err := separators.ImportantSeparators(g, 0, 4, 0)
	require.NoError(t, err)
	require.Empty(t, fam)

	for _, k := range []int{1, 2, 3} {
		fam, err := separators.ImportantSeparators(g, 0, 4, k)
		require.NoError(t, err)
		require.Equal(t, []graph.VertexSet{graph.NewVertexSet(3)}, fam)
	}
}

func TestImportantSeparators_Diamond(t *testing.T) {
	g := diamond(t)

	for _, k := range []int{0, 1} {
		fam, err := separators.ImportantSeparators(g, 0, 3, k)
		require.NoError(t, err)
		require.Empty(t, fam)
	}

	for _, k := range []int{2, 3} {
		fam, err := separators.ImportantSeparators(g, 0, 3, k)
		require.NoError(t, err)
		require.Equal(t, []graph.VertexSet{graph.NewVertexSet(1, 2)}, fam)
	}
}

func TestImportantSeparators_Star(t *testing.T) {
	g := star(t)

	fam, err := separators.ImportantSeparators(g, 1, 2, 0)
	require.NoError(t, err)
	require.Empty(t, fam)

	fam, err = separators.ImportantSeparators(g, 1, 2, 1)
	require.NoError(t, err)
	require.Equal(t, []graph.VertexSet{graph.NewVertexSet(0)}, fam)
}

func TestImportantSeparators_SourceEqualsSink(t *testing.T) {
	g := path5(t)
	fam, err := separators.ImportantSeparators(g, 2, 2, 4)
	require.NoError(t, err)
	require.Equal(t, []graph.VertexSet{graph.NewVertexSet()}, fam)
}

func TestImportantSeparators_NegativeK(t *testing.T) {
	g := path5(t)
	fam, err := separators.ImportantSeparators(g, 0, 4, -1)
	require.NoError(t, err)
	require.Empty(t, fam)
}

func TestImportantSeparators_VertexOutOfRange(t *testing.T) {
	g := path5(t)
	_, err := separators.ImportantSeparators(g, 0, 99, 4)
	require.ErrorIs(t, err, separators.ErrVertexOutOfRange)
}
