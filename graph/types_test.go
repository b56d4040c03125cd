package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pgdr/important/graph"
)

func TestNewGraph_RejectsNegativeSize(t *testing.T) {
	_, err := graph.NewGraph(-1)
	require.ErrorIs(t, err, graph.ErrNegativeSize)
}

func TestAddEdge_BuildsSymmetricAdjacency(t *testing.T) {
	g, err := graph.NewGraph(3)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))

	n0, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Equal(t, []int{1}, n0)

	n1, err := g.Neighbors(1)
	require.NoError(t, err)
	require.ElementsMatch(t, []int{0, 2}, n1)

	n2, err := g.Neighbors(2)
	require.NoError(t, err)
	require.Equal(t, []int{1}, n2)
}

func TestAddEdge_OutOfRange(t *testing.T) {
	g, err := graph.NewGraph(2)
	require.NoError(t, err)

	require.ErrorIs(t, g.AddEdge(0, 5), graph.ErrVertexOutOfRange)
	require.ErrorIs(t, g.AddEdge(-1, 0), graph.ErrVertexOutOfRange)
}

func TestNeighbors_OutOfRange(t *testing.T) {
	g, err := graph.NewGraph(1)
	require.NoError(t, err)

	_, err = g.Neighbors(9)
	require.ErrorIs(t, err, graph.ErrVertexOutOfRange)
}

func TestAddEdge_SelfLoopAppendsOnce(t *testing.T) {
	g, err := graph.NewGraph(1)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 0))
	n0, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Equal(t, []int{0}, n0)
}
