package reach_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pgdr/important/graph"
	"github.com/pgdr/important/reach"
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

func TestExistsPathAvoiding_Direct(t *testing.T) {
	g := path5(t)
	ok, err := reach.ExistsPathAvoiding(g, graph.NewVertexSet(0), graph.NewVertexSet(4), graph.NewVertexSet())
	require.NoError(t, err)
	require.True(t, ok)
}

func TestExistsPathAvoiding_BlockedByD(t *testing.T) {
	g := path5(t)
	ok, err := reach.ExistsPathAvoiding(g, graph.NewVertexSet(0), graph.NewVertexSet(4), graph.NewVertexSet(2))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestExistsPathAvoiding_EmptyX(t *testing.T) {
	g := path5(t)
	ok, err := reach.ExistsPathAvoiding(g, graph.NewVertexSet(), graph.NewVertexSet(4), graph.NewVertexSet())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestExistsPathAvoiding_StartIsTarget(t *testing.T) {
	g := path5(t)
	ok, err := reach.ExistsPathAvoiding(g, graph.NewVertexSet(0), graph.NewVertexSet(0), graph.NewVertexSet())
	require.NoError(t, err)
	require.True(t, ok)
}

func TestPickBoundaryVertex_FindsFirstOutsideClosure(t *testing.T) {
	g := path5(t)
	v, ok, err := reach.PickBoundaryVertex(g, graph.NewVertexSet(0, 1, 2), graph.NewVertexSet(0), graph.NewVertexSet(4), graph.NewVertexSet())
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 3, v)
}

func TestPickBoundaryVertex_NoneWhenClosureTouchesEverything(t *testing.T) {
	g := path5(t)
	v, ok, err := reach.PickBoundaryVertex(g, graph.NewVertexSet(0, 1, 2, 3), graph.NewVertexSet(0), graph.NewVertexSet(4), graph.NewVertexSet())
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 0, v)
}

func TestPickBoundaryVertex_ExcludesY(t *testing.T) {
	g := path5(t)
	// Rmax={0,1,2,3} touches 4 only, but 4 is in Y so it is never a
	// valid boundary candidate.
	_, ok, err := reach.PickBoundaryVertex(g, graph.NewVertexSet(0, 1, 2, 3), graph.NewVertexSet(0), graph.NewVertexSet(4), graph.NewVertexSet())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSComponent_Basic(t *testing.T) {
	g := path5(t)
	comp, err := reach.SComponent(g, 0, graph.NewVertexSet(2))
	require.NoError(t, err)
	require.Equal(t, graph.NewVertexSet(0, 1), comp)
}

func TestSComponent_SInSeparator(t *testing.T) {
	g := path5(t)
	comp, err := reach.SComponent(g, 2, graph.NewVertexSet(2))
	require.NoError(t, err)
	require.Empty(t, comp)
}

func TestSComponent_WholeGraphWhenSeparatorEmpty(t *testing.T) {
	g := path5(t)
	comp, err := reach.SComponent(g, 0, graph.NewVertexSet())
	require.NoError(t, err)
	require.Equal(t, graph.NewVertexSet(0, 1, 2, 3, 4), comp)
}
