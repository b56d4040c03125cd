package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pgdr/important/graph"
)

func TestNewVertexSet_SortsAndDedupes(t *testing.T) {
	s := graph.NewVertexSet(3, 1, 2, 1, 3)
	require.Equal(t, graph.VertexSet{1, 2, 3}, s)
}

func TestVertexSet_Contains(t *testing.T) {
	s := graph.NewVertexSet(5, 1, 9)
	require.True(t, s.Contains(1))
	require.True(t, s.Contains(9))
	require.False(t, s.Contains(4))
}

func TestVertexSet_Insert(t *testing.T) {
	s := graph.NewVertexSet(1, 3)
	out := s.Insert(2)
	require.Equal(t, graph.VertexSet{1, 2, 3}, out)
	// original untouched
	require.Equal(t, graph.VertexSet{1, 3}, s)

	// inserting an existing element is a no-op copy
	out2 := s.Insert(1)
	require.Equal(t, graph.VertexSet{1, 3}, out2)
}

func TestVertexSet_Union(t *testing.T) {
	a := graph.NewVertexSet(1, 2, 5)
	b := graph.NewVertexSet(2, 3)
	require.Equal(t, graph.VertexSet{1, 2, 3, 5}, a.Union(b))
}

func TestVertexSet_Equal(t *testing.T) {
	a := graph.NewVertexSet(1, 2, 3)
	b := graph.NewVertexSet(3, 2, 1)
	c := graph.NewVertexSet(1, 2)
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestVertexSet_Key(t *testing.T) {
	a := graph.NewVertexSet(1, 2, 3)
	b := graph.NewVertexSet(3, 1, 2)
	require.Equal(t, a.Key(), b.Key())

	empty := graph.NewVertexSet()
	require.Equal(t, "", empty.Key())
}
