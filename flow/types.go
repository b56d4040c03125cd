package flow

import "errors"

// Sentinel errors for the flow package.
var (
	// ErrVertexOutOfRange indicates an edge or query referenced a vertex
	// index outside [0, V).
	ErrVertexOutOfRange = errors.New("flow: vertex index out of range")

	// ErrNegativeCapacity indicates AddEdge was called with a negative
	// capacity, which would make the residual bookkeeping meaningless.
	ErrNegativeCapacity = errors.New("flow: negative capacity")

	// ErrSourceEqualsSink is a programmer error: MaxFlow is undefined
	// when source and sink coincide. The important-separator enumerator
	// never reaches this case because it short-circuits whenever s == t
	// before any flow computation is attempted (see ImportantSeparators in
// separators/separators.go);
	// any caller that hits this sentinel has a bug, not a data problem.
	ErrSourceEqualsSink = errors.New("flow: source equals sink")
)

// edge is one directed arc of the flow network. Edges are always
// inserted in forward/reverse pairs by AddEdge, so the reverse of edge
// index i is always i^1 (see doc.go).
type edge struct {
	to   int
	cap  int
	flow int
}

// Network is a directed, capacitated multigraph used to run Dinic's
// algorithm. It is built once via Create+AddEdge, solved once via
// MaxFlow, and optionally queried once via ResidualReachableFrom or
// ResidualReachableTo.
type Network struct {
	v     int
	edges []edge
	adj   [][]int // adj[u] holds indices into edges for arcs leaving u
}

// residual returns the spare capacity on edge i.
func (h *Network) residual(i int) int {
	return h.edges[i].cap - h.edges[i].flow
}
