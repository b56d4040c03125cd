package cut

import (
	"github.com/pgdr/important/flow"
	"github.com/pgdr/important/graph"
)

// FurthestMinVertexCut computes the minimum (X,Y)-vertex-cut value λ in
// g \ D (vertices in X∪Y are uncuttable), and the furthest minimum cut
// Rmax: the unique maximal X-side closure among all minimum cuts,
// obtained from residual reachability after a max-flow on the
// vertex-split network.
//
// X, Y, and D must be pairwise disjoint canonical VertexSets. k is used
// only to size the INF constant safely (see infinity below) and never
// bounds the flow computation itself; callers compare the returned λ
// against k themselves.
//
// Pathological inputs (empty X or empty Y) are valid and yield λ=0: with
// no source or no sink wired into the split network, no flow can be
// pushed. Rmax differs between the two: empty X gives every vertex
// outside D and Y that has no path to Y in g \ D (so Rmax=∅ when every
// such vertex is connected to Y), while empty Y gives Rmax equal to the
// full vertex set minus D (nothing can reach a sink nobody wired in, so
// nothing is excluded from the closure). The
// real enumerator never calls this with an empty X or Y in practice —
// reach.ExistsPathAvoiding short-circuits first — so neither case
// affects the algorithm's actual behavior.
//
// Complexity: O(E * sqrt(V)) on the split network, which has O(n)
// vertices and O(n+m) edges.
func FurthestMinVertexCut(g *graph.Graph, X, Y, D graph.VertexSet, k int, opts ...func(*Options)) (int, graph.VertexSet, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.N()

	inD := membership(n, D)
	inX := membership(n, X)
	inY := membership(n, Y)

	inf := infinity(n, k)

	inID := func(v int) int { return 2 * v }
	outID := func(v int) int { return 2*v + 1 }
	src, snk := 2*n, 2*n+1

	h := flow.Create(2*n + 2)

	// Vertex-capacity gadget: v_in -> v_out, capacity 1 unless v is a
	// terminal (X or Y), in which case it must not be cuttable.
	for v := 0; v < n; v++ {
		if inD[v] {
			continue
		}
		cap := 1
		if inX[v] || inY[v] {
			cap = inf
		}
		if err := h.AddEdge(inID(v), outID(v), cap); err != nil {
			return 0, nil, err
		}
	}

	// Edge gadgets: each undirected edge {a,b} becomes both a_out->b_in
	// and b_out->a_in, added exactly once per unordered pair.
	for a := 0; a < n; a++ {
		if inD[a] {
			continue
		}
		neighbors, err := g.Neighbors(a)
		if err != nil {
			return 0, nil, err
		}
		for _, b := range neighbors {
			if a >= b || inD[b] {
				continue
			}
			if err := h.AddEdge(outID(a), inID(b), inf); err != nil {
				return 0, nil, err
			}
			if err := h.AddEdge(outID(b), inID(a), inf); err != nil {
				return 0, nil, err
			}
		}
	}

	// Super source / super sink wiring.
	for _, x := range X {
		if inD[x] {
			continue
		}
		if err := h.AddEdge(src, outID(x), inf); err != nil {
			return 0, nil, err
		}
	}
	for _, y := range Y {
		if inD[y] {
			continue
		}
		if err := h.AddEdge(inID(y), snk, inf); err != nil {
			return 0, nil, err
		}
	}

	lambda, err := h.MaxFlow(src, snk, flow.WithLogger(o.Logger))
	if err != nil {
		return 0, nil, err
	}

	// Rmax is the maximal X-side closure among all minimum cuts: the
	// vertices outside Y whose out-node cannot reach snk in the residual
	// graph (a Y vertex's out-node is never on a path to snk, so Y is
	// excluded explicitly). Plain
	// forward reachability from src instead gives the *minimal*
	// closure, which lets the enumerator above it discover separators
	// dominated by a larger one and breaks the Pareto-optimality
	// guarantee on importance, so this deliberately traverses the
	// transpose of the residual graph from the sink side.
	reaching, err := h.ResidualReachableTo(snk)
	if err != nil {
		return 0, nil, err
	}
	canReachSink := make([]bool, 2*n+2)
	for _, u := range reaching {
		canReachSink[u] = true
	}

	rmax := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if !inD[v] && !inY[v] && !canReachSink[outID(v)] {
			rmax = append(rmax, v)
		}
	}

	return lambda, graph.NewVertexSet(rmax...), nil
}

// infinity picks an integer strictly greater than any cut value that
// could be realized purely through uncuttable (X∪Y) or edge-gadget
// arcs, so that no minimum cut can ever saturate an INF-labeled edge.
func infinity(n, k int) int {
	a, b := k+1, n+k+5
	if a > b {
		return a
	}

	return b
}

// membership builds a dense bool lookup for a VertexSet over [0, n).
func membership(n int, s graph.VertexSet) []bool {
	m := make([]bool, n)
	for _, v := range s {
		if v >= 0 && v < n {
			m[v] = true
		}
	}

	return m
}
