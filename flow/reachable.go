package flow

// ResidualReachableFrom computes the set of vertices reachable from
// source using only edges with residual capacity > 0, i.e. cap - flow >
// 0. Intended to be called once, after MaxFlow has run to completion,
// to extract the source-side closure of a minimum cut.
//
// Complexity: O(V + E).
func (h *Network) ResidualReachableFrom(source int) ([]int, error) {
	if !h.inRange(source) {
		return nil, ErrVertexOutOfRange
	}

	seen := make([]bool, h.v)
	seen[source] = true
	stack := []int{source}

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, ei := range h.adj[u] {
			e := h.edges[ei]
			if h.residual(ei) > 0 && !seen[e.to] {
				seen[e.to] = true
				stack = append(stack, e.to)
			}
		}
	}

	reachable := make([]int, 0, h.v)
	for v, ok := range seen {
		if ok {
			reachable = append(reachable, v)
		}
	}

	return reachable, nil
}

// ResidualReachableTo computes the set of vertices that can reach sink
// using only edges with residual capacity > 0. This is the complement of
// the closure cut.FurthestMinVertexCut needs: a vertex lies on the
// furthest (maximal) source-side of a minimum cut exactly when it cannot
// reach the sink in the residual graph, which is why this traversal runs
// over the transpose of the residual graph rather than the residual
// graph itself.
//
// Complexity: O(V + E).
func (h *Network) ResidualReachableTo(sink int) ([]int, error) {
	if !h.inRange(sink) {
		return nil, ErrVertexOutOfRange
	}

	transpose := make([][]int, h.v)
	for u := 0; u < h.v; u++ {
		for _, ei := range h.adj[u] {
			if h.residual(ei) > 0 {
				e := h.edges[ei]
				transpose[e.to] = append(transpose[e.to], u)
			}
		}
	}

	seen := make([]bool, h.v)
	seen[sink] = true
	stack := []int{sink}

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, pred := range transpose[u] {
			if !seen[pred] {
				seen[pred] = true
				stack = append(stack, pred)
			}
		}
	}

	reaching := make([]int, 0, h.v)
	for v, ok := range seen {
		if ok {
			reaching = append(reaching, v)
		}
	}

	return reaching, nil
}
