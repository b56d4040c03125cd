package flow

// Create allocates a flow network with v vertices and no edges.
// Complexity: O(v).
func Create(v int) *Network {
	return &Network{
		v:   v,
		adj: make([][]int, v),
	}
}

// V returns the number of vertices in the network.
func (h *Network) V() int {
	return h.v
}

func (h *Network) inRange(u int) bool {
	return u >= 0 && u < h.v
}

// AddEdge appends a forward edge u->v with the given capacity and a
// paired reverse edge v->u with capacity 0, flow 0. Multi-edges between
// the same endpoints are permitted: each call allocates a fresh pair.
// Complexity: O(1) amortized.
func (h *Network) AddEdge(u, v, cap int) error {
	if !h.inRange(u) || !h.inRange(v) {
		return ErrVertexOutOfRange
	}
	if cap < 0 {
		return ErrNegativeCapacity
	}

	fwd := len(h.edges)
	h.edges = append(h.edges, edge{to: v, cap: cap, flow: 0})
	h.adj[u] = append(h.adj[u], fwd)

	rev := len(h.edges)
	h.edges = append(h.edges, edge{to: u, cap: 0, flow: 0})
	h.adj[v] = append(h.adj[v], rev)

	return nil
}
