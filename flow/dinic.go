package flow

// MaxFlow computes the maximum flow from source to sink using Dinic's
// algorithm: repeated BFS level-graph construction followed by a
// DFS-based blocking flow with a per-vertex "next admissible edge"
// cursor that advances past saturated or dead-end edges.
//
// Returns ErrSourceEqualsSink (a programmer error, not a data problem;
// see types.go) when source == sink. Every other input is valid and
// MaxFlow always terminates with a maximum flow value on the network.
//
// Complexity: O(E * sqrt(V)) on the unit-capacity vertex-split networks
// this package exists to solve; O(V^2 * E) in general.
func (h *Network) MaxFlow(source, sink int, opts ...func(*Options)) (int, error) {
	if !h.inRange(source) || !h.inRange(sink) {
		return 0, ErrVertexOutOfRange
	}
	if source == sink {
		return 0, ErrSourceEqualsSink
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	total := 0
	for {
		level := h.bfsLevels(source)
		if level[sink] < 0 {
			// Sink unreachable in the level graph: no more augmenting paths.
			break
		}

		iter := make([]int, h.v)
		for {
			pushed := h.dfsBlockingFlow(source, sink, level, iter, maxInt)
			if pushed == 0 {
				break
			}
			total += pushed
			o.Logger.Debug().Int("pushed", pushed).Int("total", total).Msg("flow: augmenting path")
		}
	}

	return total, nil
}

const maxInt = int(^uint(0) >> 1)

// bfsLevels computes, for every vertex, its distance from source using
// only edges with positive residual capacity. Unreached vertices keep
// level -1.
func (h *Network) bfsLevels(source int) []int {
	level := make([]int, h.v)
	for i := range level {
		level[i] = -1
	}
	level[source] = 0

	queue := make([]int, 0, h.v)
	queue = append(queue, source)
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, ei := range h.adj[u] {
			e := h.edges[ei]
			if h.residual(ei) > 0 && level[e.to] < 0 {
				level[e.to] = level[u] + 1
				queue = append(queue, e.to)
			}
		}
	}

	return level
}

// dfsBlockingFlow pushes up to `available` units of flow from u to sink
// along edges admissible in the level graph (level[to] == level[u]+1),
// using iter[u] as a cursor into adj[u] so that saturated or dead-end
// edges are never revisited within the same blocking-flow phase.
func (h *Network) dfsBlockingFlow(u, sink int, level, iter []int, available int) int {
	if u == sink {
		return available
	}

	for ; iter[u] < len(h.adj[u]); iter[u]++ {
		ei := h.adj[u][iter[u]]
		e := &h.edges[ei]
		if level[e.to] != level[u]+1 {
			continue
		}
		res := h.residual(ei)
		if res <= 0 {
			continue
		}

		send := available
		if res < send {
			send = res
		}

		pushed := h.dfsBlockingFlow(e.to, sink, level, iter, send)
		if pushed > 0 {
			h.edges[ei].flow += pushed
			h.edges[ei^1].flow -= pushed

			return pushed
		}
	}

	return 0
}
