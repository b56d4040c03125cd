package reach

import (
	"github.com/pgdr/important/graph"
)

// ExistsPathAvoiding reports whether some vertex of Y is reachable from
// some vertex of X in g without ever stepping on a vertex of D. X and Y
// need not be disjoint from each other, but any vertex of X that is also
// in D is simply never enqueued, matching a plain BFS with D removed
// from the graph.
func ExistsPathAvoiding(g *graph.Graph, X, Y, D graph.VertexSet) (bool, error) {
	n := g.N()
	forbidden := make([]bool, n)
	target := make([]bool, n)
	seen := make([]bool, n)

	for _, d := range D {
		forbidden[d] = true
	}
	for _, y := range Y {
		target[y] = true
	}

	queue := make([]int, 0, n)
	for _, x := range X {
		if forbidden[x] || seen[x] {
			continue
		}
		seen[x] = true
		queue = append(queue, x)
	}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if target[u] {
			return true, nil
		}
		neighbors, err := g.Neighbors(u)
		if err != nil {
			return false, err
		}
		for _, w := range neighbors {
			if !seen[w] && !forbidden[w] {
				seen[w] = true
				queue = append(queue, w)
			}
		}
	}

	return false, nil
}

// PickBoundaryVertex scans Rmax in ascending order and, for each vertex,
// its neighbors in stored adjacency order, returning the first neighbor
// that lies outside Rmax, X, Y, and D. Returns ok=false when no such
// vertex exists, meaning Rmax's closure already touches every remaining
// vertex and the recursion should stop growing.
func PickBoundaryVertex(g *graph.Graph, Rmax, X, Y, D graph.VertexSet) (int, bool, error) {
	n := g.N()
	inR := make([]bool, n)
	inX := make([]bool, n)
	inY := make([]bool, n)
	inD := make([]bool, n)
	for _, u := range Rmax {
		inR[u] = true
	}
	for _, u := range X {
		inX[u] = true
	}
	for _, u := range Y {
		inY[u] = true
	}
	for _, u := range D {
		inD[u] = true
	}

	for _, u := range Rmax {
		neighbors, err := g.Neighbors(u)
		if err != nil {
			return 0, false, err
		}
		for _, v := range neighbors {
			if !inR[v] && !inX[v] && !inY[v] && !inD[v] {
				return v, true, nil
			}
		}
	}

	return 0, false, nil
}

// SComponent returns the set of vertices reachable from s in g without
// stepping on any vertex of S, in ascending order. Returns the empty set
// when s itself is in S.
func SComponent(g *graph.Graph, s int, S graph.VertexSet) (graph.VertexSet, error) {
	if S.Contains(s) {
		return graph.NewVertexSet(), nil
	}

	n := g.N()
	blocked := make([]bool, n)
	for _, v := range S {
		blocked[v] = true
	}

	seen := make([]bool, n)
	seen[s] = true
	queue := []int{s}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, v := range neighbors {
			if blocked[v] || seen[v] {
				continue
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}

	comp := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if seen[v] {
			comp = append(comp, v)
		}
	}

	return graph.VertexSet(comp), nil
}
