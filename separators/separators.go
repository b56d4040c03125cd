package separators

import (
	"errors"
	"sort"

	"github.com/pgdr/important/cut"
	"github.com/pgdr/important/graph"
	"github.com/pgdr/important/reach"
)

// ErrVertexOutOfRange indicates s or t fell outside [0, g.N()).
var ErrVertexOutOfRange = errors.New("separators: s or t out of range")

// memoKey identifies one (k, X, Y, D) recursion state. X, Y, and D are
// folded down to their canonical string encoding so the key stays
// comparable and usable directly as a map key.
type memoKey struct {
	k       int
	x, y, d string
}

// ImportantSeparators enumerates every important (s,t)-vertex separator
// of size at most k in g, following Marx's branching technique: at
// most 4^k separators are returned.
//
// s == t short-circuits to the single empty separator, matching the
// convention that there is nothing to separate a vertex from itself.
// k < 0 returns the empty family. s or t outside [0, g.N()) is a
// library-level failure (ErrVertexOutOfRange), not a pathological input
// with a defined trivial answer.
func ImportantSeparators(g *graph.Graph, s, t, k int, opts ...func(*Options)) ([]graph.VertexSet, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !g.InRange(s) || !g.InRange(t) {
		return nil, ErrVertexOutOfRange
	}
	if s == t {
		return []graph.VertexSet{graph.NewVertexSet()}, nil
	}
	if k < 0 {
		return []graph.VertexSet{}, nil
	}

	memo := make(map[memoKey][]graph.VertexSet)

	return rec(g, graph.NewVertexSet(s), graph.NewVertexSet(t), k, graph.NewVertexSet(), memo, o)
}

// rec implements the branching step: find the furthest min (X,Y)-cut in
// g\D, pick a boundary vertex v just outside its X-side closure, and
// recurse twice — once with v deleted (consuming one unit of budget),
// once with v forced onto the X-side (free) — unioning and
// deduplicating the two families of separators found.
func rec(g *graph.Graph, X, Y graph.VertexSet, k int, D graph.VertexSet, memo map[memoKey][]graph.VertexSet, o Options) ([]graph.VertexSet, error) {
	key := memoKey{k: k, x: X.Key(), y: Y.Key(), d: D.Key()}
	if cached, ok := memo[key]; ok {
		return cached, nil
	}

	if k < 0 {
		memo[key] = nil
		return nil, nil
	}

	exists, err := reach.ExistsPathAvoiding(g, X, Y, D)
	if err != nil {
		return nil, err
	}
	if !exists {
		result := []graph.VertexSet{graph.NewVertexSet()}
		memo[key] = result
		return result, nil
	}

	lambda, rmax, err := cut.FurthestMinVertexCut(g, X, Y, D, k, cut.WithLogger(o.Logger))
	if err != nil {
		return nil, err
	}
	if lambda > k {
		memo[key] = nil
		return nil, nil
	}

	v, ok, err := reach.PickBoundaryVertex(g, rmax, X, Y, D)
	if err != nil {
		return nil, err
	}
	if !ok {
		result := []graph.VertexSet{graph.NewVertexSet()}
		memo[key] = result
		return result, nil
	}

	o.Logger.Debug().
		Int("k", k).
		Int("boundary_vertex", v).
		Msg("separators: branching on boundary vertex")

	deleteBranch, err := rec(g, X, Y, k-1, D.Insert(v), memo, o)
	if err != nil {
		return nil, err
	}

	includeBranch, err := rec(g, X.Insert(v), Y, k, D, memo, o)
	if err != nil {
		return nil, err
	}

	dedup := make(map[string]graph.VertexSet, len(deleteBranch)+len(includeBranch))
	for _, sep := range deleteBranch {
		withV := sep.Insert(v)
		dedup[withV.Key()] = withV
	}
	for _, sep := range includeBranch {
		dedup[sep.Key()] = sep
	}

	result := make([]graph.VertexSet, 0, len(dedup))
	for _, sep := range dedup {
		result = append(result, sep)
	}
	sortFamily(result)

	memo[key] = result

	return result, nil
}

// sortFamily orders a family of separators by their canonical key so
// that ImportantSeparators' output is deterministic across calls.
func sortFamily(family []graph.VertexSet) {
	sort.Slice(family, func(i, j int) bool {
		return family[i].Key() < family[j].Key()
	})
}
