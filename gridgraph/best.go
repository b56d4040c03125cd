package gridgraph

import (
	"github.com/pgdr/important/graph"
	"github.com/pgdr/important/reach"
)

// BestSeparator picks, among a family of important separators, the one
// that leaves the largest component attached to the grid's source once
// removed. Returns ok=false if family is empty.
func (g *Grid) BestSeparator(family []graph.VertexSet) (best graph.VertexSet, compSize int, ok bool, err error) {
	for _, s := range family {
		comp, cerr := reach.SComponent(g.Graph, g.Source, s)
		if cerr != nil {
			return nil, 0, false, cerr
		}
		if len(comp) > compSize {
			compSize = len(comp)
			best = s
			ok = true
		}
	}

	return best, compSize, ok, nil
}
