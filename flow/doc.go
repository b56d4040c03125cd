// Package flow implements a capacitated directed multigraph with Dinic's
// maximum-flow algorithm and residual-reachability extraction.
//
// Network is built fresh by a single caller (cut.FurthestMinVertexCut in
// this module), filled with AddEdge calls, solved once with MaxFlow, and
// then queried with ResidualReachableFrom or ResidualReachableTo before
// being discarded — see the freshness and lifecycle notes in cut/doc.go.
// There is no pooling
// or reuse across calls: the shape of the vertex-split gadget depends on
// the deleted set D at the call site, so a stale Network would silently
// answer the wrong question.
//
// Edges are stored as a flat, append-only slice so that an edge's index
// never changes after insertion; AddEdge always appends a forward edge
// immediately followed by its paired reverse edge, so the reverse of
// edge i is always edge i^1. This is the same trick used by most
// competitive-programming Dinic implementations and keeps
// ResidualReachableFrom and the blocking-flow DFS free of any separate
// reverse-edge index bookkeeping.
package flow
