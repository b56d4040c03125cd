// Package graph defines the UndirectedGraph type and the sorted VertexSet
// primitive shared by the flow, cut, reach, and separators packages.
//
// A graph is immutable once constructed: AddEdge is only valid while
// building it, and every algorithm in this module treats a *Graph as
// read-only. Vertices are dense integer indices 0..N-1; adjacency is
// stored as a per-vertex slice of neighbor indices, tolerating parallel
// edges (simple graphs are assumed but duplicates are never rejected).
package graph
