// Package reach provides the small set of plain-BFS queries the
// separators enumerator needs on top of graph.Graph: whether an
// (X,Y)-path survives deletion of D, which boundary vertex to branch on
// next, and the size of the component still attached to a single
// vertex once a separator has been removed.
//
// None of these queries touch the flow package; they operate directly
// on graph.Graph adjacency, the same way the teacher's bfs package
// walks core.Graph.
package reach
