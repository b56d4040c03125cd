// Package cut computes the furthest minimum (X,Y)-vertex cut of an
// undirected graph via a vertex-splitting reduction to directed edge
// max-flow, solved by flow.Network.
//
// FurthestMinVertexCut allocates a brand new flow.Network on every call
// and discards it before returning: the network's shape depends on the
// deleted set D, so nothing is pooled or reused across calls. This
// mirrors the flow package's own no-pooling policy (see flow/doc.go)
// and keeps each call's working set bounded by O(n+m) regardless of how
// deep the separators enumerator's recursion goes.
package cut
