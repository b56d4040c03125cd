// Package gridgraph adapts a rectangular obstacle grid into a
// graph.Graph suitable for separators.ImportantSeparators: each
// unblocked cell becomes a vertex, 4-connected unblocked cells become
// edges, and every unblocked boundary cell is wired to one synthetic
// sink vertex representing "escape the grid." It also renders a
// separator back onto the original grid for display.
//
// This package has no equivalent in spec.md's core scope; it exists to
// give the library's domain dependencies (the CLI front-end in
// cmd/impsep) something concrete to drive, the same way the teacher's
// own gridgraph package exists to give its core graph types a
// spatial-data front-end.
package gridgraph
