package gridgraph

import (
	"errors"

	"github.com/pgdr/important/graph"
)

// Sentinel errors for gridgraph parsing.
var (
	// ErrEmptyGrid indicates a grid with zero rows or zero columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNoSource indicates the grid contains no 's' cell.
	ErrNoSource = errors.New("gridgraph: grid contains no 's' cell")
	// ErrBadCell indicates a character outside {'.', '#', 's'}.
	ErrBadCell = errors.New("gridgraph: grid contains an unrecognized cell character")
)

// Grid is an R×C obstacle grid converted into a graph.Graph over R*C+1
// vertices: cell (r,c) maps to vertex r*C+c, and vertex R*C is the
// synthetic boundary sink every unblocked border cell connects to.
type Grid struct {
	R, C    int
	Blocked []bool // row-major, length R*C
	Source  int    // row-major index of the 's' cell
	Sink    int    // always R*C
	Graph   *graph.Graph
}

// ID maps a (row, col) cell to its row-major vertex index.
func (g *Grid) ID(r, c int) int {
	return r*g.C + c
}

// Coord maps a row-major vertex index back to (row, col).
func (g *Grid) Coord(v int) (r, c int) {
	return v / g.C, v % g.C
}
