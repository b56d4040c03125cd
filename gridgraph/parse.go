package gridgraph

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pgdr/important/graph"
)

// ReadGrid reads a grid in the reference format: a first line "R C",
// followed by R lines of exactly C characters each drawn from
// {'.', '#', 's'}. It is the inverse of the header line written by
// (*Grid).Render.
func ReadGrid(r io.Reader) (*Grid, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, ErrEmptyGrid
	}

	var rows, cols int
	if _, err := fmt.Sscanf(scanner.Text(), "%d %d", &rows, &cols); err != nil {
		return nil, fmt.Errorf("gridgraph: reading dimensions: %w", err)
	}

	lines := make([]string, 0, rows)
	for len(lines) < rows && scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: reading grid body: %w", err)
	}

	return ParseGridLines(lines)
}

// ParseGridLines builds a Grid from a rectangular set of rows drawn
// from the alphabet {'.', '#', 's'}. Exactly one 's' cell must be
// present; it becomes the Source. Every unblocked cell becomes a
// vertex of the returned Grid.Graph, 4-connected to its unblocked
// neighbors, and every unblocked cell on the grid's border is also
// connected to the synthetic sink vertex Grid.Sink.
func ParseGridLines(lines []string) (*Grid, error) {
	r := len(lines)
	if r == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	c := len(lines[0])
	for _, line := range lines {
		if len(line) != c {
			return nil, ErrNonRectangular
		}
	}

	blocked := make([]bool, r*c)
	source := -1

	id := func(row, col int) int { return row*c + col }

	for row := 0; row < r; row++ {
		for col := 0; col < c; col++ {
			switch ch := lines[row][col]; ch {
			case '#':
				blocked[id(row, col)] = true
			case 's':
				source = id(row, col)
			case '.':
				// open cell, nothing to record
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, ch, row, col)
			}
		}
	}

	if source == -1 {
		return nil, ErrNoSource
	}

	sink := r * c
	g, err := graph.NewGraph(r*c + 1)
	if err != nil {
		return nil, err
	}

	for row := 0; row < r; row++ {
		for col := 0; col < c; col++ {
			u := id(row, col)
			if blocked[u] {
				continue
			}
			if col+1 < c {
				if v := id(row, col+1); !blocked[v] {
					if err := g.AddEdge(u, v); err != nil {
						return nil, err
					}
				}
			}
			if row+1 < r {
				if v := id(row+1, col); !blocked[v] {
					if err := g.AddEdge(u, v); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	// isBoundary + an explicit ascending scan (rather than a map) keeps
	// the sink's adjacency order deterministic, which matters because
	// reach.PickBoundaryVertex breaks ties by stored adjacency order.
	isBoundary := make([]bool, r*c)
	for row := 0; row < r; row++ {
		isBoundary[id(row, 0)] = true
		isBoundary[id(row, c-1)] = true
	}
	for col := 0; col < c; col++ {
		isBoundary[id(0, col)] = true
		isBoundary[id(r-1, col)] = true
	}
	for v := 0; v < r*c; v++ {
		if isBoundary[v] && !blocked[v] {
			if err := g.AddEdge(sink, v); err != nil {
				return nil, err
			}
		}
	}

	return &Grid{
		R:       r,
		C:       c,
		Blocked: blocked,
		Source:  source,
		Sink:    sink,
		Graph:   g,
	}, nil
}
