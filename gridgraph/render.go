package gridgraph

import (
	"strconv"
	"strings"

	"github.com/pgdr/important/graph"
)

// Render draws the grid back out as "'#' for blocked, 'X' for a
// separator cell, '.' elsewhere", with the source cell marked 's' —
// the source wins over 'X' when a separator happens to include it,
// matching the reference renderer's paint order (blocked, then
// separator, then source last).
func (g *Grid) Render(separator graph.VertexSet) string {
	rows := make([][]byte, g.R)
	for r := 0; r < g.R; r++ {
		row := make([]byte, g.C)
		for c := 0; c < g.C; c++ {
			row[c] = '.'
		}
		rows[r] = row
	}

	for v := 0; v < g.R*g.C; v++ {
		if g.Blocked[v] {
			r, c := g.Coord(v)
			rows[r][c] = '#'
		}
	}

	for _, v := range separator {
		if v >= 0 && v < g.R*g.C && !g.Blocked[v] {
			r, c := g.Coord(v)
			rows[r][c] = 'X'
		}
	}

	if g.Source >= 0 && g.Source < g.R*g.C && !g.Blocked[g.Source] {
		r, c := g.Coord(g.Source)
		rows[r][c] = 's'
	}

	var b strings.Builder
	b.WriteString(strconv.Itoa(g.R))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(g.C))
	b.WriteByte('\n')
	for _, row := range rows {
		b.Write(row)
		b.WriteByte('\n')
	}

	return b.String()
}
