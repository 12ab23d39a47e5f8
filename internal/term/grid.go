// Package term plays the game in a terminal with tcell. The session keeps
// working in surface units; grid maps them onto whatever cell grid the
// terminal currently has.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"heartcatch/internal/geom"
)

type grid struct {
	cols, rows int
	cellW      float64
	cellH      float64
}

func newGrid(screen tcell.Screen, surface geom.Size) grid {
	cols, rows := screen.Size()
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return grid{
		cols:  cols,
		rows:  rows,
		cellW: surface.W / float64(cols),
		cellH: surface.H / float64(rows),
	}
}

// cell returns the cell containing a surface point. Points above or left
// of the surface map to negative cells.
func (g grid) cell(p geom.Point) (int, int) {
	return int(math.Floor(p.X / g.cellW)), int(math.Floor(p.Y / g.cellH))
}

// point returns the surface point at the centre of a cell.
func (g grid) point(col, row int) geom.Point {
	return geom.Point{
		X: (float64(col) + 0.5) * g.cellW,
		Y: (float64(row) + 0.5) * g.cellH,
	}
}

func (g grid) inside(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// span returns the first and last column covered by [x, x+w).
func (g grid) span(x, w float64) (int, int) {
	first := int(x / g.cellW)
	last := int((x+w)/g.cellW) - 1
	if last < first {
		last = first
	}
	return first, last
}
