package tui

import (
	"math"

	"github.com/vovakirdan/raket/internal/core"
	"github.com/vovakirdan/raket/internal/game"
)

// Viewport scales the world onto a grid of terminal cells.
type Viewport struct {
	cols, rows int
	sx, sy     float64 // Cells per world unit
}

// NewViewport creates a viewport of cols x rows cells. Both are at least 1.
func NewViewport(cols, rows int) Viewport {
	cols = max(cols, 1)
	rows = max(rows, 1)
	return Viewport{
		cols: cols,
		rows: rows,
		sx:   float64(cols) / game.WorldWidth,
		sy:   float64(rows) / game.WorldHeight,
	}
}

// Cols returns the viewport width in cells.
func (v Viewport) Cols() int { return v.cols }

// Rows returns the viewport height in cells.
func (v Viewport) Rows() int { return v.rows }

// Cell returns the cell containing world point p.
func (v Viewport) Cell(p core.Vec) (int, int) {
	return int(math.Floor(p.X * v.sx)), int(math.Floor(p.Y * v.sy))
}

// ToWorld returns the world point at the center of cell (x, y).
func (v Viewport) ToWorld(x, y int) core.Vec {
	return core.Vec{
		X: (float64(x) + 0.5) / v.sx,
		Y: (float64(y) + 0.5) / v.sy,
	}
}

// ToCells returns the cells covered by world rectangle r.
// A non-empty rectangle always covers at least one cell.
func (v Viewport) ToCells(r core.Rect) core.Cells {
	x0 := int(math.Floor(r.X * v.sx))
	y0 := int(math.Floor(r.Y * v.sy))
	x1 := int(math.Ceil(r.Right() * v.sx))
	y1 := int(math.Ceil(r.Bottom() * v.sy))
	if r.W > 0 && x1 == x0 {
		x1++
	}
	if r.H > 0 && y1 == y0 {
		y1++
	}
	return core.NewCells(x0, y0, x1-x0, y1-y0)
}
