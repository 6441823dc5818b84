// Package heightfield converts a 2D grid of extruded cells into a closed
// triangle mesh suitable for 3D printing. Each grid cell is either active,
// carrying a non-negative extrusion height, or inactive (transparent
// background). Active regions get top and bottom surfaces plus vertical
// silhouette walls along the boundary, so the result is watertight for any
// simple 4-connected active region.
package heightfield

import (
	"errors"
	"fmt"
)

// Grid construction and build errors.
var (
	ErrEmptyGrid      = errors.New("heightfield: grid needs at least one row and one column")
	ErrRaggedGrid     = errors.New("heightfield: all grid rows must have the same length")
	ErrNegativeHeight = errors.New("heightfield: active cell height must be non-negative")
	ErrCellSize       = errors.New("heightfield: cell size must be positive")
	ErrEmptyGeometry  = errors.New("heightfield: grid has no active cells")
	ErrDegenerateMesh = errors.New("heightfield: active cells produced no faces")
	ErrMissingVertex  = errors.New("heightfield: no vertex allocated for cell")
)

// Cell is a single grid cell. Height is meaningful only when Active is set;
// an inactive cell's effective height is always 0.
type Cell struct {
	Active bool
	Height float64
}

// Grid is an immutable rectangular lattice of cells. Construct it with
// NewGrid or FromHeightMap; the zero value is not usable.
type Grid struct {
	rows, cols int
	cells      []Cell
	active     int
}

// NewGrid builds a grid from a rectangular slice of cells, copying the
// input. All rows must have the same non-zero length and every active cell
// must have a non-negative height.
func NewGrid(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	rows := len(cells)
	cols := len(cells[0])

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, 0, rows*cols),
	}

	for r, row := range cells {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, r, len(row), cols)
		}
		for c, cell := range row {
			if cell.Active {
				if cell.Height < 0 {
					return nil, fmt.Errorf("%w: cell (%d,%d) has height %g", ErrNegativeHeight, r, c, cell.Height)
				}
				g.active++
			} else {
				cell.Height = 0
			}
			g.cells = append(g.cells, cell)
		}
	}

	return g, nil
}

// FromHeightMap builds a grid from raw per-cell heights. Cells whose height
// is above threshold become active; everything else is inactive background.
func FromHeightMap(heights [][]float64, threshold float64) (*Grid, error) {
	cells := make([][]Cell, len(heights))
	for r, row := range heights {
		cells[r] = make([]Cell, len(row))
		for c, h := range row {
			if h > threshold {
				cells[r][c] = Cell{Active: true, Height: h}
			}
		}
	}
	return NewGrid(cells)
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Grid) Cols() int { return g.cols }

// ActiveCount returns the number of active cells.
func (g *Grid) ActiveCount() int { return g.active }

// At returns the cell at (row, col). The second result is false when the
// coordinates are out of bounds.
func (g *Grid) At(row, col int) (Cell, bool) {
	if row < 0 || col < 0 || row >= g.rows || col >= g.cols {
		return Cell{}, false
	}
	return g.cells[row*g.cols+col], true
}

// Active reports whether the cell at (row, col) is active. Out-of-bounds
// positions count as inactive, which is exactly the rule the surface and
// wall builders need at the grid edge.
func (g *Grid) Active(row, col int) bool {
	cell, ok := g.At(row, col)
	return ok && cell.Active
}

// Height returns the extrusion height at (row, col). Inactive and
// out-of-bounds cells report 0.
func (g *Grid) Height(row, col int) float64 {
	cell, ok := g.At(row, col)
	if !ok || !cell.Active {
		return 0
	}
	return cell.Height
}

// HeightRange returns the minimum and maximum height over active cells.
// ok is false when the grid has no active cells.
func (g *Grid) HeightRange() (min, max float64, ok bool) {
	for _, cell := range g.cells {
		if !cell.Active {
			continue
		}
		if !ok {
			min, max, ok = cell.Height, cell.Height, true
			continue
		}
		if cell.Height < min {
			min = cell.Height
		}
		if cell.Height > max {
			max = cell.Height
		}
	}
	return min, max, ok
}
