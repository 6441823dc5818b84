package heightfield

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// VertexSet owns the mapping from active cells to mesh vertex indices.
// Every active cell gets exactly two vertices: a top vertex at the cell's
// extrusion height and a bottom vertex at z=0. Allocation is row-major with
// all top vertices before all bottom vertices, so identical grids always
// produce identical buffers.
type VertexSet struct {
	vertices []mgl64.Vec3
	top      map[[2]int]int
	bottom   map[[2]int]int
}

// AllocateVertices assigns vertex indices for every active cell of the
// grid. A cell at (row, col) is placed at x = col*cellSize, y = row*cellSize.
func AllocateVertices(g *Grid, cellSize float64) *VertexSet {
	n := g.ActiveCount()
	vs := &VertexSet{
		vertices: make([]mgl64.Vec3, 0, 2*n),
		top:      make(map[[2]int]int, n),
		bottom:   make(map[[2]int]int, n),
	}

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			cell, _ := g.At(r, c)
			if !cell.Active {
				continue
			}
			vs.top[[2]int{r, c}] = len(vs.vertices)
			vs.vertices = append(vs.vertices, mgl64.Vec3{
				float64(c) * cellSize,
				float64(r) * cellSize,
				cell.Height,
			})
		}
	}

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if !g.Active(r, c) {
				continue
			}
			vs.bottom[[2]int{r, c}] = len(vs.vertices)
			vs.vertices = append(vs.vertices, mgl64.Vec3{
				float64(c) * cellSize,
				float64(r) * cellSize,
				0,
			})
		}
	}

	return vs
}

// Top returns the top vertex index for the cell at (row, col). Asking for
// an inactive cell is a programming error in the caller and fails with
// ErrMissingVertex.
func (vs *VertexSet) Top(row, col int) (int, error) {
	idx, ok := vs.top[[2]int{row, col}]
	if !ok {
		return 0, fmt.Errorf("%w: top of (%d,%d)", ErrMissingVertex, row, col)
	}
	return idx, nil
}

// Bottom returns the bottom vertex index for the cell at (row, col).
func (vs *VertexSet) Bottom(row, col int) (int, error) {
	idx, ok := vs.bottom[[2]int{row, col}]
	if !ok {
		return 0, fmt.Errorf("%w: bottom of (%d,%d)", ErrMissingVertex, row, col)
	}
	return idx, nil
}

// Len returns the number of allocated vertices.
func (vs *VertexSet) Len() int { return len(vs.vertices) }

// Vertices returns the vertex buffer. The slice is owned by the VertexSet
// and must not be mutated by callers.
func (vs *VertexSet) Vertices() []mgl64.Vec3 { return vs.vertices }
