package heightfield

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Mesh is an indexed triangle mesh. Every face index is valid for the
// vertex slice, and a mesh produced by Build always has at least one face.
type Mesh struct {
	Vertices []mgl64.Vec3
	Faces    [][3]int
}

// Bounds is the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() mgl64.Vec3 { return b.Max.Sub(b.Min) }

// Build runs the whole pipeline over the grid: vertex allocation, surface
// triangulation and silhouette walls, concatenated into one mesh.
//
// It fails with ErrEmptyGeometry when the grid has no active cells (checked
// before any allocation) and with ErrDegenerateMesh when the active cells
// are all isolated and yield vertices but no faces; no partial mesh is
// returned in either case. The computation is deterministic: the same grid
// always produces bit-identical buffers.
func Build(g *Grid, cellSize float64) (*Mesh, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrCellSize, cellSize)
	}
	if g.ActiveCount() == 0 {
		return nil, ErrEmptyGeometry
	}

	vs := AllocateVertices(g, cellSize)

	surface, err := SurfaceFaces(g, vs)
	if err != nil {
		return nil, err
	}
	walls, err := WallFaces(g, vs)
	if err != nil {
		return nil, err
	}

	faces := make([][3]int, 0, len(surface)+len(walls))
	faces = append(faces, surface...)
	faces = append(faces, walls...)

	if len(faces) == 0 {
		return nil, ErrDegenerateMesh
	}

	return &Mesh{Vertices: vs.Vertices(), Faces: faces}, nil
}

// Bounds returns the axis-aligned bounding box over all vertices.
func (m *Mesh) Bounds() Bounds {
	if len(m.Vertices) == 0 {
		return Bounds{}
	}

	b := Bounds{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v[i] < b.Min[i] {
				b.Min[i] = v[i]
			}
			if v[i] > b.Max[i] {
				b.Max[i] = v[i]
			}
		}
	}
	return b
}

// Volume returns the enclosed volume of the mesh, computed as the sum of
// signed tetrahedron volumes against the origin. The result is only
// meaningful for a closed mesh with consistent outward winding; open or
// self-intersecting meshes give an approximation.
func (m *Mesh) Volume() float64 {
	var total float64
	for _, f := range m.Faces {
		a := m.Vertices[f[0]]
		b := m.Vertices[f[1]]
		c := m.Vertices[f[2]]
		total += a.Dot(b.Cross(c)) / 6
	}
	if total < 0 {
		return -total
	}
	return total
}
