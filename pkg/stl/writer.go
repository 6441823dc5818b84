// Package stl writes indexed triangle meshes as binary or ASCII STL files.
package stl

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/forgeline/svgrelief/pkg/heightfield"
)

// Writer errors.
var (
	ErrNoFaces = errors.New("stl: mesh has no faces")
)

// headerSize is the fixed binary STL header length in bytes.
const headerSize = 80

// facet is the 50-byte binary STL triangle record.
type facet struct {
	Normal [3]float32
	Verts  [3][3]float32
	Attr   uint16
}

// WriteBinary writes the mesh in little-endian binary STL format. The name
// is embedded in the 80-byte header and truncated if needed.
func WriteBinary(w io.Writer, m *heightfield.Mesh, name string) error {
	if len(m.Faces) == 0 {
		return ErrNoFaces
	}

	var header [headerSize]byte
	copy(header[:], "svgrelief: "+name)
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("writing STL header: %w", err)
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(m.Faces))); err != nil {
		return fmt.Errorf("writing STL triangle count: %w", err)
	}

	bw := bufio.NewWriter(w)
	for i, f := range m.Faces {
		t := facet{Normal: vec32(facetNormal(m, f))}
		for j, idx := range f {
			t.Verts[j] = vec32(m.Vertices[idx])
		}
		if err := binary.Write(bw, binary.LittleEndian, t); err != nil {
			return fmt.Errorf("writing STL facet %d: %w", i, err)
		}
	}
	return bw.Flush()
}

// WriteASCII writes the mesh in ASCII STL format. ASCII output is several
// times larger than binary but diffable and readable by every slicer.
func WriteASCII(w io.Writer, m *heightfield.Mesh, name string) error {
	if len(m.Faces) == 0 {
		return ErrNoFaces
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "solid %s\n", name); err != nil {
		return fmt.Errorf("writing STL solid header: %w", err)
	}

	for _, f := range m.Faces {
		n := facetNormal(m, f)
		fmt.Fprintf(bw, "  facet normal %e %e %e\n", n.X(), n.Y(), n.Z())
		fmt.Fprintf(bw, "    outer loop\n")
		for _, idx := range f {
			v := m.Vertices[idx]
			fmt.Fprintf(bw, "      vertex %e %e %e\n", v.X(), v.Y(), v.Z())
		}
		fmt.Fprintf(bw, "    endloop\n")
		fmt.Fprintf(bw, "  endfacet\n")
	}

	if _, err := fmt.Fprintf(bw, "endsolid %s\n", name); err != nil {
		return fmt.Errorf("writing STL solid footer: %w", err)
	}
	return bw.Flush()
}

// facetNormal computes the unit normal from the triangle winding. Degenerate
// triangles get a zero normal, which STL consumers recompute themselves.
func facetNormal(m *heightfield.Mesh, f [3]int) mgl64.Vec3 {
	a := m.Vertices[f[0]]
	b := m.Vertices[f[1]]
	c := m.Vertices[f[2]]

	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() == 0 {
		return mgl64.Vec3{}
	}
	return n.Normalize()
}

func vec32(v mgl64.Vec3) [3]float32 {
	return [3]float32{float32(v.X()), float32(v.Y()), float32(v.Z())}
}
