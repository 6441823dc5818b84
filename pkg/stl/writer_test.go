package stl

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/forgeline/svgrelief/pkg/heightfield"
)

// blockMesh builds the smallest meaningful mesh: a solid 2x2 block.
func blockMesh(t *testing.T) *heightfield.Mesh {
	t.Helper()

	cells := make([][]heightfield.Cell, 2)
	for r := range cells {
		cells[r] = []heightfield.Cell{
			{Active: true, Height: 2.0},
			{Active: true, Height: 2.0},
		}
	}
	g, err := heightfield.NewGrid(cells)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	m, err := heightfield.Build(g, 1.0)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return m
}

func TestWriteBinaryLayout(t *testing.T) {
	m := blockMesh(t)

	var buf bytes.Buffer
	if err := WriteBinary(&buf, m, "block"); err != nil {
		t.Fatalf("WriteBinary failed: %v", err)
	}

	data := buf.Bytes()
	wantLen := 84 + 50*len(m.Faces)
	if len(data) != wantLen {
		t.Fatalf("output length = %d, want %d", len(data), wantLen)
	}

	if !bytes.HasPrefix(data, []byte("svgrelief: block")) {
		t.Error("header missing solid name")
	}

	count := binary.LittleEndian.Uint32(data[80:84])
	if int(count) != len(m.Faces) {
		t.Errorf("triangle count field = %d, want %d", count, len(m.Faces))
	}

	// Every attribute byte count field is zero.
	for i := 0; i < int(count); i++ {
		off := 84 + 50*i + 48
		if attr := binary.LittleEndian.Uint16(data[off : off+2]); attr != 0 {
			t.Errorf("facet %d attribute = %d, want 0", i, attr)
		}
	}
}

func TestWriteBinaryNormals(t *testing.T) {
	m := blockMesh(t)

	var buf bytes.Buffer
	if err := WriteBinary(&buf, m, "block"); err != nil {
		t.Fatalf("WriteBinary failed: %v", err)
	}
	data := buf.Bytes()

	count := int(binary.LittleEndian.Uint32(data[80:84]))
	for i := 0; i < count; i++ {
		off := 84 + 50*i
		var n [3]float32
		for j := range n {
			bits := binary.LittleEndian.Uint32(data[off+4*j : off+4*j+4])
			n[j] = math.Float32frombits(bits)
		}
		length := math.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2]))
		if math.Abs(length-1) > 1e-5 {
			t.Errorf("facet %d normal length = %g, want 1", i, length)
		}
	}
}

func TestWriteASCII(t *testing.T) {
	m := blockMesh(t)

	var buf bytes.Buffer
	if err := WriteASCII(&buf, m, "block"); err != nil {
		t.Fatalf("WriteASCII failed: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "solid block\n") {
		t.Error("missing solid header")
	}
	if !strings.HasSuffix(out, "endsolid block\n") {
		t.Error("missing endsolid footer")
	}
	if got := strings.Count(out, "facet normal"); got != len(m.Faces) {
		t.Errorf("facet count = %d, want %d", got, len(m.Faces))
	}
	if got := strings.Count(out, "vertex "); got != 3*len(m.Faces) {
		t.Errorf("vertex line count = %d, want %d", got, 3*len(m.Faces))
	}
}

func TestWriteRejectsEmptyFaces(t *testing.T) {
	m := &heightfield.Mesh{Vertices: []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}}}

	var buf bytes.Buffer
	if err := WriteBinary(&buf, m, "empty"); !errors.Is(err, ErrNoFaces) {
		t.Errorf("WriteBinary = %v, want ErrNoFaces", err)
	}
	if err := WriteASCII(&buf, m, "empty"); !errors.Is(err, ErrNoFaces) {
		t.Errorf("WriteASCII = %v, want ErrNoFaces", err)
	}
	if buf.Len() != 0 {
		t.Error("writer produced output for a faceless mesh")
	}
}
