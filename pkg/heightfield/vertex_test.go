package heightfield

import (
	"errors"
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestAllocateVerticesCount(t *testing.T) {
	g := gridFromPattern(t, []string{
		"##.",
		".##",
	}, 1.0)

	vs := AllocateVertices(g, 1.0)
	if vs.Len() != 2*g.ActiveCount() {
		t.Errorf("vertex count = %d, want %d", vs.Len(), 2*g.ActiveCount())
	}
}

func TestAllocateVerticesPositions(t *testing.T) {
	g := gridFromPattern(t, []string{
		"##",
		"##",
	}, 2.0)

	vs := AllocateVertices(g, 0.5)

	top, err := vs.Top(1, 1)
	if err != nil {
		t.Fatalf("Top(1,1) failed: %v", err)
	}
	want := mgl64.Vec3{0.5, 0.5, 2.0}
	if got := vs.Vertices()[top]; got != want {
		t.Errorf("top vertex of (1,1) = %v, want %v", got, want)
	}

	bottom, err := vs.Bottom(1, 1)
	if err != nil {
		t.Fatalf("Bottom(1,1) failed: %v", err)
	}
	want = mgl64.Vec3{0.5, 0.5, 0}
	if got := vs.Vertices()[bottom]; got != want {
		t.Errorf("bottom vertex of (1,1) = %v, want %v", got, want)
	}
}

func TestAllocateVerticesOrder(t *testing.T) {
	// Row-major, all tops before all bottoms.
	g := gridFromPattern(t, []string{
		"#.",
		".#",
	}, 1.0)

	vs := AllocateVertices(g, 1.0)

	checks := []struct {
		name string
		idx  func() (int, error)
		want int
	}{
		{"Top(0,0)", func() (int, error) { return vs.Top(0, 0) }, 0},
		{"Top(1,1)", func() (int, error) { return vs.Top(1, 1) }, 1},
		{"Bottom(0,0)", func() (int, error) { return vs.Bottom(0, 0) }, 2},
		{"Bottom(1,1)", func() (int, error) { return vs.Bottom(1, 1) }, 3},
	}
	for _, check := range checks {
		got, err := check.idx()
		if err != nil {
			t.Fatalf("%s failed: %v", check.name, err)
		}
		if got != check.want {
			t.Errorf("%s = %d, want %d", check.name, got, check.want)
		}
	}
}

func TestVertexLookupInactive(t *testing.T) {
	g := gridFromPattern(t, []string{
		"#.",
		"..",
	}, 1.0)

	vs := AllocateVertices(g, 1.0)

	if _, err := vs.Top(0, 1); !errors.Is(err, ErrMissingVertex) {
		t.Errorf("Top of inactive cell = %v, want ErrMissingVertex", err)
	}
	if _, err := vs.Bottom(1, 1); !errors.Is(err, ErrMissingVertex) {
		t.Errorf("Bottom of inactive cell = %v, want ErrMissingVertex", err)
	}
	if _, err := vs.Top(5, 5); !errors.Is(err, ErrMissingVertex) {
		t.Errorf("Top out of bounds = %v, want ErrMissingVertex", err)
	}
}

func TestAllocateVerticesDeterministic(t *testing.T) {
	g := gridFromPattern(t, []string{
		"#.#",
		"###",
		".#.",
	}, 1.5)

	a := AllocateVertices(g, 0.25)
	b := AllocateVertices(g, 0.25)

	if !reflect.DeepEqual(a.Vertices(), b.Vertices()) {
		t.Error("vertex buffers differ between identical runs")
	}
}
