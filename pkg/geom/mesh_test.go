package geom

import (
	"math"
	"testing"
)

func TestMeshCounts(t *testing.T) {
	tests := []struct {
		name      string
		positions []float32
		wantTris  int
		wantVerts int
	}{
		{"empty", nil, 0, 0},
		{"one triangle", make([]float32, 9), 1, 3},
		{"two triangles", make([]float32, 18), 2, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Positions: tt.positions}
			if got := m.TriangleCount(); got != tt.wantTris {
				t.Errorf("TriangleCount() = %d, want %d", got, tt.wantTris)
			}
			if got := m.VertexCount(); got != tt.wantVerts {
				t.Errorf("VertexCount() = %d, want %d", got, tt.wantVerts)
			}
		})
	}
}

func TestMeshConforms(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want bool
	}{
		{"empty", 0, true},
		{"whole triangle", 9, true},
		{"two triangles", 18, true},
		{"ragged buffer", 12, false},
		{"single vertex", 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Positions: make([]float32, tt.n)}
			if got := m.Conforms(); got != tt.want {
				t.Errorf("Conforms() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddTriangleRoundTrip(t *testing.T) {
	m := NewMesh("t")
	a := V3(0, 0, 0)
	b := V3(1, 0, 0)
	c := V3(0, 1, 0)
	m.AddTriangle(a, b, c)

	if !m.Conforms() {
		t.Fatal("buffer does not conform after AddTriangle")
	}
	ga, gb, gc := m.Triangle(0)
	if ga != a || gb != b || gc != c {
		t.Errorf("Triangle(0) = %v %v %v, want %v %v %v", ga, gb, gc, a, b, c)
	}
}

func TestBoundingBox(t *testing.T) {
	m := NewMesh("box")
	m.AddTriangle(V3(-1, -2, -3), V3(4, 0, 0), V3(0, 5, 6))

	box := m.BoundingBox()
	if box.Min != (Vec3{-1, -2, -3}) {
		t.Errorf("Min = %v", box.Min)
	}
	if box.Max != (Vec3{4, 5, 6}) {
		t.Errorf("Max = %v", box.Max)
	}
	if got := box.MaxDim(); got != 9 {
		t.Errorf("MaxDim() = %v, want 9", got)
	}
}

func TestBoundingBoxEmptyMesh(t *testing.T) {
	m := NewMesh("empty")
	box := m.BoundingBox()
	if box.Min != (Vec3{}) || box.Max != (Vec3{}) {
		t.Errorf("empty mesh box = %v, want degenerate at origin", box)
	}
}

func TestRecomputeNormals(t *testing.T) {
	m := NewMesh("t")
	// Counter-clockwise in the XY plane: normal is +Z.
	m.AddTriangle(V3(0, 0, 0), V3(1, 0, 0), V3(0, 1, 0))
	m.RecomputeNormals()

	if len(m.Normals) != len(m.Positions) {
		t.Fatalf("normal buffer length %d, want %d", len(m.Normals), len(m.Positions))
	}
	for v := 0; v < 3; v++ {
		nx := m.Normals[v*VertexStride+0]
		ny := m.Normals[v*VertexStride+1]
		nz := m.Normals[v*VertexStride+2]
		if nx != 0 || ny != 0 || nz != 1 {
			t.Errorf("vertex %d normal = (%v, %v, %v), want (0, 0, 1)", v, nx, ny, nz)
		}
	}
}

func TestRecomputeNormalsDegenerateTriangle(t *testing.T) {
	m := NewMesh("degenerate")
	p := V3(1, 1, 1)
	m.AddTriangle(p, p, p)
	m.RecomputeNormals()

	for _, n := range m.Normals {
		if math.IsNaN(float64(n)) {
			t.Fatal("degenerate triangle produced NaN normal")
		}
	}
}

func TestNormalize(t *testing.T) {
	v := V3(3, 0, 4).Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("normalized length = %v, want 1", v.Length())
	}
	zero := V3(0, 0, 0).Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Normalize(zero) = %v, want zero", zero)
	}
}
