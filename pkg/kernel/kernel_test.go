package kernel

import (
	"testing"

	"github.com/printforge/printforge/pkg/geom"
)

// fakeKernel records calls and hands back a canned mesh, so Placeholder
// can be tested without tessellating anything.
type fakeKernel struct {
	boxes      int
	cylinders  int
	unions     int
	translates int
}

type fakeSolid struct{}

func (fakeSolid) BoundingBox() (min, max [3]float64) { return }

func (f *fakeKernel) Box(x, y, z float64) Solid {
	f.boxes++
	return fakeSolid{}
}

func (f *fakeKernel) Cylinder(height, radius float64) Solid {
	f.cylinders++
	return fakeSolid{}
}

func (f *fakeKernel) Union(a, b Solid) Solid {
	f.unions++
	return fakeSolid{}
}

func (f *fakeKernel) Translate(s Solid, x, y, z float64) Solid {
	f.translates++
	return fakeSolid{}
}

func (f *fakeKernel) ToMesh(s Solid) (*geom.Mesh, error) {
	m := geom.NewMesh("")
	m.AddTriangle(geom.V3(0, 0, 0), geom.V3(1, 0, 0), geom.V3(0, 1, 0))
	return m, nil
}

func TestPlaceholder(t *testing.T) {
	k := &fakeKernel{}
	m, err := Placeholder(k)
	if err != nil {
		t.Fatalf("Placeholder failed: %v", err)
	}
	if m.Name != "placeholder" {
		t.Errorf("Name = %q, want placeholder", m.Name)
	}
	if m.IsEmpty() {
		t.Error("placeholder mesh is empty")
	}
	if k.boxes != 1 || k.cylinders != 1 || k.unions != 1 || k.translates != 1 {
		t.Errorf("kernel calls = %+v, want one box, cylinder, union and translate", k)
	}
}
