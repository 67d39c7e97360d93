package sdfx

import (
	"testing"

	"github.com/printforge/printforge/pkg/kernel"
	"github.com/printforge/printforge/pkg/units"
	"github.com/printforge/printforge/pkg/volume"
)

func TestBoxMinCornerAtOrigin(t *testing.T) {
	k := New()
	min, max := k.Box(0.04, 0.03, 0.02).BoundingBox()
	for i, lo := range min {
		if lo < -1e-9 || lo > 1e-9 {
			t.Errorf("min[%d] = %v, want 0", i, lo)
		}
	}
	want := [3]float64{0.04, 0.03, 0.02}
	for i := range max {
		if diff := max[i] - want[i]; diff < -1e-9 || diff > 1e-9 {
			t.Errorf("max[%d] = %v, want %v", i, max[i], want[i])
		}
	}
}

func TestToMeshProducesClosedSoup(t *testing.T) {
	k := New()
	m, err := k.ToMesh(k.Box(0.02, 0.02, 0.02))
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if m.IsEmpty() {
		t.Fatal("tessellation produced no triangles")
	}
	if !m.Conforms() {
		t.Error("tessellated buffer does not conform")
	}
	if len(m.Normals) != len(m.Positions) {
		t.Error("tessellated mesh is missing normals")
	}

	// Marching cubes approximates the box; the estimated volume should
	// land near the analytic 8 cm³.
	got := volume.EstimateCm3(m, units.Factor(m))
	if got < 8*0.85 || got > 8*1.15 {
		t.Errorf("tessellated box volume = %v cm³, want within 15%% of 8", got)
	}
}

func TestPlaceholderThroughSdfx(t *testing.T) {
	m, err := kernel.Placeholder(New())
	if err != nil {
		t.Fatalf("Placeholder failed: %v", err)
	}
	if m.IsEmpty() {
		t.Fatal("placeholder is empty")
	}
	// The placeholder must be meter-scale so the unit heuristic leaves
	// it uncorrected.
	if f := units.Factor(m); f != units.MeterFactor {
		t.Errorf("unit factor = %v, want %v", f, units.MeterFactor)
	}
}
