package pricing

import (
	"errors"
	"math"
	"testing"

	"github.com/printforge/printforge/pkg/geom"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"pla", false},
		{"aluminum", false},
		{"titanium", false},
		{"unobtainium", true},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			m, err := Lookup(tt.id)
			if tt.wantErr {
				var ume *UnknownMaterialError
				if !errors.As(err, &ume) {
					t.Fatalf("Lookup(%q) error = %v, want UnknownMaterialError", tt.id, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q) failed: %v", tt.id, err)
			}
			if m.ID != tt.id {
				t.Errorf("profile ID = %q, want %q", m.ID, tt.id)
			}
		})
	}
}

func TestAluminumDefaults(t *testing.T) {
	m, err := Lookup("aluminum")
	if err != nil {
		t.Fatal(err)
	}
	if m.Roughness != 0.25 {
		t.Errorf("aluminum roughness = %v, want 0.25", m.Roughness)
	}
	if m.Metalness != 1.0 {
		t.Errorf("aluminum metalness = %v, want 1.0", m.Metalness)
	}
}

// cost(mesh, s) == cost(mesh, 1) * s³ must hold exactly.
func TestCostCubicLaw(t *testing.T) {
	mat := Default()
	base := Cost(10, 1, mat)
	for _, s := range []float64{0.25, 0.5, 1.5, 2.0, 3.0} {
		got := Cost(10, s, mat)
		want := base * s * s * s
		if math.Abs(got-want) > 1e-9*math.Abs(want) {
			t.Errorf("Cost(10, %v) = %v, want %v", s, got, want)
		}
	}
}

func TestClampScale(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, MinScale},
		{0.25, 0.25},
		{1, 1},
		{3, 3},
		{12, MaxScale},
		{-1, MinScale},
	}
	for _, tt := range tests {
		if got := ClampScale(tt.in); got != tt.want {
			t.Errorf("ClampScale(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDeriveEmptyMesh(t *testing.T) {
	q := Derive(geom.NewMesh("empty"), 1, Default())
	if q.VolumeCm3 != 0 || q.Cost != 0 {
		t.Errorf("Derive(empty) = %+v, want zero volume and cost", q)
	}
	if q.Currency != Currency {
		t.Errorf("Currency = %q, want %q", q.Currency, Currency)
	}
}

func TestDeriveRecomputesFromMesh(t *testing.T) {
	m := geom.NewMesh("wedge")
	// One tetrahedron against the origin: volume = |u·(v×w)|/6 m³.
	m.AddTriangle(geom.V3(0.06, 0, 0), geom.V3(0, 0.06, 0), geom.V3(0, 0, 0.06))
	q := Derive(m, 1, Default())

	want := 0.06 * 0.06 * 0.06 / 6 * 1e6 // cm³
	if math.Abs(q.VolumeCm3-want) > 1e-6*want {
		t.Errorf("VolumeCm3 = %v, want %v", q.VolumeCm3, want)
	}
	if math.Abs(q.Cost-want*Default().CostPerCm3) > 1e-9 {
		t.Errorf("Cost = %v", q.Cost)
	}
}

func TestProfilesIsACopy(t *testing.T) {
	p := Profiles()
	if len(p) == 0 {
		t.Fatal("empty catalog")
	}
	p[0].CostPerCm3 = -1
	again, _ := Lookup(p[0].ID)
	if again.CostPerCm3 == -1 {
		t.Error("mutating the Profiles() result leaked into the catalog")
	}
}
