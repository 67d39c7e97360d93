package units

import (
	"testing"

	"github.com/printforge/printforge/pkg/geom"
)

// cubeMesh builds a closed, outward-wound cube with its minimum corner
// at origin and the given side length.
func cubeMesh(origin geom.Vec3, side float64) *geom.Mesh {
	v := func(x, y, z float64) geom.Vec3 {
		return origin.Add(geom.V3(x*side, y*side, z*side))
	}
	v0, v1, v2, v3 := v(0, 0, 0), v(1, 0, 0), v(1, 1, 0), v(0, 1, 0)
	v4, v5, v6, v7 := v(0, 0, 1), v(1, 0, 1), v(1, 1, 1), v(0, 1, 1)

	m := geom.NewMesh("cube")
	tris := [][3]geom.Vec3{
		{v0, v2, v1}, {v0, v3, v2}, // bottom
		{v4, v5, v6}, {v4, v6, v7}, // top
		{v0, v1, v5}, {v0, v5, v4}, // front
		{v2, v3, v7}, {v2, v7, v6}, // back
		{v0, v4, v7}, {v0, v7, v3}, // left
		{v1, v2, v6}, {v1, v6, v5}, // right
	}
	for _, t := range tris {
		m.AddTriangle(t[0], t[1], t[2])
	}
	return m
}

func TestFactor(t *testing.T) {
	tests := []struct {
		name string
		side float64
		want float64
	}{
		{"meter-scale cube", 5, MeterFactor},
		{"millimeter-scale cube", 50, MillimeterFactor},
		{"exactly at threshold", 10, MeterFactor},
		{"just over threshold", 10.001, MillimeterFactor},
		{"tiny meter-scale part", 0.02, MeterFactor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := cubeMesh(geom.Vec3{}, tt.side)
			if got := Factor(m); got != tt.want {
				t.Errorf("Factor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFactorEmptyMesh(t *testing.T) {
	if got := Factor(geom.NewMesh("empty")); got != MeterFactor {
		t.Errorf("Factor(empty) = %v, want %v", got, MeterFactor)
	}
}
