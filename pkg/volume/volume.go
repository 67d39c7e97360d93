// Package volume estimates the enclosed volume of a triangle mesh using
// the divergence theorem: each triangle contributes the signed volume of
// the tetrahedron it forms with the origin, and for a closed,
// consistently wound surface the sum telescopes to the true enclosed
// volume no matter where the origin lies.
package volume

import (
	"math"

	"github.com/printforge/printforge/pkg/geom"
)

// cm3PerM3 converts cubic meters to cubic centimeters.
const cm3PerM3 = 1e6

// EstimateCm3 returns the estimated volume of the mesh in cubic
// centimeters. unitFactor is the corrective scale from units.Factor,
// applied to every vertex before accumulation. The function is pure and
// deterministic; an empty mesh yields exactly 0.
//
// The accumulator is float64 even though vertex data is float32, which
// keeps tens of thousands of small tetrahedron contributions from
// cancelling catastrophically. Non-watertight or self-intersecting
// meshes produce whatever the formula yields; that is an acknowledged
// limitation of the estimator, not an error.
func EstimateCm3(m *geom.Mesh, unitFactor float64) float64 {
	var sum float64
	for i := 0; i < m.TriangleCount(); i++ {
		u, v, w := m.Triangle(i)
		u = u.Scale(unitFactor)
		v = v.Scale(unitFactor)
		w = w.Scale(unitFactor)
		sum += u.Dot(v.Cross(w)) / 6
	}
	// Globally inverted winding flips the sign, not the magnitude.
	return math.Abs(sum) * cm3PerM3
}
