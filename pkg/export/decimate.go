package export

import (
	"github.com/fogleman/simplify"

	"github.com/printforge/printforge/pkg/geom"
)

// DefaultTriangleBudget caps exported meshes so the interchange
// artifact stays manageable for web viewers. Scans easily reach
// hundreds of thousands of triangles.
const DefaultTriangleBudget = 100000

// Decimate reduces the mesh to at most target triangles using quadric
// edge collapse. Meshes already under budget (or a non-positive target)
// are returned unchanged. The result carries freshly computed normals.
func Decimate(m *geom.Mesh, target int) *geom.Mesh {
	if target <= 0 || m.TriangleCount() <= target {
		return m
	}

	tris := make([]*simplify.Triangle, 0, m.TriangleCount())
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		tris = append(tris, simplify.NewTriangle(
			simplify.Vector{X: a.X, Y: a.Y, Z: a.Z},
			simplify.Vector{X: b.X, Y: b.Y, Z: b.Z},
			simplify.Vector{X: c.X, Y: c.Y, Z: c.Z},
		))
	}
	factor := float64(target) / float64(m.TriangleCount())
	reduced := simplify.NewMesh(tris).Simplify(factor)

	out := geom.NewMesh(m.Name)
	for _, t := range reduced.Triangles {
		out.AddTriangle(
			geom.Vec3{X: t.V1.X, Y: t.V1.Y, Z: t.V1.Z},
			geom.Vec3{X: t.V2.X, Y: t.V2.Y, Z: t.V2.Z},
			geom.Vec3{X: t.V3.X, Y: t.V3.Y, Z: t.V3.Z},
		)
	}
	out.RecomputeNormals()
	return out
}
