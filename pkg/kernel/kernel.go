// Package kernel defines the abstract geometry kernel used to generate
// the built-in placeholder model shown before any file is loaded.
// Implementations provide solid modeling behind this interface so the
// backend can be swapped without touching the rest of the system.
package kernel

import "github.com/printforge/printforge/pkg/geom"

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// Primitives. Box places its minimum corner at the origin.
	Box(x, y, z float64) Solid
	Cylinder(height, radius float64) Solid

	// Boolean union.
	Union(a, b Solid) Solid

	// Translate moves a solid by (x, y, z).
	Translate(s Solid, x, y, z float64) Solid

	// ToMesh tessellates a solid into an unindexed triangle soup.
	ToMesh(s Solid) (*geom.Mesh, error)
}

// Placeholder dimensions, in meters: a 40×40mm base plate, 8mm thick,
// with a centered cylindrical boss.
const (
	placeholderBase  = 0.04
	placeholderThick = 0.008
	placeholderBoss  = 0.012
)

// Placeholder builds the demo part a fresh session displays before the
// user loads a model. It is deliberately meter-scale and well under the
// unit-heuristic threshold.
func Placeholder(k Kernel) (*geom.Mesh, error) {
	base := k.Box(placeholderBase, placeholderBase, placeholderThick)
	boss := k.Translate(
		k.Cylinder(placeholderBoss, placeholderBase/4),
		placeholderBase/2, placeholderBase/2, placeholderThick+placeholderBoss/2,
	)
	m, err := k.ToMesh(k.Union(base, boss))
	if err != nil {
		return nil, err
	}
	m.Name = "placeholder"
	return m, nil
}
