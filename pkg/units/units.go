// Package units guesses the physical unit of raw model coordinates.
// Model files carry no unit metadata, so the corrective factor is a
// heuristic over the bounding-box size, not a detection.
package units

import "github.com/printforge/printforge/pkg/geom"

const (
	// MeterThreshold is the largest bounding-box extent (in raw file
	// units) still treated as meter-scale. Printable objects modelled
	// in meters stay well under this, while millimeter-scale sources
	// are typically in the hundreds. Known limitation: a meter-scale
	// object larger than 10 units, or a millimeter-scale object
	// smaller than 10mm, is misclassified.
	MeterThreshold = 10.0

	// MillimeterFactor converts millimeter coordinates to meters.
	MillimeterFactor = 0.001

	// MeterFactor leaves meter coordinates unchanged.
	MeterFactor = 1.0
)

// Factor returns the scalar applied uniformly to all three axes to bring
// the mesh's raw coordinates into meters before volume math.
func Factor(m *geom.Mesh) float64 {
	if m.BoundingBox().MaxDim() > MeterThreshold {
		return MillimeterFactor
	}
	return MeterFactor
}
