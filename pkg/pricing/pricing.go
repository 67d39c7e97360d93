package pricing

import (
	"github.com/printforge/printforge/pkg/geom"
	"github.com/printforge/printforge/pkg/units"
	"github.com/printforge/printforge/pkg/volume"
)

// Bounds of the user scale multiplier.
const (
	MinScale = 0.25
	MaxScale = 3.0
)

// ClampScale bounds the user scale multiplier to [MinScale, MaxScale].
func ClampScale(s float64) float64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}

// Cost prices a print. Volume is a third-power quantity, so the linear
// scale multiplier enters cubed, not linearly.
func Cost(volumeCm3, scale float64, m MaterialProfile) float64 {
	return volumeCm3 * scale * scale * scale * m.CostPerCm3
}

// Quote is the derived volume/price pair pushed to the UI after every
// state change. It is recomputed from scratch each time, never cached.
type Quote struct {
	VolumeCm3  float64 `json:"volumeCm3"`
	Cost       float64 `json:"cost"`
	Currency   string  `json:"currency"`
	MaterialID string  `json:"materialId"`
	Scale      float64 `json:"scale"`
}

// Derive computes the quote for a mesh: unit-normalize, estimate volume,
// apply the cubic scale law and the material's unit cost. Pure; safe to
// re-invoke on every slider change.
func Derive(m *geom.Mesh, scale float64, mat MaterialProfile) Quote {
	v := volume.EstimateCm3(m, units.Factor(m))
	return Quote{
		VolumeCm3:  v,
		Cost:       Cost(v, scale, mat),
		Currency:   Currency,
		MaterialID: mat.ID,
		Scale:      scale,
	}
}
