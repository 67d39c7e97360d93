// Package pricing holds the static material catalog and turns volume
// estimates into prices.
package pricing

import "fmt"

// MaterialProfile describes one printable material: its appearance
// parameters for rendering/export and its cost per cubic centimeter.
// Profiles are immutable records in a process-wide constant table.
type MaterialProfile struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Color      string  `json:"color"` // hex, e.g. "#C8C8C8"
	Metalness  float64 `json:"metalness"`
	Roughness  float64 `json:"roughness"`
	CostPerCm3 float64 `json:"costPerCm3"` // EUR per cm³ of printed volume
}

// Currency is the currency of every CostPerCm3 entry.
const Currency = "EUR"

// DefaultMaterialID is the material selected at session start.
const DefaultMaterialID = "pla"

// catalog is the static material table. It is populated once at process
// start and never mutated, so it is safe to share by reference across
// concurrent readers. Order is the order presented to the UI.
var catalog = []MaterialProfile{
	{ID: "pla", Name: "PLA Plastic", Color: "#E8E8E6", Metalness: 0.0, Roughness: 0.80, CostPerCm3: 0.06},
	{ID: "resin", Name: "Standard Resin", Color: "#D9C08F", Metalness: 0.0, Roughness: 0.40, CostPerCm3: 0.18},
	{ID: "nylon", Name: "Nylon PA12", Color: "#CFCFCF", Metalness: 0.0, Roughness: 0.65, CostPerCm3: 0.25},
	{ID: "aluminum", Name: "Aluminum", Color: "#BFC4C9", Metalness: 1.0, Roughness: 0.25, CostPerCm3: 0.95},
	{ID: "steel", Name: "Stainless Steel", Color: "#9FA4A9", Metalness: 1.0, Roughness: 0.35, CostPerCm3: 0.70},
	{ID: "titanium", Name: "Titanium", Color: "#8E939B", Metalness: 1.0, Roughness: 0.30, CostPerCm3: 2.40},
}

// UnknownMaterialError reports a lookup of an identifier that is not in
// the catalog. Callers offering only catalog identifiers never see it;
// it exists as a defensive contract.
type UnknownMaterialError struct {
	ID string
}

func (e *UnknownMaterialError) Error() string {
	return fmt.Sprintf("unknown material %q", e.ID)
}

// Lookup returns the profile for id.
func Lookup(id string) (MaterialProfile, error) {
	for _, m := range catalog {
		if m.ID == id {
			return m, nil
		}
	}
	return MaterialProfile{}, &UnknownMaterialError{ID: id}
}

// Default returns the profile selected at session start.
func Default() MaterialProfile {
	m, err := Lookup(DefaultMaterialID)
	if err != nil {
		panic("pricing: default material missing from catalog")
	}
	return m
}

// Profiles returns a copy of the catalog in presentation order.
func Profiles() []MaterialProfile {
	out := make([]MaterialProfile, len(catalog))
	copy(out, catalog)
	return out
}
