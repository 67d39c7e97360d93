// Package export serializes the current scene for interchange: glTF 2.0
// documents for downstream 3D consumers and PNG snapshots of the
// rendered view.
package export

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/printforge/printforge/pkg/geom"
	"github.com/printforge/printforge/pkg/pricing"
)

// Fixed download identity of the export artifact.
const (
	FileNameBinary = "model.glb"
	FileNameJSON   = "model.gltf"

	ContentTypeBinary = "model/gltf-binary"
	ContentTypeJSON   = "model/gltf+json"
)

// neutralColor is the appearance used when no material is requested.
const (
	neutralColor     = "#CCCCCC"
	neutralMetalness = 0.0
	neutralRoughness = 0.6
)

// Options controls glTF serialization.
type Options struct {
	// Scale is the user scale multiplier. It is written as the node
	// transform, not baked into vertex data, so consumers see both the
	// raw geometry and its intended real-world scale.
	Scale float64

	// Material, when non-nil, makes the exported appearance match the
	// live material. Nil exports the neutral default appearance.
	Material *pricing.MaterialProfile

	// Binary selects GLB container output instead of embedded JSON.
	Binary bool
}

// GLTF serializes the mesh into a single self-contained glTF artifact.
func GLTF(m *geom.Mesh, opts Options) ([]byte, error) {
	if opts.Scale == 0 {
		opts.Scale = 1
	}

	positions := make([][3]float32, 0, m.VertexCount())
	normals := make([][3]float32, 0, m.VertexCount())
	indices := make([]uint32, 0, m.VertexCount())
	for i := 0; i+geom.VertexStride <= len(m.Positions); i += geom.VertexStride {
		positions = append(positions, [3]float32{m.Positions[i], m.Positions[i+1], m.Positions[i+2]})
	}
	for i := 0; i+geom.VertexStride <= len(m.Normals); i += geom.VertexStride {
		normals = append(normals, [3]float32{m.Normals[i], m.Normals[i+1], m.Normals[i+2]})
	}
	for i := 0; i < len(positions); i++ {
		indices = append(indices, uint32(i))
	}
	if len(normals) != len(positions) {
		return nil, fmt.Errorf("export: normal buffer out of step with positions (have %d, want %d)", len(normals), len(positions))
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "printforge"

	color, metalness, roughness := neutralColor, neutralMetalness, neutralRoughness
	matName := "neutral"
	if opts.Material != nil {
		color = opts.Material.Color
		metalness = opts.Material.Metalness
		roughness = opts.Material.Roughness
		matName = opts.Material.ID
	}
	r, g, b, err := parseHexColor(color)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	doc.Materials = append(doc.Materials, &gltf.Material{
		Name: matName,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float32{float32(r), float32(g), float32(b), 1},
			MetallicFactor:  gltf.Float(float32(metalness)),
			RoughnessFactor: gltf.Float(float32(roughness)),
		},
	})

	name := m.Name
	if name == "" {
		name = "model"
	}
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Attributes: map[string]uint32{
				gltf.POSITION: modeler.WritePosition(doc, positions),
				gltf.NORMAL:   modeler.WriteNormal(doc, normals),
			},
			Indices:  gltf.Index(modeler.WriteIndices(doc, indices)),
			Material: gltf.Index(0),
		}},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name:  name,
		Mesh:  gltf.Index(0),
		Scale: [3]float32{float32(opts.Scale), float32(opts.Scale), float32(opts.Scale)},
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	if !opts.Binary && len(doc.Buffers) > 0 {
		// JSON output must carry its buffer inline as a data URI.
		doc.Buffers[0].EmbeddedResource()
	}

	var buf bytes.Buffer
	enc := gltf.NewEncoder(&buf)
	enc.AsBinary = opts.Binary
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("export: encoding gltf: %w", err)
	}
	return buf.Bytes(), nil
}

// FileName returns the fixed download filename for the chosen container.
func (o Options) FileName() string {
	if o.Binary {
		return FileNameBinary
	}
	return FileNameJSON
}

// ContentType returns the interchange content type for the chosen container.
func (o Options) ContentType() string {
	if o.Binary {
		return ContentTypeBinary
	}
	return ContentTypeJSON
}

// parseHexColor converts "#RRGGBB" (or "RRGGBB") to linear [0,1] factors.
func parseHexColor(s string) (r, g, b float64, err error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return 0, 0, 0, fmt.Errorf("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("bad hex color %q", s)
	}
	r = float64(v>>16&0xFF) / 255
	g = float64(v>>8&0xFF) / 255
	b = float64(v&0xFF) / 255
	return r, g, b, nil
}
