// Package ingest parses raw model file bytes into triangle-soup meshes.
// Two formats are supported: STL (binary or ASCII triangle lists) and
// Wavefront OBJ (text polygons with optional named sub-objects).
// Dispatch is strictly on the declared file extension; the bytes are
// never sniffed across formats.
package ingest

import (
	"path/filepath"
	"strings"

	"github.com/printforge/printforge/pkg/geom"
)

// MergePolicy selects how multiple named sub-objects in a single file
// collapse into the one mesh this system works with.
type MergePolicy int

const (
	// KeepLast retains only the last sub-object that carries geometry
	// and discards all earlier ones. This is a deliberate
	// simplification, not a merge; see the open question recorded in
	// DESIGN.md before hardening multi-object behavior.
	KeepLast MergePolicy = iota

	// MergeAll is reserved for a future true merge. No parser
	// implements it yet.
	MergeAll
)

// SubObjectPolicy is the policy applied to multi-object OBJ files.
const SubObjectPolicy = KeepLast

// Ingest parses data into a mesh according to the declared filename or
// extension. Per-vertex normals are always recomputed from face
// winding; normals carried by the source are not trusted. Ingest never
// mutates process-wide state.
func Ingest(data []byte, name string) (*geom.Mesh, error) {
	var (
		m   *geom.Mesh
		err error
	)
	switch ext := normalizeExt(name); ext {
	case "stl":
		m, err = parseSTL(data)
	case "obj":
		m, err = parseOBJ(data, SubObjectPolicy)
	default:
		return nil, &UnsupportedFormatError{Ext: ext}
	}
	if err != nil {
		return nil, err
	}
	if !m.Conforms() {
		// Parsers only append whole triangles, so this is unreachable
		// unless a parser regresses.
		return nil, &MalformedDataError{Format: normalizeExt(name), Reason: "triangle buffer is not a multiple of nine floats"}
	}
	m.RecomputeNormals()
	return m, nil
}

// normalizeExt extracts a lower-case extension without the leading dot
// from a filename, a ".ext" or a bare "ext".
func normalizeExt(name string) string {
	if ext := filepath.Ext(name); ext != "" {
		name = ext
	}
	return strings.ToLower(strings.TrimPrefix(name, "."))
}
