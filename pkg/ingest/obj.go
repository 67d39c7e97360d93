package ingest

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"

	"github.com/printforge/printforge/pkg/geom"
)

// objObject collects the triangles of one named sub-object.
type objObject struct {
	name      string
	triangles [][3]geom.Vec3
}

// parseOBJ reads a Wavefront OBJ polygon mesh. Polygon faces are fan
// triangulated. Texture coordinates and loaded normals are ignored;
// normals are recomputed after ingestion. The file may contain multiple
// named sub-objects ("o"/"g" statements); the policy decides which
// geometry survives.
func parseOBJ(data []byte, policy MergePolicy) (*geom.Mesh, error) {
	// Vertex indices are 1-based and file-global across sub-objects.
	vs := make([]geom.Vec3, 1, 1024)

	objects := []*objObject{{}}
	current := objects[0]

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 2 || line[0] == '#' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, &MalformedDataError{Format: "obj", Reason: "vertex line with fewer than three coordinates"}
			}
			v, err := parseVec3(fields[1], fields[2], fields[3])
			if err != nil {
				return nil, &MalformedDataError{Format: "obj", Reason: "vertex line with non-numeric coordinate"}
			}
			vs = append(vs, v)
		case "o", "g":
			name := ""
			if len(fields) > 1 {
				name = fields[1]
			}
			current = &objObject{name: name}
			objects = append(objects, current)
		case "f":
			args := fields[1:]
			if len(args) < 3 {
				return nil, &MalformedDataError{Format: "obj", Reason: "face with fewer than three vertices"}
			}
			corners := make([]geom.Vec3, len(args))
			for i, arg := range args {
				idx, err := objVertexIndex(arg, len(vs))
				if err != nil {
					return nil, err
				}
				corners[i] = vs[idx]
			}
			for i := 1; i < len(corners)-1; i++ {
				current.triangles = append(current.triangles, [3]geom.Vec3{corners[0], corners[i], corners[i+1]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &MalformedDataError{Format: "obj", Reason: err.Error()}
	}

	keep := selectObject(objects, policy)
	m := geom.NewMesh(keep.name)
	for _, t := range keep.triangles {
		m.AddTriangle(t[0], t[1], t[2])
	}
	return m, nil
}

// selectObject applies the sub-object merge policy. Only KeepLast is
// implemented: the last sub-object carrying geometry wins and all
// earlier ones are discarded.
func selectObject(objects []*objObject, policy MergePolicy) *objObject {
	_ = policy // KeepLast is the only implemented policy
	for i := len(objects) - 1; i >= 0; i-- {
		if len(objects[i].triangles) > 0 {
			return objects[i]
		}
	}
	return objects[0]
}

// objVertexIndex resolves one face corner ("v", "v/vt", "v//vn" or
// "v/vt/vn") to a position index, handling OBJ's negative relative
// indices.
func objVertexIndex(arg string, nVerts int) (int, error) {
	raw := arg
	if i := strings.IndexByte(raw, '/'); i >= 0 {
		raw = raw[:i]
	}
	idx, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &MalformedDataError{Format: "obj", Reason: "face with non-numeric vertex index"}
	}
	if idx < 0 {
		idx += nVerts
	}
	if idx < 1 || idx >= nVerts {
		return 0, &MalformedDataError{Format: "obj", Reason: "face references a vertex that does not exist"}
	}
	return idx, nil
}
