package ingest

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"github.com/printforge/printforge/pkg/geom"
)

const (
	stlHeaderSize   = 80
	stlTriangleSize = 50 // 12 little-endian float32s plus a uint16 attribute
)

// parseSTL dispatches between the ASCII and binary encodings of STL.
// ASCII files start with "solid" and contain "facet" keywords; anything
// else is treated as binary.
func parseSTL(data []byte) (*geom.Mesh, error) {
	if isASCIISTL(data) {
		return parseASCIISTL(data)
	}
	return parseBinarySTL(data)
}

func isASCIISTL(data []byte) bool {
	head := bytes.TrimLeft(data, " \t\r\n")
	if !bytes.HasPrefix(head, []byte("solid")) {
		return false
	}
	// Binary exporters sometimes write "solid" into the 80-byte header,
	// so require a facet keyword as well.
	probe := head
	if len(probe) > 1024 {
		probe = probe[:1024]
	}
	return bytes.Contains(probe, []byte("facet"))
}

func parseBinarySTL(data []byte) (*geom.Mesh, error) {
	if len(data) < stlHeaderSize+4 {
		return nil, &MalformedDataError{Format: "stl", Reason: "file shorter than the binary header"}
	}
	count := binary.LittleEndian.Uint32(data[stlHeaderSize:])
	body := data[stlHeaderSize+4:]
	if uint64(len(body)) < uint64(count)*stlTriangleSize {
		return nil, &MalformedDataError{Format: "stl", Reason: "triangle records truncated"}
	}

	name := strings.TrimRight(string(data[:stlHeaderSize]), " \x00")
	m := geom.NewMesh(name)
	for i := uint32(0); i < count; i++ {
		rec := body[i*stlTriangleSize:]
		// Skip the 12-byte facet normal; normals are recomputed later.
		var v [3]geom.Vec3
		for j := 0; j < 3; j++ {
			off := 12 + j*12
			v[j] = geom.Vec3{
				X: float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[off:]))),
				Y: float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[off+4:]))),
				Z: float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[off+8:]))),
			}
		}
		m.AddTriangle(v[0], v[1], v[2])
	}
	return m, nil
}

func parseASCIISTL(data []byte) (*geom.Mesh, error) {
	m := geom.NewMesh("")
	var pending []geom.Vec3

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "solid":
			if m.Name == "" && len(fields) > 1 {
				m.Name = fields[1]
			}
		case "vertex":
			if len(fields) < 4 {
				return nil, &MalformedDataError{Format: "stl", Reason: "vertex line with fewer than three coordinates"}
			}
			v, err := parseVec3(fields[1], fields[2], fields[3])
			if err != nil {
				return nil, &MalformedDataError{Format: "stl", Reason: "vertex line with non-numeric coordinate"}
			}
			pending = append(pending, v)
		case "endfacet":
			if len(pending) != 3 {
				return nil, &MalformedDataError{Format: "stl", Reason: "facet without exactly three vertices"}
			}
			m.AddTriangle(pending[0], pending[1], pending[2])
			pending = pending[:0]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &MalformedDataError{Format: "stl", Reason: err.Error()}
	}
	if len(pending) != 0 {
		return nil, &MalformedDataError{Format: "stl", Reason: "dangling vertices after the last facet"}
	}
	return m, nil
}

func parseVec3(x, y, z string) (geom.Vec3, error) {
	fx, err := strconv.ParseFloat(x, 64)
	if err != nil {
		return geom.Vec3{}, err
	}
	fy, err := strconv.ParseFloat(y, 64)
	if err != nil {
		return geom.Vec3{}, err
	}
	fz, err := strconv.ParseFloat(z, 64)
	if err != nil {
		return geom.Vec3{}, err
	}
	return geom.Vec3{X: fx, Y: fy, Z: fz}, nil
}
