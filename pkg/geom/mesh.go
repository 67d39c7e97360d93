package geom

// VertexStride is the number of floats per vertex (x, y, z).
const VertexStride = 3

// TriangleStride is the number of floats per triangle in the position
// buffer: three vertices of three components each. Every conforming
// position buffer has a length that is a multiple of this.
const TriangleStride = 3 * VertexStride

// Mesh is an unindexed triangle soup. All buffers are flat: Positions
// holds nine floats per triangle (x,y,z for each of the three vertices)
// and Normals is parallel to it. There is no shared-vertex index
// structure; each triangle is read as a contiguous unit.
type Mesh struct {
	Name      string
	Positions []float32
	Normals   []float32
}

// NewMesh returns an empty mesh with the given name.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Positions) / TriangleStride
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / VertexStride
}

// IsEmpty reports whether the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Positions) == 0
}

// Conforms reports whether the position buffer holds a whole number of
// triangles. Parsers must reject buffers for which this is false.
func (m *Mesh) Conforms() bool {
	return len(m.Positions)%TriangleStride == 0
}

// AddTriangle appends one triangle with vertices a, b, c in winding order.
// Normals are not touched; call RecomputeNormals once loading is done.
func (m *Mesh) AddTriangle(a, b, c Vec3) {
	m.Positions = append(m.Positions,
		float32(a.X), float32(a.Y), float32(a.Z),
		float32(b.X), float32(b.Y), float32(b.Z),
		float32(c.X), float32(c.Y), float32(c.Z),
	)
}

// Triangle returns the three vertices of triangle i.
func (m *Mesh) Triangle(i int) (a, b, c Vec3) {
	o := i * TriangleStride
	a = Vec3{float64(m.Positions[o+0]), float64(m.Positions[o+1]), float64(m.Positions[o+2])}
	b = Vec3{float64(m.Positions[o+3]), float64(m.Positions[o+4]), float64(m.Positions[o+5])}
	c = Vec3{float64(m.Positions[o+6]), float64(m.Positions[o+7]), float64(m.Positions[o+8])}
	return a, b, c
}

// BoundingBox returns the axis-aligned bounding box of all vertices.
// The empty mesh yields a degenerate box at the origin.
func (m *Mesh) BoundingBox() Box {
	if m.IsEmpty() {
		return Box{}
	}
	box := NewBox()
	for i := 0; i+VertexStride <= len(m.Positions); i += VertexStride {
		box.Extend(Vec3{
			float64(m.Positions[i+0]),
			float64(m.Positions[i+1]),
			float64(m.Positions[i+2]),
		})
	}
	return box
}

// RecomputeNormals derives flat per-vertex normals from face winding,
// replacing whatever the source file carried. Loaded normals are never
// trusted; recomputing guarantees consistent shading and export
// regardless of source quality.
func (m *Mesh) RecomputeNormals() {
	m.Normals = make([]float32, len(m.Positions))
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		n := b.Sub(a).Cross(c.Sub(a)).Normalize()
		nx, ny, nz := float32(n.X), float32(n.Y), float32(n.Z)
		o := i * TriangleStride
		for j := 0; j < 3; j++ {
			m.Normals[o+j*VertexStride+0] = nx
			m.Normals[o+j*VertexStride+1] = ny
			m.Normals[o+j*VertexStride+2] = nz
		}
	}
}

// Translate moves every vertex by d.
func (m *Mesh) Translate(d Vec3) {
	for i := 0; i+VertexStride <= len(m.Positions); i += VertexStride {
		m.Positions[i+0] += float32(d.X)
		m.Positions[i+1] += float32(d.Y)
		m.Positions[i+2] += float32(d.Z)
	}
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{Name: m.Name}
	c.Positions = append([]float32(nil), m.Positions...)
	c.Normals = append([]float32(nil), m.Normals...)
	return c
}
