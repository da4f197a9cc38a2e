package flake

import "math"

// Vec3 is a 3D position or direction.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Cross returns the cross product v x w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean norm.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector, or the zero vector for zero input.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l < epsilon {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Box3 is an axis-aligned 3D bounding box.
type Box3 struct {
	Min, Max Vec3
}

// Size returns the extent along each axis.
func (b Box3) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of the box.
func (b Box3) Center() Vec3 {
	return Vec3{(b.Min.X + b.Max.X) / 2, (b.Min.Y + b.Max.Y) / 2, (b.Min.Z + b.Max.Z) / 2}
}

// Mesh is an indexed triangle mesh with per-vertex normals.
// Faces are wound counter-clockwise when seen from outside.
type Mesh struct {
	Vertices []Vec3
	Faces    [][3]uint32
	Normals  []Vec3
	Bounds   Box3
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// FaceCount returns the number of triangles.
func (m *Mesh) FaceCount() int { return len(m.Faces) }

// IsEmpty reports whether the mesh has no triangles.
func (m *Mesh) IsEmpty() bool {
	return m == nil || len(m.Vertices) == 0 || len(m.Faces) == 0
}

// Diameter returns the larger of the X and Y extents.
func (m *Mesh) Diameter() float64 {
	s := m.Bounds.Size()
	return math.Max(s.X, s.Y)
}

// FaceNormal returns the unit normal of face i.
func (m *Mesh) FaceNormal(i int) Vec3 {
	f := m.Faces[i]
	a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// ComputeBounds recalculates Bounds from the vertices.
func (m *Mesh) ComputeBounds() {
	if len(m.Vertices) == 0 {
		m.Bounds = Box3{}
		return
	}
	b := Box3{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		b.Min = Vec3{math.Min(b.Min.X, v.X), math.Min(b.Min.Y, v.Y), math.Min(b.Min.Z, v.Z)}
		b.Max = Vec3{math.Max(b.Max.X, v.X), math.Max(b.Max.Y, v.Y), math.Max(b.Max.Z, v.Z)}
	}
	m.Bounds = b
}

// ComputeNormals recalculates area-weighted per-vertex normals.
func (m *Mesh) ComputeNormals() {
	normals := make([]Vec3, len(m.Vertices))
	for _, f := range m.Faces {
		a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
		n := b.Sub(a).Cross(c.Sub(a))
		for _, idx := range f {
			normals[idx] = normals[idx].Add(n)
		}
	}
	for i := range normals {
		normals[i] = normals[i].Normalize()
	}
	m.Normals = normals
}

// Flatten returns the mesh as flat arrays: three floats per vertex position,
// three per normal, and three indices per triangle.
func (m *Mesh) Flatten() (positions, normals []float32, indices []uint32) {
	positions = make([]float32, 0, 3*len(m.Vertices))
	for _, v := range m.Vertices {
		positions = append(positions, float32(v.X), float32(v.Y), float32(v.Z))
	}
	normals = make([]float32, 0, 3*len(m.Normals))
	for _, n := range m.Normals {
		normals = append(normals, float32(n.X), float32(n.Y), float32(n.Z))
	}
	indices = make([]uint32, 0, 3*len(m.Faces))
	for _, f := range m.Faces {
		indices = append(indices, f[0], f[1], f[2])
	}
	return positions, normals, indices
}

// IsWatertight reports whether every undirected edge is shared by exactly
// two faces that traverse it in opposite directions.
func (m *Mesh) IsWatertight() bool {
	if m.IsEmpty() {
		return false
	}
	type edge struct{ a, b uint32 }
	directed := make(map[edge]int, 3*len(m.Faces))
	for _, f := range m.Faces {
		for k := range 3 {
			directed[edge{f[k], f[(k+1)%3]}]++
		}
	}
	for e, n := range directed {
		if n != 1 || directed[edge{e.b, e.a}] != 1 {
			return false
		}
	}
	return true
}
