package flake

import "math"

// Normalize scales m in place so its XY bounding diameter equals diameter
// and its total depth equals diameter*depthRatio, then centers the bounding
// box on the origin. The planar and depth axes use independent factors.
func Normalize(m *Mesh, diameter, depthRatio float64) {
	if m.IsEmpty() {
		return
	}
	m.ComputeBounds()
	size := m.Bounds.Size()
	center := m.Bounds.Center()

	planar := diameter / math.Max(math.Max(size.X, size.Y), epsilon)
	vertical := diameter * depthRatio / math.Max(size.Z, epsilon)

	for i, v := range m.Vertices {
		m.Vertices[i] = Vec3{
			X: (v.X - center.X) * planar,
			Y: (v.Y - center.Y) * planar,
			Z: (v.Z - center.Z) * vertical,
		}
	}
	m.ComputeNormals()
	m.ComputeBounds()
}
