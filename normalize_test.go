package flake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	rect := []Point{Pt(1, 1), Pt(4, 1), Pt(4, 2), Pt(1, 2)}
	m := Extrude(rect, nil, 0.3, DefaultTuning())

	Normalize(m, 110, 0.05)

	size := m.Bounds.Size()
	assert.InDelta(t, 110, size.X, 1e-9)
	assert.InDelta(t, 110.0/3, size.Y, 1e-9)
	assert.InDelta(t, 5.5, size.Z, 1e-9)
	assert.InDelta(t, 110, m.Diameter(), 1e-9)

	c := m.Bounds.Center()
	assert.InDelta(t, 0, c.X, 1e-9)
	assert.InDelta(t, 0, c.Y, 1e-9)
	assert.InDelta(t, 0, c.Z, 1e-9)
	assert.True(t, m.IsWatertight())
}

func TestNormalizeEmpty(t *testing.T) {
	m := &Mesh{}
	Normalize(m, 110, 0.05)
	assert.True(t, m.IsEmpty())
}

func TestMeshFlatten(t *testing.T) {
	m := Extrude(square(1, 1), nil, 1, DefaultTuning())
	pos, normals, idx := m.Flatten()
	require.Len(t, pos, 3*m.VertexCount())
	require.Len(t, normals, 3*m.VertexCount())
	require.Len(t, idx, 3*m.FaceCount())
	assert.Equal(t, float32(m.Vertices[5].Z), pos[17])
	assert.Equal(t, m.Faces[3][1], idx[10])
}
