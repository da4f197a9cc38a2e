package flake

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtrudePrism(t *testing.T) {
	// Clockwise input is reoriented.
	m := Extrude(reversed(square(2, 1)), nil, 1, DefaultTuning(), WithWorkers(1))

	require.Equal(t, 8, m.VertexCount())
	require.Equal(t, 2*2+2*4, m.FaceCount())
	assert.True(t, m.IsWatertight())
	assert.InDelta(t, 1, m.FaceNormal(0).Z, 1e-9, "top cap faces up")
	assert.InDelta(t, -1, m.FaceNormal(1).Z, 1e-9, "bottom cap faces down")

	assert.Equal(t, Box3{Min: Vec3{0, 0, -0.5}, Max: Vec3{2, 2, 0.5}}, m.Bounds)
	require.Len(t, m.Normals, m.VertexCount())
	for _, n := range m.Normals {
		assert.InDelta(t, 1, n.Length(), 1e-9)
	}
}

func TestExtrudeDegenerateOutline(t *testing.T) {
	m := Extrude([]Point{Pt(0, 0), Pt(1, 0)}, nil, 1, DefaultTuning())
	assert.True(t, m.IsEmpty())
	assert.False(t, m.IsWatertight())
}

func TestExtrudeRelief(t *testing.T) {
	outline := FallbackPolygon(Rect{Min: Pt(-2, 0), Max: Pt(2, 0)}, 0)
	segs := []Segment{Seg(Pt(-2, 0), Pt(2, 0))}
	tn := DefaultTuning()
	m := Extrude(outline, segs, 1, tn, WithWorkers(1))
	require.True(t, m.IsWatertight())

	n := len(outline)
	floor := tn.Relief.MinHalfDepth * 0.5
	for i := range n {
		top, bottom := m.Vertices[i].Z, m.Vertices[n+i].Z
		assert.Equal(t, top, -bottom, "relief is symmetric about z=0")
		assert.GreaterOrEqual(t, top, floor)
	}

	// Vertex 0 sits on the segment end, vertex 6 is two units above it.
	onSpine, offSpine := m.Vertices[0].Z, m.Vertices[6].Z
	assert.Greater(t, onSpine, 0.5, "spine-like segments thicken")
	assert.Greater(t, onSpine, offSpine)
}

func TestExtrudeReliefThresholdDisables(t *testing.T) {
	outline := FallbackPolygon(Rect{Min: Pt(-2, 0), Max: Pt(2, 0)}, 0)
	segs := []Segment{Seg(Pt(-2, 0), Pt(2, 0))}
	tn := DefaultTuning()
	tn.Relief.Threshold = 1
	m := Extrude(outline, segs, 1, tn, WithWorkers(1))
	for _, v := range m.Vertices {
		assert.Equal(t, 0.5, math.Abs(v.Z))
	}
}

func TestAxisDeviation(t *testing.T) {
	tests := []struct {
		angle float64
		want  float64
	}{
		{0, 0},
		{30, 30},
		{60, 0},
		{90, 30},
		{-15, 15},
		{170, 10},
	}
	for _, tt := range tests {
		s := Seg(Pt(1, 1), Pt(1, 1).Add(Polar(2, tt.angle*deg)))
		assert.InDelta(t, tt.want*deg, axisDeviation(s), 1e-9, "angle %g", tt.angle)
	}
	assert.Equal(t, math.Pi/6, axisDeviation(Seg(Pt(1, 1), Pt(1, 1))))
}

func TestSegmentDepthScalesSymmetric(t *testing.T) {
	s := Seg(Pt(3, 0.5), Pt(4, 1.2))
	spine := Seg(Pt(0, 0), Pt(6, 0))
	set := []Segment{spine, s, s.MirrorX(), s.Rotate(math.Pi / 3), s.Rotate(-2 * math.Pi / 3)}

	scales := segmentDepthScales(set, DefaultTuning().Relief)
	for i := 2; i < len(set); i++ {
		assert.InDelta(t, scales[1], scales[i], 1e-9, "copy %d", i)
	}
	assert.Greater(t, scales[0], scales[1], "spine outweighs the off-axis twig")
}
