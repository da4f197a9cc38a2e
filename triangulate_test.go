package flake

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangleArea(poly []Point, tri [3]int) float64 {
	a, b, c := poly[tri[0]], poly[tri[1]], poly[tri[2]]
	return b.Sub(a).Cross(c.Sub(a)) / 2
}

func star(points int, outer, inner float64) []Point {
	out := make([]Point, 0, 2*points)
	for k := range 2 * points {
		r := outer
		if k%2 == 1 {
			r = inner
		}
		out = append(out, Polar(r, math.Pi*float64(k)/float64(points)))
	}
	return out
}

func TestTriangulate(t *testing.T) {
	tests := []struct {
		name string
		poly []Point
	}{
		{"triangle", []Point{Pt(0, 0), Pt(1, 0), Pt(0, 1)}},
		{"square", square(2, 1)},
		{"L shape", []Point{Pt(0, 0), Pt(2, 0), Pt(2, 1), Pt(1, 1), Pt(1, 2), Pt(0, 2)}},
		{"six point star", star(6, 3, 1)},
		{"collinear runs", square(3, 6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tris := Triangulate(tt.poly)
			require.Len(t, tris, len(tt.poly)-2)

			total := 0.0
			for _, tri := range tris {
				a := triangleArea(tt.poly, tri)
				assert.GreaterOrEqual(t, a, 0.0, "triangle %v is clockwise", tri)
				total += a
			}
			assert.InDelta(t, PolygonArea(tt.poly), total, 1e-9)
		})
	}
}

func TestTriangulateDegenerate(t *testing.T) {
	assert.Nil(t, Triangulate(nil))
	assert.Nil(t, Triangulate([]Point{Pt(0, 0), Pt(1, 1)}))

	// All points on a line: no ear exists, clipping is forced and still ends.
	line := []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0), Pt(4, 0)}
	assert.Len(t, Triangulate(line), 3)
}
