package flake

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(side float64, perEdge int) []Point {
	var out []Point
	corners := []Point{Pt(0, 0), Pt(side, 0), Pt(side, side), Pt(0, side)}
	for i, c := range corners {
		next := corners[(i+1)%4]
		for k := range perEdge {
			out = append(out, c.Lerp(next, float64(k)/float64(perEdge)))
		}
	}
	return out
}

func reversed(loop []Point) []Point {
	out := make([]Point, len(loop))
	for i, p := range loop {
		out[len(loop)-1-i] = p
	}
	return out
}

func TestSmooth(t *testing.T) {
	got := Smooth(square(4, 1), 0.25)
	require.Len(t, got, 8)
	assert.Equal(t, Pt(1, 0), got[0])
	assert.Equal(t, Pt(3, 0), got[1])
	assert.Equal(t, Pt(4, 1), got[2])

	// Corner cutting removes area but never adds any for a convex loop.
	assert.Less(t, PolygonArea(got), 16.0)
	assert.Greater(t, PolygonArea(got), 12.0)
}

func TestSimplifyCollinear(t *testing.T) {
	loop := square(4, 10)
	require.Len(t, loop, 40)

	got := Simplify(loop, 0.1, 0.01)
	assert.Len(t, got, minRefinedPoints)
	assert.InDelta(t, 16, PolygonArea(got), 1e-9)
	for _, c := range []Point{Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4)} {
		assert.Contains(t, got, c)
	}
}

func TestSimplifyNearDuplicates(t *testing.T) {
	base := FallbackPolygon(Rect{Min: Pt(-5, -5), Max: Pt(5, 5)}, 0)
	var loop []Point
	for _, p := range base {
		loop = append(loop, p, p.Add(Pt(1e-4, 0)))
	}
	got := Simplify(loop, 0.01, 0.001)
	assert.Len(t, got, FallbackSides)
}

func TestSimplifyRespectsFloor(t *testing.T) {
	// Every edge is below the threshold; the loop still keeps eight points.
	got := Simplify(square(1, 5), 10, 0.01)
	assert.Len(t, got, minRefinedPoints)
}

func TestRefineOutlineOrientsAndKeepsShape(t *testing.T) {
	circle := reversed(FallbackPolygon(Rect{Min: Pt(-5, -5), Max: Pt(5, 5)}, 0))
	require.Negative(t, PolygonArea(circle))

	got := RefineOutline(circle, 0.1, DefaultTuning())
	assert.Len(t, got, FallbackSides*4)
	assert.Positive(t, PolygonArea(got))
	assert.InDelta(t, math.Pi*25, PolygonArea(got), math.Pi*25*0.03)
}

func TestRefineOutlineDropsExplicitClosure(t *testing.T) {
	loop := ClosePath(square(4, 3))
	require.Len(t, loop, 13)
	tn := DefaultTuning()
	tn.Refine.Iterations = 0
	got := RefineOutline(loop, 0.01, tn)
	assert.NotEqual(t, got[0], got[len(got)-1])
}

func TestClosePath(t *testing.T) {
	loop := []Point{Pt(0, 0), Pt(1, 0), Pt(0, 1)}
	closed := ClosePath(loop)
	require.Len(t, closed, 4)
	assert.Equal(t, closed[0], closed[3])
	assert.Len(t, ClosePath(closed), 4)
	assert.Len(t, OpenPath(closed), 3)
	assert.Len(t, loop, 3, "ClosePath must not modify its input")
	assert.Empty(t, ClosePath(nil))
}
