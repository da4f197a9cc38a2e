package flake

import "math"

// minRefinedPoints is the floor below which simplification stops.
const minRefinedPoints = MinOutlinePoints

// closureTolerance decides whether a loop's last point duplicates its first.
const closureTolerance = 1e-7

// RefineOutline smooths loop with corner cutting and then removes short and
// collinear edges. cell is the distance field spacing the edge threshold is
// derived from. The result is counter-clockwise, implicitly closed, and has
// at least min(len(loop), 8) points.
func RefineOutline(loop []Point, cell float64, t Tuning) []Point {
	out := OpenPath(loop)
	if len(out) < 3 {
		return out
	}
	for range t.Refine.Iterations {
		out = Smooth(out, t.Refine.CutRatio)
	}
	out = Simplify(out, cell*t.Refine.MinEdgeCells, t.Refine.Collinear)
	return orientPositive(out)
}

// Smooth performs one Chaikin corner-cutting pass over a closed loop. Each
// edge is replaced by two points at ratio and 1-ratio along it.
func Smooth(loop []Point, ratio float64) []Point {
	n := len(loop)
	if n < 3 {
		return loop
	}
	ratio = clampFloat(ratio, 0.01, 0.49)
	out := make([]Point, 0, 2*n)
	for i, a := range loop {
		b := loop[(i+1)%n]
		out = append(out, a.Lerp(b, ratio), a.Lerp(b, 1-ratio))
	}
	return out
}

// Simplify repeatedly drops vertices of a closed loop that lie closer than
// minEdge to the previous kept vertex, or that are nearly collinear with
// their neighbours (|sin| of the turn below collinear). It never reduces the
// loop below eight points.
func Simplify(loop []Point, minEdge, collinear float64) []Point {
	out := append([]Point(nil), loop...)
	for len(out) > minRefinedPoints {
		n := len(out)
		kept := make([]Point, 0, n)
		removed := 0
		for i, p := range out {
			prev := out[(i+n-1)%n]
			if len(kept) > 0 {
				prev = kept[len(kept)-1]
			}
			next := out[(i+1)%n]
			if n-removed > minRefinedPoints && removable(prev, p, next, minEdge, collinear) {
				removed++
				continue
			}
			kept = append(kept, p)
		}
		out = kept
		if removed == 0 {
			break
		}
	}
	return out
}

func removable(prev, p, next Point, minEdge, collinear float64) bool {
	a, b := p.Sub(prev), next.Sub(p)
	la, lb := a.Length(), b.Length()
	if la < minEdge {
		return true
	}
	// The outgoing edge is measured when next takes its turn.
	if lb < epsilon {
		return false
	}
	return a.Dot(b) > 0 && math.Abs(a.Cross(b)) < collinear*la*lb
}

// OpenPath returns loop without a trailing duplicate of its first point.
func OpenPath(loop []Point) []Point {
	n := len(loop)
	if n > 1 && loop[0].Distance(loop[n-1]) <= closureTolerance {
		return loop[:n-1]
	}
	return loop
}

// ClosePath returns loop with its first point appended, unless the last
// point already lies within tolerance of the first.
func ClosePath(loop []Point) []Point {
	n := len(loop)
	if n == 0 || loop[0].Distance(loop[n-1]) <= closureTolerance {
		return loop
	}
	out := make([]Point, n+1)
	copy(out, loop)
	out[n] = loop[0]
	return out
}
