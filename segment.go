package flake

import "math"

// epsilon replaces exact zero in denominators (zero-length directions,
// zero-extent bounds).
const epsilon = 1e-9

// Segment is an immutable line segment between two points.
type Segment struct {
	Start, End Point
}

// Seg is a convenience function to create a Segment.
func Seg(a, b Point) Segment {
	return Segment{Start: a, End: b}
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Midpoint returns the point halfway between the endpoints.
func (s Segment) Midpoint() Point {
	return s.Start.Lerp(s.End, 0.5)
}

// Rotate returns the segment rotated by angle radians around the origin.
func (s Segment) Rotate(angle float64) Segment {
	return Segment{Start: s.Start.Rotate(angle), End: s.End.Rotate(angle)}
}

// MirrorX returns the segment reflected across the X axis.
func (s Segment) MirrorX() Segment {
	return Segment{
		Start: Point{s.Start.X, -s.Start.Y},
		End:   Point{s.End.X, -s.End.Y},
	}
}

// DistanceTo returns the shortest distance from p to any point of the segment.
// Degenerate segments behave as a single point.
func (s Segment) DistanceTo(p Point) float64 {
	return math.Sqrt(s.distanceSq(p))
}

func (s Segment) distanceSq(p Point) float64 {
	d := s.End.Sub(s.Start)
	lenSq := d.LengthSquared()
	if lenSq < epsilon {
		return p.Sub(s.Start).LengthSquared()
	}
	t := p.Sub(s.Start).Dot(d) / lenSq
	t = clampFloat(t, 0, 1)
	return p.Sub(s.Start.Add(d.Mul(t))).LengthSquared()
}

// SegmentBounds returns the bounding rectangle of all segment endpoints.
// The result is empty when segs is empty.
func SegmentBounds(segs []Segment) Rect {
	r := emptyRect()
	for _, s := range segs {
		r = r.Extend(s.Start).Extend(s.End)
	}
	return r
}

// MaxRadius returns the largest endpoint distance from the origin.
func MaxRadius(segs []Segment) float64 {
	var r float64
	for _, s := range segs {
		r = math.Max(r, math.Max(s.Start.Length(), s.End.Length()))
	}
	return r
}

// nearestSegment returns the index of the closest segment to p and the
// distance to it. Returns -1 when segs is empty.
func nearestSegment(segs []Segment, p Point) (int, float64) {
	best := -1
	bestSq := math.Inf(1)
	for i, s := range segs {
		if d := s.distanceSq(p); d < bestSq {
			best, bestSq = i, d
		}
	}
	if best < 0 {
		return -1, math.Inf(1)
	}
	return best, math.Sqrt(bestSq)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
