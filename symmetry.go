package flake

import "math"

// axisTolerance decides whether a segment lies on the mirror axis.
const axisTolerance = 1e-9

// Replicate expands a wedge into the full six-fold flake by rotating it by
// k*60 degrees for k = 0..5 about the origin.
//
// When mirror is set, the wedge is first reflected across the X axis.
// Segments lying on the axis are not duplicated by the reflection.
func Replicate(wedge []Segment, mirror bool) []Segment {
	base := wedge
	if mirror {
		base = make([]Segment, 0, 2*len(wedge))
		base = append(base, wedge...)
		for _, s := range wedge {
			if math.Abs(s.Start.Y) < axisTolerance && math.Abs(s.End.Y) < axisTolerance {
				continue
			}
			base = append(base, s.MirrorX())
		}
	}

	out := make([]Segment, 0, 6*len(base))
	out = append(out, base...)
	for k := 1; k < 6; k++ {
		angle := float64(k) * math.Pi / 3
		for _, s := range base {
			out = append(out, s.Rotate(angle))
		}
	}
	return out
}
