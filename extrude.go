package flake

import (
	"math"

	"github.com/gogpu/flake/internal/parallel"
)

// Extrude turns a closed outline into a prism of the given total depth,
// centered on z=0, and applies segment-driven relief to the cap rims.
// The outline is reoriented counter-clockwise if needed.
//
// The mesh shares vertices between caps and side walls, so it is watertight
// whenever the outline is a simple polygon.
func Extrude(outline []Point, segs []Segment, depth float64, t Tuning, opts ...Option) *Mesh {
	o := newOptions(opts)
	o.tuning = t
	return extrude(outline, segs, depth, o)
}

func extrude(outline []Point, segs []Segment, depth float64, o options) *Mesh {
	ring := orientPositive(OpenPath(outline))
	n := len(ring)
	if n < 3 {
		return &Mesh{}
	}
	half := math.Max(depth, epsilon) / 2

	m := &Mesh{
		Vertices: make([]Vec3, 2*n),
		Faces:    make([][3]uint32, 0, 2*(n-2)+2*n),
	}
	for i, p := range ring {
		m.Vertices[i] = Vec3{p.X, p.Y, half}
		m.Vertices[n+i] = Vec3{p.X, p.Y, -half}
	}

	for _, tri := range Triangulate(ring) {
		a, b, c := uint32(tri[0]), uint32(tri[1]), uint32(tri[2])
		un := uint32(n)
		m.Faces = append(m.Faces,
			[3]uint32{a, b, c},
			[3]uint32{un + a, un + c, un + b},
		)
	}
	for i := range n {
		j := (i + 1) % n
		ti, tj := uint32(i), uint32(j)
		bi, bj := uint32(n+i), uint32(n+j)
		m.Faces = append(m.Faces,
			[3]uint32{bi, bj, tj},
			[3]uint32{bi, tj, ti},
		)
	}

	applyRelief(m, segs, half, o)
	m.ComputeNormals()
	m.ComputeBounds()

	Logger().Debug("flake: extruded", "vertices", len(m.Vertices), "faces", len(m.Faces))
	return m
}

// applyRelief moves every vertex above the relief threshold toward
// halfDepth*scale of its nearest segment, weighted by exp(-distance/falloff).
// Side walls share the cap ring vertices, so they follow the caps.
func applyRelief(m *Mesh, segs []Segment, halfDepth float64, o options) {
	if len(segs) == 0 {
		return
	}
	rt := o.tuning.Relief
	scales := segmentDepthScales(segs, rt)
	threshold := rt.Threshold * halfDepth
	floor := rt.MinHalfDepth * halfDepth

	parallel.For(o.workers, len(m.Vertices), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			v := m.Vertices[i]
			if math.Abs(v.Z) <= threshold {
				continue
			}
			k, d := nearestSegment(segs, Point{v.X, v.Y})
			if k < 0 {
				continue
			}
			target := halfDepth * scales[k]
			w := math.Exp(-d / rt.Falloff)
			h := math.Max(halfDepth+(target-halfDepth)*w, floor)
			m.Vertices[i].Z = math.Copysign(h, v.Z)
		}
	})
}

// segmentDepthScales classifies every segment between twig-like and
// spine-like and returns its depth factor.
func segmentDepthScales(segs []Segment, rt ReliefTuning) []float64 {
	longest := epsilon
	for _, s := range segs {
		longest = math.Max(longest, s.Length())
	}
	out := make([]float64, len(segs))
	for i, s := range segs {
		dev := axisDeviation(s)
		alignment := 1 - dev/(math.Pi/6)
		spineLike := alignment * math.Sqrt(s.Length()/longest)
		jitter := rt.JitterAmount * (symmetricHash(s, dev) - 0.5)
		out[i] = lerp(rt.TwigDepth, rt.SpineDepth, spineLike) + jitter
	}
	return out
}

// axisDeviation returns the angle in [0, pi/6] between the segment direction
// and the nearest multiple of 60 degrees. It is invariant under 60 degree
// rotation, reflection and endpoint swap.
func axisDeviation(s Segment) float64 {
	d := s.End.Sub(s.Start)
	if d.LengthSquared() < epsilon {
		return math.Pi / 6
	}
	a := math.Mod(math.Atan2(d.Y, d.X), math.Pi/3)
	if a < 0 {
		a += math.Pi / 3
	}
	return math.Min(a, math.Pi/3-a)
}

// symmetricHash is a deterministic value in [0,1) derived only from
// quantities shared by all symmetric copies of a segment: midpoint radius,
// length and axis deviation. Mirrored branches therefore get equal relief.
func symmetricHash(s Segment, dev float64) float64 {
	r := math.Round(s.Midpoint().Length()*100) / 100
	l := math.Round(s.Length()*100) / 100
	a := math.Round(dev/deg*10) / 10
	v := math.Sin(r*12.9898+l*78.233+a*37.719) * 43758.5453
	return v - math.Floor(v)
}
