package flake

import "math"

// Outline size guarantees.
const (
	// MinOutlinePoints is the smallest loop accepted from extraction.
	MinOutlinePoints = 8
	// FallbackSides is the vertex count of the substitute outline.
	FallbackSides = 24
)

// Cell edges, in the order used by the case table.
const (
	edgeBottom = iota
	edgeRight
	edgeTop
	edgeLeft
)

// contourCases lists, per corner mask, the directed edge pairs crossed by the
// contour. Corner bits: 1 bottom-left, 2 bottom-right, 4 top-right, 8
// top-left; a set bit means the corner is inside. Every pair is directed so
// the inside lies to the left, which makes outer loops counter-clockwise.
// The saddles 5 and 10 are resolved separately.
var contourCases = [16][][2]int{
	0:  nil,
	1:  {{edgeBottom, edgeLeft}},
	2:  {{edgeRight, edgeBottom}},
	3:  {{edgeRight, edgeLeft}},
	4:  {{edgeTop, edgeRight}},
	6:  {{edgeTop, edgeBottom}},
	7:  {{edgeTop, edgeLeft}},
	8:  {{edgeLeft, edgeTop}},
	9:  {{edgeBottom, edgeTop}},
	11: {{edgeRight, edgeTop}},
	12: {{edgeLeft, edgeRight}},
	13: {{edgeBottom, edgeRight}},
	14: {{edgeLeft, edgeBottom}},
	15: nil,
}

// saddleCases resolves masks 5 and 10 by the sign of the cell center.
var saddleCases = map[int][2][][2]int{
	// index 0: center outside, index 1: center inside
	5:  {{{edgeBottom, edgeLeft}, {edgeTop, edgeRight}}, {{edgeBottom, edgeRight}, {edgeTop, edgeLeft}}},
	10: {{{edgeRight, edgeBottom}, {edgeLeft, edgeTop}}, {{edgeLeft, edgeBottom}, {edgeRight, edgeTop}}},
}

// contourSegment links two grid-edge crossings.
type contourSegment struct {
	from, to int
}

// marcher holds the per-run state of marching squares. Crossing points are
// cached by grid-edge id so adjacent cells share identical endpoints.
type marcher struct {
	f        *DistanceField
	points   map[int]Point
	segments []contourSegment
}

// horizontalEdge and verticalEdge encode a grid edge as a single integer:
// the lower node index times two, plus one for vertical edges.
func (m *marcher) horizontalEdge(i, j int) int { return 2 * (j*m.f.NX + i) }
func (m *marcher) verticalEdge(i, j int) int   { return 2*(j*m.f.NX+i) + 1 }

func (m *marcher) cellEdge(i, j, which int) int {
	switch which {
	case edgeBottom:
		return m.horizontalEdge(i, j)
	case edgeRight:
		return m.verticalEdge(i+1, j)
	case edgeTop:
		return m.horizontalEdge(i, j+1)
	default:
		return m.verticalEdge(i, j)
	}
}

// crossing returns the interpolated zero crossing on edge id.
func (m *marcher) crossing(id int) Point {
	if p, ok := m.points[id]; ok {
		return p
	}
	node := id / 2
	i, j := node%m.f.NX, node/m.f.NX
	i2, j2 := i+1, j
	if id%2 == 1 {
		i2, j2 = i, j+1
	}
	va, vb := m.f.At(i, j), m.f.At(i2, j2)
	t := 0.5
	if d := va - vb; math.Abs(d) > epsilon {
		t = clampFloat(va/d, 0, 1)
	}
	p := m.f.Node(i, j).Lerp(m.f.Node(i2, j2), t)
	m.points[id] = p
	return p
}

func (m *marcher) march() {
	f := m.f
	for j := 0; j < f.NY-1; j++ {
		for i := 0; i < f.NX-1; i++ {
			v0, v1 := f.At(i, j), f.At(i+1, j)
			v2, v3 := f.At(i+1, j+1), f.At(i, j+1)

			mask := 0
			if v0 < 0 {
				mask |= 1
			}
			if v1 < 0 {
				mask |= 2
			}
			if v2 < 0 {
				mask |= 4
			}
			if v3 < 0 {
				mask |= 8
			}

			pairs := contourCases[mask]
			if saddle, ok := saddleCases[mask]; ok {
				center := 0
				if (v0+v1+v2+v3)/4 < 0 {
					center = 1
				}
				pairs = saddle[center]
			}
			for _, pr := range pairs {
				from, to := m.cellEdge(i, j, pr[0]), m.cellEdge(i, j, pr[1])
				m.crossing(from)
				m.crossing(to)
				m.segments = append(m.segments, contourSegment{from: from, to: to})
			}
		}
	}
}

// loops chains the directed contour segments into closed loops. Chains that
// do not return to their start are dropped.
func (m *marcher) loops() [][]Point {
	next := make(map[int]int, len(m.segments))
	for _, s := range m.segments {
		next[s.from] = s.to
	}

	used := make(map[int]bool, len(m.segments))
	var out [][]Point
	for _, s := range m.segments {
		if used[s.from] {
			continue
		}
		var loop []Point
		closed := false
		for cur := s.from; ; {
			used[cur] = true
			loop = append(loop, m.points[cur])
			nxt, ok := next[cur]
			if !ok {
				break
			}
			if nxt == s.from {
				closed = true
				break
			}
			if used[nxt] {
				break
			}
			cur = nxt
		}
		if closed && len(loop) >= 3 {
			out = append(out, loop)
		}
	}
	return out
}

// ExtractLoops runs marching squares over the zero level of f and returns
// every closed loop found. Outer boundaries are counter-clockwise, holes
// clockwise.
func ExtractLoops(f *DistanceField) [][]Point {
	if f.Empty() {
		return nil
	}
	m := &marcher{f: f, points: make(map[int]Point)}
	m.march()
	if len(m.segments) < 3 {
		return nil
	}
	return m.loops()
}

// ExtractOutline returns the largest-area loop of f with positive winding.
//
// When extraction produces no usable loop (too few contour segments, no
// closed chain, or fewer than MinOutlinePoints points) it returns a regular
// FallbackSides-gon around the source bounds and fallback=true.
func ExtractOutline(f *DistanceField) (loop []Point, fallback bool) {
	loops := ExtractLoops(f)

	bestArea := 0.0
	for _, l := range loops {
		if a := math.Abs(PolygonArea(l)); a > bestArea {
			bestArea, loop = a, l
		}
	}

	if len(loop) < MinOutlinePoints || bestArea <= epsilon {
		src, radius := emptyRect(), 0.0
		if f != nil {
			src, radius = f.Source, f.Radius
		}
		Logger().Warn("flake: contour extraction failed, using fallback outline",
			"loops", len(loops), "points", len(loop))
		return FallbackPolygon(src, radius), true
	}

	Logger().Debug("flake: contour", "loops", len(loops), "points", len(loop), "area", bestArea)
	return orientPositive(loop), false
}

// FallbackPolygon returns a counter-clockwise regular FallbackSides-gon that
// covers bounds grown by radius. Empty bounds produce a unit polygon at the
// origin.
func FallbackPolygon(bounds Rect, radius float64) []Point {
	center := Point{}
	r := 1.0
	if !bounds.Empty() {
		center = bounds.Center()
		r = math.Max(bounds.Width(), bounds.Height())/2 + math.Max(radius, 0)
		if r <= epsilon {
			r = 1
		}
	}
	out := make([]Point, FallbackSides)
	for k := range out {
		out[k] = center.Add(Polar(r, 2*math.Pi*float64(k)/FallbackSides))
	}
	return out
}

// orientPositive returns loop with counter-clockwise winding, reversing a
// copy when needed.
func orientPositive(loop []Point) []Point {
	if PolygonArea(loop) >= 0 {
		return loop
	}
	out := make([]Point, len(loop))
	for i, p := range loop {
		out[len(loop)-1-i] = p
	}
	return out
}
