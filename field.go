package flake

import (
	"math"

	"github.com/gogpu/flake/internal/parallel"
)

// fieldPadding is the margin around the segment bounds in stroke radii.
// It keeps every border node outside the stroke, so contours always close
// inside the grid.
const fieldPadding = 2.5

// DistanceField is a regular grid of signed distances. A node's value is
// the distance to the nearest segment minus the stroke radius, so negative
// values lie inside the stroked skeleton.
type DistanceField struct {
	// Bounds is the padded region covered by the grid nodes.
	Bounds Rect
	// Source is the bounding box of the segments before padding.
	Source Rect
	// Cell is the spacing between adjacent nodes.
	Cell float64
	// Radius is the stroke radius subtracted from every distance.
	Radius float64
	// NX and NY are node counts along each axis.
	NX, NY int
	// Values holds NY rows of NX nodes.
	Values []float64
}

// Empty reports whether the field has no nodes, which happens when it was
// built from an empty segment list.
func (f *DistanceField) Empty() bool {
	return f == nil || f.NX < 2 || f.NY < 2 || len(f.Values) < f.NX*f.NY
}

// At returns the value at node (i, j).
func (f *DistanceField) At(i, j int) float64 {
	return f.Values[j*f.NX+i]
}

// Node returns the position of node (i, j).
func (f *DistanceField) Node(i, j int) Point {
	return Point{
		X: f.Bounds.Min.X + float64(i)*f.Cell,
		Y: f.Bounds.Min.Y + float64(j)*f.Cell,
	}
}

// StrokeRadius converts thickness into a stroke radius in local units.
//
// Thickness maps linearly onto [Stroke.MinMM, Stroke.MaxMM]. The result is
// expressed in the same units as a skeleton whose diameter is
// localDiameter, assuming the stroked outline is later scaled to
// targetDiameterMM.
func StrokeRadius(thickness, localDiameter, targetDiameterMM float64, t Tuning) float64 {
	mm := lerp(t.Stroke.MinMM, t.Stroke.MaxMM, thicknessNorm(thickness))
	if !(localDiameter > epsilon) {
		localDiameter = 2 * t.Skeleton.SpineLength
	}
	if !(targetDiameterMM > epsilon) {
		targetDiameterMM = DefaultSizeInches * MillimetersPerInch
	}
	// The stroke itself widens the outline by 2*mm.
	physical := math.Max(targetDiameterMM-2*mm, targetDiameterMM/2)
	return mm * localDiameter / physical
}

// Rasterize samples the signed distance from the stroked segments on a grid
// whose longer axis spans resolution cells (clamped to
// [MinResolution, MaxResolution]).
//
// An empty segment list yields an empty field; ExtractOutline turns that
// into the fallback polygon.
func Rasterize(segs []Segment, radius float64, resolution int, opts ...Option) *DistanceField {
	o := newOptions(opts)
	o.resolution = clampInt(resolution, MinResolution, MaxResolution)
	return rasterize(segs, radius, o)
}

func rasterize(segs []Segment, radius float64, o options) *DistanceField {
	src := SegmentBounds(segs)
	f := &DistanceField{Source: src, Radius: radius}
	if len(segs) == 0 {
		return f
	}

	longest := math.Max(src.Width(), src.Height())
	if !(f.Radius > epsilon) {
		f.Radius = math.Max(longest*1e-3, epsilon)
	}
	f.Bounds = src.Pad(fieldPadding * f.Radius)
	longest = math.Max(f.Bounds.Width(), f.Bounds.Height())
	f.Cell = math.Max(longest/float64(o.resolution), epsilon)
	f.NX = int(math.Ceil(f.Bounds.Width()/f.Cell)) + 1
	f.NY = int(math.Ceil(f.Bounds.Height()/f.Cell)) + 1
	f.Values = make([]float64, f.NX*f.NY)

	parallel.For(o.workers, f.NY, func(lo, hi int) {
		for j := lo; j < hi; j++ {
			f.fillRow(segs, j)
		}
	})

	Logger().Debug("flake: distance field",
		"segments", len(segs), "nx", f.NX, "ny", f.NY, "cell", f.Cell, "radius", f.Radius)
	return f
}

func (f *DistanceField) fillRow(segs []Segment, j int) {
	row := f.Values[j*f.NX : (j+1)*f.NX]
	for i := range row {
		p := f.Node(i, j)
		best := math.Inf(1)
		for _, s := range segs {
			if d := s.distanceSq(p); d < best {
				best = d
			}
		}
		row[i] = math.Sqrt(best) - f.Radius
	}
}
