package flake

// Result is everything one pipeline run produces. All fields are owned by
// the caller; nothing is shared with later runs.
type Result struct {
	// Params is the clamped input actually used.
	Params Params
	// Seed is SeedFromString(Params.Seed).
	Seed uint32
	// Wedge is the skeleton of a single 60 degree wedge.
	Wedge []Segment
	// Segments is the full six-fold skeleton.
	Segments []Segment
	// Outline is the refined counter-clockwise outline in local units.
	Outline []Point
	// Cell is the distance field spacing the outline was extracted at.
	Cell float64
	// StrokeRadius is the stroke radius in local units.
	StrokeRadius float64
	// Fallback is true when the outline is the substitute polygon.
	Fallback bool
	// Mesh is the extruded, relieved and normalized solid in millimeters.
	Mesh *Mesh
}

// Generate runs the full pipeline for p. It never fails: out-of-range
// parameters are clamped and a failed contour is replaced by a fallback
// polygon, so the result always carries a closed, non-empty mesh.
//
// Generate is a pure function of p and the options; calling it twice with
// the same arguments yields identical results.
func Generate(p Params, opts ...Option) *Result {
	o := newOptions(opts)
	p = p.Clamp()

	res := &Result{Params: p, Seed: SeedFromString(p.Seed)}
	g := NewGenerator(res.Seed)

	res.Wedge = GenerateWedge(g, p.Complexity, p.Thickness, o.tuning)
	res.Segments = Replicate(res.Wedge, o.tuning.Mirror)

	diameter := p.DiameterMM()
	localDiameter := 2 * MaxRadius(res.Segments)
	res.StrokeRadius = StrokeRadius(p.Thickness, localDiameter, diameter, o.tuning)

	field := rasterize(res.Segments, res.StrokeRadius, o)
	res.Cell = field.Cell

	loop, fallback := ExtractOutline(field)
	res.Fallback = fallback
	res.Outline = RefineOutline(loop, field.Cell, o.tuning)

	depth := localDiameter * o.depthRatio
	if depth <= epsilon {
		depth = o.depthRatio
	}
	res.Mesh = extrude(res.Outline, res.Segments, depth, o)
	Normalize(res.Mesh, diameter, o.depthRatio)

	Logger().Debug("flake: generated",
		"seed", res.Seed,
		"complexity", p.Complexity,
		"thickness", p.Thickness,
		"segments", len(res.Segments),
		"outline", len(res.Outline),
		"fallback", res.Fallback,
		"faces", res.Mesh.FaceCount(),
	)
	return res
}
