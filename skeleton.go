package flake

import "math"

const deg = math.Pi / 180

// wedgeHalfTan bounds the angular extent of branches around the spine.
var wedgeHalfTan = math.Tan(30 * deg)

// GenerateWedge builds the skeleton of one 60 degree wedge centered on the
// positive X axis: a spine, optional rails, mirrored branch pairs with twigs
// and plates, and a splayed tip.
//
// Random values are drawn in this fixed order, which makes the result a pure
// function of the generator seed, complexity, thickness and tuning:
//
//  1. one draw per spine step (step jitter)
//  2. per interior spine node inside the branching band: attach trial, then
//     if attached angle jitter and length jitter, then per branch side two
//     twig trials, three draws per twig (position, angle, length), two plate
//     trials and three draws per plate (position, length, tilt)
//  3. tip count, tip bevel jitter
//
// Every segment ends inside the +-30 degree wedge: branches, twigs, plates
// and tips are shortened where they would cross a wedge edge. Segments
// shorter than the minimum feature size are clamped (spine) or skipped
// (everything else); skipped segments still consume their draws.
func GenerateWedge(g *Generator, complexity int, thickness float64, t Tuning) []Segment {
	st := t.Skeleton
	levels := clampInt(complexity, MinComplexity, MaxComplexity)
	tn := thicknessNorm(thickness)

	w := wedgeBuilder{minFeature: st.MinFeature}

	steps := levels + st.ExtraNodes
	baseStep := st.SpineLength / float64(steps)
	nodes := make([]float64, 1, steps+1)
	x := 0.0
	for range steps {
		step := baseStep * (1 + g.Jitter(st.StepJitter))
		step = math.Max(step, st.MinFeature)
		w.add(Pt(x, 0), Pt(x+step, 0))
		x += step
		nodes = append(nodes, x)
	}
	spineLen := x

	sides := []float64{1, -1}
	if t.Mirror {
		sides = sides[:1]
	}

	if st.Rails && steps >= 2 {
		off := st.RailOffset * (1 + tn)
		for _, side := range sides {
			w.add(Pt(nodes[1], side*off), Pt(nodes[steps-1], side*off))
		}
	}

	attach := clampFloat(st.BranchBase+st.BranchPerLevel*float64(levels), 0, 0.95)
	levelScale := 0.4 + 0.06*float64(levels)
	thickScale := 1 + st.ThicknessGain*tn

	for i := 1; i < steps; i++ {
		pos := nodes[i] / spineLen
		if pos < st.HeadExclusion || pos > 1-st.TailExclusion {
			continue
		}
		if !g.Chance(attach) {
			continue
		}
		angle := (lerp(st.BranchAngleIn, st.BranchAngleOut, pos) + g.Jitter(st.AngleJitter)) * deg
		length := spineLen * st.BranchScale * levelScale *
			math.Max(1-st.BranchFalloff*pos, 0.05) * thickScale * (0.85 + 0.3*g.Next())
		root := Pt(nodes[i], 0)
		length = math.Min(length, wedgeReach(root, angle))

		for _, side := range sides {
			w.branch(g, st, root, side*angle, side, length)
		}
	}

	tip := Pt(spineLen, 0)
	count := 2 + g.Intn(2)
	bevel := (st.TipBevel + g.Jitter(6)) * deg
	tipLen := st.TipLength * (1 + 0.3*tn)
	for _, side := range sides {
		w.ray(tip, math.Pi-side*bevel, tipLen)
	}
	if count == 3 {
		// The third tip runs back along the spine, between the splayed pair.
		w.ray(tip, math.Pi, tipLen*0.5)
	}

	return w.segs
}

// wedgeEdges are the directions of the two rays bounding the wedge.
var wedgeEdges = [2]Point{Polar(1, 30*deg), Polar(1, -30*deg)}

// wedgeReach returns 95% of the distance from p along direction a to the
// nearest wedge edge, or +Inf when the ray never meets one. Points outside
// the wedge reach 0.
func wedgeReach(p Point, a float64) float64 {
	if math.Abs(p.Y) > wedgeHalfTan*p.X+epsilon {
		return 0
	}
	d := Polar(1, a)
	reach := math.Inf(1)
	for _, e := range wedgeEdges {
		den := e.Cross(d)
		if math.Abs(den) <= epsilon {
			continue
		}
		if s := -e.Cross(p) / den; s > 0 {
			reach = math.Min(reach, s)
		}
	}
	return 0.95 * reach
}

type wedgeBuilder struct {
	segs       []Segment
	minFeature float64
}

// add appends a segment unless it is shorter than the minimum feature size.
func (w *wedgeBuilder) add(a, b Point) bool {
	if a.Distance(b) < w.minFeature {
		return false
	}
	w.segs = append(w.segs, Seg(a, b))
	return true
}

// ray adds a segment from start at angle a, shortened so that its end stays
// inside the wedge.
func (w *wedgeBuilder) ray(start Point, a, length float64) bool {
	length = math.Min(length, wedgeReach(start, a))
	return w.add(start, start.Add(Polar(length, a)))
}

// branch emits one branch plus its twigs and plates. side is +1 or -1 and
// mirrors every angular offset so both branches of a pair curl the same way
// relative to the spine.
func (w *wedgeBuilder) branch(g *Generator, st SkeletonTuning, root Point, angle, side, length float64) {
	dir := Polar(1, angle)
	w.ray(root, angle, length)

	twigs := 0
	for range 2 {
		if g.Chance(st.TwigChance) {
			twigs++
		}
	}
	for k := range twigs {
		at := g.Range(0.35, 0.8)
		offset := (st.TwigAngle + g.Jitter(8)) * deg
		if k%2 == 1 {
			offset = -offset
		}
		tl := length * st.TwigScale * (0.7 + 0.6*g.Next()) * (1 - 0.4*at)
		start := root.Add(dir.Mul(length * at))
		w.ray(start, angle-side*offset, tl)
	}

	plates := 0
	for range 2 {
		if g.Chance(st.PlateChance) {
			plates++
		}
	}
	for k := range plates {
		at := g.Range(0.15, 0.6)
		pl := length * st.PlateScale * (0.8 + 0.4*g.Next())
		tilt := g.Jitter(12) * deg
		normal := math.Pi / 2
		if k%2 == 1 {
			normal = -normal
		}
		start := root.Add(dir.Mul(length * at))
		w.ray(start, angle+side*(normal+tilt), pl)
	}
}
