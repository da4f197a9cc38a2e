package flake

// Triangulate splits a simple counter-clockwise polygon into triangles by
// ear clipping and returns index triples into poly, each counter-clockwise.
//
// If no ear can be found (self-touching or degenerate input), the current
// vertex is clipped anyway so the result always has len(poly)-2 triangles.
func Triangulate(poly []Point) [][3]int {
	n := len(poly)
	if n < 3 {
		return nil
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	tris := make([][3]int, 0, n-2)

	i, misses := 0, 0
	for len(idx) > 3 {
		m := len(idx)
		i %= m
		prev, cur, next := idx[(i+m-1)%m], idx[i], idx[(i+1)%m]
		if misses >= m || isEar(poly, idx, prev, cur, next) {
			tris = append(tris, [3]int{prev, cur, next})
			idx = append(idx[:i], idx[i+1:]...)
			misses = 0
			// Step back so the new (prev, next) corner is tested first.
			i = (i + len(idx) - 1) % len(idx)
			continue
		}
		i++
		misses++
	}
	return append(tris, [3]int{idx[0], idx[1], idx[2]})
}

func isEar(poly []Point, idx []int, prev, cur, next int) bool {
	a, b, c := poly[prev], poly[cur], poly[next]
	if b.Sub(a).Cross(c.Sub(b)) <= epsilon {
		return false
	}
	for _, k := range idx {
		if k == prev || k == cur || k == next {
			continue
		}
		p := poly[k]
		if p == a || p == b || p == c {
			continue
		}
		if pointInTriangle(p, a, b, c) {
			return false
		}
	}
	return true
}

// pointInTriangle reports whether p lies inside or on the boundary of the
// counter-clockwise triangle abc.
func pointInTriangle(p, a, b, c Point) bool {
	return b.Sub(a).Cross(p.Sub(a)) >= 0 &&
		c.Sub(b).Cross(p.Sub(b)) >= 0 &&
		a.Sub(c).Cross(p.Sub(c)) >= 0
}
