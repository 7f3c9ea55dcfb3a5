package geom

import "math"

// PointLineDistance returns the signed distance from p to the infinite line
// through s1-s2, measured along normal, with explicit policy on whether the
// projection is allowed to fall exactly on s1 or s2. Returns false if the
// projection of p falls outside the segment, or exactly on an endpoint
// whose inclusion flag is false.
func PointLineDistance(p, s1, s2, normal Point, s1Inclusive, s2Inclusive bool) (float64, bool) {
	normal = NormalizeVector(normal)
	dir := Point{X: -normal.Y, Y: normal.X}

	pdot := p.Dot(dir)
	s1dot := s1.Dot(dir)
	s2dot := s2.Dot(dir)

	pdotnorm := p.Dot(normal)
	s1dotnorm := s1.Dot(normal)
	s2dotnorm := s2.Dot(normal)

	if s1dot > s2dot {
		s1dot, s2dot = s2dot, s1dot
		s1dotnorm, s2dotnorm = s2dotnorm, s1dotnorm
	}

	if pdot < s1dot || pdot > s2dot {
		return 0, false
	}
	if pdot == s1dot && !s1Inclusive {
		return 0, false
	}
	if pdot == s2dot && !s2Inclusive {
		return 0, false
	}
	if AlmostEqual(s1dot, s2dot) {
		return s1dotnorm - pdotnorm, true
	}
	t := (pdot - s1dot) / (s2dot - s1dot)
	interp := s1dotnorm + t*(s2dotnorm-s1dotnorm)
	return interp - pdotnorm, true
}

// SegmentDistance returns the translation distance along dir for which
// segment AB slides until it touches segment EF. Returns false if the
// segments cannot touch while sliding along dir; returns 0 if they already
// touch while sliding away from each other.
func SegmentDistance(a, b, e, f, dir Point) (float64, bool) {
	dir = NormalizeVector(dir)
	normal := Point{X: dir.Y, Y: -dir.X}

	reverse := Point{X: -dir.X, Y: -dir.Y}

	aProj := a.Dot(normal)
	eProj := e.Dot(normal)

	aDist := a.Dot(dir)
	bDist := b.Dot(dir)
	eDist := e.Dot(dir)
	fDist := f.Dot(dir)

	crossABE := (e.Y-a.Y)*(b.X-a.X) - (e.X-a.X)*(b.Y-a.Y)
	crossABF := (f.Y-a.Y)*(b.X-a.X) - (f.X-a.X)*(b.Y-a.Y)

	if AlmostZero(crossABE) && AlmostZero(crossABF) {
		// Collinear along the normal: project onto dir and find overlap.
		if AlmostEqual(aProj, eProj) {
			return overlapSlideDistance(aDist, bDist, eDist, fDist)
		}
		return 0, false
	}
	_ = reverse

	min, minOK := polyIntersectSlide(a, b, e, f, dir)
	return min, minOK
}

func overlapSlideDistance(aDist, bDist, eDist, fDist float64) (float64, bool) {
	lo, hi := eDist, fDist
	if lo > hi {
		lo, hi = hi, lo
	}
	alo, ahi := aDist, bDist
	if alo > ahi {
		alo, ahi = ahi, alo
	}
	if ahi < lo || alo > hi {
		return 0, false
	}
	if ahi <= hi {
		return hi - ahi, true
	}
	return 0, true
}

// polyIntersectSlide computes, for non-collinear segments AB and EF, the
// distance along dir that A or B must travel to bring AB into contact with
// EF, by intersecting each candidate translated endpoint's ray with the
// other segment.
func polyIntersectSlide(a, b, e, f, dir Point) (float64, bool) {
	best := math.Inf(1)
	found := false
	try := func(p, q1, q2 Point) {
		far := Point{X: p.X + dir.X*1e7, Y: p.Y + dir.Y*1e7}
		if hit, ok := LineIntersect(p, far, q1, q2, false); ok {
			d := hit.Sub(p).Dot(dir)
			if d >= -Tolerance && d < best {
				best = d
				found = true
			}
		}
	}
	try(a, e, f)
	try(b, e, f)

	backDir := Point{X: -dir.X, Y: -dir.Y}
	tryBack := func(p, q1, q2 Point) {
		far := Point{X: p.X + backDir.X*1e7, Y: p.Y + backDir.Y*1e7}
		if hit, ok := LineIntersect(p, far, q1, q2, false); ok {
			d := hit.Sub(p).Dot(backDir)
			if d >= -Tolerance && d < best {
				best = d
				found = true
			}
		}
	}
	tryBack(e, a, b)
	tryBack(f, a, b)

	if !found {
		return 0, false
	}
	return best, true
}

// PolygonSlideDistance returns the minimum over all edge pairs of A and B of
// SegmentDistance, i.e. the distance B can slide along dir before any of its
// edges touches any edge of A. If ignoreNegative, candidate distances below
// -Tolerance are discarded instead of returned.
func PolygonSlideDistance(a, b *Polygon, dir Point, ignoreNegative bool) (float64, bool) {
	dir = NormalizeVector(dir)
	na, nb := a.Len(), b.Len()
	best := math.Inf(1)
	found := false

	for i := 0; i < na; i++ {
		a1, a2 := a.At(i), a.At((i+1)%na)
		for j := 0; j < nb; j++ {
			b1, b2 := b.At(j), b.At((j+1)%nb)
			d, ok := SegmentDistance(b1, b2, a1, a2, dir)
			if !ok {
				continue
			}
			if ignoreNegative && d < -Tolerance {
				continue
			}
			if d < best {
				best = d
				found = true
			}
		}
	}
	if !found {
		return 0, false
	}
	return best, true
}

// PolygonProjectionDistance projects every vertex of B onto the edges of A
// along dir and returns the minimum signed projection distance found, or
// false if no vertex of B projects onto any edge of A.
func PolygonProjectionDistance(a, b *Polygon, dir Point) (float64, bool) {
	na, nb := a.Len(), b.Len()
	best := math.Inf(1)
	found := false

	for i := 0; i < nb; i++ {
		p := b.At(i)
		for j := 0; j < na; j++ {
			s1, s2 := a.At(j), a.At((j+1)%na)
			if s1.Equal(s2) {
				continue
			}
			d, ok := PointLineDistance(p, s1, s2, dir, true, true)
			if !ok {
				continue
			}
			if d < best {
				best = d
				found = true
			}
		}
	}
	if !found {
		return 0, false
	}
	return best, true
}

// PolygonEdge returns the continuous polyline of poly's vertices that forms
// the extremal edge in the direction of normal (algorithm 8 of Burke &
// Qiao). It returns the indices of the first and last vertex of that edge.
func PolygonEdge(poly *Polygon, normal Point) (start, end int) {
	n := poly.Len()
	if n == 0 {
		return 0, 0
	}
	normal = NormalizeVector(normal)

	minProj := math.Inf(1)
	minIdx := 0
	for i := 0; i < n; i++ {
		proj := poly.At(i).Dot(normal)
		if proj < minProj {
			minProj = proj
			minIdx = i
		}
	}

	// Walk backward and forward from minIdx while consecutive projections
	// stay within tolerance of the minimum, describing the flat edge.
	start, end = minIdx, minIdx
	for i := 1; i < n; i++ {
		idx := (minIdx - i + n) % n
		if !AlmostEqual(poly.At(idx).Dot(normal), minProj) {
			break
		}
		start = idx
	}
	for i := 1; i < n; i++ {
		idx := (minIdx + i) % n
		if !AlmostEqual(poly.At(idx).Dot(normal), minProj) {
			break
		}
		end = idx
	}
	return start, end
}
