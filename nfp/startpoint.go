package nfp

import (
	"math"

	"github.com/arl/nest/bitset"
	"github.com/arl/nest/geom"
)

// topMostIndex returns the index of poly's vertex with the greatest Y
// coordinate (ties broken by greatest X). NoFitPolygon calls it on both A
// and B to build the outer-NFP start placement (spec.md §4.3.2 step 1).
func topMostIndex(poly *geom.Polygon) int {
	best := 0
	bp := poly.At(0)
	for i := 1; i < poly.Len(); i++ {
		p := poly.At(i)
		if p.Y > bp.Y || (p.Y == bp.Y && p.X > bp.X) {
			bp = p
			best = i
		}
	}
	return best
}

// searchStartPoint finds a feasible initial touching placement of B against
// an unmarked vertex of A (spec.md §4.3.4). marked tracks which A vertices
// have already been used as a start point, across possibly several NFP
// contours within one search_edges run.
func searchStartPoint(a, b *geom.Polygon, inside bool, marked *bitset.Set, priorNFPs []Value) (geom.Point, int, bool) {
	na := a.Len()
	for i := 0; i < na; i++ {
		if marked.IsMarked(i) {
			continue
		}
		av := a.At(i)
		offset := geom.Point{X: av.X - b.At(0).X, Y: av.Y - b.At(0).Y}

		if ok := tryStartOffset(a, b, offset, inside, priorNFPs); ok {
			marked.Mark(i)
			return offset, i, true
		}

		aNext := a.At((i + 1) % na)
		edgeDir := geom.NormalizeVector(aNext.Sub(av))
		edgeLen := aNext.Sub(av)
		edgeLength := edgeLen.Dot(edgeLen)

		nb := b.Clone()
		nb.SetOffset(offset)
		dAB, okAB := geom.PolygonProjectionDistance(a, &nb, edgeDir)
		reverse := geom.Point{X: -edgeDir.X, Y: -edgeDir.Y}
		dBA, okBA := geom.PolygonProjectionDistance(&nb, a, reverse)

		var slide float64
		switch {
		case okAB && okBA:
			slide = math.Min(dAB, dBA)
		case okAB:
			slide = dAB
		case okBA:
			slide = dBA
		default:
			continue
		}
		if slide <= 0 {
			continue
		}
		if edgeLength > 0 && slide*slide > edgeLength {
			slide = edgeLen.Dot(edgeDir)
		}

		slid := geom.Point{X: offset.X + edgeDir.X*slide, Y: offset.Y + edgeDir.Y*slide}
		if tryStartOffset(a, b, slid, inside, priorNFPs) {
			marked.Mark(i)
			return slid, i, true
		}
	}
	return geom.Point{}, 0, false
}

// tryStartOffset reports whether placing B at offset satisfies the
// start-point acceptance rule: correctly inside/outside A, non-intersecting,
// and not already present in a prior NFP contour for this (A, B, inside)
// pair.
func tryStartOffset(a, b *geom.Polygon, offset geom.Point, inside bool, priorNFPs []Value) bool {
	nb := b.Clone()
	nb.SetOffset(offset)

	if polygonsIntersect(a, &nb) {
		return false
	}

	containment := checkContainment(a, &nb, inside)
	if !containment {
		return false
	}

	for _, prior := range priorNFPs {
		outer := prior.Outer()
		if outer == nil {
			continue
		}
		if geom.PointInPolygon(offset, outer) != geom.Outside {
			return false
		}
	}
	return true
}

// checkContainment samples non-boundary vertices of B and requires them to
// all be Inside A (inside=true) or all Outside A (inside=false).
func checkContainment(a, b *geom.Polygon, inside bool) bool {
	want := geom.Outside
	if inside {
		want = geom.Inside
	}
	any := false
	for i := 0; i < b.Len(); i++ {
		pos := geom.PointInPolygon(b.At(i), a)
		if pos == geom.OnBoundary {
			continue
		}
		any = true
		if pos != want {
			return false
		}
	}
	return any
}

// polygonsIntersect reports whether any edge of a crosses any edge of b.
func polygonsIntersect(a, b *geom.Polygon) bool {
	na, nb := a.Len(), b.Len()
	for i := 0; i < na; i++ {
		a1, a2 := a.At(i), a.At((i+1)%na)
		for j := 0; j < nb; j++ {
			b1, b2 := b.At(j), b.At((j+1)%nb)
			if _, ok := geom.LineIntersect(a1, a2, b1, b2, false); ok {
				return true
			}
		}
	}
	return false
}
