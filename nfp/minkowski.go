package nfp

import (
	"github.com/arl/nest/boolean"
	"github.com/arl/nest/geom"
	"github.com/arl/nest/nesterr"
)

// MinkowskiDifference computes the outer NFP of B against A as the
// Minkowski sum of A and -B in integer space (spec.md §4.3.3), used when
// searchEdges is false and only a convex-case fallback is required.
func MinkowskiDifference(a, b *geom.Polygon, scale float64) (Value, error) {
	negB := make(boolean.Path, b.Len())
	for i := 0; i < b.Len(); i++ {
		p := b.At(i)
		negB[i] = geom.Pt(-p.X, -p.Y)
	}
	aPath := make(boolean.Path, a.Len())
	for i := 0; i < a.Len(); i++ {
		aPath[i] = a.At(i)
	}

	sums, err := boolean.MinkowskiSum(aPath, negB, scale)
	if err != nil {
		return nil, err
	}
	if len(sums) == 0 {
		return nil, nesterr.Wrap(nesterr.NfpSanity, "empty minkowski sum for A=%d B=%d", a.ID, b.ID)
	}

	// Pick the contour with the greatest |area|: the reading that keeps the
	// largest outer contour, per the Open Question decision in DESIGN.md.
	bestIdx := 0
	bestArea := 0.0
	for i, s := range sums {
		poly := geom.Polygon{Points: s}
		area := geom.Area(&poly)
		if absF(area) > bestArea {
			bestArea = absF(area)
			bestIdx = i
		}
	}

	chosen := geom.Polygon{Points: sums[bestIdx]}
	ref := b.At(0)
	for i := range chosen.Points {
		chosen.Points[i].X += ref.X
		chosen.Points[i].Y += ref.Y
	}
	if geom.Area(&chosen) < 0 {
		geom.Reverse(&chosen)
	}
	return Value{chosen}, nil
}
