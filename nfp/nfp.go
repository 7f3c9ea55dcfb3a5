package nfp

import (
	"github.com/arl/nest/bitset"
	"github.com/arl/nest/geom"
	"github.com/arl/nest/nesterr"
)

// MaxStepsFactor bounds the orbit iteration count at
// MaxStepsFactor*(|A|+|B|), per spec.md §4.3.2 step 7's sanity cap.
const MaxStepsFactor = 10

// NoFitPolygon computes one or more NFP contours for B orbiting A (spec.md
// §4.3.2). set resolves A's holes for the useHoles inner-NFP augmentation;
// it may be nil when A has no holes.
func NoFitPolygon(set *geom.Set, a, b *geom.Polygon, inside, searchEdges, useHoles bool) (Value, error) {
	maxSteps := MaxStepsFactor * (a.Len() + b.Len())

	var start geom.Point
	if !inside {
		ai := topMostIndex(a)
		bi := topMostIndex(b)
		start = geom.Point{X: a.At(ai).X - b.At(bi).X, Y: a.At(ai).Y - b.At(bi).Y}
	} else {
		marked := bitset.New(a.Len())
		s, _, ok := searchStartPoint(a, b, inside, marked, nil)
		if !ok {
			return nil, nesterr.Wrap(nesterr.NfpSanity, "no feasible inner start point for A=%d B=%d", a.ID, b.ID)
		}
		start = s
	}

	var contours Value
	pts, ok := Orbit(a, b, start, maxSteps)
	if !ok || len(pts) < 3 {
		return nil, nesterr.Wrap(nesterr.NfpSanity, "orbit failed to close for A=%d B=%d", a.ID, b.ID)
	}
	contours = append(contours, geom.Polygon{Points: pts})

	if searchEdges {
		marked := bitset.New(a.Len())
		for {
			prior := make([]Value, len(contours))
			for i := range contours {
				prior[i] = Value{contours[i]}
			}
			s, _, ok := searchStartPoint(a, b, inside, marked, prior)
			if !ok {
				break
			}
			more, ok := Orbit(a, b, s, maxSteps)
			if !ok || len(more) < 3 {
				continue
			}
			contours = append(contours, geom.Polygon{Points: more})
		}
	}

	return postProcess(set, a, b, contours, inside, useHoles)
}

// postProcess normalizes winding, demotes interior contours to holes,
// discards sanity-failing NFPs, and appends hole-vs-B inner NFPs when
// requested (spec.md §4.3.2 post-processing).
func postProcess(set *geom.Set, a, b *geom.Polygon, contours Value, inside bool, useHoles bool) (Value, error) {
	if len(contours) == 0 {
		return nil, nesterr.Wrap(nesterr.NfpSanity, "empty NFP for A=%d B=%d", a.ID, b.ID)
	}

	if !inside {
		outer := &contours[0]
		if geom.Area(outer) < 0 {
			geom.Reverse(outer)
		}
		aArea := geom.Area(a)
		if absF(geom.Area(outer)) < absF(aArea) {
			return nil, nesterr.Wrap(nesterr.NfpSanity, "outer NFP smaller than A for A=%d B=%d", a.ID, b.ID)
		}

		var out Value
		out = append(out, *outer)
		for i := 1; i < len(contours); i++ {
			c := contours[i]
			if absF(geom.Area(&c)) < absF(aArea) {
				continue
			}
			if geom.PointInPolygon(c.At(0), outer) == geom.Inside {
				if geom.Area(&c) > 0 {
					geom.Reverse(&c)
				}
			}
			out = append(out, c)
		}
		contours = out
	}

	if !inside && useHoles && set != nil {
		for _, hole := range set.Holes(a) {
			hb := geom.ComputeBounds(hole)
			bb := geom.ComputeBounds(b)
			if hb.Width() > bb.Width() && hb.Height() > bb.Height() {
				inner, err := NoFitPolygon(set, hole, b, true, false, false)
				if err == nil {
					contours = append(contours, inner...)
				}
			}
		}
	}

	return contours, nil
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
