package nfp

import (
	"math"

	"github.com/arl/assertgo"

	"github.com/arl/nest/geom"
)

// touch describes one contact between A and B during orbiting, per the
// three kinds enumerated in spec.md §4.3.2 step 2.
type touch struct {
	kind int // 0: vertex-vertex, 1: A-edge hits B-vertex, 2: B-edge hits A-vertex
	a, b int // vertex indices into A and B respectively
}

// Orbit computes one NFP contour by orbiting B around A starting from
// startOffset, per spec.md §4.3.2 steps 2-7. maxSteps bounds the iteration
// (the spec's 10*(|A|+|B|) sanity cap).
func Orbit(a *geom.Polygon, b *geom.Polygon, startOffset geom.Point, maxSteps int) ([]geom.Point, bool) {
	nb := b.Clone()
	nb.SetOffset(startOffset)

	startRef := nb.At(0)
	var result []geom.Point
	result = append(result, startRef)

	var prevVector geom.Point
	haveStart := false

	for step := 0; step < maxSteps; step++ {
		touches := findTouches(a, &nb)

		best, ok := bestCandidateVector(a, &nb, touches, prevVector)
		if !ok {
			// No feasible move: orbiting degenerated, fail this NFP.
			return nil, false
		}

		trimmed, okTrim := geom.PolygonSlideDistance(a, &nb, best, true)
		if !okTrim || trimmed <= geom.Tolerance {
			return nil, false
		}
		move := geom.Point{X: best.X * trimmed, Y: best.Y * trimmed}

		nb.SetOffset(geom.Point{X: nb.OffsetX + move.X, Y: nb.OffsetY + move.Y})
		prevVector = best

		ref := nb.At(0)
		result = append(result, ref)

		if haveStart && ref.Equal(startRef) {
			return result, true
		}
		for i := 0; i < len(result)-1; i++ {
			if ref.Equal(result[i]) {
				return result, true
			}
		}
		haveStart = true
	}
	return nil, false
}

// findTouches enumerates every vertex-vertex, A-edge/B-vertex, and
// B-edge/A-vertex contact between A and B within tolerance.
func findTouches(a, b *geom.Polygon) []touch {
	na, nb := a.Len(), b.Len()
	var touches []touch

	for i := 0; i < na; i++ {
		for j := 0; j < nb; j++ {
			ai, bj := a.At(i), b.At(j)
			if ai.Equal(bj) {
				touches = append(touches, touch{kind: 0, a: i, b: j})
				continue
			}
			aNext := a.At((i + 1) % na)
			if geom.OnSegment(ai, aNext, bj) {
				touches = append(touches, touch{kind: 1, a: i, b: j})
			}
			bNext := b.At((j + 1) % nb)
			if geom.OnSegment(bj, bNext, ai) {
				touches = append(touches, touch{kind: 2, a: i, b: j})
			}
		}
	}
	return touches
}

// bestCandidateVector generates every candidate translation vector implied
// by touches (spec.md §4.3.2 step 3), filters back-pointing vectors (step
// 4), and returns the one with maximum trimmed slide distance (step 5),
// breaking ties deterministically by (touching-index, sub-vector-index) per
// the Open Question decision recorded in DESIGN.md.
func bestCandidateVector(a, b *geom.Polygon, touches []touch, prevVector geom.Point) (geom.Point, bool) {
	na, nb := a.Len(), b.Len()

	type candidate struct {
		v geom.Point
	}
	var candidates []candidate

	for _, t := range touches {
		switch t.kind {
		case 0:
			prevA := a.At((t.a - 1 + na) % na)
			nextA := a.At((t.a + 1) % na)
			vA := a.At(t.a)
			prevB := b.At((t.b - 1 + nb) % nb)
			nextB := b.At((t.b + 1) % nb)
			vB := b.At(t.b)
			candidates = append(candidates,
				candidate{prevA.Sub(vA)},
				candidate{nextA.Sub(vA)},
				candidate{vB.Sub(prevB)},
				candidate{vB.Sub(nextB)},
			)
		case 1:
			vA := a.At(t.a)
			vB := b.At(t.b)
			prevB := b.At((t.b - 1 + nb) % nb)
			candidates = append(candidates,
				candidate{vA.Sub(vB)},
				candidate{vA.Sub(prevB)},
			)
		case 2:
			vA := a.At(t.a)
			vB := b.At(t.b)
			prevB := b.At((t.b - 1 + nb) % nb)
			candidates = append(candidates,
				candidate{vA.Sub(vB)},
				candidate{vA.Sub(prevB)},
			)
		}
	}

	var best geom.Point
	bestMag := -math.MaxFloat64
	found := false

	for _, c := range candidates {
		v := c.v
		if geom.AlmostZero(v.X) && geom.AlmostZero(v.Y) {
			continue
		}
		if prevVector.X != 0 || prevVector.Y != 0 {
			dot := v.Dot(prevVector)
			if dot < 0 {
				cross := geom.NormalizeVector(v).Cross(geom.NormalizeVector(prevVector))
				if math.Abs(cross) < 1e-4 {
					continue
				}
			}
		}

		trimmed, ok := geom.PolygonSlideDistance(a, b, v, true)
		if !ok {
			continue
		}
		mag := trimmed
		if mag > bestMag {
			bestMag = mag
			best = geom.NormalizeVector(v)
			found = true
		}
	}

	assert.True(!found || (best.X != 0 || best.Y != 0), "chosen NFP candidate vector must be non-zero")
	return best, found
}
