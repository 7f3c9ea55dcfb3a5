// Package placement implements the bottom-left placement worker: given an
// insertion order, per-part rotations, and a frozen NFP cache, it produces
// per-bin placements and a fitness score (spec.md §4.5).
package placement

import (
	"math"

	"github.com/arl/nest/boolean"
	"github.com/arl/nest/geom"
	"github.com/arl/nest/nfp"
	"github.com/arl/nest/nfpcache"
)

// PartRef is one part as presented to the worker: its already-rotated
// polygon (ID preserved from the unrotated master copy so NFP keys still
// resolve) plus the rotation angle actually applied.
type PartRef struct {
	Poly     *geom.Polygon
	Rotation float32
}

// Placement records one part's final position within a bin.
type Placement struct {
	PartID   int64
	Source   int64
	X, Y     float64
	Rotation float32
}

// Bin is one container's worth of placements.
type Bin struct {
	Placements []Placement
	Bounds     geom.Bounds
}

// Result is the worker's output for one individual (spec.md §4.5 step 4).
type Result struct {
	Bins     []Bin
	Fitness  float64
	Unplaced []int64
	BinArea  float64
}

const minContourArea = 0.1 // in world units squared (0.1*scale^2 in integer space), applied post-downscale

// Place runs the bottom-left placement algorithm for order against bin,
// using cache for inner/outer NFP lookups (spec.md §4.5).
func Place(bin *geom.Polygon, binRot float32, order []PartRef, cache *nfpcache.Cache, scale float64) Result {
	binArea := math.Abs(geom.Area(bin))
	remaining := append([]PartRef(nil), order...)

	var result Result
	result.BinArea = binArea

	for len(remaining) > 0 {
		result.Fitness++

		type placed = struct {
			ref PartRef
			pos geom.Point
		}
		var placedParts []placed
		var bin1 Bin

		progressed := true
		for progressed {
			progressed = false

			for i := 0; i < len(remaining); i++ {
				part := remaining[i]

				innerKey := nfp.Key{AID: bin.ID, BID: part.Poly.ID, Inside: true, ARot: binRot, BRot: part.Rotation}
				innerVal, ok := cache.Get(innerKey)
				if !ok || len(innerVal) == 0 {
					continue
				}

				var pos geom.Point
				var found bool

				if len(placedParts) == 0 {
					pos, found = firstPlacement(innerVal.Outer(), part.Poly)
				} else {
					allOK := true
					var outers []boolean.Path
					for _, pl := range placedParts {
						outerKey := nfp.Key{AID: pl.ref.Poly.ID, BID: part.Poly.ID, Inside: false, ARot: pl.ref.Rotation, BRot: part.Rotation}
						outerVal, ok := cache.Get(outerKey)
						if !ok || len(outerVal) == 0 {
							allOK = false
							break
						}
						outer := outerVal.Outer().Clone()
						translatePoints(outer.Points, pl.pos)
						if area := math.Abs(geom.Area(&outer)); outer.Len() >= 3 && area >= minContourArea {
							outers = append(outers, clonePath(outer.Points))
						}
					}
					if !allOK {
						continue
					}
					pos, found = subsequentPlacement(innerVal.Outer(), outers, part.Poly, placedParts2Bounds(placedParts), scale)
				}

				if !found {
					continue
				}

				placedParts = append(placedParts, placed{ref: part, pos: pos})
				bin1.Placements = append(bin1.Placements, Placement{
					PartID:   part.Poly.ID,
					Source:   part.Poly.Source,
					X:        pos.X,
					Y:        pos.Y,
					Rotation: part.Rotation,
				})
				remaining = append(remaining[:i], remaining[i+1:]...)
				i--
				progressed = true
			}
		}

		if len(placedParts) == 0 {
			break
		}

		bin1.Bounds = boundsOfPlacements(placedParts2Bounds(placedParts))
		result.Bins = append(result.Bins, bin1)
		if binArea > 0 {
			result.Fitness += bin1.Bounds.Width() / binArea
		}
	}

	for _, r := range remaining {
		result.Unplaced = append(result.Unplaced, r.Poly.ID)
	}
	result.Fitness += 2 * float64(len(result.Unplaced))

	return result
}

func placedParts2Bounds(placedParts []struct {
	ref PartRef
	pos geom.Point
}) []geom.Bounds {
	out := make([]geom.Bounds, len(placedParts))
	for i, p := range placedParts {
		poly := p.ref.Poly.Clone()
		translatePoints(poly.Points, p.pos)
		out[i] = geom.ComputeBounds(&poly)
	}
	return out
}

func boundsOfPlacements(all []geom.Bounds) geom.Bounds {
	if len(all) == 0 {
		return geom.Bounds{}
	}
	b := all[0]
	for _, o := range all[1:] {
		if o.MinX < b.MinX {
			b.MinX = o.MinX
		}
		if o.MinY < b.MinY {
			b.MinY = o.MinY
		}
		if o.MaxX > b.MaxX {
			b.MaxX = o.MaxX
		}
		if o.MaxY > b.MaxY {
			b.MaxY = o.MaxY
		}
	}
	return b
}

// firstPlacement chooses the position in inner minimizing x among its
// vertices (spec.md §4.5 step 2 "First placement").
func firstPlacement(inner *geom.Polygon, part *geom.Polygon) (geom.Point, bool) {
	if inner == nil || inner.Len() == 0 {
		return geom.Point{}, false
	}
	best := inner.At(0)
	for i := 1; i < inner.Len(); i++ {
		v := inner.At(i)
		if v.X < best.X {
			best = v
		}
	}
	ref := part.At(0)
	return geom.Point{X: best.X - ref.X, Y: best.Y - ref.Y}, true
}

// subsequentPlacement unions the already-placed outer NFPs, subtracts that
// from the inner NFP, and scores surviving candidate vertices by the
// bounding box of everything placed plus the part at that candidate
// (spec.md §4.5 step 2 "Subsequent placements").
func subsequentPlacement(inner *geom.Polygon, outerUnion []boolean.Path, part *geom.Polygon, placedBounds []geom.Bounds, scale float64) (geom.Point, bool) {
	innerPath := clonePath(inner.Points)

	candidates := innerPath
	if len(outerUnion) > 0 {
		diffed, err := boolean.Difference([]boolean.Path{innerPath}, outerUnion, scale)
		if err != nil || len(diffed) == 0 {
			return geom.Point{}, false
		}
		candidates = nil
		for _, d := range diffed {
			cleaned, err := boolean.Clean(d, 0.0001*scale, scale)
			if err != nil || len(cleaned) < 3 {
				continue
			}
			candidates = append(candidates, cleaned...)
		}
		if len(candidates) == 0 {
			return geom.Point{}, false
		}
	}

	ref := part.At(0)
	var best geom.Point
	bestScore := math.Inf(1)
	found := false

	for _, v := range candidates {
		candidatePos := geom.Point{X: v.X - ref.X, Y: v.Y - ref.Y}

		translated := part.Clone()
		translatePoints(translated.Points, candidatePos)
		b := boundsOfPlacements(append([]geom.Bounds{geom.ComputeBounds(&translated)}, placedBounds...))

		score := 2*b.Width() + b.Height()
		if score < bestScore-geom.Tolerance || (almostEq(score, bestScore) && candidatePos.X < best.X) {
			bestScore = score
			best = candidatePos
			found = true
		}
	}
	return best, found
}

func almostEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func translatePoints(pts []geom.Point, by geom.Point) {
	for i := range pts {
		pts[i].X += by.X
		pts[i].Y += by.Y
	}
}

func clonePath(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	copy(out, pts)
	return out
}
