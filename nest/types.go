// Package nest is the coordinator: it owns the GA population and NFP
// cache, drives the per-generation parallel NFP dispatch, runs the
// placement worker on each evaluated individual, and reports progress and
// improvements to a Renderer (spec.md §4.7).
package nest

import (
	"context"

	"github.com/arl/nest/geom"
	"github.com/arl/nest/placement"
)

// InputShape is one polygon as delivered by a ShapeSource: an outer
// contour plus any holes, with a stable ID and a back-pointer to the
// source's own indexing (spec.md §6).
type InputShape struct {
	ID     int64
	Source int64
	Outer  []geom.Point
	Holes  [][]geom.Point
}

// ShapeSource supplies the bin and parts to be nested. Implementations
// must guarantee simple, non-self-intersecting contours.
type ShapeSource interface {
	Shapes(ctx context.Context) ([]InputShape, error)
}

// PlacementRecord is one part's final position, in the shape Renderer
// consumes.
type PlacementRecord struct {
	PartSourceIndex int64
	X, Y            float64
	RotationDeg     float64
}

// BinResult is one container's worth of placements plus its bounding
// dimensions.
type BinResult struct {
	Placements []PlacementRecord
	Width      float64
	Height     float64
	BoundsMinX float64
	BoundsMinY float64
}

// Solution is the best individual's decoded result, as reported to a
// Renderer after every improvement (spec.md §6).
type Solution struct {
	Bins     []BinResult
	Fitness  float64
	Unplaced []int64
}

// Renderer consumes, per improvement, the best set of per-bin placements.
type Renderer interface {
	Render(best Solution) error
}

func decodeSolution(res placement.Result) Solution {
	sol := Solution{Fitness: res.Fitness, Unplaced: res.Unplaced}
	for _, bin := range res.Bins {
		br := BinResult{Width: bin.Bounds.Width(), Height: bin.Bounds.Height(), BoundsMinX: bin.Bounds.MinX, BoundsMinY: bin.Bounds.MinY}
		for _, p := range bin.Placements {
			br.Placements = append(br.Placements, PlacementRecord{
				PartSourceIndex: p.Source,
				X:               p.X,
				Y:               p.Y,
				RotationDeg:     float64(p.Rotation),
			})
		}
		sol.Bins = append(sol.Bins, br)
	}
	return sol
}
