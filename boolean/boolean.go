// Package boolean adapts the geom polygon kernel to an integer-coordinate
// polygon boolean engine (spec.md §4.2), wrapping
// github.com/CWBudde/go-clipper2 at a fixed scale.
package boolean

import (
	"github.com/CWBudde/go-clipper2/clipper"

	"github.com/arl/nest/geom"
	"github.com/arl/nest/nesterr"
)

// JoinType mirrors clipper's offset join styles.
type JoinType = clipper.JoinType

// EndType mirrors clipper's offset end styles.
type EndType = clipper.EndType

// RoundJoin and ClosedPolygon are the join/end styles spec.md §4.2
// mandates for part/bin spacing offsets.
const (
	RoundJoin     = clipper.JoinRound
	ClosedPolygon = clipper.EndPolygon
)

// Path is a polygon contour in the kernel's float64 coordinate space.
type Path = []geom.Point

// ScaleUp converts a float64 path to the engine's int64 coordinate space at
// the given scale. Lossy within tolerance, per spec.md §3's integer-staging
// invariant.
func ScaleUp(path Path, scale float64) clipper.Path64 {
	out := make(clipper.Path64, len(path))
	for i, p := range path {
		out[i] = clipper.Point64{X: int64(p.X * scale), Y: int64(p.Y * scale)}
	}
	return out
}

// ScaleDown converts an int64 path back to float64 at the given scale.
func ScaleDown(path clipper.Path64, scale float64) Path {
	out := make(Path, len(path))
	for i, p := range path {
		out[i] = geom.Pt(float64(p.X)/scale, float64(p.Y)/scale)
	}
	return out
}

func scaleUpAll(paths []Path, scale float64) clipper.Paths64 {
	out := make(clipper.Paths64, len(paths))
	for i, p := range paths {
		out[i] = ScaleUp(p, scale)
	}
	return out
}

func scaleDownAll(paths clipper.Paths64, scale float64) []Path {
	out := make([]Path, len(paths))
	for i, p := range paths {
		out[i] = ScaleDown(p, scale)
	}
	return out
}

// Simplify removes self-intersections from path under the non-zero fill
// rule, returning the resulting simple contours.
func Simplify(path Path, scale float64) ([]Path, error) {
	up := ScaleUp(path, scale)
	res, err := clipper.Union64(clipper.Paths64{up}, nil, clipper.NonZero)
	if err != nil {
		return nil, nesterr.Wrap(nesterr.BooleanOpFailed, "simplify: %v", err)
	}
	return scaleDownAll(res, scale), nil
}

// Clean removes collinear and near-duplicate points from path at the given
// integer-space distance (the coordinator passes curveTolerance *
// clipperScale, per spec.md §6/§8; the placement worker passes
// 0.0001 * scale).
func Clean(path Path, distance, scale float64) (Path, error) {
	up := ScaleUp(path, scale)
	cleaned, err := clipper.SimplifyPath64(up, distance, true)
	if err != nil {
		return nil, nesterr.Wrap(nesterr.BooleanOpFailed, "clean: %v", err)
	}
	return ScaleDown(cleaned, scale), nil
}

// Union returns the union of subject and clip paths under the non-zero fill
// rule.
func Union(subjects, clips []Path, scale float64) ([]Path, error) {
	res, err := clipper.Union64(scaleUpAll(subjects, scale), scaleUpAll(clips, scale), clipper.NonZero)
	if err != nil {
		return nil, nesterr.Wrap(nesterr.BooleanOpFailed, "union: %v", err)
	}
	return scaleDownAll(res, scale), nil
}

// Difference returns subject minus clip under the non-zero fill rule.
func Difference(subjects, clips []Path, scale float64) ([]Path, error) {
	res, err := clipper.Difference64(scaleUpAll(subjects, scale), scaleUpAll(clips, scale), clipper.NonZero)
	if err != nil {
		return nil, nesterr.Wrap(nesterr.BooleanOpFailed, "difference: %v", err)
	}
	return scaleDownAll(res, scale), nil
}

// MinkowskiSum returns the Minkowski sum of pattern and path, used to
// produce the outer NFP for the convex-fallback case (spec.md §4.3.3).
func MinkowskiSum(pattern, path Path, scale float64) ([]Path, error) {
	res, err := clipper.MinkowskiSum64(ScaleUp(pattern, scale), ScaleUp(path, scale), true)
	if err != nil {
		return nil, nesterr.Wrap(nesterr.BooleanOpFailed, "minkowski sum: %v", err)
	}
	return scaleDownAll(res, scale), nil
}

// MinkowskiDiff returns the Minkowski difference of pattern and path.
func MinkowskiDiff(pattern, path Path, scale float64) ([]Path, error) {
	res, err := clipper.MinkowskiDiff64(ScaleUp(pattern, scale), ScaleUp(path, scale), true)
	if err != nil {
		return nil, nesterr.Wrap(nesterr.BooleanOpFailed, "minkowski difference: %v", err)
	}
	return scaleDownAll(res, scale), nil
}

// Offset inflates (delta > 0) or shrinks (delta < 0) path by delta, used for
// part/bin spacing (spec.md §4.7).
func Offset(path Path, delta, scale float64, join JoinType, end EndType, miterLimit float64) ([]Path, error) {
	res, err := clipper.InflatePaths64(clipper.Paths64{ScaleUp(path, scale)}, delta*scale, join, end,
		clipper.OffsetOptions{MiterLimit: miterLimit})
	if err != nil {
		return nil, nesterr.Wrap(nesterr.BooleanOpFailed, "offset: %v", err)
	}
	return scaleDownAll(res, scale), nil
}

// Area returns the signed area of path computed in the engine's integer
// space, downscaled back to the float64 unit.
func Area(path Path, scale float64) float64 {
	return clipper.Area64(ScaleUp(path, scale)) / (scale * scale)
}
