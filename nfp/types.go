// Package nfp computes No-Fit-Polygons: the orbital general-polygon case,
// the rectangle-special-case inner NFP, and the Minkowski-difference outer
// NFP fallback (spec.md §4.3).
package nfp

import "github.com/arl/nest/geom"

// Key identifies one memoizable NFP computation (spec.md §3).
type Key struct {
	AID    int64
	BID    int64
	Inside bool
	ARot   float32
	BRot   float32
}

// Value is a non-empty list of polygons: index 0 is the outer NFP contour,
// the remainder (outer NFPs only) are holes.
type Value []geom.Polygon

// Outer returns the outer NFP contour.
func (v Value) Outer() *geom.Polygon {
	if len(v) == 0 {
		return nil
	}
	return &v[0]
}

// Holes returns the hole contours, if any.
func (v Value) Holes() []geom.Polygon {
	if len(v) < 2 {
		return nil
	}
	return v[1:]
}
