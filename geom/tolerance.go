// Package geom implements the 2D polygon geometry kernel: points, polygons
// with holes, and the predicates and constructive operations the NFP engine
// and placement worker build on.
package geom

import "math"

// Tolerance is the absolute difference below which two float64 coordinates
// are considered equal.
const Tolerance = 1e-9

// almostEqual reports whether a and b differ by less than Tolerance.
func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// AlmostEqual reports whether a and b differ by less than Tolerance.
func AlmostEqual(a, b float64) bool {
	return almostEqual(a, b)
}

// AlmostZero reports whether v is within Tolerance of zero.
func AlmostZero(v float64) bool {
	return math.Abs(v) < Tolerance
}
