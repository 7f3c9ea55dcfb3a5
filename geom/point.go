package geom

import "math"

// Point is a 2D coordinate.
type Point struct {
	X, Y float64
}

// Pt is a shorthand constructor for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z-component of the 3D cross product of p and q, treated
// as vectors in the xy-plane.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Equal reports whether p and q are equal within Tolerance.
func (p Point) Equal(q Point) bool {
	return almostEqual(p.X, q.X) && almostEqual(p.Y, q.Y)
}

// NormalizeVector returns the unit vector of v, or v itself if it is already
// a unit vector within Tolerance, or the zero vector if v has zero length.
func NormalizeVector(v Point) Point {
	lenSq := v.Dot(v)
	if almostEqual(lenSq, 1) {
		return v
	}
	length := math.Sqrt(lenSq)
	if length < Tolerance {
		return Point{}
	}
	return Point{X: v.X / length, Y: v.Y / length}
}
