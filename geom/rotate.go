package geom

import "math"

// RotatePoint rotates p around the origin by degrees, counter-clockwise for
// positive values.
func RotatePoint(p Point, degrees float64) Point {
	rad := degrees * math.Pi / 180
	s, c := math.Sin(rad), math.Cos(rad)
	return Point{
		X: p.X*c - p.Y*s,
		Y: p.X*s + p.Y*c,
	}
}

// RotatePolygon allocates and returns a new Polygon with poly's vertices
// rotated by degrees around the origin, recursing into holes referenced by
// set (if non-nil). The returned polygon's bounds are recomputed; Children
// point at newly rotated holes inserted into set.
func RotatePolygon(set *Set, poly *Polygon, degrees float64) Polygon {
	pts := make([]Point, poly.Len())
	for i := range pts {
		pts[i] = RotatePoint(poly.At(i), degrees)
	}
	out := Polygon{
		Points:   pts,
		Source:   poly.Source,
		Rotation: float32(degrees),
	}
	b := ComputeBounds(&out)
	out.width, out.height = b.Width(), b.Height()
	out.boundsValid = true

	if set != nil {
		for _, h := range set.Holes(poly) {
			rotatedHole := RotatePolygon(set, h, degrees)
			id := set.Add(rotatedHole)
			out.Children = append(out.Children, id)
		}
	}
	return out
}
