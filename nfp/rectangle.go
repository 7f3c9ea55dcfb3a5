package nfp

import "github.com/arl/nest/geom"

// Rectangle computes the inner NFP of B inside axis-aligned rectangle A
// (spec.md §4.3.1). A is taken to be a rectangle and is not checked (callers
// test geom.IsRectangle first); returns false when B's bounding box does
// not fit inside A's.
func Rectangle(a, b *geom.Polygon) (Value, bool) {
	ab := geom.ComputeBounds(a)
	bb := geom.ComputeBounds(b)

	if bb.Width() > ab.Width()+geom.Tolerance || bb.Height() > ab.Height()+geom.Tolerance {
		return nil, false
	}

	ref := b.At(0)
	minX := ab.MinX + (ref.X - bb.MinX)
	minY := ab.MinY + (ref.Y - bb.MinY)
	maxX := ab.MaxX - (bb.MaxX - ref.X)
	maxY := ab.MaxY - (bb.MaxY - ref.Y)

	rect := geom.Polygon{Points: []geom.Point{
		geom.Pt(minX, minY),
		geom.Pt(maxX, minY),
		geom.Pt(maxX, maxY),
		geom.Pt(minX, maxY),
	}}
	return Value{rect}, true
}
