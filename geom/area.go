package geom

// Area returns the signed area of poly, under the convention
// area = 1/2 * sum((x_j + x_i) * (y_j - y_i)) over every vertex i, with j
// the previous vertex j=i-1 (cyclically) (spec.md §3). Negative for counter-clockwise outer contours,
// positive for clockwise holes.
func Area(poly *Polygon) float64 {
	n := poly.Len()
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		j := (i - 1 + n) % n
		a, b := poly.At(i), poly.At(j)
		sum += (b.X + a.X) * (b.Y - a.Y)
	}
	return sum / 2
}

// IsCounterClockwise reports whether poly's outer-contour winding is
// counter-clockwise, i.e. Area(poly) < 0 under this package's convention.
func IsCounterClockwise(poly *Polygon) bool {
	return Area(poly) < 0
}

// Reverse reverses poly's vertex order in place, flipping its winding.
func Reverse(poly *Polygon) {
	pts := poly.Points
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the box's extent along x.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the box's extent along y.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// ComputeBounds returns the axis-aligned bounding box of poly, honoring its
// offset.
func ComputeBounds(poly *Polygon) Bounds {
	n := poly.Len()
	if n == 0 {
		return Bounds{}
	}
	first := poly.At(0)
	b := Bounds{MinX: first.X, MaxX: first.X, MinY: first.Y, MaxY: first.Y}
	for i := 1; i < n; i++ {
		p := poly.At(i)
		if p.X < b.MinX {
			b.MinX = p.X
		}
		if p.X > b.MaxX {
			b.MaxX = p.X
		}
		if p.Y < b.MinY {
			b.MinY = p.Y
		}
		if p.Y > b.MaxY {
			b.MaxY = p.Y
		}
	}
	return b
}

// IsRectangle reports whether every vertex of poly lies on its bounding box
// perimeter within tol.
func IsRectangle(poly *Polygon, tol float64) bool {
	b := ComputeBounds(poly)
	for i := 0; i < poly.Len(); i++ {
		p := poly.At(i)
		onVertical := abs(p.X-b.MinX) < tol || abs(p.X-b.MaxX) < tol
		onHorizontal := abs(p.Y-b.MinY) < tol || abs(p.Y-b.MaxY) < tol
		if !(onVertical && onHorizontal) {
			return false
		}
	}
	return true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
