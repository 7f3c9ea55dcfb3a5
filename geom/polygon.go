package geom

// PolygonID identifies a Polygon within a Set. -1 is reserved for the bin
// (spec.md §3).
type PolygonID int64

// Polygon is an ordered sequence of vertices plus the bookkeeping fields the
// NFP engine and placement worker attach to it. Offset is applied lazily by
// every predicate in this package; vertices themselves are never mutated to
// bake in a translation except during rotation normalization.
type Polygon struct {
	Points []Point

	OffsetX, OffsetY float64

	// Children holds the IDs of this polygon's holes (wound opposite to the
	// parent) in the owning Set's arena. There is no parent back-pointer:
	// traversal is always top-down from a root polygon.
	Children []PolygonID

	ID       int64
	Source   int64
	Rotation float32

	width, height float64
	boundsValid   bool
}

// NewPolygon returns a Polygon over pts. pts is not copied.
func NewPolygon(pts []Point) Polygon {
	return Polygon{Points: pts}
}

// Offset returns the polygon's current lazy translation.
func (p *Polygon) Offset() Point {
	return Point{X: p.OffsetX, Y: p.OffsetY}
}

// SetOffset sets the lazy translation applied by every predicate.
func (p *Polygon) SetOffset(o Point) {
	p.OffsetX, p.OffsetY = o.X, o.Y
	p.boundsValid = false
}

// At returns the i'th vertex with Offset applied.
func (p *Polygon) At(i int) Point {
	v := p.Points[i]
	return Point{X: v.X + p.OffsetX, Y: v.Y + p.OffsetY}
}

// Len returns the number of vertices.
func (p *Polygon) Len() int {
	return len(p.Points)
}

// Clone returns a deep copy of p, not sharing the backing vertex array nor
// the Children slice.
func (p *Polygon) Clone() Polygon {
	pts := make([]Point, len(p.Points))
	copy(pts, p.Points)
	var children []PolygonID
	if len(p.Children) > 0 {
		children = make([]PolygonID, len(p.Children))
		copy(children, p.Children)
	}
	return Polygon{
		Points:   pts,
		OffsetX:  p.OffsetX,
		OffsetY:  p.OffsetY,
		Children: children,
		ID:       p.ID,
		Source:   p.Source,
		Rotation: p.Rotation,
	}
}

// RemoveDuplicateClosingVertex drops the last vertex if it coincides with the
// first within Tolerance, per spec.md §3's closed-ring normalization.
func (p *Polygon) RemoveDuplicateClosingVertex() {
	n := len(p.Points)
	if n > 1 && p.Points[0].Equal(p.Points[n-1]) {
		p.Points = p.Points[:n-1]
	}
}

// Set is the arena owning a polygon tree: a root polygon (e.g. a placed
// part) plus all of its holes, addressed by PolygonID. Set replaces the
// mutable parent/child back-link pattern (spec.md §9) with index-based,
// top-down-only traversal.
type Set struct {
	polys map[PolygonID]*Polygon
	next  PolygonID
}

// NewSet returns an empty arena.
func NewSet() *Set {
	return &Set{polys: make(map[PolygonID]*Polygon)}
}

// Add inserts poly and returns its assigned ID, unless poly.ID is already
// set to a non-zero value, in which case that ID is used and preserved.
func (s *Set) Add(poly Polygon) PolygonID {
	id := PolygonID(poly.ID)
	if id == 0 {
		id = s.next
		s.next++
		poly.ID = int64(id)
	} else if id >= s.next {
		s.next = id + 1
	}
	p := poly
	s.polys[id] = &p
	return id
}

// Get returns the polygon with the given ID, or nil if absent.
func (s *Set) Get(id PolygonID) *Polygon {
	return s.polys[id]
}

// Holes returns the hole polygons of poly, resolved through the arena.
func (s *Set) Holes(poly *Polygon) []*Polygon {
	if len(poly.Children) == 0 {
		return nil
	}
	holes := make([]*Polygon, 0, len(poly.Children))
	for _, id := range poly.Children {
		if h := s.Get(id); h != nil {
			holes = append(holes, h)
		}
	}
	return holes
}
