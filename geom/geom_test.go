package geom

import "testing"

func poly(pts ...Point) Polygon {
	return Polygon{Points: pts}
}

func TestAreaSquareAndRectangle(t *testing.T) {
	s := poly(Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2), Pt(0, 0))
	if got := Area(&s); !AlmostEqual(got, -4) {
		t.Errorf("area(S) = %v, want -4", got)
	}

	r := poly(Pt(0, 0), Pt(0, 2), Pt(4, 2), Pt(4, 0), Pt(0, 0))
	if got := Area(&r); !AlmostEqual(got, 8) {
		t.Errorf("area(rect) = %v, want 8", got)
	}
}

func TestAreaOrientationUnderRotation(t *testing.T) {
	// sign(area(rotate(P, 90))) == sign(area(P)) for any simple polygon.
	p := poly(Pt(0, 0), Pt(2, 0), Pt(2, 1), Pt(0, 1))
	rotated := RotatePolygon(nil, &p, 90)
	if (Area(&p) < 0) != (Area(&rotated) < 0) {
		t.Errorf("rotation flipped area sign: area(P)=%v area(rot)=%v", Area(&p), Area(&rotated))
	}
}

func TestRotateSquare90(t *testing.T) {
	p := poly(Pt(0, 0), Pt(2, 0), Pt(2, 1), Pt(0, 0))
	got := RotatePolygon(nil, &p, 90)
	want := []Point{Pt(0, 0), Pt(0, 2), Pt(-1, 2), Pt(0, 0)}
	for i, w := range want {
		if !got.Points[i].Equal(w) {
			t.Errorf("point %d = %v, want %v", i, got.Points[i], w)
		}
	}
}

func TestRotationDeterminism(t *testing.T) {
	p := poly(Pt(1, 0), Pt(3, 1), Pt(2, 4), Pt(-1, 2))
	full := RotatePolygon(nil, &p, 360)
	for i := range p.Points {
		dx := full.Points[i].X - p.Points[i].X
		dy := full.Points[i].Y - p.Points[i].Y
		if dx*dx+dy*dy > 1e-12 {
			t.Errorf("point %d drifted after 360deg rotation: %v -> %v", i, p.Points[i], full.Points[i])
		}
	}
}

func TestPointInPolygonTrichotomy(t *testing.T) {
	s := poly(Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2), Pt(0, 0))

	cases := []struct {
		q    Point
		want PointPosition
	}{
		{Pt(1, 1), Inside},
		{Pt(3, 1), Outside},
		{Pt(2, 1), OnBoundary},
	}
	for _, c := range cases {
		if got := PointInPolygon(c.q, &s); got != c.want {
			t.Errorf("PointInPolygon(%v) = %v, want %v", c.q, got, c.want)
		}
	}
}

func TestPointInPolygonWindingInvariant(t *testing.T) {
	s := poly(Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2))
	reversed := poly(Pt(0, 0), Pt(0, 2), Pt(2, 2), Pt(2, 0))

	q := Pt(1, 1)
	if PointInPolygon(q, &s) != PointInPolygon(q, &reversed) {
		t.Error("winding reversal changed classification of an interior point")
	}
}

func TestIsRectangle(t *testing.T) {
	r := poly(Pt(0, 0), Pt(4, 0), Pt(4, 2), Pt(0, 2))
	if !IsRectangle(&r, 1e-6) {
		t.Error("expected axis-aligned rectangle to be detected")
	}
	tri := poly(Pt(0, 0), Pt(4, 0), Pt(2, 2))
	if IsRectangle(&tri, 1e-6) {
		t.Error("triangle must not be detected as rectangle")
	}
}

func TestOnSegmentExcludesEndpoints(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 0)
	if OnSegment(a, b, a) {
		t.Error("OnSegment must exclude endpoint A")
	}
	if !OnSegment(a, b, Pt(5, 0)) {
		t.Error("OnSegment must include interior collinear point")
	}
}

func TestLineIntersectFiniteVsInfinite(t *testing.T) {
	a, b := Pt(0, 0), Pt(1, 0)
	e, f := Pt(5, -1), Pt(5, 1)
	if _, ok := LineIntersect(a, b, e, f, false); ok {
		t.Error("finite segments should not intersect")
	}
	if _, ok := LineIntersect(a, b, e, f, true); !ok {
		t.Error("infinite lines should intersect")
	}
}
