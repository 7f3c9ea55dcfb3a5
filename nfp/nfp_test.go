package nfp

import (
	"testing"

	"github.com/arl/nest/bitset"
	"github.com/arl/nest/geom"
)

func rectPoly(pts ...geom.Point) geom.Polygon {
	return geom.Polygon{Points: pts}
}

func TestRectangleInnerNFP(t *testing.T) {
	a := rectPoly(geom.Pt(0, 0), geom.Pt(0, 2), geom.Pt(4, 2), geom.Pt(4, 0))
	b := rectPoly(geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0.5, 0.5))

	v, ok := Rectangle(&a, &b)
	if !ok {
		t.Fatal("expected B to fit inside A")
	}
	want := []geom.Point{geom.Pt(0, 0), geom.Pt(3, 0), geom.Pt(3, 1.5), geom.Pt(0, 1.5)}
	got := v.Outer()
	for i, w := range want {
		if !got.Points[i].Equal(w) {
			t.Errorf("point %d = %v, want %v", i, got.Points[i], w)
		}
	}
}

func TestRectangleRejectsOversizedB(t *testing.T) {
	a := rectPoly(geom.Pt(0, 0), geom.Pt(0, 1), geom.Pt(1, 1), geom.Pt(1, 0))
	b := rectPoly(geom.Pt(0, 0), geom.Pt(2, 0), geom.Pt(2, 2), geom.Pt(0, 2))

	if _, ok := Rectangle(&a, &b); ok {
		t.Fatal("expected oversized B to be rejected")
	}
}

func TestInnerNFPContainment(t *testing.T) {
	a := rectPoly(geom.Pt(0, 0), geom.Pt(0, 5), geom.Pt(8, 5), geom.Pt(8, 0))
	b := rectPoly(geom.Pt(0, 0), geom.Pt(2, 0), geom.Pt(2, 1), geom.Pt(0, 1))

	v, ok := Rectangle(&a, &b)
	if !ok {
		t.Fatal("expected fit")
	}
	rect := v.Outer()
	bb := geom.ComputeBounds(rect)

	samples := []geom.Point{
		geom.Pt(bb.MinX, bb.MinY),
		geom.Pt(bb.MaxX, bb.MaxY),
		geom.Pt((bb.MinX+bb.MaxX)/2, (bb.MinY+bb.MaxY)/2),
	}
	for _, ref := range samples {
		nb := b.Clone()
		nb.SetOffset(geom.Point{X: ref.X - b.Points[0].X, Y: ref.Y - b.Points[0].Y})
		for i := 0; i < nb.Len(); i++ {
			pos := geom.PointInPolygon(nb.At(i), &a)
			if pos == geom.Outside {
				t.Errorf("placement at %v put vertex %d outside A", ref, i)
			}
		}
	}
}

func TestTouchesDetectsSharedVertex(t *testing.T) {
	a := rectPoly(geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(4, 4), geom.Pt(0, 4))
	b := rectPoly(geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(0, 1))

	touches := findTouches(&a, &b)
	found := false
	for _, tc := range touches {
		if tc.kind == 0 && tc.a == 0 && tc.b == 0 {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a type-0 touch at the shared origin vertex")
	}
}

func TestStartPointSearchScenario(t *testing.T) {
	a := rectPoly(geom.Pt(106, 125), geom.Pt(0, 125), geom.Pt(0, 0), geom.Pt(106, 0))
	b := rectPoly(geom.Pt(-117, 106), geom.Pt(-117, 87), geom.Pt(-99, 87), geom.Pt(-99, 106))

	marked := bitset.New(a.Len())
	_, _, ok := searchStartPoint(&a, &b, true, marked, nil)
	if !ok {
		t.Fatal("expected a feasible inner start point")
	}
}
