package placement

import (
	"testing"

	"github.com/arl/nest/geom"
	"github.com/arl/nest/nfp"
	"github.com/arl/nest/nfpcache"
)

func square(id int64, side float64) *geom.Polygon {
	p := geom.NewPolygon([]geom.Point{
		geom.Pt(0, 0), geom.Pt(side, 0), geom.Pt(side, side), geom.Pt(0, side),
	})
	p.ID = id
	return &p
}

func TestPlaceSinglePartUsesFirstPlacement(t *testing.T) {
	bin := square(-1, 10)
	part := square(1, 2)

	cache := nfpcache.New()
	inner := geom.NewPolygon([]geom.Point{
		geom.Pt(0, 0), geom.Pt(8, 0), geom.Pt(8, 8), geom.Pt(0, 8),
	})
	cache.Set(nfp.Key{AID: -1, BID: 1, Inside: true}, nfp.Value{inner})

	result := Place(bin, 0, []PartRef{{Poly: part, Rotation: 0}}, cache, 1e7)

	if len(result.Unplaced) != 0 {
		t.Fatalf("expected part to be placed, got unplaced=%v", result.Unplaced)
	}
	if len(result.Bins) != 1 || len(result.Bins[0].Placements) != 1 {
		t.Fatalf("expected exactly one bin with one placement, got %+v", result.Bins)
	}
	pl := result.Bins[0].Placements[0]
	if pl.X != 0 || pl.Y != 0 {
		t.Errorf("placement = (%v, %v), want (0, 0) at the min-x inner vertex", pl.X, pl.Y)
	}
}

func TestPlaceReportsUnplacedWhenNoInnerNFP(t *testing.T) {
	bin := square(-1, 10)
	part := square(1, 20)

	cache := nfpcache.New()

	result := Place(bin, 0, []PartRef{{Poly: part, Rotation: 0}}, cache, 1e7)

	if len(result.Unplaced) != 1 || result.Unplaced[0] != 1 {
		t.Fatalf("expected part 1 unplaced, got %v", result.Unplaced)
	}
	if len(result.Bins) != 0 {
		t.Fatalf("expected no bins opened, got %d", len(result.Bins))
	}
}

func TestPlaceTwoPartsSecondUsesOuterNFP(t *testing.T) {
	bin := square(-1, 10)
	partA := square(1, 2)
	partB := square(2, 2)

	cache := nfpcache.New()
	inner := geom.NewPolygon([]geom.Point{
		geom.Pt(0, 0), geom.Pt(8, 0), geom.Pt(8, 8), geom.Pt(0, 8),
	})
	cache.Set(nfp.Key{AID: -1, BID: 1, Inside: true}, nfp.Value{inner})
	cache.Set(nfp.Key{AID: -1, BID: 2, Inside: true}, nfp.Value{inner})

	// Outer NFP of a 2x2 square sliding around another 2x2 square: the
	// reference point (bottom-left corner) must stay outside a 4x4 square
	// centered on the placed part's reference point.
	outer := geom.NewPolygon([]geom.Point{
		geom.Pt(-2, -2), geom.Pt(2, -2), geom.Pt(2, 2), geom.Pt(-2, 2),
	})
	cache.Set(nfp.Key{AID: 1, BID: 2, Inside: false}, nfp.Value{outer})

	result := Place(bin, 0, []PartRef{
		{Poly: partA, Rotation: 0},
		{Poly: partB, Rotation: 0},
	}, cache, 1e7)

	if len(result.Unplaced) != 0 {
		t.Fatalf("expected both parts placed, got unplaced=%v", result.Unplaced)
	}
	if len(result.Bins) != 1 || len(result.Bins[0].Placements) != 2 {
		t.Fatalf("expected one bin with two placements, got %+v", result.Bins)
	}

	second := result.Bins[0].Placements[1]
	secondBounds := geom.Bounds{MinX: second.X, MinY: second.Y, MaxX: second.X + 2, MaxY: second.Y + 2}
	firstBounds := geom.Bounds{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}
	if overlaps(firstBounds, secondBounds) {
		t.Errorf("second placement %+v overlaps the first part's footprint", second)
	}
}

func overlaps(a, b geom.Bounds) bool {
	return a.MinX < b.MaxX-geom.Tolerance && b.MinX < a.MaxX-geom.Tolerance &&
		a.MinY < b.MaxY-geom.Tolerance && b.MinY < a.MaxY-geom.Tolerance
}
