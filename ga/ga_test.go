package ga

import (
	"math/rand"
	"testing"

	"github.com/arl/nest/geom"
)

func rectPart(id int64, w, h float64) Part {
	p := geom.NewPolygon([]geom.Point{
		geom.Pt(0, 0), geom.Pt(w, 0), geom.Pt(w, h), geom.Pt(0, h),
	})
	p.ID = id
	return Part{Poly: &p}
}

func testBin() *geom.Polygon {
	b := geom.NewPolygon([]geom.Point{
		geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10),
	})
	b.ID = -1
	return &b
}

func TestSeedAdamOrdersByDescendingArea(t *testing.T) {
	parts := []Part{
		rectPart(1, 1, 1),
		rectPart(2, 3, 3),
		rectPart(3, 2, 2),
	}
	cfg := Config{PopulationSize: 5, MutationRate: 10, Rotations: 4}
	rng := rand.New(rand.NewSource(1))

	pop := Seed(cfg, parts, testBin(), rng)
	if len(pop) != cfg.PopulationSize {
		t.Fatalf("len(pop) = %d, want %d", len(pop), cfg.PopulationSize)
	}

	adam := pop[0]
	if adam.Placement[0] != 1 || adam.Placement[1] != 2 || adam.Placement[2] != 0 {
		t.Errorf("Adam placement = %v, want area-descending [1 2 0]", adam.Placement)
	}
}

func TestSeedRotationFallsBackToZeroWhenNothingFits(t *testing.T) {
	oversized := rectPart(1, 20, 20)
	cfg := Config{PopulationSize: 3, MutationRate: 10, Rotations: 4}
	rng := rand.New(rand.NewSource(2))

	deg := seedRotation(cfg, oversized.Poly, testBin(), rng)
	if deg != 0 {
		t.Errorf("seedRotation = %v, want 0 when nothing fits", deg)
	}
}

func TestCrossoverProducesPermutationChildren(t *testing.T) {
	male := Individual{Placement: []int{0, 1, 2, 3}, Rotation: []float32{0, 0, 0, 0}}
	female := Individual{Placement: []int{3, 2, 1, 0}, Rotation: []float32{90, 90, 90, 90}}
	rng := rand.New(rand.NewSource(3))

	c1, c2 := Crossover(male, female, rng)

	assertPermutation(t, c1.Placement, 4)
	assertPermutation(t, c2.Placement, 4)
}

func assertPermutation(t *testing.T, placement []int, n int) {
	t.Helper()
	if len(placement) != n {
		t.Fatalf("len(placement) = %d, want %d", len(placement), n)
	}
	seen := make(map[int]bool, n)
	for _, id := range placement {
		if seen[id] {
			t.Fatalf("id %d appears twice in %v", id, placement)
		}
		seen[id] = true
	}
}

func TestMutateClearsFitness(t *testing.T) {
	parts := []Part{rectPart(0, 1, 1), rectPart(1, 1, 1)}
	cfg := Config{PopulationSize: 3, MutationRate: 100, Rotations: 2}
	rng := rand.New(rand.NewSource(4))

	f := 0.5
	ind := Individual{Placement: []int{0, 1}, Rotation: []float32{0, 0}, Fitness: &f}
	Mutate(cfg, &ind, parts, testBin(), rng)

	if ind.Fitness != nil {
		t.Error("expected Mutate to clear fitness")
	}
}

func TestGenerationKeepsFittestUnchanged(t *testing.T) {
	cfg := Config{PopulationSize: 4, MutationRate: 10, Rotations: 2}
	parts := []Part{rectPart(0, 1, 1), rectPart(1, 2, 2), rectPart(2, 1, 2)}
	rng := rand.New(rand.NewSource(5))

	best := 1.0
	mid := 2.0
	worst := 3.0
	population := []Individual{
		{Placement: []int{0, 1, 2}, Rotation: []float32{0, 0, 0}, Fitness: &best},
		{Placement: []int{1, 0, 2}, Rotation: []float32{0, 0, 0}, Fitness: &mid},
		{Placement: []int{2, 1, 0}, Rotation: []float32{0, 0, 0}, Fitness: &worst},
		{Placement: []int{0, 2, 1}, Rotation: []float32{0, 0, 0}, Fitness: &mid},
	}

	next := Generation(cfg, population, parts, testBin(), rng)

	if len(next) != cfg.PopulationSize {
		t.Fatalf("len(next) = %d, want %d", len(next), cfg.PopulationSize)
	}
	if next[0].Fitness == nil || *next[0].Fitness != best {
		t.Errorf("expected elite survivor with fitness %v first, got %+v", best, next[0])
	}
	for i, ind := range next[1:] {
		if ind.HasFitness() {
			t.Errorf("child %d retained a fitness value, want nil after crossover/mutation", i+1)
		}
	}
}

func TestSelectWeightedExcludesIndex(t *testing.T) {
	f0, f1, f2 := 1.0, 2.0, 3.0
	population := []Individual{
		{Fitness: &f0}, {Fitness: &f1}, {Fitness: &f2},
	}
	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 20; i++ {
		got := SelectWeighted(population, 0, rng)
		if got == 0 {
			t.Fatalf("SelectWeighted returned excluded index 0")
		}
	}
}
