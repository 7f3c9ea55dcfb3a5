package ga

import (
	"math/rand"
	"sort"

	"github.com/arl/nest/geom"
)

// Seed builds the initial population: Adam (parts ordered by descending
// |area|, each given a seed rotation) followed by mutated copies of Adam
// until cfg.PopulationSize is reached (spec.md §4.6 "Population").
func Seed(cfg Config, parts []Part, bin *geom.Polygon, rng *rand.Rand) []Individual {
	adam := adamIndividual(cfg, parts, bin, rng)

	pop := make([]Individual, 0, cfg.PopulationSize)
	if cfg.PopulationSize > 0 {
		pop = append(pop, adam)
	}
	for len(pop) < cfg.PopulationSize {
		child := adam.Clone()
		Mutate(cfg, &child, parts, bin, rng)
		pop = append(pop, child)
	}
	return pop
}

// adamIndividual returns the descending-|area| seed individual with a
// seed rotation per part chosen by seedRotation.
func adamIndividual(cfg Config, parts []Part, bin *geom.Polygon, rng *rand.Rand) Individual {
	order := make([]int, len(parts))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		ai := absArea(parts[order[i]].Poly)
		aj := absArea(parts[order[j]].Poly)
		return ai > aj
	})

	rotations := make([]float32, len(parts))
	for pos, idx := range order {
		rotations[pos] = seedRotation(cfg, parts[idx].Poly, bin, rng)
	}

	return Individual{Placement: order, Rotation: rotations}
}

// seedRotation draws candidate angles from cfg.angles() in shuffled order
// and returns the first whose rotated bounding box fits within bin's
// bounding box, defaulting to 0 if none fits (spec.md §4.6 "Seeding").
func seedRotation(cfg Config, part *geom.Polygon, bin *geom.Polygon, rng *rand.Rand) float32 {
	angles := cfg.angles()
	shuffled := append([]float32(nil), angles...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	binBounds := geom.ComputeBounds(bin)
	for _, deg := range shuffled {
		rotated := geom.RotatePolygon(nil, part, float64(deg))
		b := geom.ComputeBounds(&rotated)
		if b.Width() <= binBounds.Width()+geom.Tolerance && b.Height() <= binBounds.Height()+geom.Tolerance {
			return deg
		}
	}
	return 0
}

func absArea(poly *geom.Polygon) float64 {
	a := geom.Area(poly)
	if a < 0 {
		return -a
	}
	return a
}
