package ga

import (
	"math/rand"

	"github.com/arl/nest/geom"
)

// Generation advances population by one step: sort by fitness, keep the
// fittest individual unchanged (elitism), and fill the rest with mutated
// children of weighted-selected parent pairs (spec.md §4.6 "Generation
// step"). population must be fully evaluated (every individual has a
// fitness) before calling Generation.
func Generation(cfg Config, population []Individual, parts []Part, bin *geom.Polygon, rng *rand.Rand) []Individual {
	ranked := bySortedFitness(population)

	next := make([]Individual, 0, len(population))
	if len(ranked) > 0 {
		next = append(next, population[ranked[0]].Clone())
	}

	for len(next) < cfg.PopulationSize {
		maleIdx := SelectWeighted(population, -1, rng)
		femaleIdx := SelectWeighted(population, maleIdx, rng)

		child1, child2 := Crossover(population[maleIdx], population[femaleIdx], rng)

		Mutate(cfg, &child1, parts, bin, rng)
		next = append(next, child1)
		if len(next) < cfg.PopulationSize {
			Mutate(cfg, &child2, parts, bin, rng)
			next = append(next, child2)
		}
	}

	return next
}
