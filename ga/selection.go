package ga

import (
	"math/rand"
	"sort"
)

// bySortedFitness returns a copy of population's indices sorted by
// ascending fitness (lower is better; unevaluated individuals sort last).
func bySortedFitness(population []Individual) []int {
	idx := make([]int, len(population))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		fi, fj := population[idx[i]].Fitness, population[idx[j]].Fitness
		switch {
		case fi == nil && fj == nil:
			return false
		case fi == nil:
			return false
		case fj == nil:
			return true
		default:
			return *fi < *fj
		}
	})
	return idx
}

// SelectWeighted picks one individual at random, favoring fitter ones:
// population is ranked ascending by fitness and sampled with linearly
// decreasing weights, front-loaded toward the best rank. exclude, if >= 0,
// names an index into population that must not be chosen (spec.md §4.6
// "Selection", random_weighted_individual).
func SelectWeighted(population []Individual, exclude int, rng *rand.Rand) int {
	ranked := bySortedFitness(population)

	candidates := ranked[:0:0]
	for _, idx := range ranked {
		if idx == exclude {
			continue
		}
		candidates = append(candidates, idx)
	}
	if len(candidates) == 0 {
		return exclude
	}

	n := len(candidates)
	total := n * (n + 1) / 2
	r := rng.Intn(total)

	weight := n
	for _, idx := range candidates {
		if r < weight {
			return idx
		}
		r -= weight
		weight--
	}
	return candidates[len(candidates)-1]
}
