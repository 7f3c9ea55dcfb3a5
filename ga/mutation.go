package ga

import (
	"math/rand"

	"github.com/arl/nest/geom"
)

// Mutate applies, independently at each position, a swap-with-next-position
// mutation with probability 0.01*MutationRate and, independently with the
// same probability, a rotation re-roll via the seed-rotation rule
// (spec.md §4.6 "Mutation").
func Mutate(cfg Config, ind *Individual, parts []Part, bin *geom.Polygon, rng *rand.Rand) {
	p := 0.01 * cfg.MutationRate
	n := len(ind.Placement)

	for i := 0; i < n; i++ {
		if rng.Float64() < p && i+1 < n {
			ind.Placement[i], ind.Placement[i+1] = ind.Placement[i+1], ind.Placement[i]
			ind.Rotation[i], ind.Rotation[i+1] = ind.Rotation[i+1], ind.Rotation[i]
		}
		if rng.Float64() < p {
			ind.Rotation[i] = seedRotation(cfg, parts[ind.Placement[i]].Poly, bin, rng)
		}
	}
	ind.Fitness = nil
}
