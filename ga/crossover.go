package ga

import "math/rand"

// Crossover performs single-point crossover between male and female,
// producing two children whose placement arrays are permutations of the
// same part indices (spec.md §4.6 "Crossover (single point)"). The cut
// point is drawn from U(0,1) clamped to [0.1, 0.9] and scaled by n-1.
func Crossover(male, female Individual, rng *rand.Rand) (Individual, Individual) {
	n := len(male.Placement)
	if n == 0 {
		return male.Clone(), female.Clone()
	}

	u := rng.Float64()
	if u < 0.1 {
		u = 0.1
	} else if u > 0.9 {
		u = 0.9
	}
	cut := int(u*float64(n-1) + 0.5)

	child1 := singlePointChild(male, female, cut)
	child2 := singlePointChild(female, male, cut)
	return child1, child2
}

// singlePointChild builds one child: the prefix (through cut, inclusive)
// comes from primary, the remainder is filled with secondary's genes in
// order, skipping any part index already placed by the prefix.
func singlePointChild(primary, secondary Individual, cut int) Individual {
	n := len(primary.Placement)
	placement := make([]int, 0, n)
	rotation := make([]float32, 0, n)

	inPrefix := make(map[int]bool, cut+1)
	for i := 0; i <= cut && i < n; i++ {
		placement = append(placement, primary.Placement[i])
		rotation = append(rotation, primary.Rotation[i])
		inPrefix[primary.Placement[i]] = true
	}

	for i, id := range secondary.Placement {
		if inPrefix[id] {
			continue
		}
		placement = append(placement, id)
		rotation = append(rotation, secondary.Rotation[i])
	}

	return Individual{Placement: placement, Rotation: rotation}
}
