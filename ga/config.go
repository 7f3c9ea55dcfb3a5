package ga

// Config holds the tunable GA parameters (spec.md §4.6).
type Config struct {
	// PopulationSize is the number of individuals per generation. Must be
	// at least 3 (the spec's minimum).
	PopulationSize int

	// MutationRate is expressed in percent: each independent mutation
	// decision fires with probability 0.01 * MutationRate.
	MutationRate float64

	// Rotations is the number of discrete, evenly spaced rotation angles
	// considered for each part: {0, 360/R, 2*360/R, ...}.
	Rotations int
}

// angles returns the R evenly spaced candidate rotation angles in degrees.
func (c Config) angles() []float32 {
	n := c.Rotations
	if n < 1 {
		n = 1
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		out[i] = float32(i) * 360 / float32(n)
	}
	return out
}
